package models

import (
	"strconv"
	"strings"
	"time"
)

// CartItem is the model for the 'cart_items' table.
// Every line carries an explicit owner (user_id); queries are always scoped
// by it. Price is kept as the display string captured when the item was added
// ("₱1,400" and similar), so totals go through ParsePrice.
type CartItem struct {
	ID          int64     `json:"id" db:"id"`
	UserID      int64     `json:"userId" db:"user_id"`
	ProductID   int64     `json:"productId" db:"product_id"`
	Name        string    `json:"name" db:"name"`
	Price       string    `json:"price" db:"price"`
	Quantity    int       `json:"quantity" db:"quantity"`
	Image       string    `json:"image" db:"image"`
	ProductType string    `json:"productType" db:"product_type"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// Qty normalizes the stored quantity; lines never hold zero, but a missing
// or corrupted value still counts as one unit.
func (ci CartItem) Qty() int {
	if ci.Quantity < 1 {
		return 1
	}
	return ci.Quantity
}

// ParsePrice strips everything that is not a digit or a decimal point from a
// display price and parses the remainder. "₱1,400.50" -> 1400.50. Returns 0
// for anything unparsable.
func ParsePrice(display string) float64 {
	var b strings.Builder
	for _, r := range display {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if cleaned == "" {
		return 0
	}
	// strconv.ParseFloat rejects stray extra dots, which is what we want.
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return v
}

// DisplayPrice renders a numeric price the way the storefront shows it:
// peso sign, thousands commas, cents only when the value has them.
// 1400 -> "₱1,400", 150.5 -> "₱150.50".
func DisplayPrice(v float64) string {
	negative := v < 0
	if negative {
		v = -v
	}
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimSuffix(s, ".00")

	intPart := s
	frac := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}
	var b strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}
	out := "₱" + b.String() + frac
	if negative {
		out = "-" + out
	}
	return out
}

// Subtotal sums parsed price x quantity over the selected lines only.
func Subtotal(items []CartItem, selected []int64) float64 {
	chosen := make(map[int64]bool, len(selected))
	for _, id := range selected {
		chosen[id] = true
	}
	var total float64
	for _, item := range items {
		if !chosen[item.ID] {
			continue
		}
		total += ParsePrice(item.Price) * float64(item.Qty())
	}
	return total
}

// FilterByName returns the lines whose name contains q, case-insensitively.
// An empty query returns the input unchanged.
func FilterByName(items []CartItem, q string) []CartItem {
	if q == "" {
		return items
	}
	needle := strings.ToLower(q)
	var out []CartItem
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Name), needle) {
			out = append(out, item)
		}
	}
	return out
}

// CartSelection tracks which cart lines are ticked. Select-all operates on
// the currently filtered view, and the select-all state is derived: it is on
// only while the selected set covers the whole filtered set.
type CartSelection struct {
	ids map[int64]bool
}

func NewCartSelection() *CartSelection {
	return &CartSelection{ids: make(map[int64]bool)}
}

// Toggle flips a single line in or out of the selection.
func (s *CartSelection) Toggle(id int64) {
	if s.ids[id] {
		delete(s.ids, id)
		return
	}
	s.ids[id] = true
}

// ToggleAll mirrors the select-all checkbox: if every filtered line is
// already selected it clears the selection, otherwise it selects exactly
// the filtered lines.
func (s *CartSelection) ToggleAll(filtered []CartItem) {
	if s.AllSelected(filtered) {
		s.ids = make(map[int64]bool)
		return
	}
	s.ids = make(map[int64]bool, len(filtered))
	for _, item := range filtered {
		s.ids[item.ID] = true
	}
}

// AllSelected reports whether the selection covers the whole filtered view.
// False for an empty view.
func (s *CartSelection) AllSelected(filtered []CartItem) bool {
	if len(filtered) == 0 {
		return false
	}
	for _, item := range filtered {
		if !s.ids[item.ID] {
			return false
		}
	}
	return true
}

// Selected reports whether one line is ticked.
func (s *CartSelection) Selected(id int64) bool {
	return s.ids[id]
}

// IDs returns the selected line ids in no particular order.
func (s *CartSelection) IDs() []int64 {
	out := make([]int64, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	return out
}
