package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name    string
		display string
		want    float64
	}{
		{"plain number", "150", 150},
		{"peso sign", "₱150", 150},
		{"thousands comma", "₱1,400", 1400},
		{"cents", "₱150.50", 150.50},
		{"comma and cents", "₱1,234.56", 1234.56},
		{"surrounding text", "Price: 99 pesos", 99},
		{"empty", "", 0},
		{"no digits", "₱", 0},
		{"two dots", "1.2.3", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParsePrice(tt.display))
		})
	}
}

func TestDisplayPrice(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{"whole", 150, "₱150"},
		{"whole thousands", 1400, "₱1,400"},
		{"cents", 150.5, "₱150.50"},
		{"millions", 1234567.89, "₱1,234,567.89"},
		{"zero", 0, "₱0"},
		{"negative", -35, "-₱35"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DisplayPrice(tt.in))
		})
	}
}

func TestParsePriceRoundTripsDisplay(t *testing.T) {
	for _, v := range []float64{30, 150.5, 1400, 999999.99} {
		assert.Equal(t, v, ParsePrice(DisplayPrice(v)))
	}
}

func TestQty(t *testing.T) {
	assert.Equal(t, 1, CartItem{Quantity: 0}.Qty())
	assert.Equal(t, 1, CartItem{Quantity: -3}.Qty())
	assert.Equal(t, 4, CartItem{Quantity: 4}.Qty())
}

func TestSubtotal(t *testing.T) {
	items := []CartItem{
		{ID: 1, Name: "Wound Spray", Price: "₱150.50", Quantity: 2},
		{ID: 2, Name: "Pet's Milk", Price: "₱30", Quantity: 1},
		{ID: 3, Name: "Royal Tail Shampoo", Price: "₱950", Quantity: 1},
	}

	t.Run("selected lines only", func(t *testing.T) {
		assert.Equal(t, 331.0, Subtotal(items, []int64{1, 2}))
	})
	t.Run("nothing selected", func(t *testing.T) {
		assert.Equal(t, 0.0, Subtotal(items, nil))
	})
	t.Run("unknown ids ignored", func(t *testing.T) {
		assert.Equal(t, 950.0, Subtotal(items, []int64{3, 99}))
	})
}

func TestFilterByName(t *testing.T) {
	items := []CartItem{
		{ID: 1, Name: "Whiskas Junior Tuna Wet Cat Food"},
		{ID: 2, Name: "Pedigree Adult Beef in Gravy"},
		{ID: 3, Name: "Tuna Cat Food Pouch for Adult"},
	}

	t.Run("empty query returns everything", func(t *testing.T) {
		assert.Len(t, FilterByName(items, ""), 3)
	})
	t.Run("case insensitive match", func(t *testing.T) {
		got := FilterByName(items, "tuna")
		assert.Len(t, got, 2)
		assert.Equal(t, int64(1), got[0].ID)
		assert.Equal(t, int64(3), got[1].ID)
	})
	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, FilterByName(items, "vitamin"))
	})
}

func TestCartSelection(t *testing.T) {
	items := []CartItem{
		{ID: 1, Name: "Tuna Cat Food"},
		{ID: 2, Name: "Tuna Mousse"},
		{ID: 3, Name: "Beef Treats"},
	}
	tunaOnly := FilterByName(items, "tuna")

	t.Run("toggle flips a single line", func(t *testing.T) {
		s := NewCartSelection()
		s.Toggle(1)
		assert.True(t, s.Selected(1))
		s.Toggle(1)
		assert.False(t, s.Selected(1))
	})

	t.Run("select all covers the filtered view only", func(t *testing.T) {
		s := NewCartSelection()
		s.ToggleAll(tunaOnly)
		assert.True(t, s.Selected(1))
		assert.True(t, s.Selected(2))
		assert.False(t, s.Selected(3))
		assert.True(t, s.AllSelected(tunaOnly))
		assert.False(t, s.AllSelected(items))
	})

	t.Run("toggle all again clears", func(t *testing.T) {
		s := NewCartSelection()
		s.ToggleAll(items)
		s.ToggleAll(items)
		assert.Empty(t, s.IDs())
	})

	t.Run("partial selection turns select-all off", func(t *testing.T) {
		s := NewCartSelection()
		s.ToggleAll(items)
		s.Toggle(2)
		assert.False(t, s.AllSelected(items))
	})

	t.Run("empty view is never all-selected", func(t *testing.T) {
		s := NewCartSelection()
		assert.False(t, s.AllSelected(nil))
	})
}
