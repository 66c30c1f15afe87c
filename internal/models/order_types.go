package models

import (
	"time"
)

// Order status lifecycle. Pending is the only state a customer can act on;
// Expired is derived at read time and never written back.
const (
	OrderStatusPending   = "Pending"
	OrderStatusCompleted = "Completed"
	OrderStatusCancelled = "Cancelled"
	OrderStatusExpired   = "Expired"
)

// OrderTypePickup is the only fulfilment mode; there is no delivery.
const OrderTypePickup = "Store Pickup"

// PickupWindow is how long a pending order is held before it is considered
// expired.
const PickupWindow = 3 * 24 * time.Hour

// Order is the model for the 'orders' table. Each row is a snapshot of one
// purchased cart line at checkout time: later catalog price changes do not
// touch it. Only 'status' is mutable; rows are never deleted.
type Order struct {
	ID            int64     `json:"id" db:"id"`
	UserID        int64     `json:"userId" db:"user_id"`
	CustomerName  string    `json:"customerName" db:"customer_name"`
	ContactNumber string    `json:"contactNumber" db:"contact_number"`
	Address       string    `json:"address" db:"address"`
	ItemID        int64     `json:"itemId" db:"item_id"`
	ProductName   string    `json:"productName" db:"product_name"`
	Price         float64   `json:"price" db:"price"` // unit price x quantity
	Quantity      int       `json:"quantity" db:"quantity"`
	ImageURL      string    `json:"imageUrl" db:"image_url"`
	ProductType   string    `json:"productType" db:"product_type"`
	Status        string    `json:"status" db:"status"`
	OrderType     string    `json:"orderType" db:"order_type"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`

	// Derived fields, populated on list reads. DaysLeft is only meaningful
	// while the effective status is Pending.
	EffectiveStatus string `json:"effectiveStatus,omitempty" db:"-"`
	DaysLeft        *int   `json:"daysLeft,omitempty" db:"-"`
}

// EffectiveOrderStatus reclassifies a stale pending order as Expired without
// persisting the change. Any other stored status passes through untouched.
func EffectiveOrderStatus(status string, createdAt, now time.Time) string {
	if status == OrderStatusPending && now.Sub(createdAt) > PickupWindow {
		return OrderStatusExpired
	}
	return status
}

// PickupDaysLeft is ceil((createdAt + window - now) / 1 day), floored at 0.
func PickupDaysLeft(createdAt, now time.Time) int {
	deadline := createdAt.Add(PickupWindow)
	remaining := deadline.Sub(now)
	if remaining <= 0 {
		return 0
	}
	days := int(remaining / (24 * time.Hour))
	if remaining%(24*time.Hour) != 0 {
		days++
	}
	return days
}

// CanCancelOrder gates user-initiated cancellation: only a still-pending
// order qualifies. An order that has already tipped past the pickup window
// reads as Expired and is no longer cancellable.
func CanCancelOrder(status string, createdAt, now time.Time) bool {
	return EffectiveOrderStatus(status, createdAt, now) == OrderStatusPending
}
