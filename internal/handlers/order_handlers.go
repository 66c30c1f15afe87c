package handlers

import (
	"database/sql"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pawfessional/store-api/internal/inventory"
	"github.com/pawfessional/store-api/internal/models"
)

//
// --- Order Handlers ---
//
// Checkout turns selected cart lines into orders in one transaction: order
// rows, stock deductions and cart deletions land together or not at all.
// Each order is a snapshot; later catalog changes never touch it.

// CheckoutInput names the cart lines being purchased.
type CheckoutInput struct {
	ItemIDs []int64 `json:"itemIds" binding:"required,min=1"`
}

// Checkout is the handler for POST /v1/orders/checkout.
//
// Product rows are locked (FOR UPDATE) and stock re-checked inside the
// transaction, so two concurrent checkouts cannot both drain the same
// low-stock product: the later one is rejected rather than clamped. A cart
// line whose product has vanished from the catalog is skipped with a log
// line; it does not abort the rest of the batch.
func (h *Handlers) Checkout(c *gin.Context) {
	userIDRaw, _ := c.Get("userID")
	userID := userIDRaw.(int64)

	var input CheckoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please select items to check out."})
		return
	}

	tx, err := h.DB.BeginTx(c, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start transaction"})
		return
	}
	defer tx.Rollback()

	// Pickup information is snapshotted from the profile onto every order.
	var customerName, contactNumber, address string
	err = tx.QueryRow(`SELECT name, contact, address FROM users WHERE id = ?`, userID).
		Scan(&customerName, &contactNumber, &address)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load pickup information"})
		return
	}

	lineQuery := `
		SELECT id, product_id, name, price, quantity, image, product_type
		FROM cart_items
		WHERE user_id = ? AND id IN (?` + strings.Repeat(", ?", len(input.ItemIDs)-1) + `)`
	args := make([]interface{}, 0, len(input.ItemIDs)+1)
	args = append(args, userID)
	for _, id := range input.ItemIDs {
		args = append(args, id)
	}

	rows, err := tx.Query(lineQuery, args...)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart items"})
		return
	}

	var lines []models.CartItem
	for rows.Next() {
		var item models.CartItem
		if err := rows.Scan(
			&item.ID, &item.ProductID, &item.Name, &item.Price,
			&item.Quantity, &item.Image, &item.ProductType,
		); err != nil {
			rows.Close()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan cart item"})
			return
		}
		lines = append(lines, item)
	}
	if err = rows.Err(); err != nil {
		rows.Close()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error iterating cart items"})
		return
	}
	rows.Close()

	if len(lines) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Your cart is empty"})
		return
	}

	now := time.Now()
	orderInsert := `
		INSERT INTO orders
		(user_id, customer_name, contact_number, address, item_id, product_name,
		 price, quantity, image_url, product_type, status, order_type, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	var orderIDs []int64
	placed := 0

	for _, line := range lines {
		stock, err := inventory.LockStock(tx, line.ProductID)
		if err == inventory.ErrProductNotFound {
			h.Logger.Warn().
				Int64("product_id", line.ProductID).
				Str("name", line.Name).
				Msg("product missing from catalog, skipping cart line")
			continue
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check stock"})
			return
		}

		qty := line.Qty()
		if stock < qty {
			c.JSON(http.StatusConflict, gin.H{
				"error":     "Not enough stock for " + line.Name,
				"available": stock,
			})
			return
		}

		unitPrice := models.ParsePrice(line.Price)
		result, err := tx.Exec(orderInsert,
			userID, customerName, contactNumber, address,
			line.ProductID, line.Name, unitPrice*float64(qty), qty,
			line.Image, line.ProductType,
			models.OrderStatusPending, models.OrderTypePickup, now,
		)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
			return
		}
		orderID, err := result.LastInsertId()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read new order ID"})
			return
		}

		if err := inventory.Deduct(tx, line.ProductID, qty); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to deduct stock"})
			return
		}

		if _, err := tx.Exec(`DELETE FROM cart_items WHERE id = ?`, line.ID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart line"})
			return
		}

		orderIDs = append(orderIDs, orderID)
		placed++
	}

	if placed == 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "None of the selected items are still available"})
		return
	}

	if err := tx.Commit(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong while placing the order."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Your order has been successfully submitted!",
		"orderIds": orderIDs,
		"placed":   placed,
		"skipped":  len(lines) - placed,
	})
}

// GetMyOrders is the handler for GET /v1/orders. Pending orders older than
// the pickup window are returned as Expired; the stored status is left
// alone, the reclassification lives only in the response.
func (h *Handlers) GetMyOrders(c *gin.Context) {
	userIDRaw, _ := c.Get("userID")
	userID := userIDRaw.(int64)

	query := `
		SELECT id, user_id, customer_name, contact_number, address, item_id, product_name,
		       price, quantity, image_url, product_type, status, order_type, created_at
		FROM orders
		WHERE user_id = ?
		ORDER BY created_at DESC`

	rows, err := h.DB.Query(query, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
		return
	}
	defer rows.Close()

	now := time.Now()
	var orders []models.Order
	for rows.Next() {
		var o models.Order
		if err := rows.Scan(
			&o.ID, &o.UserID, &o.CustomerName, &o.ContactNumber, &o.Address,
			&o.ItemID, &o.ProductName, &o.Price, &o.Quantity, &o.ImageURL,
			&o.ProductType, &o.Status, &o.OrderType, &o.CreatedAt,
		); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan order"})
			return
		}

		o.EffectiveStatus = models.EffectiveOrderStatus(o.Status, o.CreatedAt, now)
		if o.EffectiveStatus == models.OrderStatusPending {
			days := models.PickupDaysLeft(o.CreatedAt, now)
			o.DaysLeft = &days
		}
		orders = append(orders, o)
	}
	if err = rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error iterating orders"})
		return
	}

	if orders == nil {
		orders = []models.Order{}
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// CancelOrder is the handler for POST /v1/orders/:id/cancel. Stock
// restoration and the status flip commit as one transaction; the order can
// never end up Cancelled with its stock unrestored.
func (h *Handlers) CancelOrder(c *gin.Context) {
	userIDRaw, _ := c.Get("userID")
	userID := userIDRaw.(int64)

	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return
	}

	tx, err := h.DB.BeginTx(c, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start transaction"})
		return
	}
	defer tx.Rollback()

	var o models.Order
	query := `
		SELECT id, item_id, quantity, status, created_at
		FROM orders
		WHERE id = ? AND user_id = ?
		FOR UPDATE`
	err = tx.QueryRow(query, orderID, userID).Scan(&o.ID, &o.ItemID, &o.Quantity, &o.Status, &o.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
		return
	}

	if !models.CanCancelOrder(o.Status, o.CreatedAt, time.Now()) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only pending orders can be cancelled"})
		return
	}

	if err := inventory.Restore(tx, o.ItemID, o.Quantity); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to restore stock"})
		return
	}

	if _, err := tx.Exec(`UPDATE orders SET status = ? WHERE id = ?`, models.OrderStatusCancelled, orderID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
		return
	}

	if err := tx.Commit(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel order. Please try again."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Your order has been successfully cancelled."})
}

//
// --- Staff: order pickup handlers ---
//

// GetPendingOrders is the handler for GET /v1/staff/orders/pending.
func (h *Handlers) GetPendingOrders(c *gin.Context) {
	query := `
		SELECT id, user_id, customer_name, contact_number, address, item_id, product_name,
		       price, quantity, image_url, product_type, status, order_type, created_at
		FROM orders
		WHERE status = ?
		ORDER BY created_at ASC`

	rows, err := h.DB.Query(query, models.OrderStatusPending)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
		return
	}
	defer rows.Close()

	now := time.Now()
	var orders []models.Order
	for rows.Next() {
		var o models.Order
		if err := rows.Scan(
			&o.ID, &o.UserID, &o.CustomerName, &o.ContactNumber, &o.Address,
			&o.ItemID, &o.ProductName, &o.Price, &o.Quantity, &o.ImageURL,
			&o.ProductType, &o.Status, &o.OrderType, &o.CreatedAt,
		); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan order"})
			return
		}
		o.EffectiveStatus = models.EffectiveOrderStatus(o.Status, o.CreatedAt, now)
		orders = append(orders, o)
	}
	if err = rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error iterating orders"})
		return
	}

	if orders == nil {
		orders = []models.Order{}
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// CompleteOrder is the handler for PATCH /v1/staff/orders/:id/complete,
// used when the customer claims the pickup.
func (h *Handlers) CompleteOrder(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return
	}

	result, err := h.DB.Exec(
		`UPDATE orders SET status = ? WHERE id = ? AND status = ?`,
		models.OrderStatusCompleted, orderID, models.OrderStatusPending,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to complete order"})
		return
	}
	affected, _ := result.RowsAffected()
	if affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found or not pending"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order marked as completed"})
}
