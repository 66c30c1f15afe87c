package handlers

import (
	"database/sql"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pawfessional/store-api/internal/inventory"
	"github.com/pawfessional/store-api/internal/models"
)

//
// --- Cart Handlers ---
//
// Cart lines snapshot the product name, display price and image at add time.
// Quantities are soft: stock is only a ceiling here, never a reservation.

// AddToCartInput defines the JSON for adding an item to the cart.
type AddToCartInput struct {
	ProductID int64 `json:"productId" binding:"required"`
}

// AddToCart is the handler for POST /v1/cart/items. New lines always start
// at quantity 1.
func (h *Handlers) AddToCart(c *gin.Context) {
	userIDRaw, _ := c.Get("userID")
	userID := userIDRaw.(int64)

	var input AddToCartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var p models.Product
	query := `SELECT id, name, brand, product_type, price, count, image FROM products WHERE id = ?`
	err := h.DB.QueryRow(query, input.ProductID).Scan(
		&p.ID, &p.Name, &p.Brand, &p.ProductType, &p.Price, &p.Count, &p.Image,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up product"})
		return
	}

	if !p.InStock() {
		c.JSON(http.StatusConflict, gin.H{"error": "This item is no longer available."})
		return
	}

	insert := `
		INSERT INTO cart_items (user_id, product_id, name, price, quantity, image, product_type, created_at)
		VALUES (?, ?, ?, ?, 1, ?, ?, ?)`
	result, err := h.DB.Exec(insert,
		userID, p.ID, p.Name, models.DisplayPrice(p.Price), p.Image, p.ProductType, time.Now(),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "We couldn't add this item to your cart. Please try again."})
		return
	}

	lineID, _ := result.LastInsertId()
	c.JSON(http.StatusCreated, gin.H{
		"message": fmt.Sprintf("%s has been added to your cart.", p.Name),
		"itemId":  lineID,
	})
}

// GetCart is the handler for GET /v1/cart. Supports ?q= to filter lines by
// name, case-insensitively.
func (h *Handlers) GetCart(c *gin.Context) {
	userIDRaw, _ := c.Get("userID")
	userID := userIDRaw.(int64)

	query := `
		SELECT id, user_id, product_id, name, price, quantity, image, product_type, created_at
		FROM cart_items
		WHERE user_id = ?
		ORDER BY created_at ASC`

	rows, err := h.DB.Query(query, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
		return
	}
	defer rows.Close()

	var items []models.CartItem
	for rows.Next() {
		var item models.CartItem
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.ProductID, &item.Name, &item.Price,
			&item.Quantity, &item.Image, &item.ProductType, &item.CreatedAt,
		); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan cart item"})
			return
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error iterating cart items"})
		return
	}

	totalLines := len(items)
	items = models.FilterByName(items, c.Query("q"))
	if items == nil {
		items = []models.CartItem{}
	}

	c.JSON(http.StatusOK, gin.H{
		"items":      items,
		"totalLines": totalLines,
	})
}

// IncreaseQuantity is the handler for PATCH /v1/cart/items/:id/increase.
// The live stock count is a ceiling only: the line can grow until quantity
// reaches it. Nothing is reserved; stock becomes authoritative at checkout.
func (h *Handlers) IncreaseQuantity(c *gin.Context) {
	userIDRaw, _ := c.Get("userID")
	userID := userIDRaw.(int64)

	lineID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart item ID"})
		return
	}

	var item models.CartItem
	query := `SELECT id, product_id, name, quantity FROM cart_items WHERE id = ? AND user_id = ?`
	err = h.DB.QueryRow(query, lineID, userID).Scan(&item.ID, &item.ProductID, &item.Name, &item.Quantity)
	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found in cart"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up cart item"})
		return
	}

	stock, err := inventory.StockFor(h.DB, item.ProductID)
	if err != nil {
		if err == inventory.ErrProductNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found in catalog."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check stock"})
		return
	}

	if item.Qty() >= stock {
		c.JSON(http.StatusConflict, gin.H{
			"error":     "Stock limit reached",
			"message":   fmt.Sprintf("Only %d item(s) available for %q.", stock, item.Name),
			"available": stock,
		})
		return
	}

	update := `UPDATE cart_items SET quantity = quantity + 1 WHERE id = ? AND user_id = ?`
	if _, err := h.DB.Exec(update, lineID, userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update quantity"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"quantity": item.Qty() + 1})
}

// DecreaseQuantity is the handler for PATCH /v1/cart/items/:id/decrease.
// A line at quantity 1 is never decremented to zero; the response asks the
// client to confirm removal instead.
func (h *Handlers) DecreaseQuantity(c *gin.Context) {
	userIDRaw, _ := c.Get("userID")
	userID := userIDRaw.(int64)

	lineID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart item ID"})
		return
	}

	var quantity int
	err = h.DB.QueryRow(`SELECT quantity FROM cart_items WHERE id = ? AND user_id = ?`, lineID, userID).Scan(&quantity)
	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found in cart"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up cart item"})
		return
	}

	if quantity <= 1 {
		c.JSON(http.StatusOK, gin.H{
			"confirmRemoval": true,
			"message":        "Do you want to remove this item from your cart?",
		})
		return
	}

	update := `UPDATE cart_items SET quantity = quantity - 1 WHERE id = ? AND user_id = ?`
	if _, err := h.DB.Exec(update, lineID, userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update quantity"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"quantity": quantity - 1})
}

// RemoveFromCart is the handler for DELETE /v1/cart/items/:id.
func (h *Handlers) RemoveFromCart(c *gin.Context) {
	userIDRaw, _ := c.Get("userID")
	userID := userIDRaw.(int64)

	lineID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart item ID"})
		return
	}

	result, err := h.DB.Exec(`DELETE FROM cart_items WHERE id = ? AND user_id = ?`, lineID, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove item"})
		return
	}
	affected, _ := result.RowsAffected()
	if affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found in cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cart item removed"})
}

// DeleteSelectedInput names the lines to drop in one go.
type DeleteSelectedInput struct {
	ItemIDs []int64 `json:"itemIds" binding:"required,min=1"`
}

// DeleteSelected is the handler for POST /v1/cart/items/delete.
func (h *Handlers) DeleteSelected(c *gin.Context) {
	userIDRaw, _ := c.Get("userID")
	userID := userIDRaw.(int64)

	var input DeleteSelectedInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please select items to delete."})
		return
	}

	query := `DELETE FROM cart_items WHERE user_id = ? AND id IN (?` +
		strings.Repeat(", ?", len(input.ItemIDs)-1) + `)`
	args := make([]interface{}, 0, len(input.ItemIDs)+1)
	args = append(args, userID)
	for _, id := range input.ItemIDs {
		args = append(args, id)
	}

	result, err := h.DB.Exec(query, args...)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete selected items"})
		return
	}
	affected, _ := result.RowsAffected()

	c.JSON(http.StatusOK, gin.H{
		"message": "Selected items have been removed.",
		"deleted": affected,
	})
}

// SubtotalInput carries the client's selection and active text filter.
type SubtotalInput struct {
	SelectedIDs []int64 `json:"selectedIds"`
	Query       string  `json:"q"`
}

// CartSubtotal is the handler for POST /v1/cart/subtotal. The subtotal only
// counts selected lines, and the select-all state is reported against the
// filtered view so the checkbox stays honest while a search is active.
func (h *Handlers) CartSubtotal(c *gin.Context) {
	userIDRaw, _ := c.Get("userID")
	userID := userIDRaw.(int64)

	var input SubtotalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rows, err := h.DB.Query(`
		SELECT id, user_id, product_id, name, price, quantity, image, product_type, created_at
		FROM cart_items WHERE user_id = ?`, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
		return
	}
	defer rows.Close()

	var items []models.CartItem
	for rows.Next() {
		var item models.CartItem
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.ProductID, &item.Name, &item.Price,
			&item.Quantity, &item.Image, &item.ProductType, &item.CreatedAt,
		); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan cart item"})
			return
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error iterating cart items"})
		return
	}

	filtered := models.FilterByName(items, input.Query)

	selection := models.NewCartSelection()
	for _, id := range input.SelectedIDs {
		selection.Toggle(id)
	}

	c.JSON(http.StatusOK, gin.H{
		"subtotal":  models.Subtotal(items, input.SelectedIDs),
		"selectAll": selection.AllSelected(filtered),
		"filtered":  len(filtered),
	})
}
