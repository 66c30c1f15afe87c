package handlers

import (
	"database/sql"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pawfessional/store-api/internal/models"
)

//
// --- Catalog Handlers (read-only) ---
//
// The catalog is seeded out of band; these handlers never mutate it. Stock
// counts only change through the inventory reconciler during checkout and
// cancellation.

// GetProducts is the handler for GET /v1/products. Supports ?type= to pick a
// category shelf and ?q= for a case-insensitive name search.
func (h *Handlers) GetProducts(c *gin.Context) {
	query := `
		SELECT id, slug, name, brand, product_type, price, cost, count, description, image, created_at
		FROM products`

	var args []interface{}
	var where []string

	if productType := c.Query("type"); productType != "" {
		where = append(where, "product_type = ?")
		args = append(args, productType)
	}
	if q := c.Query("q"); q != "" {
		where = append(where, "LOWER(name) LIKE ?")
		args = append(args, "%"+strings.ToLower(q)+"%")
	}

	for i, cond := range where {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += " ORDER BY id ASC"

	rows, err := h.DB.Query(query, args...)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
		return
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(
			&p.ID, &p.Slug, &p.Name, &p.Brand, &p.ProductType,
			&p.Price, &p.Cost, &p.Count, &p.Description, &p.Image, &p.CreatedAt,
		); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan product row"})
			return
		}
		products = append(products, p)
	}
	if err = rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error iterating product rows"})
		return
	}

	if products == nil {
		products = []models.Product{}
	}

	c.JSON(http.StatusOK, gin.H{"products": products})
}

// GetProduct is the handler for GET /v1/products/:id.
func (h *Handlers) GetProduct(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	var p models.Product
	query := `
		SELECT id, slug, name, brand, product_type, price, cost, count, description, image, created_at
		FROM products WHERE id = ?`
	err = h.DB.QueryRow(query, productID).Scan(
		&p.ID, &p.Slug, &p.Name, &p.Brand, &p.ProductType,
		&p.Price, &p.Cost, &p.Count, &p.Description, &p.Image, &p.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"product": p})
}
