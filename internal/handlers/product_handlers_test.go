package handlers

import (
	"net/http"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func productColumns() []string {
	return []string{"id", "slug", "name", "brand", "product_type", "price", "cost", "count", "description", "image", "created_at"}
}

func TestGetProducts(t *testing.T) {
	t.Run("shelf and search filters", func(t *testing.T) {
		h, mock := newTestHandlers(t)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, slug, name, brand, product_type, price, cost, count, description, image, created_at FROM products WHERE product_type = ? AND LOWER(name) LIKE ? ORDER BY id ASC`)).
			WithArgs("Food", "%tuna%").
			WillReturnRows(sqlmock.NewRows(productColumns()).
				AddRow(20, "whiskas-junior-tuna", "Whiskas Junior Tuna", "Whiskas", "Food", 40.0, 30.0, 10, "", "", time.Now()))

		w := serve(h.GetProducts, http.MethodGet, "/products", "/products?type=Food&q=Tuna", "")

		require.Equal(t, http.StatusOK, w.Code)
		products := jsonBody(t, w)["products"].([]any)
		require.Len(t, products, 1)
		assert.Equal(t, "Whiskas Junior Tuna", products[0].(map[string]any)["name"])
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty shelf comes back as an empty list", func(t *testing.T) {
		h, mock := newTestHandlers(t)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, slug, name, brand, product_type, price, cost, count, description, image, created_at FROM products ORDER BY id ASC`)).
			WillReturnRows(sqlmock.NewRows(productColumns()))

		w := serve(h.GetProducts, http.MethodGet, "/products", "/products", "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, jsonBody(t, w)["products"])
	})
}

func TestGetProduct(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		h, mock := newTestHandlers(t)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, slug, name, brand, product_type, price, cost, count, description, image, created_at FROM products WHERE id = ?`)).
			WithArgs(int64(20)).
			WillReturnRows(sqlmock.NewRows(productColumns()).
				AddRow(20, "wound-spray", "Wound Spray", "Vets Pro", "Pet Supplies", 350.0, 300.0, 10, "", "", time.Now()))

		w := serve(h.GetProduct, http.MethodGet, "/products/:id", "/products/20", "")

		require.Equal(t, http.StatusOK, w.Code)
		product := jsonBody(t, w)["product"].(map[string]any)
		assert.Equal(t, "Wound Spray", product["name"])
	})

	t.Run("missing", func(t *testing.T) {
		h, mock := newTestHandlers(t)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, slug, name, brand, product_type, price, cost, count, description, image, created_at FROM products WHERE id = ?`)).
			WithArgs(int64(999)).
			WillReturnRows(sqlmock.NewRows(productColumns()))

		w := serve(h.GetProduct, http.MethodGet, "/products/:id", "/products/999", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("bad id", func(t *testing.T) {
		h, _ := newTestHandlers(t)
		w := serve(h.GetProduct, http.MethodGet, "/products/:id", "/products/abc", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
