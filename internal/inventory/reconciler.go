// Package inventory owns every mutation of Product.count. Cart quantities
// are not hard reservations; stock only becomes authoritative inside the
// checkout transaction, where rows are locked and re-checked. Cancellation
// adds the committed quantity back unconditionally.
package inventory

import (
	"database/sql"
	"errors"
	"fmt"
)

// ErrInsufficientStock is returned when a locked stock row cannot cover the
// requested quantity.
var ErrInsufficientStock = errors.New("insufficient stock")

// ErrProductNotFound is returned when the referenced catalog row is missing.
var ErrProductNotFound = errors.New("product not found")

// ClampedSubtract is max(a-b, 0): the floor that keeps stock non-negative.
func ClampedSubtract(a, b int) int {
	if a <= b {
		return 0
	}
	return a - b
}

// StockFor reads the current count for a product outside any lock. Used for
// the cart quantity ceiling, which deliberately checks a possibly stale
// value: nothing is reserved until checkout.
func StockFor(db *sql.DB, productID int64) (int, error) {
	var count int
	err := db.QueryRow("SELECT count FROM products WHERE id = ?", productID).Scan(&count)
	if err == sql.ErrNoRows {
		return 0, ErrProductNotFound
	}
	if err != nil {
		return 0, err
	}
	return count, nil
}

// LockStock reads and locks a product's count inside tx for the duration of
// the transaction.
func LockStock(tx *sql.Tx, productID int64) (int, error) {
	var count int
	err := tx.QueryRow("SELECT count FROM products WHERE id = ? FOR UPDATE", productID).Scan(&count)
	if err == sql.ErrNoRows {
		return 0, ErrProductNotFound
	}
	if err != nil {
		return 0, err
	}
	return count, nil
}

// Deduct subtracts qty from a product's count inside tx, clamped at zero.
// Callers that need the reject-on-shortfall behavior lock and check first
// via LockStock; the GREATEST floor stays as the last line of defense.
func Deduct(tx *sql.Tx, productID int64, qty int) error {
	res, err := tx.Exec("UPDATE products SET count = GREATEST(count - ?, 0) WHERE id = ?", qty, productID)
	if err != nil {
		return fmt.Errorf("deduct stock for product %d: %w", productID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrProductNotFound
	}
	return nil
}

// Restore adds qty back to a product's count inside tx. The add-back is
// unconditional; a catalog row that has vanished is tolerated so that the
// accompanying status flip still lands.
func Restore(tx *sql.Tx, productID int64, qty int) error {
	_, err := tx.Exec("UPDATE products SET count = count + ? WHERE id = ?", qty, productID)
	if err != nil {
		return fmt.Errorf("restore stock for product %d: %w", productID, err)
	}
	return nil
}
