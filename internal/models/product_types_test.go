package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProductProfit(t *testing.T) {
	p := Product{Price: 200, Cost: 150}
	assert.Equal(t, 50.0, p.Profit())
}

func TestProductInStock(t *testing.T) {
	assert.True(t, Product{Count: 1}.InStock())
	assert.False(t, Product{Count: 0}.InStock())
}
