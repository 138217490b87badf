package currency_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bge-backend/pkg/currency"
)

func TestFormat(t *testing.T) {
	assert.Equal(t, "0.00", currency.Format(0))
	assert.Equal(t, "5.00", currency.Format(5))
	assert.Equal(t, "999.99", currency.Format(999.99))
	assert.Equal(t, "1,000.00", currency.Format(1000))
	assert.Equal(t, "12,345.68", currency.Format(12345.68))
	assert.Equal(t, "1,234,567.50", currency.Format(1234567.5))
	assert.Equal(t, "-45,000.00", currency.Format(-45000))
}

func TestNaira(t *testing.T) {
	assert.Equal(t, "N12,500.00", currency.Naira(12500))
}
