package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestUSD(t *testing.T) {
	assert.Equal(t, "$9,500.00", USD(decimal.RequireFromString("9500")))
	assert.Equal(t, "$0.50", USD(decimal.RequireFromString("0.5")))
	assert.Equal(t, "$10,100.00", USD(decimal.RequireFromString("10100.004")))
}
