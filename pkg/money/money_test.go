package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/windwireless/operations-api/pkg/money"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "$0.00"},
		{"400", "$400.00"},
		{"1234.5", "$1,234.50"},
		{"152300", "$152,300.00"},
		{"1000000.999", "$1,000,001.00"}, // redondea a 2 decimales antes de formatear
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, money.Format(decimal.RequireFromString(tc.in)), "entrada %s", tc.in)
	}
}
