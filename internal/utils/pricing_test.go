package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRentalDays(t *testing.T) {
	pickup := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	t.Run("Exact Days", func(t *testing.T) {
		assert.Equal(t, int64(3), RentalDays(pickup, pickup.Add(72*time.Hour)))
	})

	t.Run("Partial Day Rounds Up", func(t *testing.T) {
		assert.Equal(t, int64(3), RentalDays(pickup, pickup.Add(49*time.Hour)))
	})

	t.Run("Short Rental Bills One Day", func(t *testing.T) {
		assert.Equal(t, int64(1), RentalDays(pickup, pickup.Add(3*time.Hour)))
	})

	t.Run("Equal Instants Bill One Day", func(t *testing.T) {
		assert.Equal(t, int64(1), RentalDays(pickup, pickup))
	})

	t.Run("Inverted Range Clamps To One Day", func(t *testing.T) {
		assert.Equal(t, int64(1), RentalDays(pickup, pickup.Add(-24*time.Hour)))
	})
}

func TestEstimateTotal(t *testing.T) {
	t.Run("Rate Times Days Minus Discount", func(t *testing.T) {
		assert.Equal(t, 2500.0, EstimateTotal(1000, 3, 500))
	})

	t.Run("No Discount", func(t *testing.T) {
		assert.Equal(t, 1000.0, EstimateTotal(500, 2, 0))
	})

	t.Run("Oversized Discount Clamps To Zero", func(t *testing.T) {
		assert.Equal(t, 0.0, EstimateTotal(100, 1, 5000))
	})
}

func TestFormatTHB(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{0, "฿0.00"},
		{1000, "฿1,000.00"},
		{1234.5, "฿1,234.50"},
		{999.99, "฿999.99"},
		{1234567.89, "฿1,234,567.89"},
		{-2500, "-฿2,500.00"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatTHB(tc.amount))
	}
}
