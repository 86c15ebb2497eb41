package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToMinorUnits(t *testing.T) {
	cases := []struct {
		amount float64
		cents  int64
	}{
		{28.63, 2863},
		{1, 100},
		{0.01, 1},
		{10.125, 1013},
		{199.99, 19999},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.cents, ToMinorUnits(tc.amount), "amount %v", tc.amount)
	}
}

func TestFromMinorUnits(t *testing.T) {
	assert.InDelta(t, 28.63, FromMinorUnits(2863), 1e-9)
}
