package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestElectronicsWithEqualTotalCompareEqual(t *testing.T) {
	a := electronic(t, "Camera C", "500", "5", 7, 10, "30")
	b := electronic(t, "Other Cam", "510", "0", 1, 99, "20")
	assert.True(t, PriceEquals(a, b))
	assert.False(t, PriceGreaterThan(a, b))
	assert.False(t, PriceGreaterThan(b, a))
	assert.Equal(t, 0, ComparePrice(a, b))
}

func TestCompareIgnoresRateAndStock(t *testing.T) {
	cheap := basic(t, "Pen D", "5", "0", 100)
	dear := basic(t, "Book A", "50", "95", 0)
	assert.True(t, PriceGreaterThan(dear, cheap))
	assert.Equal(t, -1, ComparePrice(cheap, dear))
	assert.Equal(t, 1, ComparePrice(dear, cheap))
}

func TestCompareUsesFeeForElectronics(t *testing.T) {
	phone := electronic(t, "Phone X", "800", "15", 5, 20, "50")
	tablet := electronic(t, "Tablet T", "810", "12", 8, 15, "30")
	assert.True(t, PriceGreaterThan(phone, tablet))
}
