package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRatioFractions(t *testing.T) {
	v, err := parseRatio("3/2")
	assert.NoError(t, err)
	assert.Equal(t, 1.5, v)

	v, err = parseRatio(" 7/4 ")
	assert.NoError(t, err)
	assert.Equal(t, 1.75, v)

	// decimal parts are allowed
	v, err = parseRatio("3.3/2.2")
	assert.NoError(t, err)
	assert.InDelta(t, 1.5, v, 1e-12)
}

func TestParseRatioDecimals(t *testing.T) {
	v, err := parseRatio("1.25")
	assert.NoError(t, err)
	assert.Equal(t, 1.25, v)

	v, err = parseRatio("2")
	assert.NoError(t, err)
	assert.Equal(t, 2.0, v)
}

func TestParseRatioExponents(t *testing.T) {
	v, err := parseRatio("2^(7/12)")
	assert.NoError(t, err)
	assert.InDelta(t, math.Pow(2, 7.0/12), v, 1e-12)

	v, err = parseRatio("2^0.5")
	assert.NoError(t, err)
	assert.InDelta(t, math.Sqrt2, v, 1e-12)

	v, err = parseRatio("3^(1/5)")
	assert.NoError(t, err)
	assert.InDelta(t, math.Pow(3, 0.2), v, 1e-12)
}

func TestParseRatioInvalid(t *testing.T) {
	for _, s := range []string{"", "banana", "3/", "/2", "3/0", "2^", "2^()", "1.2.3"} {
		v, err := parseRatio(s)
		assert.Error(t, err, s)
		assert.True(t, math.IsNaN(v), s)
	}
}
