package main

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGcd(t *testing.T) {
	assert.Equal(t, 1, gcd(3, 2))
	assert.Equal(t, 4, gcd(8, 12))
	assert.Equal(t, 4, gcd(12, 8))
	assert.Equal(t, 7, gcd(7, 7))
	assert.Equal(t, 5, gcd(5, 0))
}

func TestCents(t *testing.T) {
	assert.Equal(t, 0.0, cents(1.5, 1.5))
	assert.Equal(t, 1200.0, cents(2, 1))
	assert.Equal(t, 1200.0, cents(1, 2))
	assert.InDelta(t, 701.955, cents(1.5, 1), 0.001)
	assert.InDelta(t, 2.31, cents(1.498, 1.5), 0.01)
}

func TestApproximateExactFractions(t *testing.T) {
	// fractions in lowest terms come back unchanged
	fracs := [][2]int{{1, 1}, {3, 2}, {5, 4}, {16, 15}, {45, 32}, {49, 50}, {33, 50}}
	for _, frac := range fracs {
		num, den := approximate(float64(frac[0])/float64(frac[1]), 100000)
		assert.Equal(t, frac[0], num, fmt.Sprintf("%d/%d", frac[0], frac[1]))
		assert.Equal(t, frac[1], den, fmt.Sprintf("%d/%d", frac[0], frac[1]))
	}
}

func TestApproximateIntegers(t *testing.T) {
	num, den := approximate(2, 100)
	assert.Equal(t, 2, num)
	assert.Equal(t, 1, den)
	num, den = approximate(0, 100)
	assert.Equal(t, 0, num)
	assert.Equal(t, 1, den)
}

func TestApproximateDenominatorBound(t *testing.T) {
	for _, x := range []float64{1.001, 1.25, 1.4142135, 1.498, 1.618034, 1.9999} {
		for _, maxDen := range []int{1, 2, 5, 16, 99, 100000} {
			_, den := approximate(x, maxDen)
			assert.LessOrEqual(t, den, maxDen)
			assert.GreaterOrEqual(t, den, 1)
		}
	}
	// the golden ratio's convergents are fibonacci fractions
	num, den := approximate(1.6180339887, 16)
	assert.Equal(t, 21, num)
	assert.Equal(t, 13, den)
}

func TestRatioLabel(t *testing.T) {
	assert.Equal(t, "3/2", ratioLabel(1.5, 16))
	assert.Equal(t, "3/2", ratioLabel(1.4999, 16))
	// 12edo major third is not within 0.01 of any fraction with den <= 3
	assert.Equal(t, "~4/3", ratioLabel(1.259921, 3))
	assert.Equal(t, "5/4", ratioLabel(1.259921, 4))
	assert.Equal(t, "2/1", ratioLabel(2, 16))
}

func TestMidiToFreq(t *testing.T) {
	assert.Equal(t, 440.0, midiToFreq(69))
	assert.Equal(t, 880.0, midiToFreq(81))
	assert.InDelta(t, 261.63, midiToFreq(60), 0.01)
}
