package main

import (
	"fmt"
	"math"
)

const (
	// residual error above which a fraction label gets an approximation mark
	approxTolerance = 0.01

	// remainders below this terminate the convergent loop
	convergentEpsilon = 1e-12
)

// iterative euclidean gcd
func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// distance between two ratios in cents (1200 per octave)
func cents(a, b float64) float64 {
	return 1200 * math.Abs(math.Log2(a/b))
}

// return true if f is neither NaN nor infinite
func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// approximate x by a continued-fraction convergent, returning the last
// convergent whose denominator does not exceed maxDen
func approximate(x float64, maxDen int) (int, int) {
	p2, q2 := 0, 1 // convergent n-2
	p1, q1 := 1, 0 // convergent n-1
	rem := x
	for {
		a := int(math.Floor(rem))
		// back off to the previous convergent rather than exceed the bound.
		// checked by division so a huge term cannot overflow.
		if q1 > 0 && a > (maxDen-q2)/q1 {
			break
		}
		p2, q2, p1, q1 = p1, q1, a*p1+p2, a*q1+q2
		frac := rem - float64(a)
		if frac < convergentEpsilon {
			break
		}
		rem = 1 / frac
	}
	return p1, q1
}

// return a fraction label for x, prefixed with ~ if the best fraction with
// denominator <= maxDen misses x by more than approxTolerance
func ratioLabel(x float64, maxDen int) string {
	num, den := approximate(x, maxDen)
	s := fmt.Sprintf("%d/%d", num, den)
	if math.Abs(x-float64(num)/float64(den)) > approxTolerance {
		s = "~" + s
	}
	return s
}

// standard conversion: A4 (midi note 69) = 440 Hz
func midiToFreq(note int) float64 {
	return 440 * math.Pow(2, float64(note-69)/12)
}
