package main

import (
	"fmt"
	"math"
)

// degrees i/n for each i from n+1 to 2n, a harmonic series fragment.
// labels are the literal fraction, not reduced and not approximated.
func harmonicSeries(n int) []*scaleDegree {
	if n < 1 {
		return nil
	}
	degrees := []*scaleDegree{}
	for i := n + 1; i <= n*2; i++ {
		val := float64(i) / float64(n)
		if nearBoundary(val) {
			continue
		}
		degrees = append(degrees, &scaleDegree{
			Ratio: val,
			Label: fmt.Sprintf("%d/%d", i, n),
		})
	}
	return degrees
}

// degrees 2^(k/n) for each k from 1 to n-1, n equal divisions of the octave
func equalDivision(n int) []*scaleDegree {
	if n < 1 {
		return nil
	}
	degrees := []*scaleDegree{}
	for k := 1; k < n; k++ {
		val := math.Pow(2, float64(k)/float64(n))
		if nearBoundary(val) {
			continue
		}
		degrees = append(degrees, &scaleDegree{
			Ratio: val,
			Label: fmt.Sprintf("2^(%d/%d)", k, n),
		})
	}
	return degrees
}

// return true if val is indistinguishable from an octave boundary
func nearBoundary(val float64) bool {
	return math.Abs(val-1) < duplicateTolerance || math.Abs(val-2) < duplicateTolerance
}
