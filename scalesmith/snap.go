package main

import "sort"

// a coprime fraction in the open interval (1, 2)
type candidateRatio struct {
	value    float64
	num, den int
}

// the fractions that dragged degrees can snap to. the list is a function of
// the max denominator only, so it is cached and rebuilt on config change.
type candidateSet struct {
	maxDen int
	ratios []candidateRatio
}

// return the candidate list for maxDen, rebuilding only if it changed
func (cs *candidateSet) get(maxDen int) []candidateRatio {
	if cs.ratios == nil || cs.maxDen != maxDen {
		cs.maxDen = maxDen
		cs.ratios = buildCandidates(maxDen)
	}
	return cs.ratios
}

// list every fraction n/d with gcd(n,d) = 1, 1 < n/d < 2, and d <= maxDen,
// ascending by value
func buildCandidates(maxDen int) []candidateRatio {
	ratios := []candidateRatio{}
	for den := 1; den <= maxDen; den++ {
		for num := den + 1; num < den*2; num++ {
			if gcd(num, den) == 1 {
				ratios = append(ratios, candidateRatio{
					value: float64(num) / float64(den),
					num:   num,
					den:   den,
				})
			}
		}
	}
	sort.Slice(ratios, func(i, j int) bool {
		return ratios[i].value < ratios[j].value
	})
	return ratios
}

// return the candidate value closest to ratio in cents if one is within
// thresholdCents, else ratio unchanged. comparisons are strict, so ties go
// to the first (lowest-valued) candidate.
func snapRatio(ratio float64, candidates []candidateRatio, thresholdCents float64) float64 {
	best, bestDist := ratio, thresholdCents
	for _, c := range candidates {
		if d := cents(c.value, ratio); d < bestDist {
			best, bestDist = c.value, d
		}
	}
	return best
}
