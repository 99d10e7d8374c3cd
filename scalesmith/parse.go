package main

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	fractionRegexp = regexp.MustCompile(`^([0-9.]+)/([0-9.]+)$`)
	exponentRegexp = regexp.MustCompile(`^([0-9.]+)\^\(?(-?[0-9.]+)(?:/([0-9.]+))?\)?$`)
)

// convert interval text to a ratio. accepted forms are fractions ("3/2"),
// decimals ("1.5"), and exponents ("2^0.585" or "2^(7/12)").
func parseRatio(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if m := fractionRegexp.FindStringSubmatch(s); m != nil {
		num, err1 := strconv.ParseFloat(m[1], 64)
		den, err2 := strconv.ParseFloat(m[2], 64)
		if err1 != nil || err2 != nil || den == 0 {
			return math.NaN(), fmt.Errorf("invalid fraction: %q", s)
		}
		return num / den, nil
	} else if m := exponentRegexp.FindStringSubmatch(s); m != nil {
		base, err1 := strconv.ParseFloat(m[1], 64)
		exp, err2 := strconv.ParseFloat(m[2], 64)
		if err1 != nil || err2 != nil {
			return math.NaN(), fmt.Errorf("invalid exponent: %q", s)
		}
		if m[3] != "" {
			den, err := strconv.ParseFloat(m[3], 64)
			if err != nil || den == 0 {
				return math.NaN(), fmt.Errorf("invalid exponent: %q", s)
			}
			exp /= den
		}
		return math.Pow(base, exp), nil
	} else if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f, nil
	}
	return math.NaN(), fmt.Errorf("invalid ratio syntax: %q", s)
}
