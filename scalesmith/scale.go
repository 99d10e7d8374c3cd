package main

import (
	"compress/zlib"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"sort"
)

const (
	defaultTonic = 261.63 // middle c

	// ratios closer than this are treated as the same degree
	duplicateTolerance = 1e-7

	// dragged ratios are clamped inside the octave before snapping
	dragMin = 1.0001
	dragMax = 1.9999
)

var (
	errInvalidInput   = errors.New("invalid input")
	errForbidden      = errors.New("forbidden")
	errMalformedState = errors.New("malformed scale data")
)

// one pitch in the scale, relative to the tonic.
// fields are exported to expose them to the JSON encoder.
type scaleDegree struct {
	Ratio    float64
	Label    string
	Selected bool `json:",omitempty"`
}

// return true if the degree is one of the fixed octave boundaries
func (sd *scaleDegree) isBoundary() bool {
	return sd.Ratio == 1 || sd.Ratio == 2
}

// a scale: tonic frequency plus degrees kept sorted ascending by ratio.
// the boundary degrees 1/1 and 2/1 are always present.
type scale struct {
	Tonic   float64
	Degrees []*scaleDegree
}

// initialize a new scale containing only the boundary degrees
func newScale() *scale {
	return &scale{
		Tonic: defaultTonic,
		Degrees: []*scaleDegree{
			{Ratio: 1, Label: "1/1"},
			{Ratio: 2, Label: "2/1"},
		},
	}
}

// replace the tonic frequency
func (s *scale) setTonic(freq float64) error {
	if !isFinite(freq) || freq <= 0 {
		return fmt.Errorf("%w: tonic must be a positive frequency", errInvalidInput)
	}
	s.Tonic = freq
	return nil
}

// parse text and insert it as a new degree, keeping the literal text as the
// degree's label. inserting an already-present ratio is a no-op.
func (s *scale) insertInterval(text string) error {
	val, err := parseRatio(text)
	if err != nil {
		return fmt.Errorf("%w: %v", errInvalidInput, err)
	}
	if !isFinite(val) || val <= 1 || val >= 2 {
		return fmt.Errorf("%w: ratio must be > 1 and < 2", errInvalidInput)
	}
	if s.degreeAt(val) != nil {
		return nil
	}
	s.Degrees = append(s.Degrees, &scaleDegree{Ratio: val, Label: text})
	s.sort()
	return nil
}

// remove a degree. the boundary degrees cannot be removed.
func (s *scale) deleteInterval(sd *scaleDegree) error {
	if sd.isBoundary() {
		return fmt.Errorf("%w: cannot delete an octave boundary", errForbidden)
	}
	for i, v := range s.Degrees {
		if v == sd {
			s.Degrees = append(s.Degrees[:i], s.Degrees[i+1:]...)
			break
		}
	}
	return nil
}

// remove every degree except the boundaries
func (s *scale) clearAll() {
	degrees := s.Degrees[:0]
	for _, sd := range s.Degrees {
		if sd.isBoundary() {
			degrees = append(degrees, sd)
		}
	}
	s.Degrees = degrees
}

// move a degree to a raw dragged ratio, snapping toward nearby just ratios
// and relabeling with the best-fit fraction. dragging a boundary degree is
// a no-op, as is a drag that would land on another degree's ratio.
func (s *scale) dragInterval(sd *scaleDegree, rawRatio, thresholdCents float64,
	candidates []candidateRatio, maxDen int) {
	if sd.isBoundary() {
		return
	}
	if rawRatio < dragMin {
		rawRatio = dragMin
	} else if rawRatio > dragMax {
		rawRatio = dragMax
	}
	snapped := snapRatio(rawRatio, candidates, thresholdCents)
	if other := s.degreeAt(snapped); other != nil && other != sd {
		return
	}
	sd.Ratio = snapped
	sd.Label = ratioLabel(sd.Ratio, maxDen)
	s.sort()
}

// wholesale replacement of the degree list, used by presets and loading.
// duplicates are dropped and the boundary degrees are restored if missing.
func (s *scale) replaceWith(degrees []*scaleDegree) {
	merged := []*scaleDegree{}
	for _, sd := range degrees {
		dup := false
		for _, v := range merged {
			if math.Abs(v.Ratio-sd.Ratio) < duplicateTolerance {
				dup = true
				break
			}
		}
		if !dup {
			merged = append(merged, sd)
		}
	}
	for i, boundary := range []float64{1, 2} {
		found := false
		for _, v := range merged {
			if math.Abs(v.Ratio-boundary) < duplicateTolerance {
				v.Ratio = boundary // pin loaded boundaries to exact values
				found = true
				break
			}
		}
		if !found {
			merged = append(merged, &scaleDegree{
				Ratio: boundary,
				Label: fmt.Sprintf("%d/1", i+1),
			})
		}
	}
	s.Degrees = merged
	s.sort()
}

// return the degree whose ratio is within duplicateTolerance of val, if any
func (s *scale) degreeAt(val float64) *scaleDegree {
	for _, sd := range s.Degrees {
		if math.Abs(sd.Ratio-val) < duplicateTolerance {
			return sd
		}
	}
	return nil
}

// re-establish ascending ratio order
func (s *scale) sort() {
	sort.Slice(s.Degrees, func(i, j int) bool {
		return s.Degrees[i].Ratio < s.Degrees[j].Ratio
	})
}

// frequency of a degree in Hz
func (s *scale) frequency(sd *scaleDegree) float64 {
	return sd.Ratio * s.Tonic
}

// decode scale data; if the payload is valid, the current scale is
// replaced, otherwise it is left untouched
func (s *scale) read(r io.Reader) error {
	comp, err := zlib.NewReader(r)
	if err != nil {
		return fmt.Errorf("%w: %v", errMalformedState, err)
	}
	dec := json.NewDecoder(comp)
	loaded := &scale{}
	if err := dec.Decode(loaded); err != nil {
		return fmt.Errorf("%w: %v", errMalformedState, err)
	}
	if err := comp.Close(); err != nil {
		return fmt.Errorf("%w: %v", errMalformedState, err)
	}
	if len(loaded.Degrees) == 0 {
		return fmt.Errorf("%w: no degrees", errMalformedState)
	}
	if !isFinite(loaded.Tonic) || loaded.Tonic <= 0 {
		return fmt.Errorf("%w: bad tonic", errMalformedState)
	}
	for _, sd := range loaded.Degrees {
		if !isFinite(sd.Ratio) || sd.Ratio < 1 || sd.Ratio > 2 {
			return fmt.Errorf("%w: degree ratio out of range", errMalformedState)
		}
	}
	s.Tonic = loaded.Tonic
	s.replaceWith(loaded.Degrees)
	return nil
}

// encode scale data
func (s *scale) write(w io.Writer) error {
	comp := zlib.NewWriter(w)
	enc := json.NewEncoder(comp)
	if err := enc.Encode(s); err != nil {
		return err
	}
	return comp.Close()
}
