package main

import (
	"bufio"
	"fmt"
	"io"
	"math"
)

// number of scale steps: every degree except 1/1, including the octave
func (s *scale) stepCount() int {
	return len(s.Degrees) - 1
}

// write the scale in scala .scl format, one cents value per degree above 1/1
func (s *scale) writeScl(w io.Writer, name string) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "! %s.scl\n", name)
	fmt.Fprintf(bw, "!\n")
	fmt.Fprintf(bw, "%s\n", name)
	fmt.Fprintf(bw, " %d\n", s.stepCount())
	fmt.Fprintf(bw, "!\n")
	for _, sd := range s.Degrees[1:] {
		fmt.Fprintf(bw, " %.5f\n", 1200*math.Log2(sd.Ratio))
	}
	return bw.Flush()
}

// write a scala .kbm keyboard mapping that maps consecutive midi notes to
// consecutive scale degrees, repeating at the formal octave. baseNote sounds
// the tonic.
func (s *scale) writeKbm(w io.Writer, baseNote, lowNote, highNote int) error {
	bw := bufio.NewWriter(w)
	n := s.stepCount()
	fmt.Fprintf(bw, "! Size of map:\n%d\n", n)
	fmt.Fprintf(bw, "! First MIDI note number to retune:\n%d\n", lowNote)
	fmt.Fprintf(bw, "! Last MIDI note number to retune:\n%d\n", highNote)
	fmt.Fprintf(bw, "! Middle note where the first entry is mapped to:\n%d\n", baseNote)
	fmt.Fprintf(bw, "! Reference note for which frequency is given:\n%d\n", baseNote)
	fmt.Fprintf(bw, "! Frequency of the reference note (Hz):\n%.6f\n", s.Tonic)
	fmt.Fprintf(bw, "! Scale degree to consider as formal octave:\n%d\n", n)
	fmt.Fprintf(bw, "! Mapping:\n")
	for i := 0; i < n; i++ {
		fmt.Fprintf(bw, "%d\n", i)
	}
	return bw.Flush()
}

// write an anamark .tun tuning table: an absolute cents value for each midi
// note, relative to midi note 0
func (s *scale) writeTun(w io.Writer, name string, baseNote int) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "; %s\n", name)
	fmt.Fprintf(bw, "[Tuning]\n")
	for note := 0; note < 128; note++ {
		freq := s.noteFrequency(note, baseNote)
		abs := 1200 * math.Log2(freq/midiToFreq(0))
		fmt.Fprintf(bw, "note %d=%d\n", note, int(math.Round(abs)))
	}
	return bw.Flush()
}

// frequency of a midi note under the scale's tuning, with baseNote sounding
// the tonic and the scale repeating at the octave
func (s *scale) noteFrequency(note, baseNote int) float64 {
	n := s.stepCount()
	step := note - baseNote
	octaves := step / n
	index := step % n
	if index < 0 {
		index += n
		octaves--
	}
	return s.Degrees[index].Ratio * s.Tonic * math.Pow(2, float64(octaves))
}
