package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testScale() *scale {
	s := newScale()
	s.setTonic(440)
	s.insertInterval("3/2")
	return s
}

func TestWriteScl(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, testScale().writeScl(&buf, "test"))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, []string{
		"! test.scl",
		"!",
		"test",
		" 2",
		"!",
		" 701.95500",
		" 1200.00000",
	}, lines)
}

func TestWriteKbm(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, testScale().writeKbm(&buf, 60, 0, 127))
	out := buf.String()
	assert.Contains(t, out, "! Size of map:\n2\n")
	assert.Contains(t, out, "! First MIDI note number to retune:\n0\n")
	assert.Contains(t, out, "! Last MIDI note number to retune:\n127\n")
	assert.Contains(t, out, "440.000000\n")
}

func TestWriteTun(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, testScale().writeTun(&buf, "test", 60))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	// comment, section header, and one line per midi note
	assert.Len(t, lines, 130)
	assert.Equal(t, "[Tuning]", lines[1])
	// 440 Hz is 6900 cents above midi note 0
	assert.Contains(t, lines, "note 60=6900")
	assert.Contains(t, lines, "note 62=8100")
}

func TestNoteFrequency(t *testing.T) {
	s := testScale()
	// base note sounds the tonic; the scale repeats at the octave
	assert.InDelta(t, 440, s.noteFrequency(60, 60), 1e-9)
	assert.InDelta(t, 660, s.noteFrequency(61, 60), 1e-9)
	assert.InDelta(t, 880, s.noteFrequency(62, 60), 1e-9)
	assert.InDelta(t, 220, s.noteFrequency(58, 60), 1e-9)
	assert.InDelta(t, 330, s.noteFrequency(59, 60), 1e-9)
}
