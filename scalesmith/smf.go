package main

import (
	"math"
	"time"

	"gitlab.com/gomidi/midi/writer"
)

const (
	ticksPerBeat  = 960
	bendSemitones = 24
	noteVelocity  = 100

	numMidiChannels   = 16
	percussionChannel = 9
)

// send the "pitch bend sensitivity" rpn so that bend values cover
// bendSemitones in each direction
func sendPitchBendRPN(wr writer.ChannelWriter) {
	writer.RPN(wr, 0, 0, bendSemitones, 0)
}

// convert a frequency to the nearest midi note plus a pitch bend value
func freqToMidi(freq float64) (uint8, int16) {
	semis := 69 + 12*math.Log2(freq/440)
	note := math.Round(semis)
	if note < 0 {
		note = 0
	} else if note > 127 {
		note = 127
	}
	// a clamped note can leave more than bendSemitones to cover
	bend := (semis - note) * 8192 / bendSemitones
	if bend < -8192 {
		bend = -8192
	} else if bend > 8191 {
		bend = 8191
	}
	return uint8(note), int16(bend)
}

// write the scale as an ascending arpeggio, one degree per beat. realtime
// playback sleeps between notes; smf output advances delta time instead.
func playScale(s *scale, wr writer.ChannelWriter, bpm float64, realtime bool) {
	wr.SetChannel(0)
	sendPitchBendRPN(wr)
	beat := time.Duration(float64(time.Minute) / bpm)
	for _, sd := range s.Degrees {
		note, bend := freqToMidi(s.frequency(sd))
		writer.Pitchbend(wr, bend)
		writer.NoteOn(wr, note, noteVelocity)
		if realtime {
			time.Sleep(beat)
		} else if smf, ok := wr.(*writer.SMF); ok {
			smf.SetDelta(ticksPerBeat)
		}
		writer.NoteOff(wr, note)
	}
	writer.Pitchbend(wr, 0)
}

// play the selected degrees together for one beat. each note gets its own
// channel so that per-note pitch bends do not interfere.
func playChord(s *scale, wr writer.ChannelWriter, bpm float64) {
	var notes, channels []uint8
	ch := uint8(0)
	for _, sd := range s.Degrees {
		if !sd.Selected {
			continue
		}
		note, bend := freqToMidi(s.frequency(sd))
		wr.SetChannel(ch)
		sendPitchBendRPN(wr)
		writer.Pitchbend(wr, bend)
		writer.NoteOn(wr, note, noteVelocity)
		notes, channels = append(notes, note), append(channels, ch)
		ch++
		if ch == percussionChannel {
			ch++
		}
		if ch >= numMidiChannels {
			break
		}
	}
	time.Sleep(time.Duration(float64(time.Minute) / bpm))
	for i, note := range notes {
		wr.SetChannel(channels[i])
		writer.NoteOff(wr, note)
	}
}

// export the scale arpeggio as a standard midi file
func exportSMF(s *scale, path string, bpm float64) error {
	return writer.WriteSMF(path, 1, func(wr *writer.SMF) error {
		writer.TempoBPM(wr, bpm)
		playScale(s, wr, bpm, false)
		writer.EndOfTrack(wr)
		return nil
	})
}
