package session

import (
	"context"

	"github.com/PixPMusic/koii-mcp/internal/errs"
	kmidi "github.com/PixPMusic/koii-mcp/internal/midi"
	"github.com/PixPMusic/koii-mcp/internal/pads"
	"github.com/PixPMusic/koii-mcp/internal/scales"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gitlab.com/gomidi/midi/v2"
)

// ScaleSequence plays scale degrees one after another. Degree 1 is the
// root, 0 is a rest of the same length as a note plus its interval.
type ScaleSequence struct {
	PadChannel string // A-D, the pad group in keys mode
	Scale      string
	Root       string
	Octave     int
	Degrees    []int
	Velocity   int
	Duration   float64 // seconds a note is held
	Interval   float64 // seconds between notes
}

// SequenceStep is one played (or rested) degree.
type SequenceStep struct {
	Degree int    `json:"degree"`
	Note   *int   `json:"note"`
	Name   string `json:"name"`
}

// PlayScaleSequence validates the whole sequence first, then plays it.
func (s *Session) PlayScaleSequence(ctx context.Context, seq ScaleSequence, channel *int) ([]SequenceStep, error) {
	if _, err := pads.ParseChannel(seq.PadChannel); err != nil {
		return nil, err
	}
	if err := errs.CheckRange("velocity", seq.Velocity, 0, 127); err != nil {
		return nil, err
	}
	hold, err := seconds("duration", seq.Duration)
	if err != nil {
		return nil, err
	}
	gap, err := seconds("interval", seq.Interval)
	if err != nil {
		return nil, err
	}
	if _, err := scales.Lookup(seq.Scale); err != nil {
		return nil, err
	}

	steps := make([]SequenceStep, 0, len(seq.Degrees))
	for _, degree := range seq.Degrees {
		note, ok, err := scales.DegreeNote(seq.Scale, seq.Root, seq.Octave, degree)
		if err != nil {
			return nil, err
		}
		step := SequenceStep{Degree: degree, Name: "rest"}
		if ok {
			n := note
			step.Note = &n
			step.Name = scales.NoteName(note)
		}
		steps = append(steps, step)
	}

	err = s.withPort(channel, func(port kmidi.Port, ch uint8) error {
		for i, step := range steps {
			if err := ctx.Err(); err != nil {
				return err
			}
			if step.Note == nil {
				if err := s.sleep(ctx, hold+gap); err != nil {
					return err
				}
				continue
			}
			note := uint8(*step.Note)
			if err := port.Send(midi.NoteOn(ch, note, uint8(seq.Velocity))); err != nil {
				return errors.Wrapf(err, "step %d", i+1)
			}
			waitErr := s.sleep(ctx, hold)
			if err := port.Send(midi.NoteOff(ch, note)); err != nil {
				return errors.Wrapf(err, "step %d", i+1)
			}
			if waitErr != nil {
				return waitErr
			}
			if i < len(steps)-1 {
				if err := s.sleep(ctx, gap); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return steps, err
	}

	logrus.WithFields(logrus.Fields{
		"scale":  seq.Scale,
		"root":   seq.Root,
		"octave": seq.Octave,
		"steps":  len(steps),
	}).Info("played scale sequence")
	return steps, nil
}
