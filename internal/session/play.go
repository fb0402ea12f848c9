package session

import (
	"context"
	"time"

	"github.com/PixPMusic/koii-mcp/internal/errs"
	kmidi "github.com/PixPMusic/koii-mcp/internal/midi"
	"github.com/PixPMusic/koii-mcp/internal/pattern"
	"github.com/PixPMusic/koii-mcp/internal/scales"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gitlab.com/gomidi/midi/v2"
)

// Defaults for a note given without velocity or duration.
const (
	DefaultNote     = 60
	DefaultVelocity = 100
	DefaultDuration = 0.1
)

// NoteSpec is one entry of a note list.
type NoteSpec struct {
	Note     scales.NoteRef
	Velocity int
	Duration float64 // seconds
}

// NoteResult reports a played note.
type NoteResult struct {
	Note        int     `json:"note"`
	Label       string  `json:"label"`
	Velocity    int     `json:"velocity"`
	Duration    float64 `json:"duration"`
	Channel     int     `json:"channel"`
	Interrupted bool    `json:"interrupted,omitempty"`
}

// PlayNote sends note-on, holds for duration seconds and sends note-off.
// On cancellation the note-off is still sent.
func (s *Session) PlayNote(ctx context.Context, spec NoteSpec, channel *int) (NoteResult, error) {
	var res NoteResult
	err := s.withPort(channel, func(port kmidi.Port, ch uint8) error {
		var err error
		res, err = s.playNoteLocked(ctx, port, ch, spec)
		return err
	})
	return res, err
}

// PlayNotes plays each note in order and returns how many were
// played before an error.
func (s *Session) PlayNotes(ctx context.Context, specs []NoteSpec, channel *int) (int, error) {
	played := 0
	err := s.withPort(channel, func(port kmidi.Port, ch uint8) error {
		for i, spec := range specs {
			if _, err := s.playNoteLocked(ctx, port, ch, spec); err != nil {
				return errors.Wrapf(err, "note %d", i+1)
			}
			played++
		}
		return nil
	})
	if err == nil {
		logrus.WithField("notes", played).Info("played note list")
	}
	return played, err
}

func (s *Session) playNoteLocked(ctx context.Context, port kmidi.Port, ch uint8, spec NoteSpec) (NoteResult, error) {
	note, err := spec.Note.Note()
	if err != nil {
		return NoteResult{}, err
	}
	if err := errs.CheckRange("velocity", spec.Velocity, 0, 127); err != nil {
		return NoteResult{}, err
	}
	hold, err := seconds("duration", spec.Duration)
	if err != nil {
		return NoteResult{}, err
	}

	res := NoteResult{
		Note:     note,
		Label:    port.Device().Describe(uint8(note)),
		Velocity: spec.Velocity,
		Duration: spec.Duration,
		Channel:  int(ch) + 1,
	}
	if err := ctx.Err(); err != nil {
		return res, err
	}
	if err := port.Send(midi.NoteOn(ch, uint8(note), uint8(spec.Velocity))); err != nil {
		return res, err
	}
	waitErr := s.sleep(ctx, hold)
	if err := port.Send(midi.NoteOff(ch, uint8(note))); err != nil {
		return res, err
	}
	if waitErr != nil {
		res.Interrupted = true
		return res, waitErr
	}

	logrus.WithFields(logrus.Fields{
		"note":     note,
		"velocity": spec.Velocity,
		"duration": spec.Duration,
		"channel":  res.Channel,
	}).Debug("played note")
	return res, nil
}

// PlayDrumPattern parses a text drum pattern and plays it. The result is
// filled in even when the pattern is empty, so callers can report the
// unrecognized comments.
func (s *Session) PlayDrumPattern(ctx context.Context, text string, bpm float64, channel *int) (pattern.PlayResult, error) {
	var res pattern.PlayResult
	err := s.withPort(channel, func(port kmidi.Port, ch uint8) error {
		p, err := pattern.Parse(text)
		if err != nil {
			if p != nil {
				res = p.Summary(bpm)
			}
			return err
		}
		sched := &pattern.Scheduler{Send: port.Send, Sleep: s.sleep, Channel: ch}
		res, err = sched.Play(ctx, p, bpm)
		return err
	})
	return res, err
}

// SendProgramChange selects a program (0-127) on the active channel.
func (s *Session) SendProgramChange(program int, channel *int) error {
	if err := errs.CheckRange("program", program, 0, 127); err != nil {
		return err
	}
	return s.withPort(channel, func(port kmidi.Port, ch uint8) error {
		if err := port.Send(midi.ProgramChange(ch, uint8(program))); err != nil {
			return err
		}
		logrus.WithFields(logrus.Fields{"program": program, "channel": int(ch) + 1}).Info("sent program change")
		return nil
	})
}

// ClockPulsesPerQuarter is the MIDI clock resolution.
const ClockPulsesPerQuarter = 24

// ClockInterval is the spacing of clock pulses at bpm.
func ClockInterval(bpm float64) (time.Duration, error) {
	if bpm <= 0 {
		return 0, errors.Wrapf(errs.ErrOutOfRange, "bpm %g must be positive", bpm)
	}
	return time.Duration(60 / (bpm * ClockPulsesPerQuarter) * float64(time.Second)), nil
}

// SendClock sends Start, duration/interval timing clocks and Stop. It
// returns the number of clock pulses sent. Stop is sent on cancellation
// too.
func (s *Session) SendClock(ctx context.Context, bpm, duration float64) (int, error) {
	interval, err := ClockInterval(bpm)
	if err != nil {
		return 0, err
	}
	if _, err := seconds("duration", duration); err != nil {
		return 0, err
	}
	pulses := int(duration / (60 / (bpm * ClockPulsesPerQuarter)))

	sent := 0
	err = s.withPort(nil, func(port kmidi.Port, _ uint8) error {
		if err := port.Send(midi.Start()); err != nil {
			return err
		}
		var waitErr error
		for i := 0; i < pulses; i++ {
			if err := port.Send(midi.TimingClock()); err != nil {
				return err
			}
			sent++
			if waitErr = s.sleep(ctx, interval); waitErr != nil {
				break
			}
		}
		if err := port.Send(midi.Stop()); err != nil {
			return err
		}
		return waitErr
	})
	if err == nil {
		logrus.WithFields(logrus.Fields{"bpm": bpm, "duration": duration, "pulses": sent}).Info("sent MIDI clock")
	}
	return sent, err
}
