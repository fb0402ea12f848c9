package pattern

import (
	"context"
	"time"

	"github.com/PixPMusic/koii-mcp/internal/errs"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gitlab.com/gomidi/midi/v2"
)

// SendFunc writes one message to the output port.
type SendFunc func(midi.Message) error

// SleepFunc blocks for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Sleep is the real-time SleepFunc.
func Sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// StepDuration is one sixteenth note at bpm.
func StepDuration(bpm float64) (time.Duration, error) {
	if bpm <= 0 {
		return 0, errors.Wrapf(errs.ErrOutOfRange, "bpm %g must be positive", bpm)
	}
	return time.Duration(60 / bpm / 4 * float64(time.Second)), nil
}

// Hit is a single note event within a step.
type Hit struct {
	Note     int
	Velocity int
}

// TrackSummary reports how one track was mapped.
type TrackSummary struct {
	Reference string `json:"reference"`
	Comment   string `json:"comment"`
	Note      int    `json:"midi_note"`
	Via       string `json:"matched_via"`
	Hits      int    `json:"hits"`
}

// PlayResult describes a finished (or aborted) playback.
type PlayResult struct {
	BPM          float64        `json:"bpm"`
	Steps        int            `json:"steps"`
	StepsPlayed  int            `json:"steps_played"`
	NotesSent    int            `json:"notes_sent"`
	Tracks       []TrackSummary `json:"tracks"`
	Unrecognized []string       `json:"unrecognized"`
}

// Scheduler plays parsed patterns in real time on one MIDI channel.
type Scheduler struct {
	Send    SendFunc
	Sleep   SleepFunc
	Channel uint8 // 0-based
}

// StepHits collects every track's event at step, in track order.
func (p *Pattern) StepHits(step int) []Hit {
	var hits []Hit
	for _, t := range p.Tracks {
		if step < len(t.Hits) && t.Hits[step] > 0 {
			hits = append(hits, Hit{Note: t.Note, Velocity: t.Hits[step]})
		}
	}
	return hits
}

// Summary builds the per-track report without playing anything.
func (p *Pattern) Summary(bpm float64) PlayResult {
	res := PlayResult{
		BPM:          bpm,
		Steps:        p.Length,
		Tracks:       make([]TrackSummary, 0, len(p.Tracks)),
		Unrecognized: append([]string{}, p.Unrecognized...),
	}
	for _, t := range p.Tracks {
		n := 0
		for _, v := range t.Hits {
			if v > 0 {
				n++
			}
		}
		res.Tracks = append(res.Tracks, TrackSummary{
			Reference: t.Reference,
			Comment:   t.Comment,
			Note:      t.Note,
			Via:       t.Via.String(),
			Hits:      n,
		})
	}
	return res
}

// Play schedules the pattern step by step: note-on for every hit of the
// step, hold one sixteenth, note-off for the same hits. A send failure
// aborts with errs.ErrTransport. Cancellation is checked between steps and
// during the hold; the current step's note-offs are still sent before
// ctx.Err() is returned.
func (s *Scheduler) Play(ctx context.Context, p *Pattern, bpm float64) (PlayResult, error) {
	res := p.Summary(bpm)
	step, err := StepDuration(bpm)
	if err != nil {
		return res, err
	}
	if len(p.Tracks) == 0 {
		return res, errors.WithStack(errs.ErrEmptyPattern)
	}

	log := logrus.WithFields(logrus.Fields{"bpm": bpm, "steps": p.Length, "channel": s.Channel + 1})
	for i, t := range res.Tracks {
		log.WithFields(logrus.Fields{
			"line":      i + 1,
			"glyphs":    p.Tracks[i].Glyphs,
			"reference": t.Reference,
			"note":      t.Note,
			"via":       t.Via,
		}).Info("track mapped")
	}
	if len(p.Unrecognized) > 0 {
		log.WithField("unrecognized", p.Unrecognized).Warn("ignored unrecognized instruments")
	}

	for i := 0; i < p.Length; i++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		hits := p.StepHits(i)
		for _, h := range hits {
			if err := s.Send(midi.NoteOn(s.Channel, uint8(h.Note), uint8(h.Velocity))); err != nil {
				return res, errors.Wrapf(errs.ErrTransport, "note on %d at step %d: %v", h.Note, i, err)
			}
			res.NotesSent++
		}

		waitErr := s.Sleep(ctx, step)

		for _, h := range hits {
			if err := s.Send(midi.NoteOff(s.Channel, uint8(h.Note))); err != nil {
				return res, errors.Wrapf(errs.ErrTransport, "note off %d at step %d: %v", h.Note, i, err)
			}
		}
		res.StepsPlayed++

		if waitErr != nil {
			return res, waitErr
		}
	}
	return res, nil
}
