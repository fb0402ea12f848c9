package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/PixPMusic/koii-mcp/internal/errs"
	"github.com/PixPMusic/koii-mcp/internal/pattern"
	"github.com/PixPMusic/koii-mcp/internal/scales"
	"github.com/PixPMusic/koii-mcp/internal/session"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/pkg/errors"
)

func (e *Executor) playHandlers() []Handler {
	return []Handler{
		newHandler(mcp.NewTool("play_note",
			mcp.WithDescription("Play a single note. The note is a MIDI number (0-127) or a name such as 'C3' or 'F#4'."),
			mcp.WithString("note", mcp.Required(), mcp.Description("MIDI note number or note name")),
			mcp.WithNumber("velocity", mcp.Description("Velocity 0-127"), mcp.DefaultNumber(session.DefaultVelocity)),
			mcp.WithNumber("duration", mcp.Description("Seconds to hold the note")),
			mcp.WithNumber("channel", mcp.Description("MIDI channel 1-16 for this call only")),
		), e.playNote),

		newHandler(mcp.NewTool("play_pattern",
			mcp.WithDescription("Play a list of notes one after another. Each entry has note, velocity and duration; "+
				"missing fields default to note 60, velocity 100 and 0.1 seconds."),
			mcp.WithArray("notes", mcp.Required(), mcp.Description("Notes to play in order"),
				mcp.Items(map[string]any{
					"type": "object",
					"properties": map[string]any{
						"note":     map[string]any{"type": []string{"integer", "string"}},
						"velocity": map[string]any{"type": "integer"},
						"duration": map[string]any{"type": "number"},
					},
				})),
			mcp.WithNumber("channel", mcp.Description("MIDI channel 1-16 for this call only")),
		), e.playPattern),

		newHandler(mcp.NewTool("play_drum_pattern",
			mcp.WithDescription("Play a text drum pattern. Each line is a row of steps followed by '# sound'. "+
				"x/X = accent, o/O = soft, 1-9 = velocity steps, v<0-127> = exact velocity, '.' = rest. "+
				"The sound is a pad (A., B3), a MIDI note (36), a drum name (kick, snare) or a quoted library sound name."),
			mcp.WithString("pattern", mcp.Required(), mcp.Description("The pattern text")),
			mcp.WithNumber("bpm", mcp.Description("Tempo; one step is a sixteenth note")),
			mcp.WithNumber("channel", mcp.Description("MIDI channel 1-16 for this call only")),
		), e.playDrumPattern),

		newHandler(mcp.NewTool("send_program_change",
			mcp.WithDescription("Send a program change to switch samples."),
			mcp.WithNumber("program", mcp.Required(), mcp.Description("Program 0-127")),
			mcp.WithNumber("channel", mcp.Description("MIDI channel 1-16 for this call only")),
		), e.programChange),

		newHandler(mcp.NewTool("send_midi_clock",
			mcp.WithDescription("Send MIDI start, 24 clock pulses per quarter note for the given time, then stop."),
			mcp.WithNumber("bpm", mcp.Required(), mcp.Description("Tempo in beats per minute")),
			mcp.WithNumber("duration", mcp.Required(), mcp.Description("Seconds to run the clock")),
		), e.midiClock),
	}
}

func (e *Executor) noteSpec(args Args) (session.NoteSpec, error) {
	note, err := args.String("note", "")
	if err != nil {
		return session.NoteSpec{}, err
	}
	ref := scales.Literal(session.DefaultNote)
	if note != "" {
		ref = scales.ParseNoteRef(note)
	}
	velocity, err := args.Int("velocity", session.DefaultVelocity)
	if err != nil {
		return session.NoteSpec{}, err
	}
	duration, err := args.Float("duration", e.defaults.NoteDuration)
	if err != nil {
		return session.NoteSpec{}, err
	}
	return session.NoteSpec{Note: ref, Velocity: velocity, Duration: duration}, nil
}

func (e *Executor) playNote(ctx context.Context, args Args) (string, error) {
	if _, err := args.RequireString("note"); err != nil {
		return "", err
	}
	spec, err := e.noteSpec(args)
	if err != nil {
		return "", err
	}
	channel, err := args.OptionalInt("channel")
	if err != nil {
		return "", err
	}

	res, err := e.session.PlayNote(ctx, spec, channel)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Successfully played note %s (%s) with velocity %d for %g seconds on MIDI channel %d",
		spec.Note, res.Label, res.Velocity, res.Duration, res.Channel), nil
}

func (e *Executor) playPattern(ctx context.Context, args Args) (string, error) {
	entries, err := args.Objects("notes")
	if err != nil {
		return "", err
	}
	specs := make([]session.NoteSpec, 0, len(entries))
	for i, entry := range entries {
		spec, err := e.noteSpec(entry)
		if err != nil {
			return "", errors.Wrapf(err, "note %d", i+1)
		}
		specs = append(specs, spec)
	}
	channel, err := args.OptionalInt("channel")
	if err != nil {
		return "", err
	}

	played, err := e.session.PlayNotes(ctx, specs, channel)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Successfully played pattern with %d notes", played), nil
}

func (e *Executor) playDrumPattern(ctx context.Context, args Args) (string, error) {
	text, err := args.RequireString("pattern")
	if err != nil {
		return "", err
	}
	bpm, err := args.Float("bpm", e.defaults.BPM)
	if err != nil {
		return "", err
	}
	channel, err := args.OptionalInt("channel")
	if err != nil {
		return "", err
	}

	res, err := e.session.PlayDrumPattern(ctx, text, bpm, channel)
	e.metrics.RecordPattern(ctx, len(res.Tracks), len(res.Unrecognized), res.Steps, bpm)
	if err != nil {
		return "", err
	}
	return drumReport(res), nil
}

// drumReport lists the mapping of every track and the ignored comments.
func drumReport(res pattern.PlayResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Successfully played drum pattern at %g BPM (%d steps, %d notes)\n", res.BPM, res.StepsPlayed, res.NotesSent)
	b.WriteString("\nInstrument mappings:\n")
	for _, t := range res.Tracks {
		fmt.Fprintf(&b, "- %s -> MIDI note %d (%s)\n", t.Reference, t.Note, t.Via)
	}
	if len(res.Unrecognized) > 0 {
		b.WriteString("\nUnrecognized instruments (ignored):\n")
		for _, u := range res.Unrecognized {
			fmt.Fprintf(&b, "- %s\n", u)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func (e *Executor) programChange(ctx context.Context, args Args) (string, error) {
	program, err := args.OptionalInt("program")
	if err != nil {
		return "", err
	}
	if program == nil {
		return "", errors.Wrap(errs.ErrInvalidReference, "program is required")
	}
	channel, err := args.OptionalInt("channel")
	if err != nil {
		return "", err
	}
	if err := e.session.SendProgramChange(*program, channel); err != nil {
		return "", err
	}
	return fmt.Sprintf("Sent program change %d", *program), nil
}

func (e *Executor) midiClock(ctx context.Context, args Args) (string, error) {
	bpm, err := args.Float("bpm", e.defaults.BPM)
	if err != nil {
		return "", err
	}
	duration, err := args.Float("duration", 0)
	if err != nil {
		return "", err
	}
	pulses, err := e.session.SendClock(ctx, bpm, duration)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Sent MIDI clock at %g BPM for %g seconds (%d pulses)", bpm, duration, pulses), nil
}
