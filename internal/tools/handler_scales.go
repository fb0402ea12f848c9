package tools

import (
	"context"
	"fmt"

	"github.com/PixPMusic/koii-mcp/internal/scales"
	"github.com/PixPMusic/koii-mcp/internal/session"
	"github.com/mark3labs/mcp-go/mcp"
)

const (
	defaultRoot     = "C"
	defaultOctave   = 3
	defaultInterval = 0.1
	defaultHold     = 0.2
)

func (e *Executor) scaleHandlers() []Handler {
	return []Handler{
		newHandler(mcp.NewTool("list_available_scales",
			mcp.WithDescription("List the scales available in keys mode with a short description of each."),
		), e.listScales),

		newHandler(mcp.NewTool("get_scale_notes",
			mcp.WithDescription("Get two octaves of a scale as MIDI note numbers and names."),
			mcp.WithString("scale", mcp.Required(), mcp.Description("Scale name, e.g. 'major' or 'dorian'")),
			mcp.WithString("root", mcp.Description("Root note such as C, F# or Bb"), mcp.DefaultString(defaultRoot)),
			mcp.WithNumber("octave", mcp.Description("Octave of the root"), mcp.DefaultNumber(defaultOctave)),
		), e.scaleNotes),

		newHandler(mcp.NewTool("get_scale_mapping",
			mcp.WithDescription("Show which note each pad of a group plays when the group is in keys mode with the given scale."),
			mcp.WithString("channel", mcp.Required(), mcp.Description("Pad group A, B, C or D")),
			mcp.WithString("scale", mcp.Required(), mcp.Description("Scale name")),
			mcp.WithString("root", mcp.Description("Root note"), mcp.DefaultString(defaultRoot)),
			mcp.WithNumber("octave", mcp.Description("Octave of the root"), mcp.DefaultNumber(defaultOctave)),
		), e.scaleMapping),

		newHandler(mcp.NewTool("play_scale_sequence",
			mcp.WithDescription("Play scale degrees in order. 1 is the root, 8 the root an octave up in a seven note scale, "+
				"negative degrees go below the root and 0 is a rest."),
			mcp.WithString("channel", mcp.Required(), mcp.Description("Pad group A, B, C or D in keys mode")),
			mcp.WithString("scale", mcp.Required(), mcp.Description("Scale name")),
			mcp.WithArray("degrees", mcp.Required(), mcp.Description("Scale degrees to play"),
				mcp.Items(map[string]any{"type": "integer"})),
			mcp.WithString("root", mcp.Description("Root note"), mcp.DefaultString(defaultRoot)),
			mcp.WithNumber("octave", mcp.Description("Octave of the root"), mcp.DefaultNumber(defaultOctave)),
			mcp.WithNumber("velocity", mcp.Description("Velocity 0-127"), mcp.DefaultNumber(session.DefaultVelocity)),
			mcp.WithNumber("duration", mcp.Description("Seconds each note is held"), mcp.DefaultNumber(defaultHold)),
			mcp.WithNumber("interval", mcp.Description("Seconds between notes"), mcp.DefaultNumber(defaultInterval)),
			mcp.WithNumber("midi_channel", mcp.Description("MIDI channel 1-16 for this call only")),
		), e.playScaleSequence),
	}
}

func (e *Executor) listScales(ctx context.Context, args Args) (string, error) {
	return jsonText(scales.Describe())
}

type scaleNote struct {
	MidiNote int    `json:"midi_note"`
	NoteName string `json:"note_name"`
}

func scaleArgs(args Args) (scale, root string, octave int, err error) {
	if scale, err = args.RequireString("scale"); err != nil {
		return
	}
	if root, err = args.String("root", defaultRoot); err != nil {
		return
	}
	octave, err = args.Int("octave", defaultOctave)
	return
}

func (e *Executor) scaleNotes(ctx context.Context, args Args) (string, error) {
	scale, root, octave, err := scaleArgs(args)
	if err != nil {
		return "", err
	}
	notes, err := scales.Notes(scale, root, octave)
	if err != nil {
		return "", err
	}
	out := make([]scaleNote, 0, len(notes))
	for _, n := range notes {
		out = append(out, scaleNote{MidiNote: n, NoteName: scales.NoteName(n)})
	}
	return jsonText(out)
}

func (e *Executor) scaleMapping(ctx context.Context, args Args) (string, error) {
	channel, err := args.RequireString("channel")
	if err != nil {
		return "", err
	}
	scale, root, octave, err := scaleArgs(args)
	if err != nil {
		return "", err
	}
	mapping, err := scales.MapPads(channel, scale, root, octave)
	if err != nil {
		return "", err
	}
	return jsonText(mapping)
}

func (e *Executor) playScaleSequence(ctx context.Context, args Args) (string, error) {
	channel, err := args.RequireString("channel")
	if err != nil {
		return "", err
	}
	scale, root, octave, err := scaleArgs(args)
	if err != nil {
		return "", err
	}
	degrees, err := args.Ints("degrees")
	if err != nil {
		return "", err
	}
	velocity, err := args.Int("velocity", session.DefaultVelocity)
	if err != nil {
		return "", err
	}
	duration, err := args.Float("duration", defaultHold)
	if err != nil {
		return "", err
	}
	interval, err := args.Float("interval", defaultInterval)
	if err != nil {
		return "", err
	}
	midiChannel, err := args.OptionalInt("midi_channel")
	if err != nil {
		return "", err
	}

	steps, err := e.session.PlayScaleSequence(ctx, session.ScaleSequence{
		PadChannel: channel,
		Scale:      scale,
		Root:       root,
		Octave:     octave,
		Degrees:    degrees,
		Velocity:   velocity,
		Duration:   duration,
		Interval:   interval,
	}, midiChannel)
	if err != nil {
		return "", err
	}

	played := 0
	for _, st := range steps {
		if st.Note != nil {
			played++
		}
	}
	report, err := jsonText(steps)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Played %d notes (%d rests) of %s %s on pad group %s:\n%s",
		played, len(steps)-played, root, scale, channel, report), nil
}
