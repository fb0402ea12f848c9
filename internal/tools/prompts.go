package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/PixPMusic/koii-mcp/internal/scales"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

type prompt struct {
	name        string
	description string
	text        func() string
}

var prompts = []prompt{
	{
		name:        "midi_info",
		description: "How the EP-133 K.O. II receives MIDI",
		text:        func() string { return midiInfo },
	},
	{
		name:        "drum_pattern_help",
		description: "How to write drum patterns for play_drum_pattern",
		text:        func() string { return drumPatternHelp },
	},
	{
		name:        "pad_configuration_help",
		description: "How pads map to MIDI notes and where the factory sounds sit",
		text:        func() string { return padConfigurationHelp },
	},
	{
		name:        "scale_mode_help",
		description: "Playing melodies with keys mode and scale degrees",
		text:        scaleModeHelp,
	},
}

func registerPrompts(s *server.MCPServer) {
	for _, p := range prompts {
		s.AddPrompt(mcp.NewPrompt(p.name, mcp.WithPromptDescription(p.description)),
			func(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
				return mcp.NewGetPromptResult(p.description, []mcp.PromptMessage{
					mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(p.text())),
				}), nil
			})
	}
}

const midiInfo = `The EP-133 K.O. II listens on MIDI channel 1 by default. Use list_midi_ports
to see the outputs, then connect_to_device. With no arguments the K.O. II is
picked automatically when its port name is recognised.

Each pad group answers a block of notes:
  A: 36-47   B: 48-59   C: 60-71   D: 72-83

Use set_channel to change the channel for later calls, or pass channel to a
single call. send_program_change switches samples and send_midi_clock drives
the sequencer tempo.`

const drumPatternHelp = `Write one line per sound. The steps come first, then '#' and the sound:

  x...x...x...x...  # kick
  ....x.......x...  # snare
  x.x.x.x.x.x.x.x.  # "NT HH CLOSED"

Each character is a sixteenth note:
  x / X   accent (velocity 100)
  o / O   soft (velocity 60)
  1-9     velocity steps of 14
  v<n>    exact velocity, e.g. v96
  .       rest (any other character is a rest too)

The sound after '#' can be a pad (A., A2, B7), a MIDI note (36), a drum name
(kick, snare, clap, hat, open hi-hat, crash) or a name from the sound library.
Quote library names that contain spaces. Lines whose sound is not recognised
are listed in the reply and skipped. The pattern length is its longest line.`

const padConfigurationHelp = `Every group has twelve pads laid out in four rows of three:

  7 8 9
  4 5 6
  1 2 3
  . 0 FX

Notes rise from '.' (the group's base note) left to right and bottom to top.
FX has no note. Channel A starts at 36, so A. = 36, A2 = 40 and A9 = 47.

get_default_pad_configuration shows the factory sound on every pad of groups
A, B and C. find_sound tells you which pad a library sound sits on, and
resolve_reference shows how a drum pattern reference will be played.`

func scaleModeHelp() string {
	var b strings.Builder
	b.WriteString("Put a pad group in keys mode on the device, then choose a scale and root.\n")
	b.WriteString("get_scale_mapping shows which note each pad plays and play_scale_sequence\n")
	b.WriteString("plays scale degrees: 1 is the root, 0 a rest and negative degrees sit below the root.\n\n")
	b.WriteString("Available scales:\n")
	desc := scales.Describe()
	for _, name := range scales.Names() {
		fmt.Fprintf(&b, "  %s: %s\n", name, desc[name])
	}
	return strings.TrimRight(b.String(), "\n")
}
