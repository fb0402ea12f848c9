package scales

import (
	"strings"

	"github.com/PixPMusic/koii-mcp/internal/errs"
	"github.com/PixPMusic/koii-mcp/internal/pads"
	"github.com/pkg/errors"
)

// Scale is a named ascending list of semitone offsets from the root.
type Scale struct {
	Name        string
	Steps       []int
	Description string
}

var scales = []Scale{
	{"major", []int{0, 2, 4, 5, 7, 9, 11}, "Major scale (W-W-H-W-W-W-H)"},
	{"minor", []int{0, 2, 3, 5, 7, 8, 10}, "Natural minor scale (W-H-W-W-H-W-W)"},
	{"dorian", []int{0, 2, 3, 5, 7, 9, 10}, "Dorian mode (W-H-W-W-W-H-W)"},
	{"phrygian", []int{0, 1, 3, 5, 7, 8, 10}, "Phrygian mode (H-W-W-W-H-W-W)"},
	{"lydian", []int{0, 2, 4, 6, 7, 9, 11}, "Lydian mode (W-W-W-H-W-W-H)"},
	{"mixolydian", []int{0, 2, 4, 5, 7, 9, 10}, "Mixolydian mode (W-W-H-W-W-H-W)"},
	{"locrian", []int{0, 1, 3, 5, 6, 8, 10}, "Locrian mode (H-W-W-H-W-W-W)"},
	{"major_pentatonic", []int{0, 2, 4, 7, 9}, "Major pentatonic scale (major without 4th and 7th)"},
	{"minor_pentatonic", []int{0, 3, 5, 7, 10}, "Minor pentatonic scale (minor without 2nd and 6th)"},
	{"blues", []int{0, 3, 5, 6, 7, 10}, "Blues scale (minor pentatonic + flat 5th)"},
	{"chromatic", []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}, "Chromatic scale (all 12 semitones)"},
}

// Octaves is how many repeats of the pattern Notes emits.
const Octaves = 2

// Names lists the known scales in display order.
func Names() []string {
	names := make([]string, 0, len(scales))
	for _, s := range scales {
		names = append(names, s.Name)
	}
	return names
}

// Describe maps every scale name to a short description.
func Describe() map[string]string {
	out := make(map[string]string, len(scales))
	for _, s := range scales {
		out[s.Name] = s.Description
	}
	return out
}

// Lookup finds a scale by name, case-insensitively.
func Lookup(name string) (Scale, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, s := range scales {
		if s.Name == key {
			return s, nil
		}
	}
	return Scale{}, errors.Wrapf(errs.ErrInvalidScale, "invalid scale name: %s. Valid options: %s",
		name, strings.Join(Names(), ", "))
}

// RootNumber returns the MIDI number of root in the given octave (C4 = 60).
func RootNumber(root string, octave int) (int, error) {
	pc, err := ParsePitchClass(root)
	if err != nil {
		return 0, err
	}
	return (octave+1)*12 + pc, nil
}

// Notes returns two octaves of the scale starting at root. Notes outside
// 0-127 are dropped.
func Notes(scaleName, root string, octave int) ([]int, error) {
	scale, err := Lookup(scaleName)
	if err != nil {
		return nil, err
	}
	base, err := RootNumber(root, octave)
	if err != nil {
		return nil, err
	}

	notes := make([]int, 0, len(scale.Steps)*Octaves)
	for rep := 0; rep < Octaves; rep++ {
		for _, step := range scale.Steps {
			n := base + step + 12*rep
			if n < 0 || n > 127 {
				continue
			}
			notes = append(notes, n)
		}
	}
	return notes, nil
}

// padOrder is the logical playing order of a channel in keys mode. FX is
// not addressable and is skipped.
var padOrder = []string{".", "0", "1", "2", "3", "4", "5", "6", "7", "8", "9"}

// PadNote pairs a pad with the scale note it plays.
type PadNote struct {
	Pad      string `json:"pad"`
	MidiNote int    `json:"midi_note"`
	NoteName string `json:"note_name"`
}

// MapPads assigns the scale's notes to the channel's pads in ascending
// order. Pads beyond the available notes stay unmapped.
func MapPads(channel, scaleName, root string, octave int) ([]PadNote, error) {
	ch, err := pads.ParseChannel(channel)
	if err != nil {
		return nil, err
	}
	notes, err := Notes(scaleName, root, octave)
	if err != nil {
		return nil, err
	}

	out := make([]PadNote, 0, len(padOrder))
	for i, slot := range padOrder {
		if i >= len(notes) {
			break
		}
		out = append(out, PadNote{
			Pad:      pads.Ref{Channel: ch, Slot: slot}.String(),
			MidiNote: notes[i],
			NoteName: NoteName(notes[i]),
		})
	}
	return out, nil
}

// DegreeNote resolves a 1-based scale degree. Degrees past the pattern
// length continue into higher octaves. Negative degrees mirror that below
// the root: -1 is the root an octave down, and each further wrap drops
// another octave. Degree 0 is a rest and reports ok=false.
func DegreeNote(scaleName, root string, octave, degree int) (note int, ok bool, err error) {
	if degree == 0 {
		return 0, false, nil
	}
	scale, err := Lookup(scaleName)
	if err != nil {
		return 0, false, err
	}
	base, err := RootNumber(root, octave)
	if err != nil {
		return 0, false, err
	}

	n := len(scale.Steps)
	if degree > 0 {
		idx := degree - 1
		note = base + scale.Steps[idx%n] + 12*(idx/n)
	} else {
		idx := -degree - 1
		note = base + scale.Steps[idx%n] - 12*(idx/n+1)
	}
	if err := errs.CheckRange("scale degree note", note, 0, 127); err != nil {
		return 0, false, errors.Wrapf(err, "degree %d", degree)
	}
	return note, true, nil
}
