package scales

import (
	"strconv"
	"strings"

	"github.com/PixPMusic/koii-mcp/internal/errs"
	"github.com/pkg/errors"
)

var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

var naturals = map[byte]int{'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11}

// ParsePitchClass accepts a letter A-G (any case) with an optional '#' or
// 'b' and returns its pitch class 0-11. Cb and B# wrap around.
func ParsePitchClass(root string) (int, error) {
	s := strings.TrimSpace(root)
	pc, rest, ok := splitPitch(s)
	if !ok || rest != "" {
		return 0, errors.Wrapf(errs.ErrInvalidRootNote, "invalid root note: %q", root)
	}
	return pc, nil
}

// splitPitch consumes the letter and accidental at the start of s.
func splitPitch(s string) (pc int, rest string, ok bool) {
	if s == "" {
		return 0, "", false
	}
	pc, ok = naturals[upper(s[0])]
	if !ok {
		return 0, "", false
	}
	rest = s[1:]
	if rest != "" {
		switch rest[0] {
		case '#':
			pc++
			rest = rest[1:]
		case 'b':
			pc--
			rest = rest[1:]
		case 'B':
			// "BB" and "EB" read as flats only when nothing else follows.
			if len(rest) == 1 {
				pc--
				rest = ""
			}
		}
	}
	return (pc + 12) % 12, rest, true
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

// NoteName formats a MIDI note as e.g. "C#4" (middle C is C4).
func NoteName(n int) string {
	octave := n/12 - 1
	if n < 0 {
		octave = (n-11)/12 - 1
	}
	return noteNames[((n%12)+12)%12] + strconv.Itoa(octave)
}

// ParseNoteName parses names like "C4", "f#3", "Bb-1" into a MIDI note.
func ParseNoteName(name string) (int, error) {
	s := strings.TrimSpace(name)
	pc, rest, ok := splitPitch(s)
	if !ok || rest == "" {
		return 0, errors.Wrapf(errs.ErrInvalidReference, "invalid note name: %q", name)
	}
	octave, err := strconv.Atoi(rest)
	if err != nil {
		return 0, errors.Wrapf(errs.ErrInvalidReference, "invalid octave in note name: %q", name)
	}
	note := (octave+1)*12 + pc
	if err := errs.CheckRange("note", note, 0, 127); err != nil {
		return 0, errors.Wrapf(err, "note name %q", name)
	}
	return note, nil
}

// NoteRef is either a literal MIDI number or a note name.
type NoteRef struct {
	literal int
	name    string
}

// Literal wraps a MIDI number.
func Literal(n int) NoteRef { return NoteRef{literal: n} }

// Named wraps a note name such as "C4".
func Named(name string) NoteRef { return NoteRef{name: name} }

// ParseNoteRef treats all-digit input as a literal and anything else as
// a note name.
func ParseNoteRef(s string) NoteRef {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil && s != "" && s[0] != '+' && s[0] != '-' {
		return Literal(n)
	}
	return Named(s)
}

// IsName reports whether the reference is a note name.
func (r NoteRef) IsName() bool { return r.name != "" }

func (r NoteRef) String() string {
	if r.IsName() {
		return r.name
	}
	return strconv.Itoa(r.literal)
}

// Note resolves the reference to a MIDI note in 0-127.
func (r NoteRef) Note() (int, error) {
	if r.IsName() {
		return ParseNoteName(r.name)
	}
	if err := errs.CheckRange("note", r.literal, 0, 127); err != nil {
		return 0, err
	}
	return r.literal, nil
}
