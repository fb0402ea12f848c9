package pads

import (
	"strconv"
	"strings"

	"github.com/PixPMusic/koii-mcp/internal/errs"
	"github.com/pkg/errors"
)

// Grid dimensions of one channel: 4 rows (bottom to top) of 3 pads.
const (
	Rows         = 4
	Cols         = 3
	PadsPerGroup = Rows * Cols
)

// Special slots on the bottom row.
const (
	SlotDot  = "."
	SlotZero = "0"
	SlotFX   = "FX"
)

// Channel is a pad group letter (A-D). It is not a MIDI channel.
type Channel byte

// Channels lists the pad groups in note order.
var Channels = []Channel{'A', 'B', 'C', 'D'}

func (c Channel) String() string { return string(rune(c)) }

// Valid reports whether c is one of A-D.
func (c Channel) Valid() bool {
	return c >= 'A' && c <= 'D'
}

// BaseNote returns the MIDI note of the channel's "." pad (A=36, B=48, C=60, D=72).
func (c Channel) BaseNote() int {
	return 12*int(c-'A') + 36
}

// ParseChannel accepts a single letter, case-insensitive.
func ParseChannel(s string) (Channel, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) != 1 || !Channel(s[0]).Valid() {
		return 0, errors.Wrapf(errs.ErrInvalidReference, "invalid channel %q: must be A, B, C, or D", s)
	}
	return Channel(s[0]), nil
}

// Ref addresses one physical pad.
type Ref struct {
	Channel Channel
	Slot    string // ".", "0", "FX" or "1".."9"
}

func (r Ref) String() string { return r.Channel.String() + r.Slot }

// Parse reads a pad label such as "A.", "b0", "CFX" or "D7".
func Parse(label string) (Ref, error) {
	if len(label) < 2 {
		return Ref{}, errors.Wrapf(errs.ErrInvalidReference, "invalid pad reference %q", label)
	}
	ch := Channel(strings.ToUpper(label[:1])[0])
	if !ch.Valid() {
		return Ref{}, errors.Wrapf(errs.ErrInvalidReference, "invalid pad channel %q: must be A, B, C, or D", label[:1])
	}

	suffix := label[1:]
	switch {
	case suffix == SlotDot, suffix == SlotZero:
		return Ref{Channel: ch, Slot: suffix}, nil
	case strings.EqualFold(suffix, SlotFX):
		return Ref{Channel: ch, Slot: SlotFX}, nil
	}

	if !isDigits(suffix) {
		return Ref{}, errors.Wrapf(errs.ErrInvalidReference, "invalid pad slot %q: must be 1-9, '.', '0' or 'FX'", suffix)
	}
	n, err := strconv.Atoi(suffix)
	if err != nil || n < 1 || n > 9 {
		return Ref{}, errors.Wrapf(errs.ErrInvalidReference, "invalid pad number %q: must be 1-9, '.', '0' or 'FX'", suffix)
	}
	return Ref{Channel: ch, Slot: strconv.Itoa(n)}, nil
}

// Offset returns the pad's distance from the channel base note.
func (r Ref) Offset() (int, error) {
	switch r.Slot {
	case SlotDot:
		return 0, nil
	case SlotZero:
		return 1, nil
	case SlotFX:
		return 2, nil
	}
	n, err := strconv.Atoi(r.Slot)
	if err != nil || n < 1 || n > 9 {
		return 0, errors.Wrapf(errs.ErrInvalidReference, "invalid pad slot %q", r.Slot)
	}
	row := (n - 1) / 3
	col := (n - 1) % 3
	return 3 + row*3 + col, nil
}

// Note converts the pad to its MIDI note number.
func (r Ref) Note() (int, error) {
	if !r.Channel.Valid() {
		return 0, errors.Wrapf(errs.ErrInvalidReference, "invalid pad channel %q", r.Channel.String())
	}
	offset, err := r.Offset()
	if err != nil {
		return 0, err
	}
	base := r.Channel.BaseNote()
	note := base + offset
	if note < base || note >= base+PadsPerGroup {
		return 0, errors.Wrapf(errs.ErrInvalidReference, "calculated note %d is outside channel %s", note, r.Channel)
	}
	return note, nil
}

// ToNote parses a pad label and returns its MIDI note.
func ToNote(label string) (int, error) {
	ref, err := Parse(label)
	if err != nil {
		return 0, err
	}
	return ref.Note()
}

// FromNote returns the pad that plays note, if any.
func FromNote(note int) (Ref, bool) {
	for _, ch := range Channels {
		base := ch.BaseNote()
		if note < base || note >= base+PadsPerGroup {
			continue
		}
		return RefAt(ch, (note-base)/Cols, (note-base)%Cols)
	}
	return Ref{}, false
}

// Cell returns the grid position of the pad: row 0 is the bottom
// {".", "0", "FX"} row, rows 1-3 hold pads 1-9.
func (r Ref) Cell() (row, col int, ok bool) {
	switch r.Slot {
	case SlotDot:
		return 0, 0, true
	case SlotZero:
		return 0, 1, true
	case SlotFX:
		return 0, 2, true
	}
	n, err := strconv.Atoi(r.Slot)
	if err != nil || n < 1 || n > 9 {
		return 0, 0, false
	}
	return (n-1)/3 + 1, (n - 1) % 3, true
}

// RefAt is the inverse of Cell.
func RefAt(ch Channel, row, col int) (Ref, bool) {
	if !ch.Valid() || row < 0 || row >= Rows || col < 0 || col >= Cols {
		return Ref{}, false
	}
	if row == 0 {
		return Ref{Channel: ch, Slot: [Cols]string{SlotDot, SlotZero, SlotFX}[col]}, true
	}
	return Ref{Channel: ch, Slot: strconv.Itoa((row-1)*Cols + col + 1)}, true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
