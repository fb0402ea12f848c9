package resolve

import (
	"strconv"
	"strings"

	"github.com/PixPMusic/koii-mcp/internal/pads"
	"github.com/PixPMusic/koii-mcp/internal/sounds"
	"github.com/sirupsen/logrus"
)

// Via records which rule produced a resolution.
type Via int

const (
	Fallback Via = iota
	Literal
	Pad
	Instrument
	SoundName
)

func (v Via) String() string {
	switch v {
	case Literal:
		return "literal"
	case Pad:
		return "pad"
	case Instrument:
		return "instrument"
	case SoundName:
		return "sound_name"
	default:
		return "fallback"
	}
}

// DefaultNote is pad A. and is returned whenever nothing matches.
const DefaultNote = 36

// Result is the outcome of resolving one token.
type Result struct {
	Note int
	Via  Via
	// Pad is set when the note came from a pad (directly, by nickname or
	// through the sound's factory position).
	Pad string
	// SoundID is set when the token matched the sound library.
	SoundID int
}

// Resolved reports whether the token matched something other than the
// fallback.
func (r Result) Resolved() bool { return r.Via != Fallback }

// nicknames maps common drum names onto the factory kit of channel A.
var nicknames = map[string]string{
	"kick":          "A.",
	"bd":            "A.",
	"snare":         "A2",
	"sd":            "A2",
	"clap":          "A3",
	"low tom":       "A4",
	"tom":           "A4",
	"hi-hat":        "A5",
	"hihat":         "A5",
	"hh":            "A5",
	"hat":           "A5",
	"closed hi-hat": "A5",
	"mid tom":       "A6",
	"high tom":      "A7",
	"perc":          "A7",
	"open hi-hat":   "A8",
	"oh":            "A8",
	"ride":          "A8",
	"crash":         "A9",
	"cymbal":        "A9",
}

// Nickname returns the pad a drum nickname points at.
func Nickname(token string) (string, bool) {
	pad, ok := nicknames[strings.ToLower(strings.TrimSpace(token))]
	return pad, ok
}

// Resolve turns a pattern token into a MIDI note. It never fails: tokens
// that match nothing come back as DefaultNote with Via == Fallback.
//
// Order: all-digit literal, pad label, drum nickname, sound library name.
// A library sound with no factory pad plays DefaultNote; one that only
// sits on an FX pad falls back.
func Resolve(token string) Result {
	token = strings.TrimSpace(token)
	log := logrus.WithField("token", token)

	if token != "" && isDigits(token) {
		n, err := strconv.Atoi(token)
		if err == nil && n >= 0 && n <= 127 {
			log.WithField("note", n).Debug("resolved as MIDI note")
			return Result{Note: n, Via: Literal}
		}
		log.Warn("numeric reference outside 0-127")
		return fallback()
	}

	if looksLikePad(token) {
		if ref, err := pads.Parse(token); err == nil {
			if note, err := ref.Note(); err == nil {
				log.WithFields(logrus.Fields{"pad": ref.String(), "note": note}).Debug("resolved as pad")
				return Result{Note: note, Via: Pad, Pad: ref.String()}
			}
		}
	}

	if label, ok := Nickname(token); ok {
		if note, err := pads.ToNote(label); err == nil {
			log.WithFields(logrus.Fields{"pad": label, "note": note}).Debug("resolved as instrument")
			return Result{Note: note, Via: Instrument, Pad: label}
		}
	}

	if id, ok := sounds.FindByName(token); ok {
		ref, located := pads.Locate(id)
		switch {
		case !located:
			log.WithFields(logrus.Fields{"sound_id": id, "note": DefaultNote}).Info("sound has no factory pad, playing the default pad")
			return Result{Note: DefaultNote, Via: SoundName, SoundID: id}
		case ref.Slot == pads.SlotFX:
			log.WithField("sound_id", id).Warn("sound sits on the FX pad, which is not playable")
		default:
			note, err := ref.Note()
			if err == nil {
				log.WithFields(logrus.Fields{"sound_id": id, "pad": ref.String(), "note": note}).Debug("resolved as sound")
				return Result{Note: note, Via: SoundName, Pad: ref.String(), SoundID: id}
			}
		}
		r := fallback()
		r.SoundID = id
		return r
	}

	log.Warn("unrecognized reference, using default kick")
	return fallback()
}

func fallback() Result {
	return Result{Note: DefaultNote, Via: Fallback}
}

// looksLikePad checks the shape only: a channel letter followed by a
// slot-like suffix. pads.Parse does the real validation.
func looksLikePad(token string) bool {
	if len(token) < 2 {
		return false
	}
	switch token[0] {
	case 'A', 'B', 'C', 'D', 'a', 'b', 'c', 'd':
	default:
		return false
	}
	suffix := token[1:]
	return suffix == "." || strings.EqualFold(suffix, "FX") || isDigits(suffix)
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}
