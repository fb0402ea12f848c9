package pattern

import (
	"strconv"
	"strings"

	"github.com/PixPMusic/koii-mcp/internal/errs"
	"github.com/PixPMusic/koii-mcp/internal/resolve"
	"github.com/pkg/errors"
)

// Velocities for the glyph alphabet.
const (
	VelocityHigh    = 100 // x, X
	VelocityLow     = 60  // o, O
	VelocityDefault = 80  // bare v
	DigitVelocity   = 14  // per digit 1-9
)

// DefaultReference labels tracks that have hits but no comment.
const DefaultReference = "kick (default)"

// Track is one scheduled row of a pattern.
type Track struct {
	Glyphs    string
	Comment   string
	Reference string
	Note      int
	Via       resolve.Via
	// Hits holds one velocity per glyph position, 0 meaning no event.
	Hits []int
}

// Pattern is a parsed drum pattern ready for scheduling.
type Pattern struct {
	Tracks       []Track
	Unrecognized []string
	Length       int
}

// Parse reads a text drum pattern. Each non-blank line with a '#' is a
// track whose comment names the sound; lines without a comment are kept
// only if they contain x/X/o/O and then play the default kick. Tracks whose
// reference does not resolve are dropped and listed in Unrecognized.
//
// When no track survives the returned error wraps errs.ErrEmptyPattern
// and the partial Pattern still carries the unrecognized comments.
func Parse(text string) (*Pattern, error) {
	p := &Pattern{}

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		hash := strings.IndexByte(line, '#')
		if hash < 0 {
			if !strings.ContainsAny(line, "xXoO") {
				continue
			}
			p.add(Track{
				Glyphs:    line,
				Comment:   DefaultReference,
				Reference: DefaultReference,
				Note:      resolve.DefaultNote,
				Via:       resolve.Pad,
			})
			continue
		}

		glyphs := strings.TrimSpace(line[:hash])
		comment := strings.TrimSpace(line[hash+1:])
		ref := ExtractReference(comment)
		if ref == "" {
			p.Unrecognized = append(p.Unrecognized, comment)
			continue
		}

		res := resolve.Resolve(ref)
		if !res.Resolved() {
			p.Unrecognized = append(p.Unrecognized, comment)
			continue
		}
		p.add(Track{
			Glyphs:    glyphs,
			Comment:   comment,
			Reference: ref,
			Note:      res.Note,
			Via:       res.Via,
		})
	}

	if len(p.Tracks) == 0 {
		if len(p.Unrecognized) > 0 {
			return p, errors.Wrapf(errs.ErrEmptyPattern, "unrecognized instruments: %s", strings.Join(p.Unrecognized, ", "))
		}
		return p, errors.WithStack(errs.ErrEmptyPattern)
	}
	return p, nil
}

func (p *Pattern) add(t Track) {
	t.Hits = Decode(t.Glyphs)
	if len(t.Hits) > p.Length {
		p.Length = len(t.Hits)
	}
	p.Tracks = append(p.Tracks, t)
}

// ExtractReference picks the sound reference out of a comment: the
// earliest non-empty quoted substring (either quote style), otherwise the
// first word.
func ExtractReference(comment string) string {
	for i := 0; i < len(comment); i++ {
		q := comment[i]
		if q != '"' && q != '\'' {
			continue
		}
		end := strings.IndexByte(comment[i+1:], q)
		if end > 0 {
			return comment[i+1 : i+1+end]
		}
	}
	fields := strings.Fields(comment)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// Decode turns a glyph row into one velocity per position. The digits of
// a v-token belong to it and produce no hits of their own.
func Decode(glyphs string) []int {
	hits := make([]int, len(glyphs))
	for i := 0; i < len(glyphs); i++ {
		c := glyphs[i]
		switch {
		case c == 'x' || c == 'X':
			hits[i] = VelocityHigh
		case c == 'o' || c == 'O':
			hits[i] = VelocityLow
		case c >= '1' && c <= '9':
			hits[i] = int(c-'0') * DigitVelocity
		case c == 'v':
			j := i + 1
			for j < len(glyphs) && j-i <= 3 && isDigit(glyphs[j]) {
				j++
			}
			hits[i] = explicitVelocity(glyphs[i+1 : j])
			i = j - 1
		}
	}
	return hits
}

func explicitVelocity(digits string) int {
	if digits == "" {
		return VelocityDefault
	}
	v, err := strconv.Atoi(digits)
	if err != nil {
		return VelocityDefault
	}
	switch {
	case v < 1:
		return 1
	case v > 127:
		return 127
	}
	return v
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
