package sounds

import (
	"strings"

	"github.com/PixPMusic/koii-mcp/internal/errs"
	"github.com/pkg/errors"
)

// Sound is one library entry.
type Sound struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Category groups sounds of the same kind.
type Category struct {
	Name   string
	Sounds []Sound
}

// Entry is a sound together with its category name.
type Entry struct {
	Sound
	Category string `json:"category"`
}

var byID = func() map[int]Entry {
	m := make(map[int]Entry)
	for _, c := range catalog {
		for _, s := range c.Sounds {
			m[s.ID] = Entry{Sound: s, Category: c.Name}
		}
	}
	return m
}()

// Categories returns the category names in display order.
func Categories() []string {
	names := make([]string, 0, len(catalog))
	for _, c := range catalog {
		names = append(names, c.Name)
	}
	return names
}

// SoundsIn returns the sounds of a category ordered by id. The category
// name must match exactly.
func SoundsIn(category string) ([]Sound, error) {
	for _, c := range catalog {
		if c.Name == category {
			out := make([]Sound, len(c.Sounds))
			copy(out, c.Sounds)
			return out, nil
		}
	}
	return nil, errors.Wrapf(errs.ErrInvalidReference, "invalid category: %s. Available categories: %s",
		category, strings.Join(Categories(), ", "))
}

// Lookup returns the entry for id.
func Lookup(id int) (Entry, bool) {
	e, ok := byID[id]
	return e, ok
}

// FindByName searches the library case-insensitively. An exact name match
// wins; otherwise the shortest name containing text is returned, ties going
// to the first in catalog order.
func FindByName(text string) (int, bool) {
	needle := strings.ToUpper(strings.TrimSpace(text))
	if needle == "" {
		return 0, false
	}

	for _, c := range catalog {
		for _, s := range c.Sounds {
			if s.Name == needle {
				return s.ID, true
			}
		}
	}

	best := -1
	bestLen := 0
	for _, c := range catalog {
		for _, s := range c.Sounds {
			if !strings.Contains(s.Name, needle) {
				continue
			}
			if best < 0 || len(s.Name) < bestLen {
				best = s.ID
				bestLen = len(s.Name)
			}
		}
	}
	if best < 0 {
		return 0, false
	}
	return best, true
}
