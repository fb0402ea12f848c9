package sounds

import (
	"testing"

	"github.com/PixPMusic/koii-mcp/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindByName(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected int
		found    bool
	}{
		{"exact", "NT SNARE", 100, true},
		{"exact lower case", "micro kick", 1, true},
		{"exact beats shorter substring", "CRASH", 248, true},
		{"substring prefers shortest", "KICK", 2, true},
		{"substring tie keeps first", "SNARE", 100, true},
		{"substring inside name", "bell", 339, true},
		{"padded input", "  nt ride  ", 235, true},
		{"no match", "zzz_not_a_sound", 0, false},
		{"empty", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := FindByName(tt.query)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.expected, id)
		})
	}
}

func TestFindByName_KickIsKickCategory(t *testing.T) {
	id, ok := FindByName("KICK")
	require.True(t, ok)
	e, ok := Lookup(id)
	require.True(t, ok)
	assert.Equal(t, "Kicks", e.Category)
	assert.Equal(t, "NT KICK", e.Name)
}

func TestCategories(t *testing.T) {
	assert.Equal(t, []string{
		"Kicks",
		"Snares",
		"Cymbals and Hats",
		"Percussion",
		"Bass",
		"Melodic & Synth",
	}, Categories())
}

func TestSoundsIn(t *testing.T) {
	bass, err := SoundsIn("Bass")
	require.NoError(t, err)
	require.NotEmpty(t, bass)
	assert.Equal(t, Sound{ID: 400, Name: "NT BASS"}, bass[0])
	assert.Equal(t, Sound{ID: 459, Name: "RUDE TWANG"}, bass[len(bass)-1])

	_, err = SoundsIn("Drums")
	assert.ErrorIs(t, err, errs.ErrInvalidReference)
	assert.Contains(t, err.Error(), "Kicks, Snares")
}

func TestCatalogIdsAreUniqueAndOrdered(t *testing.T) {
	seen := make(map[int]bool)
	for _, c := range catalog {
		prev := -1
		for _, s := range c.Sounds {
			assert.False(t, seen[s.ID], "duplicate id %d", s.ID)
			assert.Greater(t, s.ID, prev, "%s out of order", c.Name)
			seen[s.ID] = true
			prev = s.ID
		}
	}
	assert.Len(t, byID, len(seen))
}

func TestLookup(t *testing.T) {
	e, ok := Lookup(330)
	require.True(t, ok)
	assert.Equal(t, "CLAVE", e.Name)
	assert.Equal(t, "Percussion", e.Category)

	_, ok = Lookup(445)
	assert.False(t, ok)
}
