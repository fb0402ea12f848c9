package scales

import (
	"testing"

	"github.com/PixPMusic/koii-mcp/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotes(t *testing.T) {
	tests := []struct {
		name     string
		scale    string
		root     string
		octave   int
		expected []int
	}{
		{"C major", "major", "C", 4, []int{60, 62, 64, 65, 67, 69, 71, 72, 74, 76, 77, 79, 81, 83}},
		{"A minor pentatonic", "minor_pentatonic", "A", 3, []int{57, 60, 62, 64, 67, 69, 72, 74, 76, 79}},
		{"flat root", "blues", "Eb", 4, []int{63, 66, 68, 69, 70, 73, 75, 78, 80, 81, 82, 85}},
		{"case insensitive", "DORIAN", "d", 4, []int{62, 64, 65, 67, 69, 71, 72, 74, 76, 77, 79, 81, 83, 84}},
		{"clipped at top", "major", "G", 9, []int{127}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notes, err := Notes(tt.scale, tt.root, tt.octave)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, notes)
		})
	}
}

func TestNotes_Chromatic(t *testing.T) {
	notes, err := Notes("chromatic", "F#", 2)
	require.NoError(t, err)
	require.Len(t, notes, 24)
	for i, n := range notes {
		assert.Equal(t, 42+i, n)
	}
}

func TestNotes_AlwaysInRange(t *testing.T) {
	for _, name := range Names() {
		for octave := -1; octave <= 10; octave++ {
			notes, err := Notes(name, "B", octave)
			require.NoError(t, err)
			for _, n := range notes {
				assert.GreaterOrEqual(t, n, 0)
				assert.LessOrEqual(t, n, 127)
			}
		}
	}
}

func TestNotes_Errors(t *testing.T) {
	_, err := Notes("lydian_dominant", "C", 4)
	assert.ErrorIs(t, err, errs.ErrInvalidScale)
	assert.Contains(t, err.Error(), "major, minor")

	for _, root := range []string{"", "H", "C##", "Cm", "10"} {
		_, err := Notes("major", root, 4)
		assert.ErrorIs(t, err, errs.ErrInvalidRootNote, "root %q", root)
	}
}

func TestParsePitchClass(t *testing.T) {
	tests := map[string]int{
		"C": 0, "c#": 1, "Db": 1, "EB": 3, "bb": 10, "B": 11, "Cb": 11, "B#": 0, " G ": 7,
	}
	for root, pc := range tests {
		got, err := ParsePitchClass(root)
		require.NoError(t, err, root)
		assert.Equal(t, pc, got, root)
	}
}

func TestMapPads(t *testing.T) {
	mapping, err := MapPads("b", "major", "C", 4)
	require.NoError(t, err)
	require.Len(t, mapping, 11)
	assert.Equal(t, PadNote{Pad: "B.", MidiNote: 60, NoteName: "C4"}, mapping[0])
	assert.Equal(t, PadNote{Pad: "B0", MidiNote: 62, NoteName: "D4"}, mapping[1])
	assert.Equal(t, PadNote{Pad: "B1", MidiNote: 64, NoteName: "E4"}, mapping[2])
	assert.Equal(t, PadNote{Pad: "B9", MidiNote: 77, NoteName: "F5"}, mapping[10])
	for _, m := range mapping {
		assert.NotEqual(t, "BFX", m.Pad)
	}
}

func TestMapPads_Truncates(t *testing.T) {
	mapping, err := MapPads("A", "major_pentatonic", "C", 4)
	require.NoError(t, err)
	require.Len(t, mapping, 10)
	assert.Equal(t, "A8", mapping[9].Pad)

	_, err = MapPads("E", "major", "C", 4)
	assert.ErrorIs(t, err, errs.ErrInvalidReference)
}

func TestDegreeNote(t *testing.T) {
	tests := []struct {
		degree int
		note   int
		ok     bool
	}{
		{1, 60, true},
		{3, 64, true},
		{8, 72, true},
		{10, 76, true},
		{0, 0, false},
		{-1, 48, true},
		{-3, 52, true},
		{-8, 36, true},
	}
	for _, tt := range tests {
		note, ok, err := DegreeNote("major", "C", 4, tt.degree)
		require.NoError(t, err, "degree %d", tt.degree)
		assert.Equal(t, tt.ok, ok, "degree %d", tt.degree)
		assert.Equal(t, tt.note, note, "degree %d", tt.degree)
	}

	_, _, err := DegreeNote("major", "C", 9, 15)
	assert.ErrorIs(t, err, errs.ErrOutOfRange)
}

func TestNoteName(t *testing.T) {
	assert.Equal(t, "C4", NoteName(60))
	assert.Equal(t, "C#4", NoteName(61))
	assert.Equal(t, "C-1", NoteName(0))
	assert.Equal(t, "G9", NoteName(127))
}

func TestParseNoteName(t *testing.T) {
	tests := map[string]int{
		"C4": 60, "c#4": 61, "Db4": 61, "A0": 21, "C-1": 0, "G9": 127, "Bb3": 58,
	}
	for name, note := range tests {
		got, err := ParseNoteName(name)
		require.NoError(t, err, name)
		assert.Equal(t, note, got, name)
	}

	for _, bad := range []string{"", "C", "H4", "C#x", "4C"} {
		_, err := ParseNoteName(bad)
		assert.ErrorIs(t, err, errs.ErrInvalidReference, bad)
	}

	_, err := ParseNoteName("A9")
	assert.ErrorIs(t, err, errs.ErrOutOfRange)
}

func TestNoteRef(t *testing.T) {
	n, err := ParseNoteRef("64").Note()
	require.NoError(t, err)
	assert.Equal(t, 64, n)

	ref := ParseNoteRef("E4")
	assert.True(t, ref.IsName())
	n, err = ref.Note()
	require.NoError(t, err)
	assert.Equal(t, 64, n)

	_, err = Literal(128).Note()
	assert.ErrorIs(t, err, errs.ErrOutOfRange)

	assert.True(t, ParseNoteRef("-3").IsName())
}

func TestDescribe(t *testing.T) {
	d := Describe()
	assert.Len(t, d, 11)
	assert.Contains(t, d["blues"], "flat 5th")
}
