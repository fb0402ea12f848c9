package pattern

import (
	"context"
	"testing"
	"time"

	"github.com/PixPMusic/koii-mcp/internal/errs"
	"github.com/PixPMusic/koii-mcp/internal/resolve"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/gomidi/midi/v2"
)

// recorder captures sent messages and requested sleeps.
type recorder struct {
	sent   []midi.Message
	sleeps []time.Duration
	failAt int // 1-based send index that fails, 0 never
	onStep func(n int)
}

func (r *recorder) send(msg midi.Message) error {
	if r.failAt > 0 && len(r.sent)+1 == r.failAt {
		return errors.New("port gone")
	}
	r.sent = append(r.sent, msg)
	return nil
}

func (r *recorder) sleep(ctx context.Context, d time.Duration) error {
	r.sleeps = append(r.sleeps, d)
	if r.onStep != nil {
		r.onStep(len(r.sleeps))
	}
	return ctx.Err()
}

func (r *recorder) scheduler(channel uint8) *Scheduler {
	return &Scheduler{Send: r.send, Sleep: r.sleep, Channel: channel}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		glyphs   string
		expected []int
	}{
		{"hits", "x.o.X.O.", []int{100, 0, 60, 0, 100, 0, 60, 0}},
		{"digits", "1.9.0", []int{14, 0, 126, 0, 0}},
		{"explicit velocity", "v064", []int{64, 0, 0, 0}},
		{"bare v", "v...", []int{80, 0, 0, 0}},
		{"v at end", "..v", []int{0, 0, 80}},
		{"clamped high", "v200", []int{127, 0, 0, 0}},
		{"clamped low", "v0x", []int{1, 0, 100}},
		{"three digits max", "v1234", []int{123, 0, 0, 0, 56}},
		{"unknown glyphs", "-_?Vz", []int{0, 0, 0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Decode(tt.glyphs))
		})
	}
}

func TestExtractReference(t *testing.T) {
	tests := []struct {
		comment  string
		expected string
	}{
		{"kick", "kick"},
		{"snare drum on two", "snare"},
		{`"NT SNARE" backbeat`, "NT SNARE"},
		{`layered 'MICRO KICK'`, "MICRO KICK"},
		{`it's "NT RIDE"`, "NT RIDE"},
		{`"" A4`, `""`},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.comment, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractReference(tt.comment))
		})
	}
}

func TestParse(t *testing.T) {
	text := `
x...x...  # kick
....x...  # "NT SNARE"
x.x.x.x.x.x.  # 42
..x.      # zzz_not_a_sound
o...
........
`
	p, err := Parse(text)
	require.NoError(t, err)
	require.Len(t, p.Tracks, 4)
	assert.Equal(t, 12, p.Length)
	assert.Equal(t, []string{"zzz_not_a_sound"}, p.Unrecognized)

	assert.Equal(t, 36, p.Tracks[0].Note)
	assert.Equal(t, resolve.Instrument, p.Tracks[0].Via)

	assert.Equal(t, "NT SNARE", p.Tracks[1].Reference)
	assert.Equal(t, 42, p.Tracks[1].Note)
	assert.Equal(t, resolve.SoundName, p.Tracks[1].Via)

	assert.Equal(t, 42, p.Tracks[2].Note)
	assert.Equal(t, resolve.Literal, p.Tracks[2].Via)

	assert.Equal(t, DefaultReference, p.Tracks[3].Reference)
	assert.Equal(t, resolve.DefaultNote, p.Tracks[3].Note)
	assert.Equal(t, []int{60, 0, 0, 0}, p.Tracks[3].Hits)
}

func TestParse_Empty(t *testing.T) {
	p, err := Parse("x... # zzz_not_a_sound\n")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrEmptyPattern)
	assert.Contains(t, err.Error(), "zzz_not_a_sound")
	assert.Equal(t, []string{"zzz_not_a_sound"}, p.Unrecognized)

	_, err = Parse("....\n\n   \n")
	assert.ErrorIs(t, err, errs.ErrEmptyPattern)

	p, err = Parse("x... #   \n")
	assert.ErrorIs(t, err, errs.ErrEmptyPattern)
	assert.Equal(t, []string{""}, p.Unrecognized)
}

func TestStepDuration(t *testing.T) {
	d, err := StepDuration(120)
	require.NoError(t, err)
	assert.Equal(t, 125*time.Millisecond, d)

	d, err = StepDuration(90)
	require.NoError(t, err)
	assert.InDelta(t, float64(166666666), float64(d), 1)

	_, err = StepDuration(0)
	assert.ErrorIs(t, err, errs.ErrOutOfRange)
}

func TestPlay_SingleKick(t *testing.T) {
	p, err := Parse("x... # kick\n....\n")
	require.NoError(t, err)

	rec := &recorder{}
	res, err := rec.scheduler(0).Play(context.Background(), p, 120)
	require.NoError(t, err)

	assert.Equal(t, []midi.Message{midi.NoteOn(0, 36, 100), midi.NoteOff(0, 36)}, rec.sent)
	require.Len(t, rec.sleeps, 4)
	var total time.Duration
	for _, d := range rec.sleeps {
		total += d
	}
	assert.Equal(t, 500*time.Millisecond, total)

	assert.Equal(t, 4, res.Steps)
	assert.Equal(t, 4, res.StepsPlayed)
	assert.Equal(t, 1, res.NotesSent)
	require.Len(t, res.Tracks, 1)
	assert.Equal(t, "instrument", res.Tracks[0].Via)
	assert.Equal(t, 1, res.Tracks[0].Hits)
}

func TestPlay_LibrarySoundWithoutFactoryPad(t *testing.T) {
	p, err := Parse("x...  # \"NT KICK B\"\n..x.  # 'KICK HARD'\n")
	require.NoError(t, err)
	assert.Empty(t, p.Unrecognized)
	require.Len(t, p.Tracks, 2)
	for _, tr := range p.Tracks {
		assert.Equal(t, resolve.DefaultNote, tr.Note)
		assert.Equal(t, resolve.SoundName, tr.Via)
	}
	assert.Equal(t, "NT KICK B", p.Tracks[0].Reference)

	rec := &recorder{}
	_, err = rec.scheduler(0).Play(context.Background(), p, 120)
	require.NoError(t, err)
	assert.Equal(t, []midi.Message{
		midi.NoteOn(0, 36, 100), midi.NoteOff(0, 36),
		midi.NoteOn(0, 36, 100), midi.NoteOff(0, 36),
	}, rec.sent)
}

func TestPlay_SimultaneousHits(t *testing.T) {
	p, err := Parse("x. # A.\nv2 # A2\n")
	require.NoError(t, err)

	rec := &recorder{}
	_, err = rec.scheduler(9).Play(context.Background(), p, 120)
	require.NoError(t, err)

	assert.Equal(t, []midi.Message{
		midi.NoteOn(9, 36, 100),
		midi.NoteOn(9, 40, 2),
		midi.NoteOff(9, 36),
		midi.NoteOff(9, 40),
	}, rec.sent)
	assert.Len(t, rec.sleeps, 2)
}

func TestPlay_TransportFailureAborts(t *testing.T) {
	p, err := Parse("x.x.x.x. # kick\n")
	require.NoError(t, err)

	rec := &recorder{failAt: 3}
	res, err := rec.scheduler(0).Play(context.Background(), p, 120)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrTransport)
	assert.Len(t, rec.sent, 2)
	assert.Equal(t, 1, res.NotesSent)
	assert.Len(t, rec.sleeps, 2)
}

func TestPlay_CancelSendsPendingNoteOffs(t *testing.T) {
	p, err := Parse("xxxx # kick\n")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	rec := &recorder{onStep: func(n int) {
		if n == 2 {
			cancel()
		}
	}}
	res, err := rec.scheduler(0).Play(ctx, p, 120)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 2, res.StepsPlayed)
	assert.Equal(t, []midi.Message{
		midi.NoteOn(0, 36, 100),
		midi.NoteOff(0, 36),
		midi.NoteOn(0, 36, 100),
		midi.NoteOff(0, 36),
	}, rec.sent)
}

func TestPlay_InvalidBPM(t *testing.T) {
	p, err := Parse("x # kick")
	require.NoError(t, err)

	rec := &recorder{}
	_, err = rec.scheduler(0).Play(context.Background(), p, -5)
	assert.ErrorIs(t, err, errs.ErrOutOfRange)
	assert.Empty(t, rec.sent)
}

func TestSleep_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, Sleep(ctx, time.Hour), context.Canceled)
	assert.NoError(t, Sleep(context.Background(), time.Millisecond))
}
