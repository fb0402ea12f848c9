package midi

import (
	"testing"

	"github.com/PixPMusic/koii-mcp/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/gomidi/midi/v2"
)

func TestSelectPort(t *testing.T) {
	ports := []string{"IAC Driver Bus 1", "EP-133 K.O. II", "Port 2"}

	tests := []struct {
		name     string
		selector string
		expected int
	}{
		{"auto detect", "", 1},
		{"exact name", "Port 2", 2},
		{"substring any case", "iac", 0},
		{"index", "0", 0},
		{"index wins over substring", "1", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, err := SelectPort(ports, tt.selector)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, idx)
		})
	}
}

func TestSelectPort_DigitsAreAnIndex(t *testing.T) {
	ports := []string{"Synth 1", "Synth 2"}

	idx, err := SelectPort(ports, "1")
	require.NoError(t, err)
	assert.Equal(t, 1, idx)

	idx, err = SelectPort(ports, "Synth 1")
	require.NoError(t, err)
	assert.Equal(t, 0, idx)

	_, err = SelectPort(ports, "2")
	assert.ErrorIs(t, err, errs.ErrOutOfRange)
}

func TestSelectPort_FirstWhenNothingDetected(t *testing.T) {
	idx, err := SelectPort([]string{"Synth A", "Synth B"}, "")
	require.NoError(t, err)
	assert.Equal(t, 0, idx)
}

func TestSelectPort_Errors(t *testing.T) {
	_, err := SelectPort(nil, "")
	assert.ErrorIs(t, err, errs.ErrTransport)

	_, err = SelectPort([]string{"Synth A"}, "7")
	assert.ErrorIs(t, err, errs.ErrOutOfRange)

	_, err = SelectPort([]string{"Synth A"}, "nope")
	assert.ErrorIs(t, err, errs.ErrInvalidReference)
	assert.Contains(t, err.Error(), "Synth A")
}

func TestDetectDeviceType(t *testing.T) {
	assert.Equal(t, DeviceTypeEP133, DetectDeviceType("EP-133 K.O. II MIDI 1"))
	assert.Equal(t, DeviceTypeEP133, DetectDeviceType("Teenage Engineering"))
	assert.Equal(t, DeviceTypeGeneric, DetectDeviceType("IAC Driver Bus 1"))
	assert.IsType(t, &EP133Device{}, GetDevice(DeviceTypeEP133))
	assert.IsType(t, &GenericDevice{}, GetDevice("unknown"))
}

func TestDescribe(t *testing.T) {
	ep := &EP133Device{}
	assert.Equal(t, "pad A7 (A2)", ep.Describe(45))
	assert.Equal(t, "C8", ep.Describe(108))

	assert.Equal(t, "C4", (&GenericDevice{}).Describe(60))
}

func TestSilence(t *testing.T) {
	var sent []midi.Message
	send := func(msg midi.Message) error {
		sent = append(sent, msg)
		return nil
	}

	require.NoError(t, (&EP133Device{}).Silence(send, 3))
	require.Len(t, sent, 48)
	assert.Equal(t, midi.NoteOff(3, 36), sent[0])
	assert.Equal(t, midi.NoteOff(3, 83), sent[47])

	sent = nil
	require.NoError(t, (&GenericDevice{}).Silence(send, 0))
	assert.Equal(t, []midi.Message{midi.ControlChange(0, 123, 0)}, sent)
}
