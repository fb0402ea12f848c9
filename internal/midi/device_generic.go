package midi

import (
	"github.com/PixPMusic/koii-mcp/internal/scales"
	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2"
)

// ccAllNotesOff is the channel mode message that releases every held note.
const ccAllNotesOff = 123

// GenericDevice implements Device for ordinary MIDI outputs.
type GenericDevice struct{}

func (d *GenericDevice) Type() DeviceType { return DeviceTypeGeneric }

func (d *GenericDevice) Describe(note uint8) string {
	return scales.NoteName(int(note))
}

func (d *GenericDevice) Silence(send func(midi.Message) error, channel uint8) error {
	if err := send(midi.ControlChange(channel, ccAllNotesOff, 0)); err != nil {
		return errors.Wrap(err, "failed to send all notes off")
	}
	return nil
}
