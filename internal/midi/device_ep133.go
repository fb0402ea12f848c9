package midi

import (
	"fmt"

	"github.com/PixPMusic/koii-mcp/internal/pads"
	"github.com/PixPMusic/koii-mcp/internal/scales"
	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2"
)

// EP133Device implements Device for the EP-133 K.O. II
type EP133Device struct{}

func (d *EP133Device) Type() DeviceType { return DeviceTypeEP133 }

// Describe names the pad that plays note, e.g. "pad A7 (A2)".
func (d *EP133Device) Describe(note uint8) string {
	ref, ok := pads.FromNote(int(note))
	if !ok {
		return scales.NoteName(int(note))
	}
	return fmt.Sprintf("pad %s (%s)", ref, scales.NoteName(int(note)))
}

// Silence sends a note off for every pad note of groups A-D.
func (d *EP133Device) Silence(send func(midi.Message) error, channel uint8) error {
	first := pads.Channels[0].BaseNote()
	last := pads.Channels[len(pads.Channels)-1].BaseNote() + pads.PadsPerGroup
	for note := first; note < last; note++ {
		if err := send(midi.NoteOff(channel, uint8(note))); err != nil {
			return errors.Wrapf(err, "failed to release note %d", note)
		}
	}
	return nil
}
