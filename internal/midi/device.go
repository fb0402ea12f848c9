package midi

import "gitlab.com/gomidi/midi/v2"

// Device represents the instrument behind an output port
type Device interface {
	// Type reports which implementation handles the port
	Type() DeviceType

	// Describe labels an outgoing note for status messages
	Describe(note uint8) string

	// Silence stops any note the device may still be sounding on channel
	Silence(send func(midi.Message) error, channel uint8) error
}
