package errs

import "github.com/pkg/errors"

// Error kinds surfaced to tool callers. Wrap them with errors.Wrapf so the
// cause stays testable with errors.Is.
var (
	ErrInvalidReference = errors.New("invalid reference")
	ErrOutOfRange       = errors.New("out of range")
	ErrNotConnected     = errors.New("no MIDI device connected")
	ErrTransport        = errors.New("transport failure")
	ErrEmptyPattern     = errors.New("no valid pattern lines found")
	ErrInvalidScale     = errors.New("invalid scale")
	ErrInvalidRootNote  = errors.New("invalid root note")
)

// CheckRange returns ErrOutOfRange wrapped with the field name when v is
// outside [lo, hi].
func CheckRange(field string, v, lo, hi int) error {
	if v < lo || v > hi {
		return errors.Wrapf(ErrOutOfRange, "%s %d must be between %d and %d", field, v, lo, hi)
	}
	return nil
}
