package midi

import "strings"

// DeviceType represents the type of device
type DeviceType string

const (
	DeviceTypeEP133   DeviceType = "ep133"   // Teenage Engineering EP-133 K.O. II
	DeviceTypeGeneric DeviceType = "generic" // Any other MIDI output
)

// detectionHints are matched case-insensitively against port names when
// no port is requested explicitly.
var detectionHints = []string{"ko", "ko-ii", "ep-133", "teenage"}

// DetectDeviceType guesses the device behind a port name.
func DetectDeviceType(portName string) DeviceType {
	if matchesHint(portName) {
		return DeviceTypeEP133
	}
	return DeviceTypeGeneric
}

func matchesHint(portName string) bool {
	lower := strings.ToLower(portName)
	for _, hint := range detectionHints {
		if strings.Contains(lower, hint) {
			return true
		}
	}
	return false
}

// PortInfo describes one available output port.
type PortInfo struct {
	Index      int        `json:"index"`
	Name       string     `json:"name"`
	DeviceType DeviceType `json:"device_type"`
}
