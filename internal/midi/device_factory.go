package midi

// GetDevice returns the appropriate Device implementation for the given type
func GetDevice(deviceType DeviceType) Device {
	switch deviceType {
	case DeviceTypeEP133:
		return &EP133Device{}
	default:
		return &GenericDevice{}
	}
}
