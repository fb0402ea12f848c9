package midi

import (
	"strconv"
	"strings"
	"sync"

	"github.com/PixPMusic/koii-mcp/internal/errs"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // Register rtmidi driver
)

// Port is an open output the session plays through
type Port interface {
	ID() string
	Name() string
	Device() Device
	Send(msg midi.Message) error
	Close() error
}

// Manager handles MIDI device discovery and management
type Manager struct {
	mu sync.RWMutex
}

// NewManager creates a new MIDI manager
func NewManager() *Manager {
	return &Manager{}
}

// Close cleans up the MIDI driver
func (m *Manager) Close() {
	midi.CloseDriver()
}

// ListOutPorts returns the names of available MIDI output ports
func (m *Manager) ListOutPorts() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	outs := midi.GetOutPorts()
	names := make([]string, 0, len(outs))
	for _, out := range outs {
		names = append(names, out.String())
	}
	return names
}

// Ports lists the output ports together with the detected device type
func (m *Manager) Ports() []PortInfo {
	names := m.ListOutPorts()
	infos := make([]PortInfo, 0, len(names))
	for i, name := range names {
		infos = append(infos, PortInfo{Index: i, Name: name, DeviceType: DetectDeviceType(name)})
	}
	return infos
}

// Open selects an output port (see SelectPort) and opens it
func (m *Manager) Open(selector string) (Port, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	outs := midi.GetOutPorts()
	names := make([]string, 0, len(outs))
	for _, out := range outs {
		names = append(names, out.String())
	}

	idx, err := SelectPort(names, selector)
	if err != nil {
		return nil, err
	}
	out := outs[idx]

	send, err := midi.SendTo(out)
	if err != nil {
		return nil, errors.Wrapf(errs.ErrTransport, "failed to open %s: %v", out.String(), err)
	}

	conn := &Connection{
		id:     uuid.NewString(),
		name:   out.String(),
		device: GetDevice(DetectDeviceType(out.String())),
		out:    out,
		send:   send,
	}
	logrus.WithFields(logrus.Fields{
		"port":   conn.name,
		"device": conn.device.Type(),
		"id":     conn.id,
	}).Info("MIDI output opened")
	return conn, nil
}

// SelectPort picks a port index. A selector matches a port name exactly,
// then, when it is all digits, as an index, then as a case-insensitive
// substring. An empty
// selector prefers a port that looks like an EP-133 and otherwise takes
// the first port.
func SelectPort(names []string, selector string) (int, error) {
	if len(names) == 0 {
		return 0, errors.Wrap(errs.ErrTransport, "no MIDI output ports available")
	}

	selector = strings.TrimSpace(selector)
	if selector == "" {
		for i, name := range names {
			if matchesHint(name) {
				return i, nil
			}
		}
		logrus.WithField("port", names[0]).Warn("no EP-133 found, using first available port")
		return 0, nil
	}

	for i, name := range names {
		if name == selector {
			return i, nil
		}
	}
	if isDigits(selector) {
		idx, err := strconv.Atoi(selector)
		if err != nil || idx >= len(names) {
			return 0, errors.Wrapf(errs.ErrOutOfRange, "port index %s must be between 0 and %d", selector, len(names)-1)
		}
		return idx, nil
	}
	lower := strings.ToLower(selector)
	for i, name := range names {
		if strings.Contains(strings.ToLower(name), lower) {
			return i, nil
		}
	}
	return 0, errors.Wrapf(errs.ErrInvalidReference, "MIDI port not found: %s. Available ports: %s",
		selector, strings.Join(names, ", "))
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

// Connection is an opened output port
type Connection struct {
	mu     sync.Mutex
	id     string
	name   string
	device Device
	out    drivers.Out
	send   func(midi.Message) error
}

func (c *Connection) ID() string     { return c.id }
func (c *Connection) Name() string   { return c.name }
func (c *Connection) Device() Device { return c.device }

// Send writes one message to the port
func (c *Connection) Send(msg midi.Message) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.send == nil {
		return errors.Wrapf(errs.ErrTransport, "port %s is closed", c.name)
	}
	if err := c.send(msg); err != nil {
		return errors.Wrapf(errs.ErrTransport, "failed to send %s: %v", msg, err)
	}
	return nil
}

// Close closes the underlying port
func (c *Connection) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.send = nil
	if err := c.out.Close(); err != nil {
		return errors.Wrapf(errs.ErrTransport, "failed to close %s: %v", c.name, err)
	}
	return nil
}
