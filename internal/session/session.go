package session

import (
	"sync"
	"time"

	"github.com/PixPMusic/koii-mcp/internal/errs"
	kmidi "github.com/PixPMusic/koii-mcp/internal/midi"
	"github.com/PixPMusic/koii-mcp/internal/pattern"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Transport finds and opens output ports.
type Transport interface {
	Ports() []kmidi.PortInfo
	Open(selector string) (kmidi.Port, error)
}

// Session owns the connection and the active MIDI channel. Every method
// holds the same lock, so playback never interleaves with another call or
// with connect/disconnect.
type Session struct {
	mu        sync.Mutex
	transport Transport
	port      kmidi.Port
	channel   uint8 // 0-based
	sleep     pattern.SleepFunc
}

// Option configures a Session.
type Option func(*Session)

// WithSleep replaces the real-time sleep used for note holds and pattern steps.
func WithSleep(sleep pattern.SleepFunc) Option {
	return func(s *Session) { s.sleep = sleep }
}

// WithChannel sets the initial MIDI channel (1-16).
func WithChannel(channel int) Option {
	return func(s *Session) {
		if channel >= 1 && channel <= 16 {
			s.channel = uint8(channel - 1)
		}
	}
}

// New creates a disconnected session on MIDI channel 1.
func New(transport Transport, opts ...Option) *Session {
	s := &Session{transport: transport, sleep: pattern.Sleep}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Ports lists the available output ports.
func (s *Session) Ports() []kmidi.PortInfo {
	return s.transport.Ports()
}

// ConnectInfo describes a freshly opened connection.
type ConnectInfo struct {
	ID         string           `json:"id"`
	Port       string           `json:"port"`
	DeviceType kmidi.DeviceType `json:"device_type"`
	Channel    int              `json:"channel"`
}

// Connect opens a port, closing the current one first.
func (s *Session) Connect(selector string) (ConnectInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.port != nil {
		if _, err := s.closeLocked(); err != nil {
			logrus.WithError(err).Warn("closing previous port failed")
		}
	}

	port, err := s.transport.Open(selector)
	if err != nil {
		return ConnectInfo{}, err
	}
	s.port = port
	return ConnectInfo{
		ID:         port.ID(),
		Port:       port.Name(),
		DeviceType: port.Device().Type(),
		Channel:    int(s.channel) + 1,
	}, nil
}

// Disconnect silences and closes the current port and returns its name.
func (s *Session) Disconnect() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.port == nil {
		return "", errs.ErrNotConnected
	}
	return s.closeLocked()
}

func (s *Session) closeLocked() (string, error) {
	port := s.port
	s.port = nil

	log := logrus.WithFields(logrus.Fields{"port": port.Name(), "id": port.ID()})
	if err := port.Device().Silence(port.Send, s.channel); err != nil {
		log.WithError(err).Warn("failed to silence device before closing")
	}
	if err := port.Close(); err != nil {
		return port.Name(), err
	}
	log.Info("MIDI output closed")
	return port.Name(), nil
}

// Connected returns the name of the open port, if any.
func (s *Session) Connected() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.port == nil {
		return "", false
	}
	return s.port.Name(), true
}

// SetChannel changes the active MIDI channel (1-16).
func (s *Session) SetChannel(channel int) error {
	if err := errs.CheckRange("MIDI channel", channel, 1, 16); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.channel = uint8(channel - 1)
	logrus.WithField("channel", channel).Info("MIDI channel set")
	return nil
}

// Channel returns the active MIDI channel (1-16).
func (s *Session) Channel() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int(s.channel) + 1
}

// withPort runs fn under the session lock with the open port and the
// channel to use. override, when non-nil, is a 1-16 channel for this call
// only.
func (s *Session) withPort(override *int, fn func(port kmidi.Port, channel uint8) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.port == nil {
		return errs.ErrNotConnected
	}
	channel := s.channel
	if override != nil {
		if err := errs.CheckRange("MIDI channel", *override, 1, 16); err != nil {
			return err
		}
		channel = uint8(*override - 1)
	}
	return fn(s.port, channel)
}

// seconds converts a float duration, rejecting negatives.
func seconds(field string, v float64) (time.Duration, error) {
	if v < 0 {
		return 0, errors.Wrapf(errs.ErrOutOfRange, "%s %g must not be negative", field, v)
	}
	return time.Duration(v * float64(time.Second)), nil
}
