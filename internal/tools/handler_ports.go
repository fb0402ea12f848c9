package tools

import (
	"context"
	"fmt"

	"github.com/PixPMusic/koii-mcp/internal/errs"
	kmidi "github.com/PixPMusic/koii-mcp/internal/midi"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/pkg/errors"
)

func (e *Executor) portHandlers() []Handler {
	return []Handler{
		newHandler(mcp.NewTool("list_midi_ports",
			mcp.WithDescription("List the available MIDI output ports with the device type detected for each, "+
				"the connected port and the active MIDI channel."),
		), e.listPorts),

		newHandler(mcp.NewTool("connect_to_device",
			mcp.WithDescription("Connect to a MIDI output. Without arguments the EP-133 K.O. II is auto-detected. "+
				"An existing connection is closed first."),
			mcp.WithString("port_name", mcp.Description("Port name, matched exactly or as a case-insensitive substring")),
			mcp.WithNumber("port_index", mcp.Description("Index into list_midi_ports")),
		), e.connect),

		newHandler(mcp.NewTool("disconnect",
			mcp.WithDescription("Silence and close the current MIDI connection."),
		), e.disconnect),

		newHandler(mcp.NewTool("set_channel",
			mcp.WithDescription("Set the MIDI channel used by subsequent calls."),
			mcp.WithNumber("channel", mcp.Required(), mcp.Description("MIDI channel 1-16")),
		), e.setChannel),
	}
}

type portList struct {
	Ports     []kmidi.PortInfo `json:"ports"`
	Connected string           `json:"connected,omitempty"`
	Channel   int              `json:"channel"`
}

func (e *Executor) listPorts(ctx context.Context, args Args) (string, error) {
	name, _ := e.session.Connected()
	return jsonText(portList{
		Ports:     e.session.Ports(),
		Connected: name,
		Channel:   e.session.Channel(),
	})
}

func (e *Executor) connect(ctx context.Context, args Args) (string, error) {
	selector, err := args.String("port_name", "")
	if err != nil {
		return "", err
	}
	if selector == "" && args.Has("port_index") {
		idx, err := args.Int("port_index", 0)
		if err != nil {
			return "", err
		}
		ports := e.session.Ports()
		if idx < 0 || idx >= len(ports) {
			return "", errors.Wrapf(errs.ErrOutOfRange, "port index %d: %d ports available", idx, len(ports))
		}
		selector = ports[idx].Name
	}

	info, err := e.session.Connect(selector)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Successfully connected to MIDI device: %s (%s, MIDI channel %d, connection %s)",
		info.Port, info.DeviceType, info.Channel, info.ID), nil
}

func (e *Executor) disconnect(ctx context.Context, args Args) (string, error) {
	name, err := e.session.Disconnect()
	if errors.Is(err, errs.ErrNotConnected) {
		return "No MIDI device connected", nil
	}
	if err != nil {
		return "", err
	}
	return "Successfully disconnected from MIDI device: " + name, nil
}

func (e *Executor) setChannel(ctx context.Context, args Args) (string, error) {
	ch, err := args.OptionalInt("channel")
	if err != nil {
		return "", err
	}
	if ch == nil {
		return "", errors.Wrap(errs.ErrInvalidReference, "channel is required")
	}
	if err := e.session.SetChannel(*ch); err != nil {
		return "", err
	}
	return fmt.Sprintf("MIDI channel set to %d", *ch), nil
}
