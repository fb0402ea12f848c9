package tools

import (
	"context"
	"encoding/json"
	"time"

	"github.com/PixPMusic/koii-mcp/internal/metrics"
	"github.com/PixPMusic/koii-mcp/internal/session"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Handler is one MCP tool.
type Handler interface {
	// Tool describes the tool and its input schema
	Tool() mcp.Tool

	// Execute runs the tool and returns the text shown to the caller
	Execute(ctx context.Context, args Args) (string, error)
}

type funcHandler struct {
	tool mcp.Tool
	run  func(ctx context.Context, args Args) (string, error)
}

func (h *funcHandler) Tool() mcp.Tool { return h.tool }

func (h *funcHandler) Execute(ctx context.Context, args Args) (string, error) {
	return h.run(ctx, args)
}

func newHandler(tool mcp.Tool, run func(ctx context.Context, args Args) (string, error)) Handler {
	return &funcHandler{tool: tool, run: run}
}

// Defaults fill in tool arguments the caller leaves out.
type Defaults struct {
	BPM          float64
	NoteDuration float64
}

// Recorder receives tool and pattern telemetry.
type Recorder interface {
	RecordToolCall(ctx context.Context, tool string, duration time.Duration, success bool)
	RecordPattern(ctx context.Context, tracks, unrecognized, steps int, bpm float64)
}

// Executor owns the tool set and runs tools against one session.
type Executor struct {
	session  *session.Session
	metrics  Recorder
	defaults Defaults
	order    []string
	handlers map[string]Handler
}

// NewExecutor builds every tool. m may be nil.
func NewExecutor(s *session.Session, m Recorder, d Defaults) *Executor {
	if m == nil {
		m = (*metrics.SentryMetrics)(nil)
	}
	if d.BPM <= 0 {
		d.BPM = 120
	}
	if d.NoteDuration < 0 {
		d.NoteDuration = session.DefaultDuration
	}

	e := &Executor{
		session:  s,
		metrics:  m,
		defaults: d,
		handlers: make(map[string]Handler),
	}
	for _, group := range [][]Handler{
		e.portHandlers(),
		e.playHandlers(),
		e.soundHandlers(),
		e.scaleHandlers(),
	} {
		for _, h := range group {
			name := h.Tool().Name
			e.order = append(e.order, name)
			e.handlers[name] = h
		}
	}
	return e
}

// Names lists the tools in registration order.
func (e *Executor) Names() []string {
	return append([]string{}, e.order...)
}

// Execute runs a tool by name. Domain failures come back as errors; the
// MCP layer turns them into error results.
func (e *Executor) Execute(ctx context.Context, name string, args Args) (string, error) {
	h, ok := e.handlers[name]
	if !ok {
		return "", errors.Errorf("unknown tool: %s", name)
	}
	if args == nil {
		args = Args{}
	}

	start := time.Now()
	out, err := h.Execute(ctx, args)
	e.metrics.RecordToolCall(ctx, name, time.Since(start), err == nil)

	log := logrus.WithFields(logrus.Fields{"tool": name, "duration": time.Since(start)})
	if err != nil {
		log.WithError(err).Warn("tool failed")
	} else {
		log.Debug("tool finished")
	}
	return out, err
}

// Register adds every tool and prompt to s.
func (e *Executor) Register(s *server.MCPServer) {
	for _, name := range e.order {
		s.AddTool(e.handlers[name].Tool(), e.toolFunc(name))
	}
	registerPrompts(s)
}

func (e *Executor) toolFunc(name string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		out, err := e.Execute(ctx, name, Args(req.GetArguments()))
		if err != nil {
			return mcp.NewToolResultError("Error: " + err.Error()), nil
		}
		return mcp.NewToolResultText(out), nil
	}
}

// jsonText renders structured results for the caller.
func jsonText(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "failed to encode result")
	}
	return string(data), nil
}
