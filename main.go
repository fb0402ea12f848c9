package main

import (
	"time"

	"github.com/PixPMusic/koii-mcp/internal/config"
	"github.com/PixPMusic/koii-mcp/internal/logging"
	"github.com/PixPMusic/koii-mcp/internal/metrics"
	"github.com/PixPMusic/koii-mcp/internal/midi"
	"github.com/PixPMusic/koii-mcp/internal/session"
	"github.com/PixPMusic/koii-mcp/internal/tools"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"
)

var version = "dev"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}
	logging.Setup(cfg.LogLevel)

	m, err := metrics.Init(cfg.SentryDSN, cfg.SentryEnvironment, "koii-mcp@"+version)
	if err != nil {
		logrus.WithError(err).Warn("Sentry disabled")
	}
	defer m.Flush(2 * time.Second)

	// Initialize MIDI manager
	midiManager := midi.NewManager()
	defer midiManager.Close()

	sess := session.New(midiManager, session.WithChannel(cfg.MIDIChannel))
	defer func() {
		if name, err := sess.Disconnect(); err == nil {
			logrus.WithField("port", name).Info("disconnected on shutdown")
		}
	}()

	if cfg.AutoConnect {
		if info, err := sess.Connect(cfg.PortName); err != nil {
			logrus.WithError(err).Warn("auto-connect failed, use connect_to_device")
		} else {
			logrus.WithFields(logrus.Fields{"port": info.Port, "device": info.DeviceType}).Info("connected")
		}
	}

	s := server.NewMCPServer("koii-mcp", version,
		server.WithToolCapabilities(false),
		server.WithPromptCapabilities(false),
	)
	executor := tools.NewExecutor(sess, m, tools.Defaults{
		BPM:          cfg.DefaultBPM,
		NoteDuration: cfg.NoteDuration,
	})
	executor.Register(s)

	logrus.WithFields(logrus.Fields{"instance": cfg.InstanceID, "tools": len(executor.Names())}).Info("serving MCP over stdio")
	if err := server.ServeStdio(s); err != nil {
		m.CaptureError(err)
		logrus.WithError(err).Error("MCP server stopped")
	}
}
