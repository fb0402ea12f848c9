package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Setup points logrus at stderr, since stdout carries the MCP protocol,
// and applies level. An unknown level falls back to info.
func Setup(level string) {
	SetupWriter(os.Stderr, level)
}

// SetupWriter is Setup with a custom destination.
func SetupWriter(w io.Writer, level string) {
	logrus.SetOutput(w)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		DisableColors:   true,
		TimestampFormat: "15:04:05.000",
	})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		if level != "" {
			logrus.WithField("level", level).Warn("unknown log level, using info")
		}
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)
}
