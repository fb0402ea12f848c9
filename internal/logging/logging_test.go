package logging

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestSetupWriter(t *testing.T) {
	defer logrus.SetLevel(logrus.InfoLevel)

	var buf bytes.Buffer
	SetupWriter(&buf, "debug")
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	logrus.WithField("token", "kick").Debug("resolved")
	assert.Contains(t, buf.String(), "token=kick")

	buf.Reset()
	SetupWriter(&buf, "loud")
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
	assert.Contains(t, buf.String(), "unknown log level")
}
