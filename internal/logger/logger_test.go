package logger

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestInitJSONFormat(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	var buf bytes.Buffer
	Init("warn", "text", &buf)
	defer reset()

	For("test").Debug("hello")

	out := buf.String()
	if !strings.Contains(out, `"component":"test"`) {
		t.Errorf("expected JSON output with component field; got %q", out)
	}
	if Log.GetLevel() != logrus.DebugLevel {
		t.Errorf("LOG_LEVEL should override the configured level; got %v", Log.GetLevel())
	}
}

func TestInitBadLevelFallsBackToInfo(t *testing.T) {
	t.Setenv("LOG_LEVEL", "nonsense")
	var buf bytes.Buffer
	Init("nonsense", "text", &buf)
	defer reset()

	if Log.GetLevel() != logrus.InfoLevel {
		t.Errorf("level = %v; want info", Log.GetLevel())
	}
}

func reset() {
	Log.SetLevel(logrus.WarnLevel)
	Log.SetFormatter(&logrus.TextFormatter{})
	Log.SetOutput(os.Stderr)
}
