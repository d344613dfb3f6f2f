package logging

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestBuildWritesToWriter(t *testing.T) {
	var buf bytes.Buffer
	log := Build(&buf, "info", false)
	log.Info("hello")
	if !strings.Contains(buf.String(), "hello") {
		t.Fatalf("log output = %q", buf.String())
	}
}

func TestBuildBadLevelFallsBack(t *testing.T) {
	var buf bytes.Buffer
	log := Build(&buf, "nonsense", false)
	if !log.Core().Enabled(zapcore.InfoLevel) {
		t.Fatal("expected info to be enabled after fallback")
	}
}

func TestQuietRaisesThreshold(t *testing.T) {
	var buf bytes.Buffer
	log := Build(&buf, "debug", true)
	log.Info("dropped")
	if buf.Len() != 0 {
		t.Fatalf("quiet logger wrote %q", buf.String())
	}
	if !log.Core().Enabled(zapcore.ErrorLevel) {
		t.Fatal("quiet logger should keep errors")
	}
}
