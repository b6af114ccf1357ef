package adapters

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gostdlib/fixtures/telemetry/log"

	"github.com/rs/zerolog"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZap(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	l := Zap(zap.New(core))

	l.Info("hello", "label", "value1")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("TestZap: got %d entries, want 1", len(entries))
	}
	if entries[0].Message != "hello" {
		t.Errorf("TestZap: got message %q, want %q", entries[0].Message, "hello")
	}
	if got := entries[0].ContextMap()["label"]; got != "value1" {
		t.Errorf("TestZap: got label %v, want %q", got, "value1")
	}
}

func TestZeroLog(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	l := ZeroLog(zerolog.New(buf))

	l.Warn("hello", "label", "value2")

	got := buf.String()
	if !strings.Contains(got, "hello") || !strings.Contains(got, "value2") {
		t.Errorf("TestZeroLog: got %q, want message and attribute in output", got)
	}
}

func TestZeroLogAddSource(t *testing.T) {
	// Do not t.Parallel(), this changes log.AddSource.

	old := log.AddSource
	t.Cleanup(func() { log.AddSource = old })

	tests := []struct {
		name      string
		addSource bool
	}{
		{name: "source on", addSource: true},
		{name: "source off", addSource: false},
	}

	for _, test := range tests {
		log.AddSource = test.addSource

		buf := &bytes.Buffer{}
		ZeroLog(zerolog.New(buf)).Info("hello")

		got := strings.Contains(buf.String(), `"source"`)
		if got != test.addSource {
			t.Errorf("TestZeroLogAddSource(%s): source in output == %v, want %v: %s", test.name, got, test.addSource, buf.String())
		}
	}
}

func TestSetZeroLog(t *testing.T) {
	// Do not t.Parallel(), this changes the package logger.

	old := log.Default()
	t.Cleanup(func() { log.Set(old) })

	buf := &bytes.Buffer{}
	SetZeroLog(zerolog.New(buf))
	log.Default().Info("through default", "label", "value1")

	if !strings.Contains(buf.String(), "through default") {
		t.Errorf("TestSetZeroLog: got %q, want the message written to the zerolog logger", buf.String())
	}
}

func TestSetZap(t *testing.T) {
	// Do not t.Parallel(), this changes the package logger.

	old := log.Default()
	t.Cleanup(func() { log.Set(old) })

	core, logs := observer.New(zapcore.DebugLevel)
	SetZap(zap.New(core))
	log.Default().Info("through default")

	if logs.Len() != 1 || logs.All()[0].Message != "through default" {
		t.Errorf("TestSetZap: got %v, want one entry with the message", logs.All())
	}
}
