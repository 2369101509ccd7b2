package logger

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestToZapLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		DebugLevel: zapcore.DebugLevel,
		InfoLevel:  zapcore.InfoLevel,
		WarnLevel:  zapcore.WarnLevel,
		ErrorLevel: zapcore.ErrorLevel,
		"verbose":  defaultZapLevel,
		"":         defaultZapLevel,
	}
	for in, want := range cases {
		if got := toZapLevel(in); got != want {
			t.Fatalf("toZapLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNewWithWriter_FiltersByLevelAndCarriesFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, WarnLevel)

	log.Infow("dropped_event")
	log.With("request_id", "abc").Errorw("search_failed", "err", "boom")

	out := buf.String()
	if strings.Contains(out, "dropped_event") {
		t.Fatalf("info line should be filtered at warn level: %s", out)
	}
	for _, want := range []string{"ERROR", "search_failed", "request_id", "abc", "boom"} {
		if !strings.Contains(out, want) {
			t.Fatalf("log output missing %q: %s", want, out)
		}
	}
}
