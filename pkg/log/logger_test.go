package log

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestToLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"bogus", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		if got := ToLevel(tt.in); got != tt.want {
			t.Errorf("ToLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestCaptureRecordsStructuredFields(t *testing.T) {
	buf, restore := Capture("debug")
	defer restore()

	l := With("KRR")
	FitEvent(l.Info(), 20, 1, 1e-6).Msg("model fitted")

	out := buf.String()
	for _, want := range []string{`"model":"KRR"`, `"operation":"fit"`, `"n_samples":20`, `"model fitted"`} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %s:\n%s", want, out)
		}
	}
}

func TestCaptureRespectsLevel(t *testing.T) {
	buf, restore := Capture("warn")
	defer restore()

	logger := Logger()
	logger.Info().Msg("should be suppressed")
	logger.Warn().Msg("should appear")

	lines := buf.Lines()
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d: %v", len(lines), lines)
	}
	if !strings.Contains(lines[0], "should appear") {
		t.Errorf("unexpected line: %s", lines[0])
	}
}
