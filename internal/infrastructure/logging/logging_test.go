package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewLevels(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug": zapcore.DebugLevel,
		"WARN":  zapcore.WarnLevel,
		"error": zapcore.ErrorLevel,
		"":      zapcore.InfoLevel,
	}
	for level, want := range cases {
		logger, err := New(level, "json")
		if err != nil {
			t.Fatalf("New(%q) failed: %v", level, err)
		}
		if !logger.Core().Enabled(want) {
			t.Fatalf("level %q should enable %s", level, want)
		}
		if want > zapcore.DebugLevel && logger.Core().Enabled(want-1) {
			t.Fatalf("level %q should not enable %s", level, want-1)
		}
	}
}
