package logger

import (
	"testing"

	"uni-advisor/pkg/config"

	"go.uber.org/zap/zapcore"
)

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		level string
		want  zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"warn", zapcore.WarnLevel},
		{"bogus", zapcore.InfoLevel},
		{"", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		l, err := New(config.LoggerConfig{Level: tt.level, Format: "console"})
		if err != nil {
			t.Fatalf("New(%q): %v", tt.level, err)
		}
		if !l.Core().Enabled(tt.want) {
			t.Errorf("New(%q): level %v disabled", tt.level, tt.want)
		}
		if tt.want > zapcore.DebugLevel && l.Core().Enabled(tt.want-1) {
			t.Errorf("New(%q): level %v unexpectedly enabled", tt.level, tt.want-1)
		}
	}
}

func TestGet_BeforeInit(t *testing.T) {
	if Get() == nil {
		t.Fatal("Get returned nil before Init")
	}
}
