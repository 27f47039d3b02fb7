package monitoring

import (
	"fmt"
	"strings"
	"testing"
)

func TestLoggerCapturesPerInstance(t *testing.T) {
	var a, b []string
	loggerA := New("cam0", func(format string, v ...interface{}) {
		a = append(a, fmt.Sprintf(format, v...))
	})
	loggerB := New("cam1", func(format string, v ...interface{}) {
		b = append(b, fmt.Sprintf(format, v...))
	})

	loggerA.Warningf("black level missing for %s", "sensor")
	loggerB.Debugf("frame %d", 3)

	if len(a) != 1 || len(b) != 1 {
		t.Fatalf("capture counts = %d, %d; want 1, 1", len(a), len(b))
	}
	if !strings.Contains(a[0], "cam0") || !strings.Contains(a[0], "warning") {
		t.Errorf("line %q missing prefix or level", a[0])
	}
	if !strings.Contains(b[0], "cam1") || !strings.Contains(b[0], "frame 3") {
		t.Errorf("line %q missing prefix or message", b[0])
	}
}

func TestNilSinkDiscards(t *testing.T) {
	logger := New("cam0", nil)
	// Must not panic.
	logger.Errorf("dropped %d", 1)
	logger.Infof("also dropped")
}

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{Debug, "debug"},
		{Info, "info"},
		{Warning, "warning"},
		{Error, "error"},
		{Level(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Level(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}
