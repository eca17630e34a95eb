package obslog

import "testing"

func TestNewBuildsLoggerForEachValidLevel(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		logger, err := New(level)
		if err != nil {
			t.Fatalf("New(%q) failed: %v", level, err)
		}
		if logger == nil {
			t.Fatalf("New(%q) returned nil logger", level)
		}
		_ = logger.Sync()
	}
}

func TestNewRejectsInvalidLevel(t *testing.T) {
	if _, err := New("verbose"); err == nil {
		t.Fatalf("expected error for invalid log level")
	}
}
