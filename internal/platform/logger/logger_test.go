package logger_test

import (
	"testing"

	"studytrack/internal/platform/logger"
)

func TestNewModes(t *testing.T) {
	t.Parallel()
	for _, mode := range []string{"", "off", "dev", "prod"} {
		l, err := logger.New(mode)
		if err != nil {
			t.Fatalf("mode %q: %v", mode, err)
		}
		l.With("component", "test").Debug("hello", "k", 1)
	}
	if _, err := logger.New("verbose"); err == nil {
		t.Fatalf("unknown mode should fail")
	}
}
