package observability

import (
	"testing"

	"github.com/supporthub/helpdesk/internal/config"
)

func TestNewLoggerLevelFallback(t *testing.T) {
	for _, level := range []string{"debug", "WARN", "", "nonsense"} {
		logger, err := NewLogger(config.LoggerConfig{Level: level})
		if err != nil {
			t.Fatalf("NewLogger(%q): %v", level, err)
		}
		logger.Sync()
	}
}
