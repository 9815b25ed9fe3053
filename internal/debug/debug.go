package debug

import (
	"os"

	"github.com/kayz/vidprompt/internal/logger"
)

// enabled is set via ldflags for debug builds
var enabled = ""

// Enabled controls whether debug messages are printed
var Enabled = false

func init() {
	if enabled == "true" {
		Enabled = true
	}
	// Enable debug via environment variable (overrides ldflags)
	if os.Getenv("VIDPROMPT_DEBUG") == "1" {
		Enabled = true
	}
}

// Log prints a debug message if debug mode is enabled. The logger level must
// also admit debug output; see cmd's PersistentPreRunE.
func Log(format string, args ...any) {
	if Enabled {
		logger.Debug("[DEBUG] "+format, args...)
	}
}
