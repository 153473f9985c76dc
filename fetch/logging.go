package fetch

import (
	"io"
	"log"
	"os"
)

var debugLog = log.New(io.Discard, "fetch: ", log.LstdFlags)

// SetVerboseLogging toggles verbose fetch logging.
// When disabled (default), debug output is discarded.
func SetVerboseLogging(enable bool) {
	if enable {
		debugLog.SetOutput(os.Stderr)
	} else {
		debugLog.SetOutput(io.Discard)
	}
}
