// Package logx configures apex/log for the CLI. All diagnostics go to
// stderr; stdout is reserved for generated table text.
package logx

import (
	"fmt"
	"os"
	"strings"

	"github.com/apex/log"
)

// Init sets up apex with a stderr handler and a level taken from the
// TYPETAB_LOG env variable. The default level is warn so generate runs
// quietly in scripts.
func Init() {
	level := strings.ToLower(os.Getenv("TYPETAB_LOG"))

	var apexLevel log.Level
	switch level {
	case "debug":
		apexLevel = log.DebugLevel
	case "info":
		apexLevel = log.InfoLevel
	case "warn", "":
		apexLevel = log.WarnLevel
	case "error":
		apexLevel = log.ErrorLevel
	default:
		apexLevel = log.WarnLevel
	}

	log.SetHandler(&stderrHandler{})
	log.SetLevel(apexLevel)
}

// stderrHandler writes "LEVEL message" lines to stderr.
type stderrHandler struct{}

// HandleLog implements the log.Handler interface.
func (h *stderrHandler) HandleLog(e *log.Entry) error {
	fmt.Fprintf(os.Stderr, "%s %s\n", strings.ToUpper(e.Level.String()), e.Message)
	return nil
}
