// =============================================================================
// POS to XLSX Export - Logger Setup
// =============================================================================
//
// Central logrus configuration. Import commands log to the console always and
// to the configured log file when one is set. The --verbose flag forces debug
// level regardless of the configured level.
//
// =============================================================================

package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// New builds a configured logrus logger.
//
// PARAMETERS:
//   - level: one of "debug", "info", "warn", "error" (pre-validated by the
//     config module).
//   - logFile: path of the log file; empty disables file logging.
//   - verbose: forces debug level when true.
func New(level, logFile string, verbose bool) (*logrus.Logger, error) {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	if verbose {
		level = "debug"
	}
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	log.SetLevel(parsed)

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		log.SetOutput(io.MultiWriter(os.Stdout, f))
	} else {
		log.SetOutput(os.Stdout)
	}

	return log, nil
}
