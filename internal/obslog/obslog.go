// Package obslog provides the one logger this module uses: a trimmed copy
// of the teacher's pkg/logger console-writer setup
// (itohio/EasyRobot/pkg/logger/logger.go), kept here rather than imported
// directly since this module does not depend on the rest of that tree.
// Nothing under dtype/indexmode/shape/ndarray/apply imports this package —
// those stay logging-free, matching the teacher's own x/math subtree (see
// DESIGN.md). It exists solely for the module-root example.
package obslog

import (
	"os"

	"github.com/rs/zerolog"
)

// Log is the module's sole logger instance, mirroring the teacher's
// `Log = logger.With().Caller().Logger().Output(zerolog.ConsoleWriter{...})`
// construction.
var Log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
}
