package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup points the global zerolog logger at a console writer on stderr.
// Debug enables request tracing; otherwise only warnings and errors show.
func Setup(debug bool, colors bool) {
	SetupWriter(os.Stderr, debug, colors)
}

// SetupWriter is Setup with an explicit destination
func SetupWriter(w io.Writer, debug bool, colors bool) {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    !colors,
		TimeFormat: time.Kitchen,
	}).With().Timestamp().Logger()
}
