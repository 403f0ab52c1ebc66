package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

// GetLogFlag return the CLI flag parameter used to setup application log level
func GetLogFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:  "log-level",
		Usage: "Set the application log level (trace, debug, info, warn, error)",
		Value: "info",
	}
}

// ConfigureLogger configure the global logger using given log level (read from cli context).
// Logs are written in human readable form to the application error writer, stderr by default,
// so that they never mix with the command output.
func ConfigureLogger(ctx *cli.Context) {
	var out io.Writer = os.Stderr
	if ctx.App != nil && ctx.App.ErrWriter != nil {
		out = ctx.App.ErrWriter
	}

	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}).
		With().
		Timestamp().
		Logger()

	// Set application log level
	lvl, err := zerolog.ParseLevel(ctx.String("log-level"))
	if err != nil || lvl == zerolog.NoLevel {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		log.Warn().Str("level", ctx.String("log-level")).Msg("Unknown log level, using info")
		return
	}

	zerolog.SetGlobalLevel(lvl)
}
