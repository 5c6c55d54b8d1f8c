package logger

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/amanhimself/blog/config"
)

type Logger interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

type zerologLogger struct {
	log zerolog.Logger
}

func New(cfg *config.Config) Logger {
	var log zerolog.Logger
	if cfg.App.Env == config.Local {
		log = zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger()
	} else {
		log = zerolog.New(os.Stdout).With().Timestamp().Logger()
	}

	return &zerologLogger{log: log}
}

func (l *zerologLogger) Info(format string, args ...any) {
	l.log.Info().Msgf(format, args...)
}

func (l *zerologLogger) Warn(format string, args ...any) {
	l.log.Warn().Msgf(format, args...)
}

func (l *zerologLogger) Error(format string, args ...any) {
	l.log.Error().Msgf(format, args...)
}
