package logger

import (
	"context"
	"os"

	"github.com/rs/zerolog"
)

func InitLogger() *zerolog.Logger {
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}

	logger := zerolog.New(consoleWriter).
		With().
		Timestamp().
		Caller().
		Logger()
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.DefaultContextLogger = &logger
	return &logger
}

// SetLevel adjusts the global level from a config string, falling back to
// debug for unknown values.
func SetLevel(level string) {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil || parsed == zerolog.NoLevel {
		parsed = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(parsed)
}

func Logger(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithWatcher returns a context whose logger is tagged with the watcher name,
// so every line emitted by a watch loop carries its identity.
func WithWatcher(ctx context.Context, name string) context.Context {
	log := zerolog.Ctx(ctx).With().Str("watcher", name).Logger()
	return log.WithContext(ctx)
}
