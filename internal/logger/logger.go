package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

const (
	debugLvl = "debug"
	infoLvl  = "info"
	warnLvl  = "warn"
	errorLvl = "error"

	sessionField = "session"
)

type Logger interface {
	Debug(msg string, msgArgs ...any)
	Info(msg string, msgArgs ...any)
	Warn(msg string, msgArgs ...any)
	Error(msg string, msgArgs ...any)
	WithSession(id string) Logger
}

// ZLBasedLogger - 'Zerolog' based implementation of Logger interface.
type ZLBasedLogger struct {
	logger zerolog.Logger
}

func NewLogger(lvl string) *ZLBasedLogger {
	return newLogger(lvl, os.Stdout)
}

func newLogger(lvl string, out io.Writer) *ZLBasedLogger {
	logger := zerolog.New(out).
		Level(parseLevel(lvl)).
		With().
		Timestamp().
		CallerWithSkipFrameCount(3).
		Logger()

	return &ZLBasedLogger{logger: logger}
}

func parseLevel(lvl string) zerolog.Level {
	switch strings.ToLower(lvl) {
	case errorLvl:
		return zerolog.ErrorLevel
	case warnLvl:
		return zerolog.WarnLevel
	case infoLvl:
		return zerolog.InfoLevel
	case debugLvl:
		return zerolog.DebugLevel
	default:
		return zerolog.InfoLevel
	}
}

func (l *ZLBasedLogger) Debug(msg string, msgArgs ...any) {
	l.logger.Debug().Msgf(msg, msgArgs...)
}

func (l *ZLBasedLogger) Info(msg string, msgArgs ...any) {
	l.logger.Info().Msgf(msg, msgArgs...)
}

func (l *ZLBasedLogger) Warn(msg string, msgArgs ...any) {
	l.logger.Warn().Msgf(msg, msgArgs...)
}

func (l *ZLBasedLogger) Error(msg string, msgArgs ...any) {
	l.logger.Error().Msgf(msg, msgArgs...)
}

// WithSession returns a logger tagging every event with the session id.
func (l *ZLBasedLogger) WithSession(id string) Logger {
	return &ZLBasedLogger{logger: l.logger.With().Str(sessionField, id).Logger()}
}

// Nop discards everything.
func Nop() *ZLBasedLogger {
	return &ZLBasedLogger{logger: zerolog.Nop()}
}
