// Package logger is a small printf-style facade over zerolog. Output goes to
// stderr so stdout stays free for rendered prompts and the MCP stdio stream.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

type Level = zerolog.Level

const (
	TraceLevel = zerolog.TraceLevel
	DebugLevel = zerolog.DebugLevel
	InfoLevel  = zerolog.InfoLevel
	WarnLevel  = zerolog.WarnLevel
	ErrorLevel = zerolog.ErrorLevel
	FatalLevel = zerolog.FatalLevel
	PanicLevel = zerolog.PanicLevel
)

var (
	mu     sync.RWMutex
	level  = InfoLevel
	output io.Writer = os.Stderr
	log    = newLogger(output, level)
)

func newLogger(w io.Writer, lvl Level) zerolog.Logger {
	console := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
		NoColor:    w != io.Writer(os.Stderr),
	}
	return zerolog.New(console).Level(lvl).With().Timestamp().Logger()
}

// ParseLevel accepts trace, debug, info, warn, error, fatal or panic.
// An empty string means info.
func ParseLevel(s string) (Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return InfoLevel, nil
	}
	lvl, err := zerolog.ParseLevel(s)
	if err != nil || lvl == zerolog.NoLevel || lvl == zerolog.Disabled {
		return InfoLevel, fmt.Errorf("invalid log level %q: use trace, debug, info, warn, error, fatal or panic", s)
	}
	return lvl, nil
}

func SetLevel(lvl Level) {
	mu.Lock()
	defer mu.Unlock()
	level = lvl
	log = newLogger(output, level)
}

func GetLevel() Level {
	mu.RLock()
	defer mu.RUnlock()
	return level
}

// SetOutput redirects log output, e.g. to tee into a log file.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
	log = newLogger(output, level)
}

func current() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return log
}

func Trace(format string, args ...any) {
	l := current()
	l.Trace().Msgf(format, args...)
}

func Debug(format string, args ...any) {
	l := current()
	l.Debug().Msgf(format, args...)
}

func Info(format string, args ...any) {
	l := current()
	l.Info().Msgf(format, args...)
}

func Warn(format string, args ...any) {
	l := current()
	l.Warn().Msgf(format, args...)
}

func Error(format string, args ...any) {
	l := current()
	l.Error().Msgf(format, args...)
}
