package logger

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

const timeFormat = "2006-01-02T15:04:05.000Z07:00"

var once sync.Once
var Log zerolog.Logger

func configureLogger() {
	zerolog.TimeFieldFormat = timeFormat

	output := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: timeFormat,
	}

	Log = zerolog.New(output).With().Timestamp().Logger()
}

func GetLoggerConfigured(level zerolog.Level) *zerolog.Logger {
	once.Do(func() {
		configureLogger()
		zerolog.SetGlobalLevel(level)
	})
	return &Log
}

func GetLogger() *zerolog.Logger {
	once.Do(func() {
		configureLogger()
	})
	return &Log
}

// ParseLevel is zerolog.ParseLevel with an empty string meaning info.
func ParseLevel(s string) (zerolog.Level, error) {
	if strings.TrimSpace(s) == "" {
		return zerolog.InfoLevel, nil
	}
	return zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
}

// NewActivityLog returns a logger for the per-event activity log. The
// activity log is meant to be read by people, so it is written in console
// format without colours and without wall-clock timestamps; every event
// carries the simulation tick instead.
func NewActivityLog(w io.Writer, level zerolog.Level) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:     w,
		NoColor: true,
		PartsExclude: []string{
			zerolog.TimestampFieldName,
		},
	}
	return zerolog.New(output).Level(level)
}

// OpenActivityLog creates (or truncates) the file at path and returns an
// activity logger writing to it. The caller must close the file.
func OpenActivityLog(path string, level zerolog.Level) (zerolog.Logger, *os.File, error) {
	f, err := os.Create(path)
	if err != nil {
		return zerolog.Nop(), nil, err
	}
	return NewActivityLog(f, level), f, nil
}
