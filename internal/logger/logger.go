package logger

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

type Fields map[string]any

var root = zerolog.New(zerolog.ConsoleWriter{
	Out:        os.Stderr,
	TimeFormat: time.RFC3339,
}).With().Timestamp().Logger()

// Setup adjusts the global log level. Unknown levels fall back to info.
func Setup(level string) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		root = root.Level(zerolog.DebugLevel)
	case "warn":
		root = root.Level(zerolog.WarnLevel)
	case "error":
		root = root.Level(zerolog.ErrorLevel)
	default:
		root = root.Level(zerolog.InfoLevel)
	}
}

func Debug(message string, fields Fields) {
	emit(root.Debug(), fields).Msg(message)
}

func Info(message string, fields Fields) {
	emit(root.Info(), fields).Msg(message)
}

func Warn(message string, fields Fields) {
	emit(root.Warn(), fields).Msg(message)
}

func Error(message string, err error, fields Fields) {
	event := root.Error()
	if err != nil {
		event = event.Err(err)
	}
	emit(event, fields).Msg(message)
}

func emit(event *zerolog.Event, fields Fields) *zerolog.Event {
	for key, value := range fields {
		event = event.Interface(key, value)
	}
	return event
}
