package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

var log = zerolog.New(zerolog.ConsoleWriter{
	Out:        os.Stderr,
	TimeFormat: time.TimeOnly,
}).With().Timestamp().Logger()

// SetLevel adjusts the global log level. Unknown names are ignored.
func SetLevel(level string) {
	if lvl, err := zerolog.ParseLevel(level); err == nil {
		log = log.Level(lvl)
	}
}

func event(e *zerolog.Event, component, msg string, fields map[string]any) {
	e = e.Str("component", component)
	for k, v := range fields {
		e = e.Interface(k, v)
	}
	e.Msg(msg)
}

func DebugCF(component, msg string, fields map[string]any) {
	event(log.Debug(), component, msg, fields)
}

func InfoC(component, msg string) {
	event(log.Info(), component, msg, nil)
}

func InfoCF(component, msg string, fields map[string]any) {
	event(log.Info(), component, msg, fields)
}

func WarnC(component, msg string) {
	event(log.Warn(), component, msg, nil)
}

func WarnCF(component, msg string, fields map[string]any) {
	event(log.Warn(), component, msg, fields)
}

func ErrorCF(component, msg string, fields map[string]any) {
	event(log.Error(), component, msg, fields)
}
