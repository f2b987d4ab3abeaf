// Package logging provides the logger used across gravclock. It uses
// logrus under the hood.
package logging

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

type Logger interface {
	Tracef(format string, args ...any)
	Debugf(format string, args ...any)
	Debug(args ...any)
	Infof(format string, args ...any)
	Info(args ...any)
	Warningf(format string, args ...any)
	Errorf(format string, args ...any)
	Error(args ...any)
	WithField(key string, value any) *logrus.Entry
	WithFields(fields logrus.Fields) *logrus.Entry
}

type logger struct {
	*logrus.Logger
}

func New(w io.Writer, level logrus.Level) Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(level)
	l.Formatter = &logrus.TextFormatter{
		FullTimestamp: true,
	}
	return &logger{Logger: l}
}

// Discard returns a logger that writes nowhere.
func Discard() Logger {
	return New(io.Discard, logrus.PanicLevel)
}

// FromVerbosity builds a logger from a verbosity name or number:
// 0=silent, 1=error, 2=warn, 3=info, 4=debug, 5=trace.
func FromVerbosity(w io.Writer, verbosity string) (Logger, error) {
	switch verbosity {
	case "0", "silent":
		return Discard(), nil
	case "1", "error":
		return New(w, logrus.ErrorLevel), nil
	case "2", "warn":
		return New(w, logrus.WarnLevel), nil
	case "3", "info":
		return New(w, logrus.InfoLevel), nil
	case "4", "debug":
		return New(w, logrus.DebugLevel), nil
	case "5", "trace":
		return New(w, logrus.TraceLevel), nil
	default:
		return nil, fmt.Errorf("unknown verbosity level %q", verbosity)
	}
}
