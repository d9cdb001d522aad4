package logrus

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/unkn0wn-root/contactconv"
)

var _ contactconv.Logger = LogrusLogger{}

type LogrusLogger struct{ E *logrus.Entry }

// New builds a text logger writing to w at the given level.
func New(w io.Writer, level logrus.Level) LogrusLogger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(level)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return LogrusLogger{E: logrus.NewEntry(l)}
}

func (l LogrusLogger) Debug(msg string, f contactconv.Fields) {
	l.E.WithFields(logrus.Fields(f)).Debug(msg)
}
func (l LogrusLogger) Info(msg string, f contactconv.Fields) {
	l.E.WithFields(logrus.Fields(f)).Info(msg)
}
func (l LogrusLogger) Warn(msg string, f contactconv.Fields) {
	l.E.WithFields(logrus.Fields(f)).Warn(msg)
}
func (l LogrusLogger) Error(msg string, f contactconv.Fields) {
	l.E.WithFields(logrus.Fields(f)).Error(msg)
}
