package panels

import (
	"io"

	"github.com/sirupsen/logrus"
)

var logger logrus.FieldLogger = discardLogger()

// SetLogger routes panel diagnostics to l. Passing nil silences them again.
// It must not be called while layout passes are running.
func SetLogger(l logrus.FieldLogger) {
	if l == nil {
		l = discardLogger()
	}
	logger = l
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
