package search

import (
	"io"

	"github.com/sirupsen/logrus"
)

// discard receives records when no logger was configured.
var discard logrus.FieldLogger = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)
	return l
}()
