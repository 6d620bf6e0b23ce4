// Package service holds the doctor and patient use cases. Services speak in
// wire records and return *apperror.Error for every failure a client can act on;
// anything else is an infrastructure error wrapped with context.
package service

import (
	"github.com/sirupsen/logrus"
)

func withLogger(log logrus.FieldLogger) logrus.FieldLogger {
	if log == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		return l
	}
	return log
}
