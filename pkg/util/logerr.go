package util

import (
	"github.com/sirupsen/logrus"
)

// LogErr logs err through logger with an optional message and returns true
// when err is not nil.
// Examples:
// LogErr(logger, err)
// LogErr(logger, err, "failed to close dataset")
// LogErr(logger, err, "failed to close dataset %s", name)
func LogErr(logger logrus.FieldLogger, err error, msgAndArgs ...interface{}) bool {
	if err == nil {
		return false
	}

	entry := logger.WithError(err)
	switch {
	case len(msgAndArgs) == 0:
		entry.Error(err.Error())
	case len(msgAndArgs) == 1:
		entry.Error(msgAndArgs[0].(string))
	default:
		entry.Errorf(msgAndArgs[0].(string), msgAndArgs[1:]...)
	}

	return true
}
