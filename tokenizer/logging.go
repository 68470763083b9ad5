package tokenizer

import "github.com/sirupsen/logrus"

// log is the package-level logger. The tokenizer and tree builder only
// ever log at Debug level and only on silent-recovery branches —
// nothing here changes the returned tree.
var log = logrus.New()

func logRecoveredf(field string, value interface{}, format string, args ...interface{}) {
	log.WithField(field, value).Debugf(format, args...)
}
