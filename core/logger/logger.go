// Package logger wraps logrus with per-component entries.
package logger

import (
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

var once sync.Once

// New returns a logger entry tagged with the component name.
// Level comes from LOG_LEVEL (debug, info, warn, error); default info.
func New(component string) *logrus.Entry {
	once.Do(func() {
		if lvl, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
			logrus.SetLevel(lvl)
		}
	})
	return logrus.WithField("component", component)
}
