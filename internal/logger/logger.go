// Package logger is a thin logrus wrapper. Every entry carries an event name
// plus optional data and error fields.
package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

var log = newLogger(os.Stderr)

func newLogger(out io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	l.SetLevel(logrus.InfoLevel)
	return l
}

// Init configures level ("debug", "info", ...) and format ("text" or "json")
func Init(level, format string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	log.SetLevel(lvl)
	if format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return nil
}

// SetOutput redirects log output, mostly for tests
func SetOutput(out io.Writer) {
	log.SetOutput(out)
}

// Logger exposes the underlying logrus logger for integrations such as gin
func Logger() *logrus.Logger {
	return log
}

func entry(event string, data interface{}, err error) *logrus.Entry {
	fields := logrus.Fields{"event": event}
	if data != nil {
		fields["data"] = data
	}
	e := log.WithFields(fields)
	if err != nil {
		e = e.WithError(err)
	}
	return e
}

func Debug(event string, data interface{}) {
	entry(event, data, nil).Debug()
}

func Info(event string, data interface{}) {
	entry(event, data, nil).Info()
}

func Warn(event string, data interface{}, err error) {
	entry(event, data, err).Warn()
}

func Error(event string, data interface{}, err error) {
	entry(event, data, err).Error()
}
