package common

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Log is the service-wide logger: the logrus standard logger configured
// for JSON output with the service identity attached to every entry, so
// package-level logrus calls land on the same configured logger.
var Log *logrus.Logger

func init() {
	Log = logrus.StandardLogger()
	Log.Out = os.Stdout
	Log.Formatter = &logrus.JSONFormatter{}
	Log.AddHook(&DefaultFieldsHook{})
}

type DefaultFieldsHook struct {
}

func (hook *DefaultFieldsHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (hook *DefaultFieldsHook) Fire(e *logrus.Entry) error {
	e.Data["serviceName"] = GetServiceName()
	e.Data["serviceInstance"] = GetServiceInstance()
	return nil
}
