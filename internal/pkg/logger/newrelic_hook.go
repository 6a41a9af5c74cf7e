package logger

import (
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/sirupsen/logrus"
)

// NewRelicHook forwards log entries to the New Relic agent
type NewRelicHook struct {
	app *newrelic.Application
}

// NewNewRelicHook creates a logrus hook backed by the given agent
func NewNewRelicHook(app *newrelic.Application) *NewRelicHook {
	return &NewRelicHook{app: app}
}

// Levels returns the levels this hook handles
func (h *NewRelicHook) Levels() []logrus.Level {
	return []logrus.Level{
		logrus.PanicLevel,
		logrus.FatalLevel,
		logrus.ErrorLevel,
		logrus.WarnLevel,
		logrus.InfoLevel,
	}
}

// Fire records the log entry with the agent
func (h *NewRelicHook) Fire(entry *logrus.Entry) error {
	if h.app == nil {
		return nil
	}

	attrs := make(map[string]interface{}, len(entry.Data))
	for k, v := range entry.Data {
		attrs[k] = v
	}

	h.app.RecordLog(newrelic.LogData{
		Timestamp:  entry.Time.UnixMilli(),
		Message:    entry.Message,
		Severity:   entry.Level.String(),
		Attributes: attrs,
	})
	return nil
}
