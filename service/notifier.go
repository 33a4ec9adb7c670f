package application

import "github.com/sirupsen/logrus"

// Notifier is the toast/alert surface. The UI supplies its own
// implementation, LogNotifier is the default for headless use.
type Notifier interface {
	Success(message string)
	Error(message string)
	Info(message string)
}

type LogNotifier struct {
	logger *logrus.Logger
}

func NewLogNotifier(logger *logrus.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Success(message string) {
	n.logger.WithField("notice", "success").Info(message)
}

func (n *LogNotifier) Error(message string) {
	n.logger.WithField("notice", "error").Warn(message)
}

func (n *LogNotifier) Info(message string) {
	n.logger.WithField("notice", "info").Info(message)
}
