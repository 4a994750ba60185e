package client

import "log/slog"

// Notifier surfaces non-fatal, user-visible notifications. Every error the
// store or session recovers from ends up here instead of propagating.
type Notifier interface {
	Success(msg string)
	Info(msg string)
	Error(msg string)
}

// SlogNotifier logs notifications through a structured logger. It is the
// default for headless use of the client core.
type SlogNotifier struct {
	Logger *slog.Logger
}

func (n SlogNotifier) logger() *slog.Logger {
	if n.Logger != nil {
		return n.Logger
	}
	return slog.Default()
}

func (n SlogNotifier) Success(msg string) { n.logger().Info(msg, slog.String("kind", "success")) }
func (n SlogNotifier) Info(msg string)    { n.logger().Info(msg, slog.String("kind", "info")) }
func (n SlogNotifier) Error(msg string)   { n.logger().Warn(msg, slog.String("kind", "error")) }

// NopNotifier drops all notifications.
type NopNotifier struct{}

func (NopNotifier) Success(string) {}
func (NopNotifier) Info(string)    {}
func (NopNotifier) Error(string)   {}
