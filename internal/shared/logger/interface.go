package logger

import "log/slog"

// Interface is the structured logger injected into application services and
// use cases so they stay testable without the process-wide logger.
type Interface interface {
	Debugw(msg string, keysAndValues ...interface{})
	Infow(msg string, keysAndValues ...interface{})
	Warnw(msg string, keysAndValues ...interface{})
	Errorw(msg string, keysAndValues ...interface{})
	With(args ...any) Interface
	Named(name string) Interface
}

type slogLogger struct {
	logger *slog.Logger
}

func NewLogger() Interface {
	return &slogLogger{logger: Get()}
}

func NewLoggerWithSlog(l *slog.Logger) Interface {
	return &slogLogger{logger: l}
}

func (l *slogLogger) Debugw(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l *slogLogger) Infow(msg string, keysAndValues ...interface{}) {
	l.logger.Info(msg, keysAndValues...)
}

func (l *slogLogger) Warnw(msg string, keysAndValues ...interface{}) {
	l.logger.Warn(msg, keysAndValues...)
}

func (l *slogLogger) Errorw(msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, keysAndValues...)
}

func (l *slogLogger) With(args ...any) Interface {
	return &slogLogger{logger: l.logger.With(args...)}
}

func (l *slogLogger) Named(name string) Interface {
	return &slogLogger{logger: l.logger.With("logger", name)}
}

// Nop returns a logger that discards everything. Intended for tests.
func Nop() Interface {
	return &nopLogger{}
}

type nopLogger struct{}

func (n *nopLogger) Debugw(string, ...interface{}) {}
func (n *nopLogger) Infow(string, ...interface{})  {}
func (n *nopLogger) Warnw(string, ...interface{})  {}
func (n *nopLogger) Errorw(string, ...interface{}) {}
func (n *nopLogger) With(...any) Interface         { return n }
func (n *nopLogger) Named(string) Interface        { return n }
