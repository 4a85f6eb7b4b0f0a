package logger

import "log"

// A LoggerOptFn is a functional option configuring a KestrelLogger when constructing a new one.
type LoggerOptFn func(*KestrelLogger)

// WithEnv sets the environment KestrelLogger is operating in.
func WithEnv(env string) func(*KestrelLogger) {
	return func(l *KestrelLogger) {
		l.env = env
	}
}

// WithLevel sets the log level KestrelLogger uses.
func WithLevel(level LogLevel) func(*KestrelLogger) {
	return func(l *KestrelLogger) {
		l.ll = level
	}
}

// WithLogger sets the log.Logger KestrelLogger uses.
func WithLogger(log *log.Logger) func(*KestrelLogger) {
	return func(l *KestrelLogger) {
		l.l = log
	}
}

// WithSkip sets the number of frames in the call stack
// to skip in order to log the desired file and line number
// of the calling code.
func WithSkip(skip int) func(*KestrelLogger) {
	return func(l *KestrelLogger) {
		l.skip = skip
	}
}
