package logger

// Logger defines the logging interface
type Logger interface {
	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	Fatal(args ...interface{})
	Panic(args ...interface{})

	// With returns a Logger that attaches the key/value pair to every record,
	// e.g. With("component", "rsa-signer").
	With(key string, value interface{}) Logger
}
