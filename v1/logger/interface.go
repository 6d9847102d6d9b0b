package logger

// Logger defines the logging contract used across msgcodec packages.
// Every call takes a message, an optional error and optional structured fields.
//
// This interface is implemented by the concrete *LoggerClient type.
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Debug(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
}
