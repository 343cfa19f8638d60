package contracts

// Field is a single structured logging key/value pair.
type Field struct {
	Key   string
	Value any
}

// String builds a string-valued Field.
func String(key, val string) Field {
	return Field{Key: key, Value: val}
}

// Int builds an int-valued Field.
func Int(key string, val int) Field {
	return Field{Key: key, Value: val}
}

// Float64 builds a float64-valued Field.
func Float64(key string, val float64) Field {
	return Field{Key: key, Value: val}
}

// Err builds an error-valued Field under the conventional "error" key.
func Err(err error) Field {
	return Field{Key: "error", Value: err}
}

// Logger provides methods to record messages at different levels. The
// fractal pipeline only ever reads from it; implementations must be safe
// for concurrent use.
type Logger interface {
	Info(msg string, fields ...Field)
	Debug(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}
