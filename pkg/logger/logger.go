package logger

// Field is a single structured logging attribute.
type Field struct {
	Key   string
	Value any
}

func NewField(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// Logger is the logging contract used across the service. Adapters
// (pkg/logger/zap_adapter) bind it to a concrete backend.
type Logger interface {
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	With(fields ...Field) Logger
}
