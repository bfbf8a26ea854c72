// Package logx is the logging facade shared by every layer. Production code
// gets a zap-backed implementation, tests get a recorder or Nop.
package logx

import "time"

type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	// With returns a child that prepends fields to every entry.
	With(fields ...Field) Logger
	Sync() error
}

// Field is one structured key/value. Adapters pick the encoding from the dynamic type of Value.
type Field struct {
	Key   string
	Value any
}

func Any(key string, value any) Field                { return Field{Key: key, Value: value} }
func String(key, value string) Field                 { return Field{Key: key, Value: value} }
func Int(key string, value int) Field                { return Field{Key: key, Value: value} }
func Int64(key string, value int64) Field            { return Field{Key: key, Value: value} }
func Bool(key string, value bool) Field              { return Field{Key: key, Value: value} }
func Duration(key string, value time.Duration) Field { return Field{Key: key, Value: value} }

// Err files err under "error". A nil err is dropped by the zap adapter.
func Err(err error) Field {
	return Field{Key: "error", Value: err}
}
