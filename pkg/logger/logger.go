package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"
	"sync"
	"time"
)

// LogLevel represents the severity level of a log message
type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
)

func (l LogLevel) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger writes leveled lines with key/value fields. Build helpers print
// tool output on stdout, so the logger defaults to stderr.
type Logger struct {
	level  *levelVar
	logger *log.Logger
	fields map[string]interface{}
	mode   string // build phase, e.g. "generate" or "compile"
	format string
}

// levelVar is shared between a logger and the loggers derived from it,
// so SetLevel on the root applies to every component logger.
type levelVar struct {
	mu    sync.RWMutex
	level LogLevel
}

func (v *levelVar) get() LogLevel {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.level
}

func (v *levelVar) set(level LogLevel) {
	v.mu.Lock()
	v.level = level
	v.mu.Unlock()
}

type Config struct {
	Level  LogLevel
	Output io.Writer
	Format string // "json" or "text" (default)
	Mode   string
}

func New() *Logger {
	return NewWithConfig(Config{
		Level:  INFO,
		Output: os.Stderr,
		Format: "text",
	})
}

func NewWithConfig(config Config) *Logger {
	if config.Output == nil {
		config.Output = os.Stderr
	}

	return &Logger{
		level:  &levelVar{level: config.Level},
		logger: log.New(config.Output, "", 0),
		fields: make(map[string]interface{}),
		mode:   config.Mode,
		format: config.Format,
	}
}

func (l *Logger) derive(mode string) *Logger {
	newLogger := &Logger{
		level:  l.level,
		logger: l.logger,
		fields: make(map[string]interface{}, len(l.fields)),
		mode:   mode,
		format: l.format,
	}
	for k, v := range l.fields {
		newLogger.fields[k] = v
	}
	return newLogger
}

func (l *Logger) WithFields(keyVals ...interface{}) *Logger {
	newLogger := l.derive(l.mode)

	for i := 0; i < len(keyVals); i += 2 {
		if i+1 < len(keyVals) {
			key := fmt.Sprintf("%v", keyVals[i])
			newLogger.fields[key] = keyVals[i+1]
		}
	}

	return newLogger
}

// WithField returns a logger carrying one extra field, e.g. component=protoc.
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return l.WithFields(key, value)
}

// WithMode returns a logger tagged with a different phase.
func (l *Logger) WithMode(mode string) *Logger {
	return l.derive(mode)
}

func (l *Logger) Debug(msg string, keyVals ...interface{}) {
	l.log(DEBUG, msg, keyVals...)
}

func (l *Logger) Info(msg string, kv ...interface{}) {
	l.log(INFO, msg, kv...)
}

func (l *Logger) Warn(msg string, kv ...interface{}) {
	l.log(WARN, msg, kv...)
}

func (l *Logger) Error(msg string, kv ...interface{}) {
	l.log(ERROR, msg, kv...)
}

func (l *Logger) log(level LogLevel, msg string, kv ...interface{}) {
	if level < l.level.get() {
		return
	}

	timestamp := time.Now().Format("2006-01-02T15:04:05.000Z07:00")

	allFields := make(map[string]interface{}, len(l.fields)+len(kv)/2)
	for k, v := range l.fields {
		allFields[k] = v
	}

	for i := 0; i < len(kv); i += 2 {
		if i+1 < len(kv) {
			key := fmt.Sprintf("%v", kv[i])
			allFields[key] = kv[i+1]
		}
	}

	if l.format == "json" {
		l.logger.Print(l.formatJSONLine(timestamp, level, msg, allFields))
		return
	}
	l.logger.Print(l.formatLogLine(timestamp, level, msg, allFields))
}

func (l *Logger) formatLogLine(timestamp string, level LogLevel, msg string, fields map[string]interface{}) string {
	var parts []string

	parts = append(parts, fmt.Sprintf("[%s]", timestamp))
	parts = append(parts, fmt.Sprintf("[%s]", level.String()))

	if l.mode != "" {
		parts = append(parts, fmt.Sprintf("[%s]", l.mode))
	}

	parts = append(parts, msg)

	if len(fields) > 0 {
		keys := sortedKeys(fields)
		fieldParts := make([]string, 0, len(keys))
		for _, key := range keys {
			fieldParts = append(fieldParts, fmt.Sprintf("%s=%s", key, formatValue(fields[key])))
		}
		parts = append(parts, fmt.Sprintf("| %s", strings.Join(fieldParts, " ")))
	}

	return strings.Join(parts, " ")
}

func (l *Logger) formatJSONLine(timestamp string, level LogLevel, msg string, fields map[string]interface{}) string {
	entry := make(map[string]interface{}, len(fields)+4)
	for k, v := range fields {
		switch value := v.(type) {
		case error:
			entry[k] = value.Error()
		case time.Duration:
			entry[k] = value.String()
		default:
			entry[k] = value
		}
	}
	entry["ts"] = timestamp
	entry["level"] = level.String()
	entry["msg"] = msg
	if l.mode != "" {
		entry["mode"] = l.mode
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return l.formatLogLine(timestamp, level, msg, fields)
	}
	return string(data)
}

func sortedKeys(fields map[string]interface{}) []string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func formatValue(value interface{}) string {
	switch v := value.(type) {
	case string:
		if strings.Contains(v, " ") {
			return fmt.Sprintf(`"%s"`, v)
		}
		return v
	case []string:
		return fmt.Sprintf("[%s]", strings.Join(v, ","))
	case error:
		return fmt.Sprintf(`"%s"`, v.Error())
	case time.Duration:
		return v.String()
	case time.Time:
		return v.Format("2006-01-02T15:04:05Z07:00")
	default:
		return fmt.Sprintf("%v", v)
	}
}

func (l *Logger) SetLevel(level LogLevel) {
	l.level.set(level)
}

func (l *Logger) GetLevel() LogLevel {
	return l.level.get()
}

// SetOutput redirects this logger and every logger derived from it.
func (l *Logger) SetOutput(w io.Writer) {
	l.logger.SetOutput(w)
}

func (l *Logger) IsDebugEnabled() bool {
	return l.level.get() <= DEBUG
}

func (l *Logger) IsInfoEnabled() bool {
	return l.level.get() <= INFO
}

// global logger instance for the convenience
var globalLogger = New()

// Default returns the process-wide logger.
func Default() *Logger {
	return globalLogger
}

func Debug(msg string, keyvals ...interface{}) {
	globalLogger.Debug(msg, keyvals...)
}

func Info(msg string, keyvals ...interface{}) {
	globalLogger.Info(msg, keyvals...)
}

func Warn(msg string, keyvals ...interface{}) {
	globalLogger.Warn(msg, keyvals...)
}

func Error(msg string, keyvals ...interface{}) {
	globalLogger.Error(msg, keyvals...)
}

func WithFields(keyvals ...interface{}) *Logger {
	return globalLogger.WithFields(keyvals...)
}

func WithField(key string, value interface{}) *Logger {
	return globalLogger.WithField(key, value)
}

func SetLevel(level LogLevel) {
	globalLogger.SetLevel(level)
}

func SetFormat(format string) {
	globalLogger.format = format
}

func SetOutput(w io.Writer) {
	globalLogger.SetOutput(w)
}

func ParseLevel(level string) (LogLevel, error) {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return DEBUG, nil
	case "INFO":
		return INFO, nil
	case "WARN", "WARNING":
		return WARN, nil
	case "ERROR":
		return ERROR, nil
	default:
		return INFO, fmt.Errorf("unknown log level: %s", level)
	}
}
