// Package logging provides config-driven categorized file-based logging.
// Logs are written to .glforge/logs/ with separate files per category.
// When debug mode is disabled every call is a silent no-op, so the server
// writes nothing in production.
package logging

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Category represents a log category/system.
type Category string

const (
	// CategoryBoot covers startup and wiring.
	CategoryBoot Category = "boot"

	// CategoryServer covers MCP transport activity.
	CategoryServer Category = "server"

	// CategoryTools covers tool dispatch and execution.
	CategoryTools Category = "tools"

	// CategoryGenerator covers contract text assembly.
	CategoryGenerator Category = "generator"

	// CategoryValidate covers input validation and code scanning.
	CategoryValidate Category = "validate"

	// CategoryDocs covers documentation fetches.
	CategoryDocs Category = "docs"
)

// Options controls logger behavior. It mirrors config.LoggingConfig to
// avoid a circular import.
type Options struct {
	DebugMode  bool
	Level      string
	Categories map[string]bool
	JSONFormat bool
}

// StructuredLogEntry is the JSON log line shape.
type StructuredLogEntry struct {
	Timestamp int64          `json:"ts"` // Unix milliseconds
	Category  string         `json:"cat"`
	Level     string         `json:"lvl"`
	Message   string         `json:"msg"`
	RequestID string         `json:"req,omitempty"`
	Fields    map[string]any `json:"fields,omitempty"`
}

// Logger wraps a standard logger with category and file output.
type Logger struct {
	category Category
	logger   *log.Logger
	file     *os.File
}

var (
	loggers   = make(map[Category]*Logger)
	loggersMu sync.RWMutex
	logsDir   string
	opts      Options
	optsMu    sync.RWMutex
	logLevel  int
)

// Log levels
const (
	LevelDebug = 0
	LevelInfo  = 1
	LevelWarn  = 2
	LevelError = 3
)

// Initialize sets up the logging directory with the given options.
// Should be called once at startup with the workspace path.
func Initialize(workspace string, o Options) error {
	if workspace == "" {
		return fmt.Errorf("workspace path required")
	}

	optsMu.Lock()
	opts = o
	switch o.Level {
	case "debug":
		logLevel = LevelDebug
	case "warn", "warning":
		logLevel = LevelWarn
	case "error":
		logLevel = LevelError
	default:
		logLevel = LevelInfo
	}
	optsMu.Unlock()

	logsDir = filepath.Join(workspace, ".glforge", "logs")

	// Silent no-op in production mode.
	if !o.DebugMode {
		return nil
	}

	if err := os.MkdirAll(logsDir, 0755); err != nil {
		return fmt.Errorf("failed to create logs directory: %w", err)
	}

	boot := Get(CategoryBoot)
	boot.Info("=== glforge logging initialized ===")
	boot.Info("Logs directory: %s", logsDir)
	boot.Info("Log level: %s", o.Level)
	return nil
}

// IsDebugMode returns whether debug logging is enabled.
func IsDebugMode() bool {
	optsMu.RLock()
	defer optsMu.RUnlock()
	return opts.DebugMode
}

// IsCategoryEnabled returns whether a specific category is enabled.
func IsCategoryEnabled(category Category) bool {
	optsMu.RLock()
	defer optsMu.RUnlock()

	if !opts.DebugMode {
		return false
	}
	if opts.Categories == nil {
		return true // All enabled by default in debug mode
	}
	enabled, exists := opts.Categories[string(category)]
	if !exists {
		return true // Enable by default if not specified
	}
	return enabled
}

// Get returns (or creates) a logger for the given category.
// Returns a no-op logger if debug mode or the category is disabled.
func Get(category Category) *Logger {
	if !IsCategoryEnabled(category) || logsDir == "" {
		return &Logger{category: category}
	}

	loggersMu.RLock()
	if l, ok := loggers[category]; ok {
		loggersMu.RUnlock()
		return l
	}
	loggersMu.RUnlock()

	loggersMu.Lock()
	defer loggersMu.Unlock()

	// Double-check after acquiring write lock
	if l, ok := loggers[category]; ok {
		return l
	}

	// Date-prefixed file name for easy rotation.
	date := time.Now().Format("2006-01-02")
	logPath := filepath.Join(logsDir, fmt.Sprintf("%s_%s.log", date, category))

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[logging] Warning: could not open log file %s: %v\n", logPath, err)
		return &Logger{category: category}
	}

	l := &Logger{
		category: category,
		file:     file,
		logger:   log.New(file, "", log.Ldate|log.Ltime|log.Lmicroseconds),
	}
	loggers[category] = l
	return l
}

// logJSON writes a structured JSON log entry.
func (l *Logger) logJSON(level, msg string) {
	entry := StructuredLogEntry{
		Timestamp: time.Now().UnixMilli(),
		Category:  string(l.category),
		Level:     level,
		Message:   msg,
	}
	data, err := json.Marshal(entry)
	if err != nil {
		l.logger.Printf("[%s] %s", level, msg) // Fallback to text
		return
	}
	l.logger.Printf("%s", data)
}

func (l *Logger) write(level string, levelNum int, format string, args ...any) {
	if l.logger == nil || logLevel > levelNum {
		return
	}
	msg := fmt.Sprintf(format, args...)
	optsMu.RLock()
	jsonFormat := opts.JSONFormat
	optsMu.RUnlock()
	if jsonFormat {
		l.logJSON(level, msg)
	} else {
		l.logger.Printf("[%s] %s", level, msg)
	}
}

// Debug logs a debug message (only if level <= debug).
func (l *Logger) Debug(format string, args ...any) {
	l.write("DEBUG", LevelDebug, format, args...)
}

// Info logs an informational message (only if level <= info).
func (l *Logger) Info(format string, args ...any) {
	l.write("INFO", LevelInfo, format, args...)
}

// Warn logs a warning message (only if level <= warn).
func (l *Logger) Warn(format string, args ...any) {
	l.write("WARN", LevelWarn, format, args...)
}

// Error logs an error message (always logged if the logger exists).
func (l *Logger) Error(format string, args ...any) {
	l.write("ERROR", LevelError, format, args...)
}

// CloseAll closes all open log files (call at shutdown).
func CloseAll() {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	for _, l := range loggers {
		if l.file != nil {
			l.file.Close()
		}
	}
	loggers = make(map[Category]*Logger)
}

// Convenience functions. No-ops when the category is disabled.

// Boot logs to the boot category.
func Boot(format string, args ...any) { Get(CategoryBoot).Info(format, args...) }

// BootDebug logs debug to the boot category.
func BootDebug(format string, args ...any) { Get(CategoryBoot).Debug(format, args...) }

// BootError logs error to the boot category.
func BootError(format string, args ...any) { Get(CategoryBoot).Error(format, args...) }

// Server logs to the server category.
func Server(format string, args ...any) { Get(CategoryServer).Info(format, args...) }

// ServerDebug logs debug to the server category.
func ServerDebug(format string, args ...any) { Get(CategoryServer).Debug(format, args...) }

// ServerError logs error to the server category.
func ServerError(format string, args ...any) { Get(CategoryServer).Error(format, args...) }

// Tools logs to the tools category.
func Tools(format string, args ...any) { Get(CategoryTools).Info(format, args...) }

// ToolsDebug logs debug to the tools category.
func ToolsDebug(format string, args ...any) { Get(CategoryTools).Debug(format, args...) }

// ToolsError logs error to the tools category.
func ToolsError(format string, args ...any) { Get(CategoryTools).Error(format, args...) }

// Generator logs to the generator category.
func Generator(format string, args ...any) { Get(CategoryGenerator).Info(format, args...) }

// GeneratorDebug logs debug to the generator category.
func GeneratorDebug(format string, args ...any) { Get(CategoryGenerator).Debug(format, args...) }

// Validate logs to the validate category.
func Validate(format string, args ...any) { Get(CategoryValidate).Info(format, args...) }

// ValidateDebug logs debug to the validate category.
func ValidateDebug(format string, args ...any) { Get(CategoryValidate).Debug(format, args...) }

// Docs logs to the docs category.
func Docs(format string, args ...any) { Get(CategoryDocs).Info(format, args...) }

// DocsError logs error to the docs category.
func DocsError(format string, args ...any) { Get(CategoryDocs).Error(format, args...) }

// RequestLogger provides request-scoped logging with a correlation ID.
type RequestLogger struct {
	logger    *Logger
	requestID string
}

// WithRequestID creates a request-scoped logger.
func WithRequestID(category Category, requestID string) *RequestLogger {
	return &RequestLogger{logger: Get(category), requestID: requestID}
}

func (r *RequestLogger) formatMsg(format string, args ...any) string {
	return fmt.Sprintf("[req:%s] %s", r.requestID, fmt.Sprintf(format, args...))
}

// Debug logs a request-scoped debug message.
func (r *RequestLogger) Debug(format string, args ...any) {
	r.logger.Debug("%s", r.formatMsg(format, args...))
}

// Info logs a request-scoped informational message.
func (r *RequestLogger) Info(format string, args ...any) {
	r.logger.Info("%s", r.formatMsg(format, args...))
}

// Error logs a request-scoped error message.
func (r *RequestLogger) Error(format string, args ...any) {
	r.logger.Error("%s", r.formatMsg(format, args...))
}

// Timer helps measure operation duration.
type Timer struct {
	category Category
	op       string
	start    time.Time
}

// StartTimer begins timing an operation.
func StartTimer(category Category, operation string) *Timer {
	return &Timer{category: category, op: operation, start: time.Now()}
}

// Stop ends the timer and logs the duration at debug level.
func (t *Timer) Stop() time.Duration {
	elapsed := time.Since(t.start)
	Get(t.category).Debug("%s completed in %v", t.op, elapsed)
	return elapsed
}
