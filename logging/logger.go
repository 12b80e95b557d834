package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
	"time"
)

// LogLevel represents the severity level of a log message
type LogLevel int

// Log level constants define the severity hierarchy for filtering log output
const (
	DEBUG LogLevel = iota // DEBUG is the lowest severity level for detailed diagnostics
	INFO                  // INFO is for general informational messages
	WARN                  // WARN is for warning messages that don't prevent operation
	ERROR                 // ERROR is the highest severity for error conditions
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

// ParseLogLevel converts a string to a LogLevel
func ParseLogLevel(s string) LogLevel {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return DEBUG
	case "INFO":
		return INFO
	case "WARN":
		return WARN
	case "ERROR":
		return ERROR
	default:
		return INFO
	}
}

// Logger provides structured logging with configurable levels
type Logger struct {
	mu     sync.Mutex
	level  LogLevel
	logger *log.Logger
	prefix string
}

// New creates a new Logger with the specified level
func New(level LogLevel, prefix string) *Logger {
	return &Logger{
		level:  level,
		logger: log.New(os.Stderr, "", log.LstdFlags),
		prefix: prefix,
	}
}

// NewWithWriter creates a new Logger with custom output writer
func NewWithWriter(level LogLevel, prefix string, w io.Writer) *Logger {
	return &Logger{
		level:  level,
		logger: log.New(w, "", log.LstdFlags),
		prefix: prefix,
	}
}

// SetLevel changes the log level
func (l *Logger) SetLevel(level LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// GetLevel returns the current log level
func (l *Logger) GetLevel() LogLevel {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

// shouldLog checks if a message at the given level should be logged
func (l *Logger) shouldLog(level LogLevel) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return level >= l.level
}

// log writes a log message with the given level and fields
func (l *Logger) log(level LogLevel, msg string, fields map[string]interface{}) {
	if !l.shouldLog(level) {
		return
	}

	// Build structured log message
	var sb strings.Builder

	// Add prefix if set
	if l.prefix != "" {
		sb.WriteString(l.prefix)
		sb.WriteString(" ")
	}

	// Add level
	sb.WriteString(level.String())
	sb.WriteString(": ")

	// Add message
	sb.WriteString(msg)

	// Add fields
	if len(fields) > 0 {
		sb.WriteString(" |")
		for k, v := range fields {
			sb.WriteString(fmt.Sprintf(" %s=%v", k, v))
		}
	}

	l.logger.Println(sb.String())
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.log(DEBUG, msg, fields)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.log(INFO, msg, fields)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.log(WARN, msg, fields)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.log(ERROR, msg, fields)
}

// PipelineEvent represents a type of catalog pipeline event
type PipelineEvent string

// Pipeline event constants identify the lifecycle of a processing run
const (
	EventRunStarted      PipelineEvent = "run_started"       // EventRunStarted indicates a pipeline run began
	EventRunFinished     PipelineEvent = "run_finished"      // EventRunFinished indicates a pipeline run completed
	EventRuleSetLoaded   PipelineEvent = "rule_set_loaded"   // EventRuleSetLoaded indicates a rules file was loaded
	EventCacheInvalidate PipelineEvent = "cache_invalidated" // EventCacheInvalidate indicates the classify cache was cleared
)

// LogRunStarted logs the start of a pipeline run (DEBUG level)
func (l *Logger) LogRunStarted(runID string, records int, modes []string) {
	l.Debug("Pipeline run started", map[string]interface{}{
		"event":   EventRunStarted,
		"runID":   runID,
		"records": records,
		"modes":   strings.Join(modes, ","),
	})
}

// LogRunFinished logs the completion of a pipeline run (INFO level)
func (l *Logger) LogRunFinished(runID string, kept, dropped int, elapsed time.Duration) {
	l.Info("Pipeline run finished", map[string]interface{}{
		"event":   EventRunFinished,
		"runID":   runID,
		"kept":    kept,
		"dropped": dropped,
		"elapsed": elapsed.String(),
	})
}

// LogRuleSetLoaded logs a successful rules file load (INFO level)
func (l *Logger) LogRuleSetLoaded(path string, usingDefaults bool) {
	l.Info("Rule set loaded", map[string]interface{}{
		"event":    EventRuleSetLoaded,
		"path":     path,
		"defaults": usingDefaults,
	})
}

// LogCacheInvalidated logs a classify cache invalidation (DEBUG level)
func (l *Logger) LogCacheInvalidated(entries int) {
	l.Debug("Classification cache invalidated", map[string]interface{}{
		"event":   EventCacheInvalidate,
		"entries": entries,
	})
}
