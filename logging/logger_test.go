package logging

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected LogLevel
	}{
		{"DEBUG", DEBUG},
		{"debug", DEBUG},
		{"INFO", INFO},
		{"info", INFO},
		{"WARN", WARN},
		{"warn", WARN},
		{"ERROR", ERROR},
		{"error", ERROR},
		{"invalid", INFO}, // default to INFO
		{"", INFO},        // default to INFO
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := ParseLogLevel(tt.input)
			if result != tt.expected {
				t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestLogLevelString(t *testing.T) {
	tests := []struct {
		level    LogLevel
		expected string
	}{
		{DEBUG, "DEBUG"},
		{INFO, "INFO"},
		{WARN, "WARN"},
		{ERROR, "ERROR"},
		{LogLevel(999), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			result := tt.level.String()
			if result != tt.expected {
				t.Errorf("LogLevel(%d).String() = %q, want %q", tt.level, result, tt.expected)
			}
		})
	}
}

func TestLoggerSetGetLevel(t *testing.T) {
	logger := New(INFO, "test")

	if logger.GetLevel() != INFO {
		t.Errorf("Initial level = %v, want %v", logger.GetLevel(), INFO)
	}

	logger.SetLevel(DEBUG)
	if logger.GetLevel() != DEBUG {
		t.Errorf("After SetLevel(DEBUG), level = %v, want %v", logger.GetLevel(), DEBUG)
	}

	logger.SetLevel(ERROR)
	if logger.GetLevel() != ERROR {
		t.Errorf("After SetLevel(ERROR), level = %v, want %v", logger.GetLevel(), ERROR)
	}
}

func TestLoggerFiltering(t *testing.T) {
	tests := []struct {
		name         string
		logLevel     LogLevel
		logFunc      func(*Logger)
		shouldAppear bool
	}{
		{
			name:         "DEBUG message with DEBUG level",
			logLevel:     DEBUG,
			logFunc:      func(l *Logger) { l.Debug("test", nil) },
			shouldAppear: true,
		},
		{
			name:         "DEBUG message with INFO level",
			logLevel:     INFO,
			logFunc:      func(l *Logger) { l.Debug("test", nil) },
			shouldAppear: false,
		},
		{
			name:         "INFO message with INFO level",
			logLevel:     INFO,
			logFunc:      func(l *Logger) { l.Info("test", nil) },
			shouldAppear: true,
		},
		{
			name:         "INFO message with WARN level",
			logLevel:     WARN,
			logFunc:      func(l *Logger) { l.Info("test", nil) },
			shouldAppear: false,
		},
		{
			name:         "WARN message with WARN level",
			logLevel:     WARN,
			logFunc:      func(l *Logger) { l.Warn("test", nil) },
			shouldAppear: true,
		},
		{
			name:         "WARN message with ERROR level",
			logLevel:     ERROR,
			logFunc:      func(l *Logger) { l.Warn("test", nil) },
			shouldAppear: false,
		},
		{
			name:         "ERROR message with ERROR level",
			logLevel:     ERROR,
			logFunc:      func(l *Logger) { l.Error("test", nil) },
			shouldAppear: true,
		},
		{
			name:         "ERROR message with DEBUG level",
			logLevel:     DEBUG,
			logFunc:      func(l *Logger) { l.Error("test", nil) },
			shouldAppear: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := NewWithWriter(tt.logLevel, "", buf)

			tt.logFunc(logger)

			output := buf.String()
			hasOutput := len(output) > 0

			if hasOutput != tt.shouldAppear {
				t.Errorf("Log output presence = %v, want %v. Output: %q", hasOutput, tt.shouldAppear, output)
			}
		})
	}
}

func TestLoggerPrefix(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewWithWriter(INFO, "[test-prefix]", buf)

	logger.Info("test message", nil)

	output := buf.String()
	if !strings.Contains(output, "[test-prefix]") {
		t.Errorf("Output missing prefix: %q", output)
	}
}

func TestLoggerFields(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewWithWriter(INFO, "", buf)

	fields := map[string]interface{}{
		"key1": "value1",
		"key2": 42,
		"key3": true,
	}

	logger.Info("test message", fields)

	output := buf.String()

	if !strings.Contains(output, "test message") {
		t.Errorf("Output missing message: %q", output)
	}

	// Check that all fields appear in output
	for k := range fields {
		expected := k + "="
		if !strings.Contains(output, expected) {
			t.Errorf("Output missing field %q: %q", k, output)
		}
	}
}

func TestLogRunStarted(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewWithWriter(DEBUG, "", buf)

	logger.LogRunStarted("run-123", 5000, []string{"merica", "sports"})

	output := buf.String()

	if !strings.Contains(output, "DEBUG") {
		t.Errorf("Output missing DEBUG level: %q", output)
	}
	if !strings.Contains(output, "Pipeline run started") {
		t.Errorf("Output missing message: %q", output)
	}

	expectedFields := []string{
		"event=run_started",
		"runID=run-123",
		"records=5000",
		"modes=merica,sports",
	}
	for _, field := range expectedFields {
		if !strings.Contains(output, field) {
			t.Errorf("Output missing field %q: %q", field, output)
		}
	}
}

func TestLogRunFinished(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewWithWriter(INFO, "", buf)

	logger.LogRunFinished("run-123", 4200, 800, 350*time.Millisecond)

	output := buf.String()

	if !strings.Contains(output, "INFO") {
		t.Errorf("Output missing INFO level: %q", output)
	}
	if !strings.Contains(output, "Pipeline run finished") {
		t.Errorf("Output missing message: %q", output)
	}

	expectedFields := []string{
		"event=run_finished",
		"runID=run-123",
		"kept=4200",
		"dropped=800",
		"elapsed=350ms",
	}
	for _, field := range expectedFields {
		if !strings.Contains(output, field) {
			t.Errorf("Output missing field %q: %q", field, output)
		}
	}
}

func TestLogRuleSetLoaded(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewWithWriter(INFO, "", buf)

	logger.LogRuleSetLoaded("rules.yaml", true)

	output := buf.String()

	if !strings.Contains(output, "Rule set loaded") {
		t.Errorf("Output missing message: %q", output)
	}

	expectedFields := []string{
		"event=rule_set_loaded",
		"path=rules.yaml",
		"defaults=true",
	}
	for _, field := range expectedFields {
		if !strings.Contains(output, field) {
			t.Errorf("Output missing field %q: %q", field, output)
		}
	}
}

func TestEventLevelFiltering(t *testing.T) {
	tests := []struct {
		name      string
		level     LogLevel
		logFunc   func(*Logger)
		shouldLog bool
	}{
		{
			name:      "RunStarted with DEBUG level",
			level:     DEBUG,
			logFunc:   func(l *Logger) { l.LogRunStarted("r", 1, nil) },
			shouldLog: true,
		},
		{
			name:      "RunStarted with INFO level",
			level:     INFO,
			logFunc:   func(l *Logger) { l.LogRunStarted("r", 1, nil) },
			shouldLog: false,
		},
		{
			name:      "RunFinished with INFO level",
			level:     INFO,
			logFunc:   func(l *Logger) { l.LogRunFinished("r", 1, 0, time.Second) },
			shouldLog: true,
		},
		{
			name:      "RunFinished with WARN level",
			level:     WARN,
			logFunc:   func(l *Logger) { l.LogRunFinished("r", 1, 0, time.Second) },
			shouldLog: false,
		},
		{
			name:      "CacheInvalidated with INFO level",
			level:     INFO,
			logFunc:   func(l *Logger) { l.LogCacheInvalidated(10) },
			shouldLog: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := NewWithWriter(tt.level, "", buf)

			tt.logFunc(logger)

			output := buf.String()
			hasOutput := len(output) > 0

			if hasOutput != tt.shouldLog {
				t.Errorf("Log output presence = %v, want %v. Output: %q", hasOutput, tt.shouldLog, output)
			}
		})
	}
}
