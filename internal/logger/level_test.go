package logger

import (
	"bytes"
	"strings"
	"testing"
)

// TestLogLevelFiltering verifies that messages are filtered based on log level
func TestLogLevelFiltering(t *testing.T) {
	tests := []struct {
		name         string
		logLevel     string
		messageLevel string
		message      string
		shouldAppear bool
	}{
		// trace level - should see everything
		{name: "trace sees trace", logLevel: "trace", messageLevel: "trace", message: "trace msg", shouldAppear: true},
		{name: "trace sees debug", logLevel: "trace", messageLevel: "debug", message: "debug msg", shouldAppear: true},
		{name: "trace sees info", logLevel: "trace", messageLevel: "info", message: "info msg", shouldAppear: true},
		{name: "trace sees warn", logLevel: "trace", messageLevel: "warn", message: "warn msg", shouldAppear: true},
		{name: "trace sees error", logLevel: "trace", messageLevel: "error", message: "error msg", shouldAppear: true},

		// debug level - should not see trace
		{name: "debug blocks trace", logLevel: "debug", messageLevel: "trace", message: "trace msg", shouldAppear: false},
		{name: "debug sees debug", logLevel: "debug", messageLevel: "debug", message: "debug msg", shouldAppear: true},
		{name: "debug sees error", logLevel: "debug", messageLevel: "error", message: "error msg", shouldAppear: true},

		// info level - should not see trace/debug
		{name: "info blocks trace", logLevel: "info", messageLevel: "trace", message: "trace msg", shouldAppear: false},
		{name: "info blocks debug", logLevel: "info", messageLevel: "debug", message: "debug msg", shouldAppear: false},
		{name: "info sees info", logLevel: "info", messageLevel: "info", message: "info msg", shouldAppear: true},
		{name: "info sees warn", logLevel: "info", messageLevel: "warn", message: "warn msg", shouldAppear: true},

		// warn level - should only see warn/error
		{name: "warn blocks debug", logLevel: "warn", messageLevel: "debug", message: "debug msg", shouldAppear: false},
		{name: "warn blocks info", logLevel: "warn", messageLevel: "info", message: "info msg", shouldAppear: false},
		{name: "warn sees warn", logLevel: "warn", messageLevel: "warn", message: "warn msg", shouldAppear: true},
		{name: "warn sees error", logLevel: "warn", messageLevel: "error", message: "error msg", shouldAppear: true},

		// error level - should only see error
		{name: "error blocks warn", logLevel: "error", messageLevel: "warn", message: "warn msg", shouldAppear: false},
		{name: "error sees error", logLevel: "error", messageLevel: "error", message: "error msg", shouldAppear: true},

		// invalid and empty levels fall back to info
		{name: "empty level blocks debug", logLevel: "", messageLevel: "debug", message: "debug msg", shouldAppear: false},
		{name: "empty level sees info", logLevel: "", messageLevel: "info", message: "info msg", shouldAppear: true},
		{name: "bogus level sees info", logLevel: "verbose", messageLevel: "info", message: "info msg", shouldAppear: true},
		{name: "uppercase level", logLevel: "DEBUG", messageLevel: "debug", message: "debug msg", shouldAppear: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := NewConsoleLogger(buf, tt.logLevel)

			switch tt.messageLevel {
			case "trace":
				logger.LogTrace(tt.message)
			case "debug":
				logger.LogDebug(tt.message)
			case "info":
				logger.LogInfo(tt.message)
			case "warn":
				logger.LogWarn(tt.message)
			case "error":
				logger.LogError(tt.message)
			}

			output := buf.String()
			contains := strings.Contains(output, tt.message)

			if tt.shouldAppear && !contains {
				t.Errorf("Expected message %q to appear in output, but it didn't. Output: %q", tt.message, output)
			}
			if !tt.shouldAppear && contains {
				t.Errorf("Expected message %q NOT to appear in output, but it did. Output: %q", tt.message, output)
			}
		})
	}
}

// TestConsoleLoggerWithLogLevel verifies ConsoleLogger respects log level
func TestConsoleLoggerWithLogLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewConsoleLogger(buf, "warn")

	logger.LogTrace("trace message")
	logger.LogDebug("debug message")
	logger.LogInfo("info message")
	logger.LogWarn("warn message")
	logger.LogError("error message")

	output := buf.String()

	for _, filtered := range []string{"trace message", "debug message", "info message"} {
		if strings.Contains(output, filtered) {
			t.Errorf("%s should be filtered at warn level", filtered)
		}
	}
	for _, kept := range []string{"warn message", "error message"} {
		if !strings.Contains(output, kept) {
			t.Errorf("%s should appear at warn level", kept)
		}
	}
}

func TestIsValidLevel(t *testing.T) {
	for _, level := range []string{"trace", "debug", "info", "warn", "error", " Info ", "ERROR"} {
		if !IsValidLevel(level) {
			t.Errorf("IsValidLevel(%q) = false, want true", level)
		}
	}
	for _, level := range []string{"", "warning", "fatal", "verbose"} {
		if IsValidLevel(level) {
			t.Errorf("IsValidLevel(%q) = true, want false", level)
		}
	}
}
