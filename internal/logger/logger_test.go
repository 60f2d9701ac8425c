package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureOutput(t *testing.T, level string, format OutputFormat, fn func()) string {
	t.Helper()
	buf := &bytes.Buffer{}
	SetTestOutput(buf)
	defer UnsetTestOutput()

	logger = nil
	InitLogger(level, format)

	fn()

	return buf.String()
}

func TestLogger(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		logFn    func()
		contains []string
		excludes []string
	}{
		{
			name:  "info log",
			level: "info",
			logFn: func() {
				Info("copied tree")
			},
			contains: []string{"copied tree"},
		},
		{
			name:  "debug log with debug level",
			level: "debug",
			logFn: func() {
				Debug("scanning directory")
			},
			contains: []string{"scanning directory", "level=DEBUG"},
		},
		{
			name:  "debug log suppressed at info level",
			level: "info",
			logFn: func() {
				Debug("scanning directory")
			},
			excludes: []string{"scanning directory"},
		},
		{
			name:  "warn log with fields",
			level: "warn",
			logFn: func() {
				Warn("network filesystem detected", Fields{"path": "/srv/data", "types": 2})
			},
			contains: []string{"network filesystem detected", "level=WARN", "path=/srv/data", "types=2"},
		},
		{
			name:  "success log",
			level: "info",
			logFn: func() {
				Success("deployment finished")
			},
			contains: []string{"deployment finished", "status=success"},
		},
		{
			name:  "formatted error log",
			level: "error",
			logFn: func() {
				Errorf("copy failed after %d attempts", 2)
			},
			contains: []string{"copy failed after 2 attempts", "level=ERROR"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := captureOutput(t, tt.level, FormatText, tt.logFn)
			for _, want := range tt.contains {
				assert.Contains(t, output, want)
			}
			for _, notWant := range tt.excludes {
				assert.NotContains(t, output, notWant)
			}
		})
	}
}

func TestJSONFormat(t *testing.T) {
	output := captureOutput(t, "info", FormatJSON, func() {
		Info("deployed", Fields{"name": "blog", "files": 42})
	})

	assert.Contains(t, output, `"msg":"deployed"`)
	assert.Contains(t, output, `"level":"INFO"`)
	assert.Contains(t, output, `"name":"blog"`)
	assert.Contains(t, output, `"files":42`)
}

func TestSetOutputFormat(t *testing.T) {
	buf := &bytes.Buffer{}
	SetTestOutput(buf)
	defer UnsetTestOutput()

	logger = nil
	InitLogger("debug", FormatText)
	Info("first message")
	assert.Contains(t, buf.String(), "first message")
	assert.Contains(t, buf.String(), "INFO")

	buf.Reset()
	SetOutputFormat(FormatJSON)
	Info("second message")
	assert.Contains(t, buf.String(), `"msg":"second message"`)
}

func TestGetLogger_InitializesIfNil(t *testing.T) {
	logger = nil
	assert.NotPanics(t, func() {
		lg := GetLogger()
		assert.NotNil(t, lg)
	})
}

func TestMergeFields(t *testing.T) {
	tests := []struct {
		name   string
		fields []Fields
		expect map[string]interface{}
	}{
		{
			name:   "single field",
			fields: []Fields{{"key1": "value1"}},
			expect: map[string]interface{}{"key1": "value1"},
		},
		{
			name:   "multiple maps merge",
			fields: []Fields{{"key1": "value1"}, {"key2": 123, "key3": true}},
			expect: map[string]interface{}{"key1": "value1", "key2": 123, "key3": true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attrs := mergeFields(tt.fields...)
			result := make(map[string]interface{})
			for i := 0; i < len(attrs); i += 2 {
				result[attrs[i].(string)] = attrs[i+1]
			}
			assert.Equal(t, tt.expect, result)
		})
	}
}
