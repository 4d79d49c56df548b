package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func fileOnly(path string, json bool) Options {
	return Options{
		Level: "debug",
		File: FileConfig{
			Path:       path,
			MaxSizeMB:  10,
			MaxBackups: 1,
			MaxAgeDays: 1,
			JSON:       json,
		},
	}
}

func TestLogLevels(t *testing.T) {
	tempDir := t.TempDir()

	tests := []struct {
		level    string
		expected []string
		excluded []string
	}{
		{"error", []string{"ERROR"}, []string{"WARN", "INFO", "DEBUG"}},
		{"warn", []string{"ERROR", "WARN"}, []string{"INFO", "DEBUG"}},
		{"info", []string{"ERROR", "WARN", "INFO"}, []string{"DEBUG"}},
		{"debug", []string{"ERROR", "WARN", "INFO", "DEBUG"}, nil},
		{"bogus", []string{"ERROR", "WARN", "INFO"}, []string{"DEBUG"}},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logFile := filepath.Join(tempDir, tt.level+".log")
			opts := fileOnly(logFile, false)
			opts.Level = tt.level
			require.NoError(t, Setup(opts))

			Debug("debug message")
			Info("info message")
			Warn("warn message")
			Error("error message")
			Sync()

			content, err := os.ReadFile(logFile)
			require.NoError(t, err)
			for _, exp := range tt.expected {
				assert.Contains(t, string(content), exp)
			}
			for _, exc := range tt.excluded {
				assert.NotContains(t, string(content), exc)
			}
		})
	}
}

func TestJSONFileOutput(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "mesh.log")
	require.NoError(t, Setup(fileOnly(logFile, true)))

	Named("catalog").Info("built", zap.String("shape", "crate"), zap.Int("triangles", 12))
	Sync()

	content, err := os.ReadFile(logFile)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "built", entry["msg"])
	assert.Equal(t, "catalog", entry["logger"])
	assert.Equal(t, "crate", entry["shape"])
	assert.EqualValues(t, 12, entry["triangles"])
	assert.Contains(t, entry["caller"], "logger_test.go")
}

func TestCallerSkipsWrapper(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "caller.log")
	require.NoError(t, Setup(fileOnly(logFile, true)))

	Info("from test")
	Sync()

	content, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), "logger_test.go")
	assert.NotContains(t, string(content), "logger/logger.go")
}

func TestDefaultFileConfig(t *testing.T) {
	cfg := DefaultFileConfig("/tmp/test.log")

	assert.Equal(t, "/tmp/test.log", cfg.Path)
	assert.Equal(t, 50, cfg.MaxSizeMB)
	assert.Equal(t, 3, cfg.MaxBackups)
	assert.Equal(t, 7, cfg.MaxAgeDays)
	assert.True(t, cfg.Compress)
	assert.False(t, cfg.JSON)
}

func TestSetupWithoutOutputs(t *testing.T) {
	require.NoError(t, Setup(Options{Level: "debug"}))
	assert.NotPanics(t, func() {
		Info("dropped")
		Sugar.Debugf("dropped %d", 1)
		Sync()
	})
}
