package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name       string
		verbose    bool
		wantDebug  bool
		wantInfoOK bool
	}{
		{name: "default hides debug", verbose: false, wantDebug: false, wantInfoOK: true},
		{name: "verbose shows debug", verbose: true, wantDebug: true, wantInfoOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLogger(&buf, LogOptions{Verbose: tt.verbose})

			logger.Debug("debug line")
			logger.Info("info line")

			out := buf.String()
			assert.Equal(t, tt.wantDebug, strings.Contains(out, "debug line"))
			assert.Equal(t, tt.wantInfoOK, strings.Contains(out, "info line"))
		})
	}
}

func TestNewLoggerSatisfiesLogger(t *testing.T) {
	var buf bytes.Buffer

	var logger Logger = NewLogger(&buf, LogOptions{})
	logger.Warn("anchor not found", "file", "app/layout.tsx")

	assert.Contains(t, buf.String(), "anchor not found")
}

func TestRecorderCapturesEntries(t *testing.T) {
	rec := NewRecorder()

	rec.Debug("guard fired", "marker", "WalletContextProvider")
	rec.Warn("anchor not found", "file", "pages/_app.tsx")
	rec.Warn("template missing")
	rec.Error("boom")

	require.Len(t, rec.Entries(), 4)

	warns := rec.ByLevel(LevelWarn)
	require.Len(t, warns, 2)
	assert.Equal(t, "anchor not found", warns[0].Message)
	assert.Equal(t, []interface{}{"file", "pages/_app.tsx"}, warns[0].Keyvals)

	assert.Equal(t, []string{"anchor not found", "template missing"}, rec.Messages(LevelWarn))
	assert.Equal(t, []string{"guard fired"}, rec.Messages(LevelDebug))
}
