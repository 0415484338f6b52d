package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveLevel(t *testing.T) {
	assert.Equal(t, LevelQuiet, ResolveLevel(true, true))
	assert.Equal(t, LevelVerbose, ResolveLevel(false, true))
	assert.Equal(t, LevelNormal, ResolveLevel(false, false))
}

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		level     Level
		wantDebug bool
		wantWarn  bool
	}{
		{name: "quiet", level: LevelQuiet},
		{name: "normal", level: LevelNormal, wantWarn: true},
		{name: "verbose", level: LevelVerbose, wantDebug: true, wantWarn: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := New(&buf, tt.level, false)
			log.Debug("debug line")
			log.Warn("warn line")
			_ = log.Sync()

			out := buf.String()
			assert.Equal(t, tt.wantDebug, strings.Contains(out, "debug line"))
			assert.Equal(t, tt.wantWarn, strings.Contains(out, "warn line"))
			if tt.wantWarn {
				assert.Contains(t, out, "WARN")
			}
		})
	}
}
