package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]Level{
		"debug":   DebugLevel,
		" INFO ":  InfoLevel,
		"warning": WarnLevel,
		"error":   ErrorLevel,
		"off":     DisabledLevel,
		"bogus":   WarnLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestLevelFor(t *testing.T) {
	assert.Equal(t, WarnLevel, LevelFor(false, false))
	assert.Equal(t, DebugLevel, LevelFor(true, false))
	assert.Equal(t, DisabledLevel, LevelFor(true, true))
}

func TestInit(t *testing.T) {
	t.Cleanup(func() { Init(Config{Level: DisabledLevel}) })

	var buf bytes.Buffer
	Init(Config{Level: DebugLevel, Output: &buf})

	Debug().Str("file", "tsconfig.json").Msg("reconciled")
	assert.Contains(t, buf.String(), `"file":"tsconfig.json"`)
	assert.Contains(t, buf.String(), `"message":"reconciled"`)

	buf.Reset()
	Init(Config{Level: WarnLevel, Output: &buf})
	Debug().Msg("hidden")
	assert.Empty(t, buf.String())
}
