package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesJSONOutsideDevelopment(t *testing.T) {
	var buf bytes.Buffer
	logger := newWithWriter(&buf, "production", "")

	logger.Info().Str("user_id", "42").Msg("registered")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "registered", entry["message"])
	assert.Equal(t, "42", entry["user_id"])
	assert.Equal(t, "recipebook-api", entry["service"])
}

func TestNewHonoursLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := newWithWriter(&buf, "production", "warn")
	assert.Equal(t, zerolog.WarnLevel, logger.GetLevel())

	logger.Info().Msg("dropped")
	assert.Zero(t, buf.Len())

	dev := newWithWriter(&buf, "development", "")
	assert.Equal(t, zerolog.DebugLevel, dev.GetLevel())
}
