package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestSetupJSON(t *testing.T) {
	var buf bytes.Buffer
	log := Setup(&buf, "debug", "json")
	require.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())

	log.Info().Str("component", "test").Msg("hello")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "info", entry["level"])
	require.Equal(t, "test", entry["component"])
	require.Equal(t, "hello", entry["message"])
	require.Contains(t, entry, "time")
	require.Contains(t, entry["caller"], "logger_test.go")
}

func TestSetupPretty(t *testing.T) {
	var buf bytes.Buffer
	log := Setup(&buf, "info", "pretty")

	log.Info().Msg("hello")
	require.Contains(t, buf.String(), "hello")
	require.Contains(t, buf.String(), "INF")
}

func TestSetupInvalidLevel(t *testing.T) {
	var buf bytes.Buffer
	log := Setup(&buf, "loud", "json")
	require.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())

	log.Debug().Msg("hidden")
	require.Empty(t, buf.String())
}
