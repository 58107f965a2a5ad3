package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.json")
	log, err := New(Config{Level: "debug", OutputPaths: []string{path}})
	require.NoError(t, err)
	log.Debug("formatted")
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"formatted"`)
	assert.Contains(t, string(data), `"level":"debug"`)
}

func TestNewRejectsLevel(t *testing.T) {
	_, err := New(Config{Level: "loud"})
	require.Error(t, err)
}

func TestNewDevelopment(t *testing.T) {
	log, err := New(Config{Level: "info", Development: true})
	require.NoError(t, err)
	assert.NotNil(t, log)
}
