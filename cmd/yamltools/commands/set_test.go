package commands

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestHandleSet_AddsTopLevelKey(t *testing.T) {
	path := writeYAMLFile(t, t.TempDir(), "config.yaml", "name: demo\n")

	require.NoError(t, HandleSet([]string{path, "version=2"}))

	assert.Equal(t, "name: demo\n\nversion: 2\n", readFile(t, path))
}

func TestHandleSet_ModifiesValueInPlace(t *testing.T) {
	path := writeYAMLFile(t, t.TempDir(), "config.yaml", "# app config\nserver:\n  port: 8080\nname: demo\n")

	require.NoError(t, HandleSet([]string{path, "server.port=9090"}))

	// The edit rewrites only the one line; the comment and the rest of the
	// file keep their original formatting.
	assert.Equal(t, "# app config\nserver:\n  port: 9090\nname: demo\n", readFile(t, path))
}

func TestHandleSet_MultiplePairs(t *testing.T) {
	path := writeYAMLFile(t, t.TempDir(), "config.yaml", "a: 1\nb: 2\n")

	require.NoError(t, HandleSet([]string{path, "a=10", "c=30"}))

	assert.Equal(t, "a: 10\nb: 2\n\nc: 30\n", readFile(t, path))
}

func TestHandleSet_CreatesNestedKeys(t *testing.T) {
	path := writeYAMLFile(t, t.TempDir(), "config.yaml", "name: demo\n")

	require.NoError(t, HandleSet([]string{path, "db.host=localhost"}))

	// New nested structure cannot be patched line by line, so the document
	// is re-serialized in canonical form.
	assert.Equal(t, "name: demo\ndb:\n  host: localhost\n", readFile(t, path))
}

func TestHandleSet_ErrorPaths(t *testing.T) {
	t.Run("no arguments", func(t *testing.T) {
		err := HandleSet([]string{})
		require.Error(t, err)
		assert.Equal(t, "set command requires a file argument", err.Error())
	})

	t.Run("help", func(t *testing.T) {
		assert.NoError(t, HandleSet([]string{"--help"}))
	})

	t.Run("file without pairs", func(t *testing.T) {
		err := HandleSet([]string{"config.yaml"})
		require.Error(t, err)
		assert.Equal(t, "set requires at least one key=value pair", err.Error())
	})

	t.Run("malformed pair", func(t *testing.T) {
		path := writeYAMLFile(t, t.TempDir(), "config.yaml", "a: 1\n")
		err := HandleSet([]string{path, "oops"})
		require.Error(t, err)
		assert.Equal(t, "invalid key=value pair: oops", err.Error())
	})

	t.Run("nonexistent file", func(t *testing.T) {
		err := HandleSet([]string{"/nonexistent/config.yaml", "a=1"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read file")
	})
}
