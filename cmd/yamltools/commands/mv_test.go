package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/yamltools/yamlerrors"
)

func TestHandleMv_RenamesKey(t *testing.T) {
	path := writeYAMLFile(t, t.TempDir(), "config.yaml", "old: 5\nkeep: x\n")

	require.NoError(t, HandleMv([]string{path + ":old", "new"}))

	assert.Equal(t, "keep: x\n\nnew: 5\n", readFile(t, path))
}

func TestHandleMv_MovesBetweenFiles(t *testing.T) {
	dir := t.TempDir()
	src := writeYAMLFile(t, dir, "src.yaml", "secret: abc\nname: demo\n")
	dst := writeYAMLFile(t, dir, "dst.yaml", "env: prod\n")

	require.NoError(t, HandleMv([]string{src + ":secret", dst + ":"}))

	assert.Equal(t, "name: demo\n", readFile(t, src))
	assert.Equal(t, "env: prod\n\nsecret: abc\n", readFile(t, dst))
}

func TestHandleMv_MoveOntoItselfDeletes(t *testing.T) {
	path := writeYAMLFile(t, t.TempDir(), "config.yaml", "a: 1\nb: 2\n")

	require.NoError(t, HandleMv([]string{path + ":a", "a"}))

	assert.Equal(t, "b: 2\n", readFile(t, path))
}

func TestHandleMv_MissingSourceKeyLeavesFilesUntouched(t *testing.T) {
	dir := t.TempDir()
	src := writeYAMLFile(t, dir, "src.yaml", "a: 1\n")
	dst := writeYAMLFile(t, dir, "dst.yaml", "b: 2\n")

	err := HandleMv([]string{src + ":zzz", dst + ":zzz"})
	require.Error(t, err)
	assert.ErrorIs(t, err, yamlerrors.ErrKeyNotFound)
	assert.Equal(t, "a: 1\n", readFile(t, src))
	assert.Equal(t, "b: 2\n", readFile(t, dst))
}

func TestHandleMv_ErrorPaths(t *testing.T) {
	t.Run("no arguments", func(t *testing.T) {
		err := HandleMv([]string{})
		require.Error(t, err)
		assert.Equal(t, "mv command requires a source file:key argument", err.Error())
	})

	t.Run("help", func(t *testing.T) {
		assert.NoError(t, HandleMv([]string{"--help"}))
	})

	t.Run("destination fully omitted", func(t *testing.T) {
		err := HandleMv([]string{"config.yaml:a"})
		require.Error(t, err)
		assert.Equal(t, "destination file and destination key cannot both be omitted", err.Error())
	})

	t.Run("too many arguments", func(t *testing.T) {
		err := HandleMv([]string{"config.yaml:a", "b", "c"})
		require.Error(t, err)
		assert.Equal(t, "mv accepts at most one destination argument", err.Error())
	})
}
