package mcpserver

import (
	"context"
	"os"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setReadOnly switches the server into read-only mode for one test.
func setReadOnly(t *testing.T) {
	t.Helper()
	old := cfg.ReadOnly
	cfg.ReadOnly = true
	t.Cleanup(func() { cfg.ReadOnly = old })
}

func readDocFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestSetTool_AppliesUpdates(t *testing.T) {
	docCache.reset()
	path := writeDocFile(t, t.TempDir(), "config.yaml", "name: demo\n")

	input := setInput{
		File:    path,
		Updates: []setUpdate{{Key: "version", Value: "2"}},
	}
	result, output, err := handleSet(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.Nil(t, result)

	assert.Equal(t, 1, output.Applied)
	assert.Contains(t, output.Summary, "applied 1 updates")
	assert.Equal(t, "name: demo\n\nversion: 2\n", readDocFile(t, path))
}

func TestSetTool_PreservesFormatting(t *testing.T) {
	docCache.reset()
	path := writeDocFile(t, t.TempDir(), "config.yaml", "# app config\nserver:\n  port: 8080\n")

	input := setInput{
		File:    path,
		Updates: []setUpdate{{Key: "server.port", Value: "9090"}},
	}
	_, output, err := handleSet(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.Equal(t, 1, output.Applied)
	assert.Equal(t, "# app config\nserver:\n  port: 9090\n", readDocFile(t, path))
}

func TestSetTool_ReadOnly(t *testing.T) {
	docCache.reset()
	setReadOnly(t)
	path := writeDocFile(t, t.TempDir(), "config.yaml", "a: 1\n")

	input := setInput{File: path, Updates: []setUpdate{{Key: "a", Value: "2"}}}
	result, _, err := handleSet(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)

	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	assert.Contains(t, text.Text, "read-only")
	assert.Equal(t, "a: 1\n", readDocFile(t, path))
}

func TestSetTool_Errors(t *testing.T) {
	docCache.reset()

	t.Run("missing file argument", func(t *testing.T) {
		input := setInput{Updates: []setUpdate{{Key: "a", Value: "1"}}}
		result, _, err := handleSet(context.Background(), &mcp.CallToolRequest{}, input)
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.True(t, result.IsError)
	})

	t.Run("no updates", func(t *testing.T) {
		result, _, err := handleSet(context.Background(), &mcp.CallToolRequest{}, setInput{File: "x.yaml"})
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.True(t, result.IsError)
	})

	t.Run("nonexistent file", func(t *testing.T) {
		input := setInput{File: "/nonexistent/config.yaml", Updates: []setUpdate{{Key: "a", Value: "1"}}}
		result, _, err := handleSet(context.Background(), &mcp.CallToolRequest{}, input)
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.True(t, result.IsError)
	})
}
