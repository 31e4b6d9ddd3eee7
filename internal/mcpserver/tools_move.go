package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func handleMove(_ context.Context, _ *mcp.CallToolRequest, input copyMoveInput) (*mcp.CallToolResult, copyMoveOutput, error) {
	if cfg.ReadOnly {
		return errReadOnly("move"), copyMoveOutput{}, nil
	}
	srcFile, srcKey, destFile, destKey, err := input.resolve()
	if err != nil {
		return errResult(err), copyMoveOutput{}, nil
	}

	if err := fileEditor.Move(srcFile, srcKey, destFile, destKey); err != nil {
		return errResult(err), copyMoveOutput{}, nil
	}

	output := copyMoveOutput{
		Summary: fmt.Sprintf("moved %s:%s to %s:%s", srcFile, srcKey, destFile, destKey),
	}
	return nil, output, nil
}
