package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// copyMoveInput is shared by the copy and move tools.
type copyMoveInput struct {
	SourceFile string `json:"source_file"         jsonschema:"File containing the source key"`
	SourceKey  string `json:"source_key"          jsonschema:"Dotted key path to copy"`
	DestFile   string `json:"dest_file,omitempty" jsonschema:"Destination file (defaults to source_file)"`
	DestKey    string `json:"dest_key,omitempty"  jsonschema:"Destination key path (defaults to source_key)"`
}

type copyMoveOutput struct {
	Summary string `json:"summary"`
}

// resolve validates the input and fills in the defaulted destination sides.
func (in copyMoveInput) resolve() (srcFile, srcKey, destFile, destKey string, err error) {
	if in.SourceFile == "" || in.SourceKey == "" {
		return "", "", "", "", fmt.Errorf("source_file and source_key must both be provided")
	}
	if in.DestFile == "" && in.DestKey == "" {
		return "", "", "", "", fmt.Errorf("dest_file and dest_key cannot both be omitted")
	}
	destFile, destKey = in.DestFile, in.DestKey
	if destFile == "" {
		destFile = in.SourceFile
	}
	if destKey == "" {
		destKey = in.SourceKey
	}
	return in.SourceFile, in.SourceKey, destFile, destKey, nil
}

func handleCopy(_ context.Context, _ *mcp.CallToolRequest, input copyMoveInput) (*mcp.CallToolResult, copyMoveOutput, error) {
	if cfg.ReadOnly {
		return errReadOnly("copy"), copyMoveOutput{}, nil
	}
	srcFile, srcKey, destFile, destKey, err := input.resolve()
	if err != nil {
		return errResult(err), copyMoveOutput{}, nil
	}

	if err := fileEditor.Copy(srcFile, srcKey, destFile, destKey); err != nil {
		return errResult(err), copyMoveOutput{}, nil
	}

	output := copyMoveOutput{
		Summary: fmt.Sprintf("copied %s:%s to %s:%s", srcFile, srcKey, destFile, destKey),
	}
	return nil, output, nil
}
