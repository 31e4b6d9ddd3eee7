package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type unsetInput struct {
	File string   `json:"file" jsonschema:"Path to the YAML file to edit"`
	Keys []string `json:"keys" jsonschema:"Dotted key paths to remove"`
}

type unsetOutput struct {
	Summary string `json:"summary"`
}

func handleUnset(_ context.Context, _ *mcp.CallToolRequest, input unsetInput) (*mcp.CallToolResult, unsetOutput, error) {
	if cfg.ReadOnly {
		return errReadOnly("unset"), unsetOutput{}, nil
	}
	if input.File == "" {
		return errResult(fmt.Errorf("file must be provided")), unsetOutput{}, nil
	}
	if len(input.Keys) == 0 {
		return errResult(fmt.Errorf("at least one key must be provided")), unsetOutput{}, nil
	}

	if err := fileEditor.Unset(input.File, input.Keys); err != nil {
		return errResult(err), unsetOutput{}, nil
	}

	output := unsetOutput{
		Summary: fmt.Sprintf("unset %d keys in %s", len(input.Keys), input.File),
	}
	return nil, output, nil
}
