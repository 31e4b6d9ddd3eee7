package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/yamltools/editor"
)

type setUpdate struct {
	Key   string `json:"key"   jsonschema:"Dotted key path to assign"`
	Value string `json:"value" jsonschema:"Text value to store at the key"`
}

type setInput struct {
	File    string      `json:"file"    jsonschema:"Path to the YAML file to edit"`
	Updates []setUpdate `json:"updates" jsonschema:"Assignments applied in order"`
}

type setOutput struct {
	Applied int    `json:"applied"`
	Summary string `json:"summary"`
}

func handleSet(_ context.Context, _ *mcp.CallToolRequest, input setInput) (*mcp.CallToolResult, setOutput, error) {
	if cfg.ReadOnly {
		return errReadOnly("set"), setOutput{}, nil
	}
	if input.File == "" {
		return errResult(fmt.Errorf("file must be provided")), setOutput{}, nil
	}
	if len(input.Updates) == 0 {
		return errResult(fmt.Errorf("at least one update must be provided")), setOutput{}, nil
	}

	updates := make([]editor.Update, 0, len(input.Updates))
	for _, u := range input.Updates {
		updates = append(updates, editor.Update{Path: u.Key, Value: u.Value})
	}
	if err := fileEditor.Set(input.File, updates); err != nil {
		return errResult(err), setOutput{}, nil
	}

	output := setOutput{
		Applied: len(updates),
		Summary: fmt.Sprintf("applied %d updates to %s", len(updates), input.File),
	}
	return nil, output, nil
}
