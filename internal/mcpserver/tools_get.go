package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/yamltools/keypath"
)

type getInput struct {
	File string `json:"file" jsonschema:"Path to a YAML file on disk"`
	Key  string `json:"key"  jsonschema:"Dotted key path to look up"`
}

type getOutput struct {
	Found bool `json:"found"`
	Value any  `json:"value,omitempty"`
}

func handleGet(_ context.Context, _ *mcp.CallToolRequest, input getInput) (*mcp.CallToolResult, getOutput, error) {
	if input.File == "" {
		return errResult(fmt.Errorf("file must be provided")), getOutput{}, nil
	}
	if input.Key == "" {
		return errResult(fmt.Errorf("key must be provided")), getOutput{}, nil
	}

	tree, err := resolveTree(input.File, "")
	if err != nil {
		return errResult(err), getOutput{}, nil
	}

	value, found, err := keypath.Get(tree, input.Key)
	if err != nil {
		return errResult(err), getOutput{}, nil
	}
	if !found {
		return nil, getOutput{Found: false}, nil
	}
	return nil, getOutput{Found: true, Value: value.Interface()}, nil
}
