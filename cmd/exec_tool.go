package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
)

// ExecCmd executes any registered tool with arguments supplied either inline
// or from a JSON file.
type ExecCmd struct {
	Name   string `short:"n" long:"name" description:"tool name" required:"yes"`
	Inline string `short:"i" long:"input" description:"inline JSON arguments"`
	File   string `long:"input-file" description:"path to a JSON arguments file"`
}

func (c *ExecCmd) Execute(_ []string) error {
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}

	raw := []byte(c.Inline)
	if c.File != "" {
		if raw, err = os.ReadFile(c.File); err != nil {
			return fmt.Errorf("failed to read input file: %w", err)
		}
	}

	args := map[string]interface{}{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &args); err != nil {
			return fmt.Errorf("invalid tool arguments: %w", err)
		}
	}

	out, err := svc.ExecuteTool(context.Background(), c.Name, args)
	if err != nil {
		return err
	}
	return printResult(out)
}
