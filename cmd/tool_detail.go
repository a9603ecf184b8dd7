package cmd

import (
	"encoding/json"
	"fmt"
)

// ToolCmd shows the description and input schema of a single tool.
type ToolCmd struct {
	Name string `short:"n" long:"name" description:"tool name" required:"yes"`
}

func (c *ToolCmd) Execute(_ []string) error {
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}

	description, schema, ok := svc.ToolMetadata(c.Name)
	if !ok {
		return fmt.Errorf("unknown tool: %v", c.Name)
	}
	fmt.Printf("Tool: %s\n", c.Name)
	if description != "" {
		fmt.Printf("Description: %s\n", description)
	}
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return err
	}
	fmt.Printf("Input schema:\n%s\n", data)
	return nil
}
