package cmd

import (
	"fmt"

	"github.com/es3154/csv2json-mcp/internal/conv"
)

// ListToolsCmd prints every registered tool, optionally narrowed by a name
// pattern.
type ListToolsCmd struct {
	Pattern string `short:"p" long:"pattern" description:"tool name pattern ('*' or a prefix)" default:"*"`
}

func (c *ListToolsCmd) Execute(_ []string) error {
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}

	entries := svc.MatchTools(c.Pattern)
	if len(entries) == 0 {
		fmt.Println("no tools matched")
		return nil
	}
	for _, entry := range entries {
		fmt.Printf("%s\t%s\n", entry.Metadata.Name, conv.Dereference[string](entry.Metadata.Description))
	}
	return nil
}
