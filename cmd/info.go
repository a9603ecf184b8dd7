package cmd

import (
	"context"

	"github.com/es3154/csv2json-mcp/mcp/csvaction"
)

// InfoCmd prints advisory metadata about a CSV file via the get_csv_info
// tool.
type InfoCmd struct {
	Source string `short:"s" long:"src" description:"CSV source path or URL" required:"yes"`
}

func (c *InfoCmd) Execute(_ []string) error {
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}

	out, err := svc.ExecuteTool(context.Background(), csvaction.ToolInfo, map[string]interface{}{
		"file_path": c.Source,
	})
	if err != nil {
		return err
	}
	return printResult(out)
}
