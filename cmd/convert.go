package cmd

import (
	"context"

	"github.com/es3154/csv2json-mcp/mcp/csvaction"
)

// ConvertCmd converts one CSV file through the convert_csv_file tool and
// prints the result envelope.
type ConvertCmd struct {
	Source    string `short:"s" long:"src" description:"CSV source path or URL" required:"yes"`
	Dest      string `short:"d" long:"dest" description:"JSON destination (defaults to the source with a .json extension)"`
	Delimiter string `long:"delimiter" description:"field delimiter" default:","`
	Encoding  string `long:"encoding" description:"source text encoding" default:"utf-8"`
	SkipRows  int    `long:"skip-rows" description:"leading records to drop"`
	NoHeader  bool   `long:"no-header" description:"treat every record as data and synthesise column names"`
	Orient    string `long:"orient" description:"output shape: records, values or split" default:"records"`
	Indent    int    `long:"indent" description:"pretty-print with this indent width" default:"-1"`
}

func (c *ConvertCmd) Execute(_ []string) error {
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}

	args := map[string]interface{}{
		"file_path": c.Source,
		"delimiter": c.Delimiter,
		"encoding":  c.Encoding,
		"skip_rows": c.SkipRows,
		"header":    !c.NoHeader,
		"orient":    c.Orient,
	}
	if c.Dest != "" {
		args["output_file_path"] = c.Dest
	}
	if c.Indent >= 0 {
		args["indent"] = c.Indent
	}

	out, err := svc.ExecuteTool(context.Background(), csvaction.ToolConvertFile, args)
	if err != nil {
		return err
	}
	return printResult(out)
}
