package cmd

// Options is the root for the CLI.  Struct tags are interpreted by
// github.com/jessevdk/go-flags.
type Options struct {
	Config string `short:"f" long:"config" description:"server configuration YAML/JSON path"`

	Serve     *ServeCmd     `command:"serve"      description:"Start the MCP server exposing the conversion tools"`
	Convert   *ConvertCmd   `command:"convert"    description:"Convert a CSV file to JSON"`
	Info      *InfoCmd      `command:"info"       description:"Print advisory metadata about a CSV file"`
	Exec      *ExecCmd      `command:"exec"       description:"Execute a registered tool with JSON arguments"`
	ListTools *ListToolsCmd `command:"list-tools" description:"List all registered tools"`
	Tool      *ToolCmd      `command:"tool"       description:"Show metadata and input schema for one tool"`
}

// Init instantiates the sub-command referenced by the first positional
// argument so that go-flags can populate its fields.
func (o *Options) Init(firstArg string) {
	switch firstArg {
	case "serve":
		o.Serve = &ServeCmd{}
	case "convert":
		o.Convert = &ConvertCmd{}
	case "info":
		o.Info = &InfoCmd{}
	case "exec":
		o.Exec = &ExecCmd{}
	case "list-tools":
		o.ListTools = &ListToolsCmd{}
	case "tool":
		o.Tool = &ToolCmd{}
	}
}
