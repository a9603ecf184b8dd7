package main

import (
	"os"

	"github.com/es3154/csv2json-mcp/cmd"
)

func main() {
	cmd.Run(os.Args[1:])
}
