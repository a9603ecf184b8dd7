package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/es3154/csv2json-mcp/mcp"
	mcpconfig "github.com/es3154/csv2json-mcp/mcp/config"
)

var (
	cfgPath string

	svcOnce sync.Once
	svcInst *mcp.Service
	svcErr  error
)

// setConfigPath remembers the CLI-level -f/--config parameter so that the
// service singleton can be created lazily by whichever sub-command is
// executed first.
func setConfigPath(p string) { cfgPath = p }

// serviceSingleton initialises an mcp.Service only once and reuses the
// instance across sub-commands within the same CLI invocation.
func serviceSingleton() (*mcp.Service, error) {
	svcOnce.Do(func() {
		ctx := context.Background()
		var cfg *mcpconfig.Config
		if cfgPath != "" {
			cfg, svcErr = mcpconfig.Load(ctx, cfgPath)
			if svcErr != nil {
				return
			}
			if debug := os.Getenv("CSV2JSON_DEBUG_CONFIG"); debug == "1" {
				_ = json.NewEncoder(os.Stderr).Encode(cfg)
			}
		}
		svcInst, svcErr = mcp.New(ctx, mcp.WithConfig(cfg))
	})
	return svcInst, svcErr
}

// printResult renders a tool output as indented JSON for easy consumption.
func printResult(out interface{}) error {
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
