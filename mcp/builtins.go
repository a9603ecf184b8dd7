package mcp

import (
	"sort"

	"github.com/es3154/csv2json-mcp/converter"
	"github.com/es3154/csv2json-mcp/mcp/csvaction"
	"github.com/es3154/csv2json-mcp/mcp/matcher"
	"github.com/viant/fluxor/model/types"
)

// builtinFactories lists the action services this server can expose. The key
// must match the service name reported by the implementation so that config
// patterns behave intuitively.
var builtinFactories = map[string]func(core *converter.Service, defaults *converter.Options) types.Service{
	csvaction.ServiceName: func(core *converter.Service, defaults *converter.Options) types.Service {
		return csvaction.New(core, defaults)
	},
	csvaction.InspectorName: func(core *converter.Service, _ *converter.Options) types.Service {
		return csvaction.NewInspector(core)
	},
}

// resolveBuiltinServices converts config pattern(s) – "*" for all, exact name
// or prefix – into concrete service instances in deterministic order.
func resolveBuiltinServices(patterns []string, core *converter.Service, defaults *converter.Options) []types.Service {
	selected := make(map[string]struct{})
	for _, pattern := range patterns {
		for name := range builtinFactories {
			if matcher.Match(pattern, name) {
				selected[name] = struct{}{}
			}
		}
	}
	names := make([]string, 0, len(selected))
	for name := range selected {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]types.Service, 0, len(names))
	for _, name := range names {
		out = append(out, builtinFactories[name](core, defaults))
	}
	return out
}
