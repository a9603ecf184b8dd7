package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/es3154/csv2json-mcp/internal/conv"
	"github.com/es3154/csv2json-mcp/mcp/matcher"
	"github.com/viant/fluxor/model/types"
	"github.com/viant/jsonrpc"
	mcpschema "github.com/viant/mcp-protocol/schema"
	serverproto "github.com/viant/mcp-protocol/server"
)

// Tools returns an MCP tool entry for every method of every registered
// action service, ordered by service name for deterministic listings.
func (s *Service) Tools() serverproto.Tools {
	result := make(serverproto.Tools, 0)
	for _, name := range s.actions.Keys() {
		service := s.actions.Get(name)
		for _, method := range service.Methods() {
			entry, err := s.LookupTool(method.Name)
			if err != nil {
				continue
			}
			result = append(result, entry)
		}
	}
	return result
}

// MatchTools returns the tool entries whose name satisfies the pattern.
func (s *Service) MatchTools(pattern string) serverproto.Tools {
	result := make(serverproto.Tools, 0)
	for _, entry := range s.Tools() {
		if matcher.Match(pattern, entry.Metadata.Name) {
			result = append(result, entry)
		}
	}
	return result
}

// LookupTool builds the MCP tool entry for a method name. Tool names are
// flat – every action method name is unique across the registry and doubles
// as the remote tool name, keeping the published contract surface stable.
func (s *Service) LookupTool(name string) (*serverproto.ToolEntry, error) {
	_, sig, err := s.lookupMethod(name)
	if err != nil {
		return nil, err
	}
	entry := &serverproto.ToolEntry{}
	if entry.Metadata, err = buildSchema(sig); err != nil {
		return nil, err
	}
	entry.Handler = func(ctx context.Context, request *mcpschema.CallToolRequest) (*mcpschema.CallToolResult, *jsonrpc.Error) {
		output, err := s.ExecuteTool(ctx, request.Params.Name, request.Params.Arguments)
		result := &mcpschema.CallToolResult{}
		if err != nil {
			result.IsError = conv.Pointer[bool](true)
			result.Content = append(result.Content, mcpschema.CallToolResultContentElem{
				Type: "text",
				Text: err.Error(),
			})
			return result, nil
		}
		var data []byte
		switch actual := output.(type) {
		case string:
			data = []byte(actual)
		case []byte:
			data = actual
		default:
			data, _ = json.Marshal(output)
		}
		result.Content = append(result.Content, mcpschema.CallToolResultContentElem{
			Type: "text",
			Text: string(data),
		})
		return result, nil
	}
	return entry, nil
}

// ToolMetadata returns description and input schema for a named tool when
// present. The last return value is false when the tool does not exist.
func (s *Service) ToolMetadata(name string) (string, interface{}, bool) {
	entry, err := s.LookupTool(name)
	if err != nil {
		return "", nil, false
	}
	return conv.Dereference[string](entry.Metadata.Description), entry.Metadata.InputSchema, true
}

// ExecuteTool invokes a registered action method with the supplied
// arguments. Execution is synchronous – a conversion either completes or
// fails within the call; there is no background work to wait for.
func (s *Service) ExecuteTool(ctx context.Context, name string, args map[string]interface{}) (interface{}, error) {
	service, sig, err := s.lookupMethod(name)
	if err != nil {
		return nil, err
	}
	executor, err := service.Method(sig.Name)
	if err != nil {
		return nil, err
	}
	input := newInstance(sig.Input)
	if len(args) > 0 {
		if err := conv.Convert(args, input); err != nil {
			return nil, fmt.Errorf("invalid arguments for %v: %w", name, err)
		}
	}
	output := newInstance(sig.Output)
	if err := executor(ctx, input, output); err != nil {
		return nil, err
	}
	return output, nil
}

// lookupMethod resolves the action service owning the named method.
func (s *Service) lookupMethod(name string) (types.Service, *types.Signature, error) {
	for _, serviceName := range s.actions.Keys() {
		service := s.actions.Get(serviceName)
		for _, method := range service.Methods() {
			if method.Name == name {
				sig := method
				return service, &sig, nil
			}
		}
	}
	return nil, nil, fmt.Errorf("unknown tool: %v", name)
}

// buildSchema derives MCP tool metadata from an action method signature.
func buildSchema(sig *types.Signature) (mcpschema.Tool, error) {
	var inputSchema mcpschema.ToolInputSchema
	var sample interface{}
	if sig.Input.Kind() == reflect.Pointer {
		sample = reflect.New(sig.Input.Elem()).Interface()
	} else {
		sample = reflect.New(sig.Input).Interface()
	}
	if err := inputSchema.Load(sample); err != nil {
		return mcpschema.Tool{}, fmt.Errorf("failed to build input schema for %s: %w", sig.Name, err)
	}
	var props map[string]map[string]interface{}
	var required []string
	if sig.Output.Kind() == reflect.Pointer {
		props, required = mcpschema.StructToProperties(sig.Output.Elem())
	} else {
		props, required = mcpschema.StructToProperties(sig.Output)
	}
	outputSchema := &mcpschema.ToolOutputSchema{Properties: props, Required: required, Type: "object"}
	description := sig.Description
	return mcpschema.Tool{Name: sig.Name, Description: &description, InputSchema: inputSchema, OutputSchema: outputSchema}, nil
}

// newInstance allocates a value of the signature type, unwrapping pointers.
func newInstance(t reflect.Type) interface{} {
	if t == nil {
		return nil
	}
	if t.Kind() == reflect.Pointer {
		return reflect.New(t.Elem()).Interface()
	}
	return reflect.New(t).Interface()
}
