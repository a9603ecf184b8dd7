// Package mcp wires the CSV conversion actions to the MCP protocol
// implementation.  Its central Service type loads configuration, builds the
// action-service registration table once at startup and exposes every action
// method as an MCP tool over a shared registry.
package mcp
