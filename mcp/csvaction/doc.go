// Package csvaction exposes the CSV conversion operations as action services
// so that the tool registry can bridge them to MCP tools.  Conversion
// failures never escape an action as a Go error – they are reported through
// the uniform {success, error, message} result envelope instead.
package csvaction
