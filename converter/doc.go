// Package converter implements the CSV to JSON conversion core: a table
// reader that splits CSV sources into a header plus data rows, a shape
// converter that serialises tables into the records, values or split JSON
// layouts, and an advisory file inspector.  Every cell stays textual – the
// package never coerces fields into numbers or booleans.
package converter
