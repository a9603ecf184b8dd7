package converter

import (
	"encoding/csv"
	"fmt"
	"io"
)

// Table is the intermediate form between CSV input and JSON output: an
// ordered header plus ordered data rows, every cell kept as text. A table is
// built fresh per conversion and never mutated afterwards.
type Table struct {
	Header []string
	Rows   [][]string
}

// readTable splits the source into records using the configured delimiter,
// applies the skip-rows window and resolves the header. Quoted fields may
// embed delimiters and newlines per standard CSV rules.
func readTable(source io.Reader, options *Options) (*Table, error) {
	reader := csv.NewReader(source)
	reader.Comma = options.delimiter()
	// Ragged rows are tolerated here; the records orient drops them later.
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, newError(CategoryParse, "failed to parse CSV: %v", err)
	}
	if options.SkipRows >= len(records) {
		records = nil
	} else {
		records = records[options.SkipRows:]
	}
	table := &Table{Header: []string{}, Rows: [][]string{}}
	if len(records) == 0 {
		return table, nil
	}
	if options.Header {
		table.Header = records[0]
		table.Rows = append(table.Rows, records[1:]...)
		return table, nil
	}
	for i := range records[0] {
		table.Header = append(table.Header, fmt.Sprintf("column_%d", i))
	}
	table.Rows = append(table.Rows, records...)
	return table, nil
}
