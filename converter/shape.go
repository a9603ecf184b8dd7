package converter

import (
	"encoding/json"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Record is one records-shaped row. An ordered map keeps serialised keys in
// header order, which a plain Go map would not.
type Record = *orderedmap.OrderedMap[string, string]

func newRecord(header, row []string) Record {
	record := orderedmap.New[string, string]()
	for i, name := range header {
		record.Set(name, row[i])
	}
	return record
}

// splitDocument is the payload of the split orient.
type splitDocument struct {
	Columns []string   `json:"columns"`
	Data    [][]string `json:"data"`
}

// marshalTable serialises a table into the configured orient. Output is
// compact unless an indent width is set; non-ASCII text stays literal.
func marshalTable(table *Table, options *Options) (string, error) {
	var payload interface{}
	switch options.Orient {
	case OrientRecords:
		records := make([]Record, 0, len(table.Rows))
		for _, row := range table.Rows {
			// Ragged rows cannot be keyed by the header and are dropped.
			if len(row) != len(table.Header) {
				continue
			}
			records = append(records, newRecord(table.Header, row))
		}
		payload = records
	case OrientValues:
		payload = table.Rows
	case OrientSplit:
		payload = &splitDocument{Columns: table.Header, Data: table.Rows}
	default:
		_, err := ParseOrient(string(options.Orient))
		return "", err
	}

	var data []byte
	var err error
	if options.Indent != nil {
		data, err = json.MarshalIndent(payload, "", strings.Repeat(" ", *options.Indent))
	} else {
		data, err = json.Marshal(payload)
	}
	if err != nil {
		return "", newError(CategoryUnknown, "failed to serialise JSON: %v", err)
	}
	return string(data), nil
}
