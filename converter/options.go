package converter

import (
	"unicode/utf8"
)

// Orient selects the JSON layout produced by the shape converter.
type Orient string

const (
	// OrientRecords emits one object per row, keyed by header entries in order.
	OrientRecords Orient = "records"
	// OrientValues emits the data rows unchanged, as an array of string arrays.
	OrientValues Orient = "values"
	// OrientSplit emits {"columns": header, "data": rows}.
	OrientSplit Orient = "split"
)

// ParseOrient validates a textual orient selector.
func ParseOrient(text string) (Orient, error) {
	switch Orient(text) {
	case OrientRecords, OrientValues, OrientSplit:
		return Orient(text), nil
	}
	return "", newError(CategoryOption, "unsupported JSON orient: %q", text)
}

// Options control how CSV input is read and how the JSON output is shaped.
// Options are not mutated by the converter; start from DefaultOptions and
// adjust fields before the first use.
type Options struct {
	// Delimiter is the field separator, a single character.
	Delimiter string
	// Encoding names the source text encoding (IANA/HTML name). It only
	// applies to file sources – string input is already text.
	Encoding string
	// SkipRows drops this many leading records before the header is resolved.
	SkipRows int
	// Header marks the first retained record as the column names.
	Header bool
	// Orient selects the output layout.
	Orient Orient
	// Indent, when set, pretty-prints the output with this many spaces.
	Indent *int
}

// DefaultOptions mirrors the tool-level argument defaults: comma delimiter,
// utf-8 input, header row present, compact records output.
func DefaultOptions() *Options {
	return &Options{
		Delimiter: ",",
		Encoding:  "utf-8",
		Header:    true,
		Orient:    OrientRecords,
	}
}

// Validate rejects unusable configurations before any source is opened.
func (o *Options) Validate() error {
	if utf8.RuneCountInString(o.Delimiter) != 1 {
		return newError(CategoryOption, "delimiter must be a single character, got %q", o.Delimiter)
	}
	if delimiter := o.delimiter(); delimiter == '"' || delimiter == '\n' || delimiter == '\r' || delimiter == utf8.RuneError {
		return newError(CategoryOption, "invalid delimiter %q", o.Delimiter)
	}
	if o.SkipRows < 0 {
		return newError(CategoryOption, "skip_rows must not be negative, got %d", o.SkipRows)
	}
	if _, err := ParseOrient(string(o.Orient)); err != nil {
		return err
	}
	if o.Indent != nil && *o.Indent < 0 {
		return newError(CategoryOption, "indent must not be negative, got %d", *o.Indent)
	}
	return nil
}

func (o *Options) delimiter() rune {
	r, _ := utf8.DecodeRuneInString(o.Delimiter)
	return r
}
