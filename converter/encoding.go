package converter

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/htmlindex"
)

// decode turns raw source bytes into UTF-8 text according to the declared
// encoding. utf-8 input is validated strictly; other encodings are resolved
// by name and decoded via x/text.
func decode(data []byte, name string) ([]byte, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	switch normalized {
	case "", "utf-8", "utf8":
		if !utf8.Valid(data) {
			return nil, newError(CategoryEncoding, "source is not valid UTF-8")
		}
		return data, nil
	}
	enc, err := htmlindex.Get(normalized)
	if err != nil {
		return nil, newError(CategoryEncoding, "unsupported encoding %q: %v", name, err)
	}
	decoded, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return nil, newError(CategoryEncoding, "failed to decode %q input: %v", name, err)
	}
	return decoded, nil
}
