package csvaction

import "github.com/es3154/csv2json-mcp/converter"

// ConvertFileInput holds the arguments of the convert_csv_file tool.
type ConvertFileInput struct {
	FilePath       string `json:"file_path"`
	OutputFilePath string `json:"output_file_path,omitempty"`
	Delimiter      string `json:"delimiter,omitempty"`
	Encoding       string `json:"encoding,omitempty"`
	SkipRows       int    `json:"skip_rows,omitempty"`
	Header         *bool  `json:"header,omitempty"`
	Orient         string `json:"orient,omitempty"`
	Indent         *int   `json:"indent,omitempty"`
}

// ConvertFileOutput is the result envelope of convert_csv_file.
type ConvertFileOutput struct {
	Success      bool   `json:"success"`
	JSONFilePath string `json:"json_file_path,omitempty"`
	Error        string `json:"error,omitempty"`
	Message      string `json:"message"`
}

// ConvertStringInput holds the arguments of the convert_csv_string tool.
type ConvertStringInput struct {
	CSVContent string `json:"csv_content"`
	Delimiter  string `json:"delimiter,omitempty"`
	SkipRows   int    `json:"skip_rows,omitempty"`
	Header     *bool  `json:"header,omitempty"`
	Orient     string `json:"orient,omitempty"`
	Indent     *int   `json:"indent,omitempty"`
}

// ConvertStringOutput is the result envelope of convert_csv_string.
type ConvertStringOutput struct {
	Success bool   `json:"success"`
	JSON    string `json:"json,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message"`
}

// InfoInput holds the arguments of the get_csv_info tool.
type InfoInput struct {
	FilePath string `json:"file_path"`
}

// InfoOutput wraps the advisory file metadata in the result envelope.
type InfoOutput struct {
	Success bool            `json:"success"`
	Info    *converter.Info `json:"info,omitempty"`
	Error   string          `json:"error,omitempty"`
	Message string          `json:"message"`
}

// failureMessage maps a failure category onto the stable human-readable
// message surfaced next to the original error text.
func failureMessage(err error) string {
	switch converter.CategoryOf(err) {
	case converter.CategoryNotFound:
		return "file not found"
	case converter.CategoryParse, converter.CategoryEncoding, converter.CategoryOption:
		return "conversion failed"
	default:
		return "unknown error"
	}
}
