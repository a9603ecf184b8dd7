package csvaction

import (
	"context"
	"reflect"

	"github.com/es3154/csv2json-mcp/converter"
	"github.com/es3154/csv2json-mcp/internal/conv"
	"github.com/viant/fluxor/model/types"
)

const (
	// ServiceName is the registry key of the converter action service.
	ServiceName = "converter"

	// ToolConvertFile and ToolConvertString are the remote contract surface;
	// hosts address the tools by exactly these names.
	ToolConvertFile   = "convert_csv_file"
	ToolConvertString = "convert_csv_string"
)

// Service exposes the conversion operations as action methods.
type Service struct {
	converter *converter.Service
	defaults  *converter.Options
	sigs      types.Signatures
	executors map[string]types.Executable
}

// New builds the converter action service. defaults may be nil, in which
// case the library defaults apply to arguments the caller leaves unset.
func New(service *converter.Service, defaults *converter.Options) *Service {
	if service == nil {
		service = converter.New()
	}
	if defaults == nil {
		defaults = converter.DefaultOptions()
	}
	s := &Service{
		converter: service,
		defaults:  defaults,
		executors: map[string]types.Executable{},
	}
	s.register(types.Signature{
		Name:        ToolConvertFile,
		Description: "Convert a CSV file into a JSON file; the output path defaults to the source path with a .json extension",
		Input:       reflect.TypeOf(&ConvertFileInput{}),
		Output:      reflect.TypeOf(&ConvertFileOutput{}),
	}, s.convertFile)
	s.register(types.Signature{
		Name:        ToolConvertString,
		Description: "Convert CSV text into JSON text in the records, values or split layout",
		Input:       reflect.TypeOf(&ConvertStringInput{}),
		Output:      reflect.TypeOf(&ConvertStringOutput{}),
	}, s.convertString)
	return s
}

func (s *Service) register(sig types.Signature, executor types.Executable) {
	s.sigs = append(s.sigs, sig)
	s.executors[sig.Name] = executor
}

func (s *Service) convertFile(ctx context.Context, input, output interface{}) error {
	in := &ConvertFileInput{}
	if err := conv.Convert(input, in); err != nil {
		return err
	}
	options := s.options(in.Delimiter, in.Encoding, in.SkipRows, in.Header, in.Orient, in.Indent)
	result := &ConvertFileOutput{}
	destination, err := s.converter.ConvertFileToFile(ctx, in.FilePath, in.OutputFilePath, options)
	if err != nil {
		result.Error = err.Error()
		result.Message = failureMessage(err)
	} else {
		result.Success = true
		result.JSONFilePath = destination
		result.Message = "CSV file converted, JSON file written"
	}
	switch actual := output.(type) {
	case *ConvertFileOutput:
		*actual = *result
	default:
		return conv.Convert(result, output)
	}
	return nil
}

func (s *Service) convertString(ctx context.Context, input, output interface{}) error {
	in := &ConvertStringInput{}
	if err := conv.Convert(input, in); err != nil {
		return err
	}
	options := s.options(in.Delimiter, "", in.SkipRows, in.Header, in.Orient, in.Indent)
	result := &ConvertStringOutput{}
	converted, err := s.converter.ConvertString(in.CSVContent, options)
	if err != nil {
		result.Error = err.Error()
		result.Message = failureMessage(err)
	} else {
		result.Success = true
		result.JSON = converted
		result.Message = "CSV string converted"
	}
	switch actual := output.(type) {
	case *ConvertStringOutput:
		*actual = *result
	default:
		return conv.Convert(result, output)
	}
	return nil
}

// options merges tool arguments over the service defaults; zero-valued
// arguments keep their default.
func (s *Service) options(delimiter, encoding string, skipRows int, header *bool, orient string, indent *int) *converter.Options {
	options := *s.defaults
	if delimiter != "" {
		options.Delimiter = delimiter
	}
	if encoding != "" {
		options.Encoding = encoding
	}
	options.SkipRows = skipRows
	if header != nil {
		options.Header = *header
	}
	if orient != "" {
		options.Orient = converter.Orient(orient)
	}
	if indent != nil {
		options.Indent = indent
	}
	return &options
}

// ------------------------------------------------------------------
// types.Service implementation
// ------------------------------------------------------------------

func (s *Service) Name() string { return ServiceName }

func (s *Service) Methods() types.Signatures { return s.sigs }

func (s *Service) Method(name string) (types.Executable, error) {
	if executor, ok := s.executors[name]; ok {
		return executor, nil
	}
	return nil, types.NewMethodNotFoundError(name)
}
