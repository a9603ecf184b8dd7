package csvaction

import (
	"context"
	"reflect"

	"github.com/es3154/csv2json-mcp/converter"
	"github.com/es3154/csv2json-mcp/internal/conv"
	"github.com/viant/fluxor/model/types"
)

const (
	// InspectorName is the registry key of the advisory inspector service.
	InspectorName = "inspector"

	// ToolInfo is the tool name of the file metadata probe.
	ToolInfo = "get_csv_info"
)

// Inspector exposes the advisory file metadata probe as an action service.
// It is separate from the converter service so that deployments can leave it
// out via the builtins configuration.
type Inspector struct {
	converter *converter.Service
	sigs      types.Signatures
	executors map[string]types.Executable
}

// NewInspector builds the inspector action service.
func NewInspector(service *converter.Service) *Inspector {
	if service == nil {
		service = converter.New()
	}
	i := &Inspector{
		converter: service,
		executors: map[string]types.Executable{},
	}
	sig := types.Signature{
		Name:        ToolInfo,
		Description: "Report size, shape and a small sample of a CSV file without converting it",
		Input:       reflect.TypeOf(&InfoInput{}),
		Output:      reflect.TypeOf(&InfoOutput{}),
	}
	i.sigs = append(i.sigs, sig)
	i.executors[sig.Name] = i.getInfo
	return i
}

func (i *Inspector) getInfo(ctx context.Context, input, output interface{}) error {
	in := &InfoInput{}
	if err := conv.Convert(input, in); err != nil {
		return err
	}
	result := &InfoOutput{}
	info, err := i.converter.Info(ctx, in.FilePath)
	if err != nil {
		result.Error = err.Error()
		result.Message = failureMessage(err)
	} else {
		result.Success = true
		result.Info = info
		result.Message = "CSV file inspected"
	}
	switch actual := output.(type) {
	case *InfoOutput:
		*actual = *result
	default:
		return conv.Convert(result, output)
	}
	return nil
}

// ------------------------------------------------------------------
// types.Service implementation
// ------------------------------------------------------------------

func (i *Inspector) Name() string { return InspectorName }

func (i *Inspector) Methods() types.Signatures { return i.sigs }

func (i *Inspector) Method(name string) (types.Executable, error) {
	if executor, ok := i.executors[name]; ok {
		return executor, nil
	}
	return nil, types.NewMethodNotFoundError(name)
}
