package converter

import (
	"bytes"
	"context"
	"path"
	"strings"

	"github.com/viant/afs"
)

// Service converts CSV sources into JSON documents. It holds no per-call
// state – every conversion builds a fresh table from its source – so a single
// instance can serve concurrent callers without coordination.
type Service struct {
	fs afs.Service
}

// New returns a ready-to-use conversion service.
func New() *Service {
	return &Service{fs: afs.New()}
}

// ConvertString converts in-memory CSV text into JSON text. The encoding
// option does not apply here – the content is already text.
func (s *Service) ConvertString(content string, options *Options) (string, error) {
	if options == nil {
		options = DefaultOptions()
	}
	if err := options.Validate(); err != nil {
		return "", err
	}
	table, err := readTable(strings.NewReader(content), options)
	if err != nil {
		return "", err
	}
	return marshalTable(table, options)
}

// ConvertFile reads the CSV source at URL and returns JSON text. Options are
// validated before the source is opened, so an invalid configuration never
// touches the file system.
func (s *Service) ConvertFile(ctx context.Context, URL string, options *Options) (string, error) {
	if options == nil {
		options = DefaultOptions()
	}
	if err := options.Validate(); err != nil {
		return "", err
	}
	data, err := s.download(ctx, URL)
	if err != nil {
		return "", err
	}
	decoded, err := decode(data, options.Encoding)
	if err != nil {
		return "", err
	}
	table, err := readTable(bytes.NewReader(decoded), options)
	if err != nil {
		return "", err
	}
	return marshalTable(table, options)
}

// ConvertFileToFile converts the CSV source at URL and writes the JSON text
// to destURL. An empty destURL defaults to the source location with its
// extension swapped to .json. Returns the destination actually written; on
// failure no destination is created.
func (s *Service) ConvertFileToFile(ctx context.Context, URL, destURL string, options *Options) (string, error) {
	output, err := s.ConvertFile(ctx, URL, options)
	if err != nil {
		return "", err
	}
	if destURL == "" {
		destURL = jsonDestination(URL)
	}
	if err := s.fs.Upload(ctx, destURL, 0o644, strings.NewReader(output)); err != nil {
		return "", newError(CategoryUnknown, "failed to write %v: %v", destURL, err)
	}
	return destURL, nil
}

func (s *Service) download(ctx context.Context, URL string) ([]byte, error) {
	if ok, _ := s.fs.Exists(ctx, URL); !ok {
		return nil, newError(CategoryNotFound, "CSV file does not exist: %v", URL)
	}
	data, err := s.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, newError(CategoryNotFound, "failed to read %v: %v", URL, err)
	}
	return data, nil
}

// jsonDestination swaps the source extension for .json, appending it when the
// source has none.
func jsonDestination(URL string) string {
	if ext := path.Ext(URL); ext != "" {
		return strings.TrimSuffix(URL, ext) + ".json"
	}
	return URL + ".json"
}
