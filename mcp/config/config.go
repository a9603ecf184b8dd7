package config

import (
	"context"
	"fmt"

	"github.com/es3154/csv2json-mcp/converter"
	"github.com/viant/afs"
	mcp "github.com/viant/mcp"
	"gopkg.in/yaml.v3"
)

// Config is the YAML/JSON configuration model accepted on startup.
type Config struct {
	Server     *mcp.ServerOptions `yaml:"server,omitempty" json:"server,omitempty"`
	Builtins   []string           `yaml:"builtins,omitempty" json:"builtins,omitempty"`
	Conversion *Conversion        `yaml:"conversion,omitempty" json:"conversion,omitempty"`
}

// Conversion overrides the conversion defaults applied when tool arguments
// leave the corresponding option unset.
type Conversion struct {
	Delimiter string `yaml:"delimiter,omitempty" json:"delimiter,omitempty"`
	Encoding  string `yaml:"encoding,omitempty" json:"encoding,omitempty"`
	Orient    string `yaml:"orient,omitempty" json:"orient,omitempty"`
	Indent    *int   `yaml:"indent,omitempty" json:"indent,omitempty"`
}

// Load reads and parses a configuration file. The path may be any URL
// supported by afs (file path, file://, s3://, …).
func Load(ctx context.Context, path string) (*Config, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %q: %w", path, err)
	}
	return &cfg, nil
}

// Validate fails fast on configurations every conversion would reject later
// anyway.
func (c *Config) Validate() error {
	_, err := c.ConversionOptions()
	return err
}

// ConversionOptions merges the configured conversion defaults over the
// library defaults.
func (c *Config) ConversionOptions() (*converter.Options, error) {
	options := converter.DefaultOptions()
	if c.Conversion == nil {
		return options, nil
	}
	if c.Conversion.Delimiter != "" {
		options.Delimiter = c.Conversion.Delimiter
	}
	if c.Conversion.Encoding != "" {
		options.Encoding = c.Conversion.Encoding
	}
	if c.Conversion.Orient != "" {
		orient, err := converter.ParseOrient(c.Conversion.Orient)
		if err != nil {
			return nil, err
		}
		options.Orient = orient
	}
	if c.Conversion.Indent != nil {
		options.Indent = c.Conversion.Indent
	}
	if err := options.Validate(); err != nil {
		return nil, err
	}
	return options, nil
}
