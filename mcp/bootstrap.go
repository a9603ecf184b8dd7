package mcp

import (
	"context"

	"github.com/es3154/csv2json-mcp/converter"
	"github.com/es3154/csv2json-mcp/mcp/config"
	"github.com/viant/fluxor/model/types"
)

// init is the bootstrap routine invoked by New once all options have been
// applied. It validates the configuration and builds the action-service
// registration table exactly once.
func (s *Service) init(ctx context.Context) error {
	s.initDefaults()

	// Validate configuration early to fail fast when possible.
	if err := s.config.Validate(); err != nil {
		return err
	}
	defaults, err := s.config.ConversionOptions()
	if err != nil {
		return err
	}

	core := converter.New()
	for _, service := range resolveBuiltinServices(s.config.Builtins, core, defaults) {
		s.register(service)
	}
	for _, service := range s.extensions {
		s.register(service)
	}
	return nil
}

// initDefaults applies fall-back values for optional settings that were not
// supplied through options.
func (s *Service) initDefaults() {
	if s.config == nil {
		s.config = &config.Config{}
	}
	if len(s.config.Builtins) == 0 { // expose every builtin action service
		s.config.Builtins = append(s.config.Builtins, "*")
	}
}

// register adds an action service, keeping the first definition on duplicate
// names so that every registration path behaves consistently.
func (s *Service) register(service types.Service) {
	if s.actions.Get(service.Name()) != nil {
		return
	}
	s.actions.Set(service.Name(), service)
}
