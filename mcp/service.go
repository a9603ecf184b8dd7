package mcp

import (
	"context"

	"github.com/es3154/csv2json-mcp/internal/syncmap"
	"github.com/es3154/csv2json-mcp/mcp/config"
	"github.com/viant/fluxor/model/types"
)

// Service bundles configuration and the action-service registry that backs
// the MCP server adapter. The registry is built once during New and never
// mutated afterwards; individual tool calls share nothing beyond it.
type Service struct {
	config     *config.Config
	actions    *syncmap.Map[types.Service]
	extensions []types.Service
}

// Config returns the effective configuration instance passed to the service
// at construction time. Callers must treat the returned object as read-only.
func (s *Service) Config() *config.Config { return s.config }

// ActionService returns a registered action service by name, or nil.
func (s *Service) ActionService(name string) types.Service { return s.actions.Get(name) }

// ActionServiceNames lists the registered action services in sorted order.
func (s *Service) ActionServiceNames() []string { return s.actions.Keys() }

// Option modifies a service instance before it is initialised.
type Option func(*Service)

// WithConfig sets a custom configuration instance. When omitted a zero value
// config is assumed.
func WithConfig(cfg *config.Config) Option {
	return func(s *Service) {
		s.config = cfg
	}
}

// WithActionServices registers custom action services next to the built-ins
// selected by the configuration.
func WithActionServices(services ...types.Service) Option {
	return func(s *Service) {
		s.extensions = append(s.extensions, services...)
	}
}

// New constructs a service instance. The bootstrap sequence lives in
// bootstrap.go so that callers do not need to care about the initialisation
// order.
func New(ctx context.Context, opts ...Option) (*Service, error) {
	svc := &Service{actions: syncmap.NewRegistry[types.Service]()}
	for _, opt := range opts {
		opt(svc)
	}
	if err := svc.init(ctx); err != nil {
		return nil, err
	}
	return svc, nil
}
