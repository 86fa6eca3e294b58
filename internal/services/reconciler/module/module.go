// Package module wires the reconciler worker service and exposes its ports
package module

import (
	"followup/internal/modkit"
	"followup/internal/modkit/httpkit"
	"followup/internal/services/reconciler/service"
)

// Module defines the reconciler worker module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs the reconciler worker module with its ports
func New(deps modkit.Deps, overrides Options) *Module {
	// Load defaults, then apply non-zero overrides
	opts := FromConfig(deps.Cfg)

	if overrides.Interval != 0 {
		opts.Interval = overrides.Interval
	}
	if overrides.BatchLimit != 0 {
		opts.BatchLimit = overrides.BatchLimit
	}

	svc := service.New(deps, service.Config{
		Interval:   opts.Interval,
		BatchLimit: opts.BatchLimit,
	})

	m := &Module{deps: deps}
	m.ports = Ports{
		Worker:    svc,
		Reconcile: svc,
	}
	return m
}

// Ports returns the module ports (Worker, Reconcile)
func (m *Module) Ports() any { return m.ports }

// Name returns the module name
func (m *Module) Name() string { return "reconciler" }

// Prefix returns the module config prefix (none for worker-only service)
func (m *Module) Prefix() string { return "" }

// MountRoutes returns no HTTP routes
func (m *Module) MountRoutes(_ httpkit.Router) {}
