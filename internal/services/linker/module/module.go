// Package module wires the linker worker service and exposes its ports
package module

import (
	"followup/internal/modkit"
	"followup/internal/modkit/httpkit"
	"followup/internal/services/linker/service"
)

// Module defines the linker worker module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs the linker worker module with its ports
func New(deps modkit.Deps, overrides Options) *Module {
	// Load defaults, then apply non-zero overrides
	opts := FromConfig(deps.Cfg)

	if overrides.Interval != 0 {
		opts.Interval = overrides.Interval
	}
	if overrides.BatchLimit != 0 {
		opts.BatchLimit = overrides.BatchLimit
	}
	if overrides.Threshold != 0 {
		opts.Threshold = overrides.Threshold
	}
	if overrides.WindowPad != 0 {
		opts.WindowPad = overrides.WindowPad
	}

	svc := service.New(deps, service.Config{
		Interval:   opts.Interval,
		BatchLimit: opts.BatchLimit,
		Threshold:  opts.Threshold,
		WindowPad:  opts.WindowPad,
	})

	m := &Module{deps: deps}
	m.ports = Ports{
		Worker: svc,
		Link:   svc,
	}
	return m
}

// Ports returns the module ports (Worker, Link)
func (m *Module) Ports() any { return m.ports }

// Name returns the module name
func (m *Module) Name() string { return "linker" }

// Prefix returns the module config prefix (none for worker-only service)
func (m *Module) Prefix() string { return "" }

// MountRoutes returns no HTTP routes
func (m *Module) MountRoutes(_ httpkit.Router) {}
