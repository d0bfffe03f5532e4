// Package flags provides read-only feature flags loaded from configuration.
// Unknown flags fall back to a per-flag default.
package flags

import (
	"maps"

	"github.com/strata-labs/strata/internal/log"
)

const (
	// FlagCharts shows the usage chart and sparklines on the overview page.
	FlagCharts = "charts"

	// FlagAPIKeyCreate enables the "n" create action on the API keys page.
	FlagAPIKeyCreate = "api-key-create"

	// FlagMarketing enables the marketing landing mode. When off the app
	// starts in, and stays on, the dashboard.
	FlagMarketing = "marketing"
)

var defaults = map[string]bool{
	FlagCharts:       true,
	FlagAPIKeyCreate: true,
	FlagMarketing:    true,
}

// Registry holds feature flag state. It is read-only after New.
type Registry struct {
	flags map[string]bool
}

// New creates a Registry from a config map.
func New(flags map[string]bool) *Registry {
	r := &Registry{flags: maps.Clone(flags)}
	if r.flags == nil {
		r.flags = make(map[string]bool)
	}
	log.Debug(log.CatConfig, "feature flags initialized", "count", len(r.flags))
	return r
}

// Enabled reports whether the named flag is on. Flags missing from
// configuration use their built-in default; unknown flags are off.
// A nil registry behaves as if nothing was configured.
func (r *Registry) Enabled(name string) bool {
	if r != nil {
		if value, ok := r.flags[name]; ok {
			return value
		}
	}
	return defaults[name]
}

// All returns every known flag with its effective value.
func (r *Registry) All() map[string]bool {
	result := maps.Clone(defaults)
	if r != nil {
		maps.Copy(result, r.flags)
	}
	return result
}

// Known reports whether name is a built-in flag.
func Known(name string) bool {
	_, ok := defaults[name]
	return ok
}
