// Package scheme defines the persistent-identifier scheme registry: the
// ordered table of built-in schemes, the declarative disambiguation filter
// table, and a registry for custom schemes contributed by callers.
package scheme

import (
	"fmt"
	"sync"
)

// ValidatorFunc reports whether a value is syntactically valid for a scheme.
type ValidatorFunc func(value string) bool

// NormalizerFunc rewrites a value into the scheme's canonical textual form.
type NormalizerFunc func(value string) string

// URLGeneratorFunc renders a landing-page URL for a normalized value, or ""
// if the scheme is not resolvable.
type URLGeneratorFunc func(urlScheme, pid string) string

// Config describes a custom scheme. Any nil or empty field takes a default:
// the validator matches everything, the normalizer is the identity, the
// filter is empty and the URL generator yields "" (non-resolvable).
type Config struct {
	Validator    ValidatorFunc
	Normalizer   NormalizerFunc
	Filter       []string
	URLGenerator URLGeneratorFunc
}

// Factory produces the configuration for a custom scheme. It is invoked
// once, at registry construction time.
type Factory func() (*Config, error)

// Registration names a custom scheme and supplies its config factory.
type Registration struct {
	Name    string
	Factory Factory
}

// Named pairs a scheme name with its validator.
type Named struct {
	Name      string
	Validator ValidatorFunc
}

// FilterRule removes schemes from a candidate set whenever its trigger
// scheme is present. Rules run in table order against the mutating set, so
// an earlier removal can disarm a later rule's trigger.
type FilterRule struct {
	Trigger string
	Remove  []string
}

// Registry holds custom schemes, keyed by name, in registration order.
// A Registry is immutable once constructed and safe for concurrent reads.
type Registry struct {
	names   []string
	schemes map[string]*Config
}

// NewRegistry builds a registry from the supplied registrations. A
// registration whose name collides with a built-in scheme, or whose factory
// is nil, errors or yields a nil config, fails construction: a broken
// registration must not silently disable detection. Registering the same
// custom name twice is idempotent; the first registration wins.
func NewRegistry(regs []Registration) (*Registry, error) {
	r := &Registry{schemes: make(map[string]*Config, len(regs))}
	for _, reg := range regs {
		if IsBuiltin(reg.Name) {
			return nil, fmt.Errorf("scheme %q already exists", reg.Name)
		}
		if _, ok := r.schemes[reg.Name]; ok {
			continue
		}
		if reg.Factory == nil {
			return nil, fmt.Errorf("scheme %q has no config factory", reg.Name)
		}
		cfg, err := reg.Factory()
		if err != nil {
			return nil, fmt.Errorf("loading scheme %q: %w", reg.Name, err)
		}
		if cfg == nil {
			return nil, fmt.Errorf("scheme %q factory returned no config", reg.Name)
		}
		r.schemes[reg.Name] = withDefaults(cfg)
		r.names = append(r.names, reg.Name)
	}
	return r, nil
}

func withDefaults(cfg *Config) *Config {
	merged := *cfg
	if merged.Validator == nil {
		merged.Validator = func(string) bool { return true }
	}
	if merged.Normalizer == nil {
		merged.Normalizer = func(v string) string { return v }
	}
	if merged.URLGenerator == nil {
		merged.URLGenerator = func(string, string) string { return "" }
	}
	return &merged
}

// Names returns the registered custom scheme names in registration order.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	return r.names
}

// Validators returns the custom validators in registration order.
func (r *Registry) Validators() []Named {
	if r == nil {
		return nil
	}
	out := make([]Named, 0, len(r.names))
	for _, name := range r.names {
		out = append(out, Named{Name: name, Validator: r.schemes[name].Validator})
	}
	return out
}

// Filters returns the custom filter rules in registration order. Schemes
// with an empty filter list contribute no rule.
func (r *Registry) Filters() []FilterRule {
	if r == nil {
		return nil
	}
	var out []FilterRule
	for _, name := range r.names {
		if remove := r.schemes[name].Filter; len(remove) > 0 {
			out = append(out, FilterRule{Trigger: name, Remove: remove})
		}
	}
	return out
}

// Normalizer returns the normalizer registered for name, or nil.
func (r *Registry) Normalizer(name string) NormalizerFunc {
	if r == nil {
		return nil
	}
	if cfg, ok := r.schemes[name]; ok {
		return cfg.Normalizer
	}
	return nil
}

// URLGenerator returns the URL generator registered for name, or nil.
func (r *Registry) URLGenerator(name string) URLGeneratorFunc {
	if r == nil {
		return nil
	}
	if cfg, ok := r.schemes[name]; ok {
		return cfg.URLGenerator
	}
	return nil
}

var (
	defaultMu    sync.Mutex
	defaultRegs  []Registration
	defaultBuilt bool
	defaultReg   *Registry
)

// Register queues a custom scheme registration for the process-wide default
// registry. It must be called before the first use of Default, typically
// from an init function; a malformed registration surfaces as a panic when
// the default registry is first built.
func Register(reg Registration) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultBuilt {
		panic(fmt.Sprintf("scheme: Register(%q) after default registry was initialized", reg.Name))
	}
	defaultRegs = append(defaultRegs, reg)
}

// Default returns the process-wide registry, building it from the queued
// registrations on first use. Construction happens exactly once even under
// concurrent first access; afterwards the registry is read-only.
func Default() *Registry {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if !defaultBuilt {
		r, err := NewRegistry(defaultRegs)
		if err != nil {
			panic(fmt.Sprintf("scheme: building default registry: %v", err))
		}
		defaultReg = r
		defaultBuilt = true
	}
	return defaultReg
}
