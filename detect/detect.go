// Package detect identifies which persistent-identifier schemes a raw
// string is syntactically consistent with.
//
// Identifier syntaxes overlap by accident of history (a DOI is a Handle, an
// ORCID is an ISNI, a ten-digit GND number is also a plausible PMID), so a
// single best-match heuristic cannot be correct. Detection instead runs
// every registered validator and then prunes the candidate set with an
// explicit, ordered rule table plus a handful of special cases.
package detect

import (
	"strings"

	"github.com/lehigh-university-libraries/pid/scheme"
	"github.com/lehigh-university-libraries/pid/validate"
)

// Detector detects schemes against a fixed custom-scheme registry.
type Detector struct {
	registry *scheme.Registry
}

// New returns a Detector bound to the given custom-scheme registry. A nil
// registry means built-in schemes only.
func New(reg *scheme.Registry) *Detector {
	return &Detector{registry: reg}
}

// Schemes detects the identifier schemes of value using the process-wide
// default custom-scheme registry.
//
// Note: some schemes like PMID are very generic.
func Schemes(value string) []string {
	return New(scheme.Default()).Schemes(value)
}

// Schemes returns the names of every scheme value matches, most specific
// first: built-in schemes in their declared order, then custom schemes in
// registration order, pruned by the disambiguation rules.
func (d *Detector) Schemes(value string) []string {
	schemes := []string{}
	for _, s := range scheme.Builtin {
		if s.Validator(value) {
			schemes = append(schemes, s.Name)
		}
	}
	for _, s := range d.registry.Validators() {
		if s.Validator(value) {
			schemes = append(schemes, s.Name)
		}
	}

	// GND and ISBN numbers can clash; an explicit gnd: label settles it.
	if contains(schemes, "gnd") && contains(schemes, "isbn") &&
		strings.HasPrefix(strings.ToLower(value), "gnd:") {
		schemes = remove(schemes, "isbn")
	}

	// VIAF identifiers are URL-shaped, so a VIAF landing URL always
	// double-matches url and handle.
	if contains(schemes, "viaf") && contains(schemes, "url") && hasVIAFURL(value) {
		schemes = remove(schemes, "url")
	}
	if contains(schemes, "viaf") && contains(schemes, "handle") && hasVIAFURL(value) {
		schemes = remove(schemes, "handle")
	}

	rules := make([]scheme.FilterRule, 0, len(scheme.BuiltinFilters))
	rules = append(rules, scheme.BuiltinFilters...)
	rules = append(rules, d.registry.Filters()...)
	for _, rule := range rules {
		if contains(schemes, rule.Trigger) {
			schemes = remove(schemes, rule.Remove...)
		}
	}

	// Handle syntax is maximally generic: keep it only when the value is
	// literally a Handle resolver URL, and yield to the more specific
	// ark/arxiv matches.
	if contains(schemes, "handle") && contains(schemes, "url") &&
		!strings.HasPrefix(value, "http://hdl.handle.net/") &&
		!strings.HasPrefix(value, "https://hdl.handle.net/") {
		schemes = remove(schemes, "handle")
	} else if contains(schemes, "handle") &&
		(contains(schemes, "ark") || contains(schemes, "arxiv")) {
		schemes = remove(schemes, "handle")
	}

	return schemes
}

func hasVIAFURL(value string) bool {
	for _, viafURL := range validate.VIAFURLs {
		if strings.HasPrefix(value, viafURL) {
			return true
		}
	}
	return false
}

func contains(schemes []string, name string) bool {
	for _, s := range schemes {
		if s == name {
			return true
		}
	}
	return false
}

// remove filters names out of schemes, preserving order.
func remove(schemes []string, names ...string) []string {
	kept := schemes[:0]
	for _, s := range schemes {
		drop := false
		for _, name := range names {
			if s == name {
				drop = true
				break
			}
		}
		if !drop {
			kept = append(kept, s)
		}
	}
	return kept
}
