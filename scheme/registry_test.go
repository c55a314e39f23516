package scheme

import (
	"errors"
	"strings"
	"testing"
)

func staticFactory(cfg *Config) Factory {
	return func() (*Config, error) { return cfg, nil }
}

func TestNewRegistryDefaults(t *testing.T) {
	reg, err := NewRegistry([]Registration{
		{Name: "custom", Factory: staticFactory(&Config{})},
	})
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}

	validators := reg.Validators()
	if len(validators) != 1 || validators[0].Name != "custom" {
		t.Fatalf("Validators() = %v, want one entry named custom", validators)
	}
	if !validators[0].Validator("anything at all") {
		t.Error("default validator should match everything")
	}
	if norm := reg.Normalizer("custom"); norm == nil || norm("Value") != "Value" {
		t.Error("default normalizer should be the identity")
	}
	if gen := reg.URLGenerator("custom"); gen == nil || gen("https", "x") != "" {
		t.Error("default URL generator should yield \"\"")
	}
	if len(reg.Filters()) != 0 {
		t.Errorf("Filters() = %v, want none for an empty filter list", reg.Filters())
	}
}

func TestNewRegistryRejectsBuiltinCollision(t *testing.T) {
	_, err := NewRegistry([]Registration{
		{Name: "doi", Factory: staticFactory(&Config{})},
	})
	if err == nil {
		t.Fatal("NewRegistry accepted a scheme named doi")
	}
	if !strings.Contains(err.Error(), "doi") {
		t.Errorf("error %q does not name the colliding scheme", err)
	}
}

func TestNewRegistryDuplicateFirstWins(t *testing.T) {
	first := &Config{Normalizer: func(string) string { return "first" }}
	second := &Config{Normalizer: func(string) string { return "second" }}
	reg, err := NewRegistry([]Registration{
		{Name: "custom", Factory: staticFactory(first)},
		{Name: "custom", Factory: staticFactory(second)},
	})
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	if got := reg.Normalizer("custom")("x"); got != "first" {
		t.Errorf("duplicate registration overrode the first: got %q", got)
	}
	if names := reg.Names(); len(names) != 1 {
		t.Errorf("Names() = %v, want a single entry", names)
	}
}

func TestNewRegistryRejectsBrokenFactories(t *testing.T) {
	cases := []struct {
		name string
		reg  Registration
	}{
		{"nil factory", Registration{Name: "a"}},
		{"factory error", Registration{Name: "b", Factory: func() (*Config, error) {
			return nil, errors.New("boom")
		}}},
		{"nil config", Registration{Name: "c", Factory: func() (*Config, error) {
			return nil, nil
		}}},
	}
	for _, tc := range cases {
		if _, err := NewRegistry([]Registration{tc.reg}); err == nil {
			t.Errorf("%s: NewRegistry succeeded, want error", tc.name)
		}
	}
}

func TestRegistryOrderAndFilters(t *testing.T) {
	reg, err := NewRegistry([]Registration{
		{Name: "zeta", Factory: staticFactory(&Config{Filter: []string{"pmid"}})},
		{Name: "alpha", Factory: staticFactory(&Config{})},
	})
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}

	names := reg.Names()
	if len(names) != 2 || names[0] != "zeta" || names[1] != "alpha" {
		t.Errorf("Names() = %v, want registration order [zeta alpha]", names)
	}

	filters := reg.Filters()
	if len(filters) != 1 || filters[0].Trigger != "zeta" || len(filters[0].Remove) != 1 {
		t.Errorf("Filters() = %v, want a single zeta rule", filters)
	}
}

func TestNilRegistryIsEmpty(t *testing.T) {
	var reg *Registry
	if reg.Names() != nil || reg.Validators() != nil || reg.Filters() != nil {
		t.Error("nil registry should report no schemes")
	}
	if reg.Normalizer("x") != nil || reg.URLGenerator("x") != nil {
		t.Error("nil registry should have no per-scheme funcs")
	}
}

func TestDefaultRegistryIsStable(t *testing.T) {
	first := Default()
	second := Default()
	if first != second {
		t.Error("Default() should build the registry once and reuse it")
	}
}
