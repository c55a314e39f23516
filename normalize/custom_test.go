package normalize

import (
	"strings"
	"testing"

	"github.com/lehigh-university-libraries/pid/scheme"
)

func TestCustomSchemeNormalizeAndURL(t *testing.T) {
	reg, err := scheme.NewRegistry([]scheme.Registration{
		{Name: "depot", Factory: func() (*scheme.Config, error) {
			return &scheme.Config{
				Normalizer: func(val string) string {
					return strings.TrimPrefix(strings.ToLower(val), "depot:")
				},
				URLGenerator: func(urlScheme, pid string) string {
					return urlScheme + "://depot.example.org/records/" + pid
				},
			}, nil
		}},
	})
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}

	n := New(reg)
	if got := n.PID("DEPOT:123456", "depot"); got != "123456" {
		t.Errorf("PID = %q, want 123456", got)
	}
	if got := n.ToURL("depot:123456", "depot", ""); got != "http://depot.example.org/records/123456" {
		t.Errorf("ToURL = %q", got)
	}
	if got := n.ToURL("depot:123456", "depot", "https"); got != "https://depot.example.org/records/123456" {
		t.Errorf("ToURL https = %q", got)
	}

	// Built-in schemes keep working alongside the custom one.
	if got := n.PID("doi:10.1234/foo", "doi"); got != "10.1234/foo" {
		t.Errorf("PID doi = %q", got)
	}
}
