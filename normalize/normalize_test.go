package normalize

import (
	"testing"

	"github.com/lehigh-university-libraries/pid/detect"
)

// normalizeCases pairs raw values with their scheme and canonical form.
var normalizeCases = []struct {
	value  string
	scheme string
	want   string
}{
	{"10.1016/j.epsl.2011.11.037", "doi", "10.1016/j.epsl.2011.11.037"},
	{"doi:10.1016/j.epsl.2011.11.037", "doi", "10.1016/j.epsl.2011.11.037"},
	{"doi: 10.1016/j.epsl.2011.11.037", "doi", "10.1016/j.epsl.2011.11.037"},
	{"DOI:10.1016/j.epsl.2011.11.037", "doi", "10.1016/j.epsl.2011.11.037"},
	{"http://dx.doi.org/10.1016/j.epsl.2011.11.037", "doi", "10.1016/j.epsl.2011.11.037"},
	{"https://doi.org/10.1016/j.epsl.2011.11.037", "doi", "10.1016/j.epsl.2011.11.037"},
	{"doi.org/10.1016/j.epsl.2011.11.037", "doi", "10.1016/j.epsl.2011.11.037"},
	{"10.1016/üникóδé-дôΐ", "doi", "10.1016/üникóδé-дôΐ"},
	{"hdl:10013/epic.10033", "handle", "10013/epic.10033"},
	{"hdl: 10013/epic.10033", "handle", "10013/epic.10033"},
	{"HDL:10013/epic.10033", "handle", "10013/epic.10033"},
	{"hdl.handle.net/10013/epic.10033", "handle", "10013/epic.10033"},
	{"http://hdl.handle.net/10013/epic.10033", "handle", "10013/epic.10033"},
	{"10013/epic.10033", "handle", "10013/epic.10033"},
	{"9783468111242", "isbn", "978-3-468-11124-2"},
	{"978-3-905673-82- 1", "isbn", "978-3-905673-82-1"},
	{"978-3-905673-82-1", "isbn", "978-3-905673-82-1"},
	{"0-9752298-0-X", "isbn", "978-0-9752298-0-4"},
	{"15626865", "issn", "1562-6865"},
	{"1188-1534", "issn", "1188-1534"},
	{"0077-5606", "issn", "0077-5606"},
	{"12082125", "pmid", "12082125"},
	{"pmid:12082125", "pmid", "12082125"},
	{"ads:2011ApJS..192...18K", "ads", "2011ApJS..192...18K"},
	{"2011ApJS..192...18K", "ads", "2011ApJS..192...18K"},
	{"0000000218250097", "orcid", "0000-0002-1825-0097"},
	{"http://orcid.org/0000-0002-1825-0097", "orcid", "0000-0002-1825-0097"},
	{"0000-0002-1694-233X", "orcid", "0000-0002-1694-233X"},
	{"arXiv:1310.2590", "arxiv", "arXiv:1310.2590"},
	{"arxiv:1310.2590", "arxiv", "arXiv:1310.2590"},
	{"1310.2590", "arxiv", "arXiv:1310.2590"},
	{"math.GT/0309136", "arxiv", "arXiv:math/0309136"},
	{"hep-th/9901001v27", "arxiv", "arXiv:hep-th/9901001v27"},
	{"arxiv:math.GT/0309136v2", "arxiv", "arXiv:math/0309136v2"},
	{"arXiv:hep-th/9901001v27", "arxiv", "arXiv:hep-th/9901001v27"},
	{"9912.12345v2", "arxiv", "arXiv:9912.12345v2"},
	{"arXiv:hep-th/1601.07616", "arxiv", "arXiv:1601.07616"},
	{"hep-th/1601.07616", "arxiv", "arXiv:1601.07616"},
	{"http://d-nb.info/gnd/1055864695", "gnd", "gnd:1055864695"},
	{"GND:4079154-3", "gnd", "gnd:4079154-3"},
	{"4079154-3", "gnd", "gnd:4079154-3"},
	{"urn:nbn:de:bvb:19-146642", "urn", "urn:nbn:de:bvb:19-146642"},
	{"https://nbn-resolving.org/urn:nbn:de:bvb:19-146642", "urn", "urn:nbn:de:bvb:19-146642"},
	{"HAL:hal-02144558", "hal", "hal-02144558"},
	{"hal: hal-02144558", "hal", "hal-02144558"},
	{"https://ror.org/05dxps055", "ror", "05dxps055"},
	{"viaf:75121530", "viaf", "viaf:75121530"},
	{"http://viaf.org/viaf/75121530", "viaf", "viaf:75121530"},
	{"urn:isbn:0451450523", "urn", "urn:isbn:0451450523"},
	{"ark:/13030/tqb3kh97gh8w", "ark", "ark:/13030/tqb3kh97gh8w"},
	{"PMC2631623", "pmcid", "PMC2631623"},
	{"0A9 2002 12B4A105 7", "istc", "0A9 2002 12B4A105 7"},
	{"1422-4586-3573-0476", "isni", "1422-4586-3573-0476"},
	{"swh:1:cnt:94a9ed024d3859793618152ea559a168bbcbb5e2", "swh", "swh:1:cnt:94a9ed024d3859793618152ea559a168bbcbb5e2"},
	{"swh:1:dir:d198bc9d7a6bcf6db04f476d29314f157507d505;origin=https://github.com/user/repo", "swh", "swh:1:dir:d198bc9d7a6bcf6db04f476d29314f157507d505;origin=https://github.com/user/repo"},
}

func TestPID(t *testing.T) {
	for _, tc := range normalizeCases {
		if got := PID(tc.value, tc.scheme); got != tc.want {
			t.Errorf("PID(%q, %q) = %q, want %q", tc.value, tc.scheme, got, tc.want)
		}
	}
}

func TestPIDEmptyValue(t *testing.T) {
	for _, schemeName := range []string{"doi", "handle", "isbn", "nonsense"} {
		if got := PID("", schemeName); got != "" {
			t.Errorf("PID(\"\", %q) = %q, want \"\"", schemeName, got)
		}
	}
}

func TestPIDUnknownSchemeIsIdentity(t *testing.T) {
	if got := PID("some value", "nonsense"); got != "some value" {
		t.Errorf("PID under unknown scheme = %q, want the input back", got)
	}
}

// Normalization must not push a value out of its own scheme.
func TestPIDIdempotence(t *testing.T) {
	for _, tc := range normalizeCases {
		normalized := PID(tc.value, tc.scheme)
		schemes := detect.Schemes(normalized)
		found := false
		for _, s := range schemes {
			if s == tc.scheme {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("Schemes(PID(%q, %q)) = %v, missing %q", tc.value, tc.scheme, schemes, tc.scheme)
		}
		if again := PID(normalized, tc.scheme); again != normalized {
			t.Errorf("PID(PID(%q)) = %q, want %q unchanged", tc.value, again, normalized)
		}
	}
}
