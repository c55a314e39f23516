package validate

import "strings"

// uriParts is a minimal URI decomposition with the field semantics the
// URL-shaped predicates below depend on: scheme, authority, path, and the
// ;-delimited parameter suffix of the last path segment. A hand-rolled
// split is used instead of net/url because url.Parse rejects inputs (raw
// spaces, control bytes) that these predicates must simply classify as
// non-matches, and it has no notion of path parameters.
type uriParts struct {
	scheme string
	netloc string
	path   string
	params string
}

func validSchemeName(s string) bool {
	if s == "" {
		return false
	}
	for i, c := range s {
		switch {
		case c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z':
		case i > 0 && (c >= '0' && c <= '9' || c == '+' || c == '-' || c == '.'):
		default:
			return false
		}
	}
	return true
}

func parseURI(val string) uriParts {
	var u uriParts
	rest := val
	if i := strings.Index(rest, ":"); i > 0 && validSchemeName(rest[:i]) {
		u.scheme = strings.ToLower(rest[:i])
		rest = rest[i+1:]
	}
	if strings.HasPrefix(rest, "//") {
		rest = rest[2:]
		if j := strings.IndexAny(rest, "/?#"); j >= 0 {
			u.netloc = rest[:j]
			rest = rest[j:]
		} else {
			u.netloc = rest
			rest = ""
		}
	}
	if k := strings.Index(rest, "#"); k >= 0 {
		rest = rest[:k]
	}
	if k := strings.Index(rest, "?"); k >= 0 {
		rest = rest[:k]
	}
	u.path = rest
	seg := u.path[strings.LastIndex(u.path, "/")+1:]
	if k := strings.Index(seg, ";"); k >= 0 {
		u.params = seg[k+1:]
		u.path = u.path[:len(u.path)-len(seg)+k]
	}
	return u
}

// IsURL reports whether val is a URL: it has a scheme, an authority, and no
// path parameters.
func IsURL(val string) bool {
	u := parseURI(val)
	return u.scheme != "" && u.netloc != "" && u.params == ""
}

// IsURN reports whether val is a URN.
func IsURN(val string) bool {
	u := parseURI(val)
	return u.scheme == "urn" && u.netloc == "" && u.path != ""
}

// IsLSID reports whether val is a Life Science Identifier.
func IsLSID(val string) bool {
	return IsURN(val) && LSIDPattern.MatchString(val)
}

// IsARK reports whether val is an ARK, either bare or as the path of an
// HTTP URL.
func IsARK(val string) bool {
	if ARKSuffixPattern.MatchString(val) {
		return true
	}
	u := parseURI(val)
	return u.scheme == "http" && u.netloc != "" &&
		strings.HasPrefix(u.path, "/") && ARKSuffixPattern.MatchString(u.path[1:]) &&
		u.params == ""
}

// purlHosts are the hosts operating PURL resolvers.
var purlHosts = []string{
	"purl.org",
	"purl.oclc.org",
	"purl.net",
	"purl.com",
	"purl.fdlp.gov",
}

// IsPURL reports whether val is a PURL.
func IsPURL(val string) bool {
	u := parseURI(val)
	if u.scheme != "http" && u.scheme != "https" {
		return false
	}
	for _, host := range purlHosts {
		if u.netloc == host {
			return u.path != ""
		}
	}
	return false
}
