// Package normalize rewrites persistent identifiers into their canonical
// textual form and renders landing-page URLs for resolvable schemes.
//
// Normalization assumes the value already matched the requested scheme
// (detect first, then normalize); feeding it a value of the wrong shape
// yields a best-effort string, never a panic.
package normalize

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/lehigh-university-libraries/pid/scheme"
	"github.com/lehigh-university-libraries/pid/validate"
)

// Normalizer normalizes values against a fixed custom-scheme registry.
type Normalizer struct {
	registry *scheme.Registry
}

// New returns a Normalizer bound to the given custom-scheme registry. A
// nil registry means built-in schemes only.
func New(reg *scheme.Registry) *Normalizer {
	return &Normalizer{registry: reg}
}

// PID normalizes value for the named scheme using the process-wide default
// custom-scheme registry.
//
// E.g. doi:10.1234/foo, http://dx.doi.org/10.1234/foo and 10.1234/foo all
// normalize to 10.1234/foo.
func PID(value, schemeName string) string {
	return New(scheme.Default()).PID(value, schemeName)
}

// PID normalizes value into the named scheme's canonical form. An empty
// value is returned unchanged. Scheme names without a built-in or custom
// normalizer fall back to the identity.
func (n *Normalizer) PID(value, schemeName string) string {
	if value == "" {
		return value
	}

	switch schemeName {
	case "doi":
		return DOI(value)
	case "handle":
		return Handle(value)
	case "ads":
		return ADS(value)
	case "pmid":
		return PMID(value)
	case "arxiv":
		return Arxiv(value)
	case "orcid":
		return ORCID(value)
	case "gnd":
		return GND(value)
	case "isbn":
		return ISBN(value)
	case "issn":
		return ISSN(value)
	case "hal":
		return HAL(value)
	case "ror":
		return ROR(value)
	case "urn":
		return URN(value)
	case "viaf":
		return VIAF(value)
	}

	if f := n.registry.Normalizer(schemeName); f != nil {
		return f(value)
	}
	return value
}

// DOI strips any doi: label or resolver-URL wrapper from a DOI.
func DOI(value string) string {
	m := validate.DOIPattern.FindStringSubmatch(value)
	if m == nil {
		return value
	}
	return m[2]
}

// Handle strips any hdl: label or resolver-URL wrapper from a Handle.
func Handle(value string) string {
	m := validate.HandlePattern.FindStringSubmatch(value)
	if m == nil {
		return value
	}
	return m[2]
}

// ADS NFKD-folds an ADS bibcode and strips any ads: label.
func ADS(value string) string {
	value = norm.NFKD.String(value)
	m := validate.ADSPattern.FindStringSubmatch(value)
	if m == nil {
		return value
	}
	return m[2]
}

// ORCID strips URL wrappers and separators from an ORCID and re-inserts
// the canonical hyphen every four characters.
func ORCID(value string) string {
	for _, orcidURL := range validate.ORCIDURLs {
		if strings.HasPrefix(value, orcidURL) {
			value = value[len(orcidURL):]
			break
		}
	}
	value = strings.ReplaceAll(value, "-", "")
	value = strings.ReplaceAll(value, " ", "")
	return strings.Join([]string{
		clip(value, 0, 4), clip(value, 4, 8), clip(value, 8, 12), clip(value, 12, 16),
	}, "-")
}

// GND strips the d-nb.info resolver and any gnd: label, then re-prepends
// the canonical gnd: prefix.
func GND(value string) string {
	value = strings.TrimPrefix(value, validate.GNDResolverURL)
	if strings.HasPrefix(strings.ToLower(value), "gnd:") {
		value = value[len("gnd:"):]
	}
	return "gnd:" + value
}

// URN strips the nbn-resolving.org resolver and any urn: label, then
// re-prepends the canonical urn: prefix.
func URN(value string) string {
	value = strings.TrimPrefix(value, validate.URNResolverURL)
	if strings.HasPrefix(strings.ToLower(value), "urn:") {
		value = value[len("urn:"):]
	}
	return "urn:" + value
}

// PMID extracts the digit run of a PubMed ID, discarding any pmid: label,
// landing URL or trailing slash.
func PMID(value string) string {
	m := validate.PMIDPattern.FindStringSubmatch(value)
	if m == nil {
		return value
	}
	return m[2]
}

// Arxiv rewrites an arXiv identifier into the preferred form: a canonical
// arXiv: prefix, pre-2007 values with a subject class reduced to the plain
// archive form (arXiv:math.GT/0309136 -> arXiv:math/0309136), and
// post-2007 values forced into arXiv:YYMM.NNNNN, which also strips stray
// legacy class prefixes. See http://arxiv.org/help/arxiv_identifier_for_services.
func Arxiv(value string) string {
	if !strings.HasPrefix(strings.ToLower(value), "arxiv:") {
		value = "arXiv:" + value
	} else if value[:6] != "arXiv:" {
		value = "arXiv:" + value[6:]
	}

	if m := validate.ArxivPre2007Pattern.FindStringSubmatch(value); m != nil && m[3] != "" {
		value = m[1] + m[2] + m[4] + m[5]
		if m[6] != "" {
			value += m[6]
		}
	}

	m := validate.ArxivPost2007Pattern.FindStringSubmatch(value)
	if m == nil {
		m = validate.ArxivPost2007WithClassPattern.FindStringSubmatch(value)
	}
	if m != nil {
		value = "arXiv:" + m[2] + "." + m[3]
		if m[4] != "" {
			value += m[4]
		}
	}
	return value
}

// HAL lowercases a HAL identifier and strips spaces and the hal: label.
func HAL(value string) string {
	value = strings.ToLower(strings.ReplaceAll(value, " ", ""))
	return strings.ReplaceAll(value, "hal:", "")
}

// ISBN converts ISBN-10 values to ISBN-13 and renders the canonical
// hyphenated grouping.
func ISBN(value string) string {
	if validate.IsISBN10(value) {
		value = validate.ToISBN13(value)
	}
	return validate.MaskISBN(value)
}

// ISSN strips separators from an ISSN and re-inserts the single canonical
// hyphen after the fourth character.
func ISSN(value string) string {
	value = strings.ReplaceAll(value, " ", "")
	value = strings.ReplaceAll(value, "-", "")
	value = strings.ToUpper(strings.TrimSpace(value))
	return clip(value, 0, 4) + "-" + clip(value, 4, len(value))
}

// ROR extracts the bare ROR payload, discarding any ror.org wrapper.
func ROR(value string) string {
	m := validate.RORPattern.FindStringSubmatch(value)
	if m == nil {
		return value
	}
	return m[1]
}

// VIAF strips VIAF host URLs and any viaf: label, then re-prepends the
// canonical viaf: prefix.
func VIAF(value string) string {
	for _, viafURL := range validate.VIAFURLs {
		if strings.HasPrefix(value, viafURL) {
			value = value[len(viafURL):]
			break
		}
	}
	if strings.HasPrefix(strings.ToLower(value), "viaf:") {
		value = value[len("viaf:"):]
	}
	return "viaf:" + value
}

// clip slices value without running past its bounds.
func clip(value string, from, to int) string {
	if from > len(value) {
		return ""
	}
	if to > len(value) {
		to = len(value)
	}
	return value[from:to]
}
