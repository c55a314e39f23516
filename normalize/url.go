package normalize

import (
	"strings"

	"github.com/lehigh-university-libraries/pid/scheme"
)

// landingURLs maps resolvable schemes to their landing-page templates.
// {scheme} is substituted with the caller's URL scheme (http/https) and
// {pid} with the normalized identifier.
var landingURLs = map[string]string{
	"doi":                     "{scheme}://doi.org/{pid}",
	"handle":                  "{scheme}://hdl.handle.net/{pid}",
	"arxiv":                   "{scheme}://arxiv.org/abs/{pid}",
	"ascl":                    "{scheme}://ascl.net/{pid}",
	"orcid":                   "{scheme}://orcid.org/{pid}",
	"pmid":                    "{scheme}://pubmed.ncbi.nlm.nih.gov/{pid}",
	"ads":                     "{scheme}://ui.adsabs.harvard.edu/#abs/{pid}",
	"pmcid":                   "{scheme}://www.ncbi.nlm.nih.gov/pmc/{pid}",
	"gnd":                     "{scheme}://d-nb.info/gnd/{pid}",
	"urn":                     "{scheme}://nbn-resolving.org/{pid}",
	"sra":                     "{scheme}://www.ebi.ac.uk/ena/data/view/{pid}",
	"bioproject":              "{scheme}://www.ebi.ac.uk/ena/data/view/{pid}",
	"biosample":               "{scheme}://www.ebi.ac.uk/ena/data/view/{pid}",
	"ensembl":                 "{scheme}://www.ensembl.org/id/{pid}",
	"uniprot":                 "{scheme}://purl.uniprot.org/uniprot/{pid}",
	"refseq":                  "{scheme}://www.ncbi.nlm.nih.gov/entrez/viewer.fcgi?val={pid}",
	"genome":                  "{scheme}://www.ncbi.nlm.nih.gov/assembly/{pid}",
	"geo":                     "{scheme}://www.ncbi.nlm.nih.gov/geo/query/acc.cgi?acc={pid}",
	"arrayexpress_array":      "{scheme}://www.ebi.ac.uk/arrayexpress/arrays/{pid}",
	"arrayexpress_experiment": "{scheme}://www.ebi.ac.uk/arrayexpress/experiments/{pid}",
	"hal":                     "{scheme}://hal.archives-ouvertes.fr/{pid}",
	"swh":                     "{scheme}://archive.softwareheritage.org/{pid}",
	"ror":                     "{scheme}://ror.org/{pid}",
	"viaf":                    "{scheme}://viaf.org/viaf/{pid}",
}

// ToURL renders the landing-page URL for value under the named scheme using
// the process-wide default custom-scheme registry. An empty urlScheme means
// "http". The empty string marks a non-resolvable identifier.
func ToURL(value, schemeName, urlScheme string) string {
	return New(scheme.Default()).ToURL(value, schemeName, urlScheme)
}

// ToURL renders the landing-page URL for value under the named scheme. The
// value is normalized first.
func (n *Normalizer) ToURL(value, schemeName, urlScheme string) string {
	if urlScheme == "" {
		urlScheme = "http"
	}
	pid := n.PID(value, schemeName)

	if tmpl, ok := landingURLs[schemeName]; ok {
		switch schemeName {
		case "gnd":
			pid = strings.TrimPrefix(pid, "gnd:")
		case "urn":
			// Only NBN-namespaced URNs have a resolver.
			if !strings.HasPrefix(strings.ToLower(pid), "urn:nbn:") {
				return ""
			}
		case "ascl":
			// The ASCL path fragment comes from the raw value, after its label.
			if _, frag, ok := strings.Cut(value, ":"); ok {
				pid = frag
			}
		case "viaf":
			// VIAF has no plain-HTTP landing page.
			if strings.HasPrefix(pid, "viaf:") {
				pid = pid[len("viaf:"):]
				urlScheme = "https"
			}
		}
		return strings.NewReplacer("{scheme}", urlScheme, "{pid}", pid).Replace(tmpl)
	}

	if schemeName == "purl" || schemeName == "url" {
		return pid
	}

	if gen := n.registry.URLGenerator(schemeName); gen != nil {
		return gen(urlScheme, pid)
	}
	return ""
}
