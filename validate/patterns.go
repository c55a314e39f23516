package validate

import "regexp"

// Compiled patterns for the structural identifier schemes. They are exported
// because the normalize package re-runs them to extract canonical sub-groups
// when stripping resolver-URL and prefix wrappers.

// DOIPattern matches a DOI with an optional doi: or resolver-URL wrapper.
// See http://en.wikipedia.org/wiki/Digital_object_identifier.
var DOIPattern = regexp.MustCompile(`(?i)^(doi:\s*|(?:https?://)?(?:dx\.)?doi\.org/)?(10\.\d+(\.\d+)*/.+)$`)

// HandlePattern matches a Handle with an optional hdl: or resolver-URL
// wrapper. See http://handle.net/rfc/rfc3651.html:
//
//	<Handle>          = <NamingAuthority> "/" <LocalName>
//	<NamingAuthority> = *(<NamingAuthority> ".") <NAsegment>
//	<NAsegment>       = Any UTF8 char except "/" and "."
//	<LocalName>       = Any UTF8 char
var HandlePattern = regexp.MustCompile(`(?i)^(hdl:\s*|(?:https?://)?hdl\.handle\.net/)?([^/.]+(\.[^/.]+)*/.*)$`)

// ArxivPost2007Pattern matches post-2007 arXiv identifiers (YYMM.NNNN[N]).
// See http://arxiv.org/help/arxiv_identifier.
var ArxivPost2007Pattern = regexp.MustCompile(`(?i)^(arxiv:)?(\d{4})\.(\d{4,5})(v\d+)?$`)

// ArxivPre2007Pattern matches pre-2007 arXiv identifiers
// (archive.category/YYMMNNN).
var ArxivPre2007Pattern = regexp.MustCompile(`(?i)^(arxiv:)?([a-z\-]+)(\.[a-z]{2})?(/\d{4})(\d+)(v\d+)?$`)

// ArxivPost2007WithClassPattern matches a post-2007 arXiv identifier with an
// old-style class prefix. Technically malformed, but appears in real data.
var ArxivPost2007WithClassPattern = regexp.MustCompile(`(?i)^(arxiv:)?(?:[a-z\-]+)(?:\.[a-z]{2})?/(\d{4})\.(\d{4,5})(v\d+)?$`)

// HALPattern matches HAL identifiers (sic, mem and ijn are old forms).
var HALPattern = regexp.MustCompile(`^(hal:|HAL:)?([a-z]{3}[a-z]*-|(sic|mem|ijn)_)\d{8}(v\d+)?$`)

// ADSPattern matches ADS bibliographic codes, a fixed 19-character shape.
// See http://adsabs.harvard.edu/abs_doc/help_pages/data.html.
var ADSPattern = regexp.MustCompile(`^(ads:|ADS:)?(\d{4}[A-Za-z]\S{13}[A-Za-z.:])$`)

// PMCIDPattern matches PubMed Central identifiers.
var PMCIDPattern = regexp.MustCompile(`(?i)^PMC\d+$`)

// PMIDPattern matches PubMed identifiers, optionally prefixed or wrapped in
// the PubMed landing URL.
var PMIDPattern = regexp.MustCompile(`(?i)^(pmid:|https?://pubmed.ncbi.nlm.nih.gov/)?(\d+)/?$`)

// ARKSuffixPattern matches the ark:/<NAAN>/<name> part of an ARK, either
// bare or as the path of an HTTP URL.
// See http://en.wikipedia.org/wiki/Archival_Resource_Key.
var ARKSuffixPattern = regexp.MustCompile(`^ark:/[0-9bcdfghjkmnpqrstvwxz]+/.+$`)

// LSIDPattern matches Life Science Identifiers (a URN namespace).
var LSIDPattern = regexp.MustCompile(`(?i)^urn:lsid:[^:]+(:[^:]+){2,3}$`)

// ORCIDURLs are the known ORCID landing-URL prefixes.
var ORCIDURLs = []string{"http://orcid.org/", "https://orcid.org/"}

// ORCIDISNIRanges are the ISNI blocks assigned to ORCID. See
// https://support.orcid.org/hc/en-us/articles/360006897674.
var ORCIDISNIRanges = [][2]int64{
	{15_000_000, 35_000_000},
	{900_000_000_000, 900_100_000_000},
}

// GNDPattern matches GND identifiers in their several numeric and
// hyphenated shapes. See https://www.wikidata.org/wiki/Property:P227.
// Deliberately a prefix match (no end anchor), as in the upstream rule set.
var GNDPattern = regexp.MustCompile(`^(gnd:|GND:)?((1|10)\d{7}[0-9X]|[47]\d{6}-\d|[1-9]\d{0,7}-[0-9X]|3\d{7}[0-9X])`)

// GNDResolverURL is the canonical GND resolver prefix.
const GNDResolverURL = "http://d-nb.info/gnd/"

// URNResolverURL is the canonical NBN resolver prefix.
const URNResolverURL = "https://nbn-resolving.org/"

// SRAPattern matches Sequence Read Archive accessions.
// See https://www.ncbi.nlm.nih.gov/books/NBK56913/.
var SRAPattern = regexp.MustCompile(`^[SED]R[APRSXZ]\d+$`)

// BioProjectPattern matches BioProject accessions.
// See https://www.ddbj.nig.ac.jp/bioproject/faq-e.html#project-accession.
var BioProjectPattern = regexp.MustCompile(`^PRJ(NA|EA|EB|DB)\d+$`)

// BioSamplePattern matches BioSample accessions.
// See https://www.ddbj.nig.ac.jp/biosample/faq-e.html.
var BioSamplePattern = regexp.MustCompile(`^SAM(N|EA|D)\d+$`)

// UniProtPattern matches UniProt accessions.
// See https://www.uniprot.org/help/accession_numbers.
var UniProtPattern = regexp.MustCompile(`^(?:([A-NR-Z][0-9]([A-Z][A-Z0-9]{2}[0-9]){1,2})|([OPQ][0-9][A-Z0-9]{3}[0-9])(\.\d+)?$)`)

// RefSeqPattern matches RefSeq accessions.
// See https://academic.oup.com/nar/article/44/D1/D733/2502674 (Table 1).
var RefSeqPattern = regexp.MustCompile(`^((AC|NC|NG|NT|NW|NM|NR|XM|XR|AP|NP|YP|XP|WP)_|NZ_[A-Z]{4})\d+(\.\d+)?$`)

// GenomePattern matches GenBank or RefSeq genome assembly accessions.
// See https://www.ebi.ac.uk/ena/browse/genome-assembly-database.
var GenomePattern = regexp.MustCompile(`^GC[AF]_\d+\.\d+$`)

// GEOPattern matches Gene Expression Omnibus accessions.
// See https://www.ncbi.nlm.nih.gov/geo/info/overview.html#org.
var GEOPattern = regexp.MustCompile(`^G(PL|SM|SE|DS)\d+$`)

// ASCLPattern matches Astrophysics Source Code Library identifiers.
var ASCLPattern = regexp.MustCompile(`(?i)^ascl:[0-9]{4}\.[0-9]{3,4}$`)

// SWHPattern matches Software Heritage identifiers: an object-type-tagged
// 40-hex-digit hash with an optional semicolon-delimited qualifier suffix.
// See https://docs.softwareheritage.org/devel/swh-model/persistent-identifiers.html.
var SWHPattern = regexp.MustCompile(`^swh:1:(cnt|dir|rel|rev|snp):[0-9a-f]{40}(;(origin|visit|anchor|path|lines)=\S+)*$`)

// RORPattern matches ROR identifiers, optionally wrapped in the ror.org
// host. See https://ror.org/facts/#core-components.
var RORPattern = regexp.MustCompile(`(?i)^(?:https?://)?(?:ror\.org/)?(0\w{6}\d{2})$`)

// VIAFURLs are the known VIAF landing-URL prefixes.
var VIAFURLs = []string{
	"http://viaf.org/viaf/",
	"https://viaf.org/viaf/",
	"http://www.viaf.org/viaf/",
	"https://www.viaf.org/viaf/",
}

// VIAFPattern matches VIAF identifiers.
// See https://www.wikidata.org/wiki/Property:P214.
var VIAFPattern = regexp.MustCompile(`(?i)^(viaf:|VIAF:)?([1-9]\d(?:\d{0,7}|\d{17,20}))($|/|\?|#)`)

// EmailPattern matches a minimal email shape, not full RFC 5322.
var EmailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// SHA1Pattern matches a bare 40-hex-digit SHA-1 digest.
var SHA1Pattern = regexp.MustCompile(`^[0-9a-f]{40}$`)
