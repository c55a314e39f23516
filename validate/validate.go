// Package validate provides syntactic validators for persistent identifier
// schemes (DOI, Handle, ORCID, arXiv, accession numbers, ...).
//
// Every predicate accepts an arbitrary string and returns false for any
// input it cannot make sense of, including empty strings and strings far
// shorter than the scheme's minimum length. Validation is purely syntactic:
// a true result means the value is consistent with the scheme, not that the
// identifier is registered anywhere.
package validate

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// IsDOI reports whether val is a DOI, with or without a doi: prefix or
// resolver-URL wrapper.
func IsDOI(val string) bool {
	return DOIPattern.MatchString(val)
}

// IsHandle reports whether val is a Handle.
//
// Note, DOIs are also Handles, and Handles are very generic so they will
// also match e.g. any URL you parse. SWHIDs satisfy the Handle shape too
// and are excluded explicitly.
func IsHandle(val string) bool {
	return HandlePattern.MatchString(val) && !SWHPattern.MatchString(val)
}

// IsArxivPost2007 reports whether val is a post-2007 arXiv identifier,
// including the malformed-but-observed variant with a legacy class prefix.
func IsArxivPost2007(val string) bool {
	return ArxivPost2007Pattern.MatchString(val) || ArxivPost2007WithClassPattern.MatchString(val)
}

// IsArxivPre2007 reports whether val is a pre-2007 arXiv identifier.
func IsArxivPre2007(val string) bool {
	return ArxivPre2007Pattern.MatchString(val)
}

// IsArxiv reports whether val is an arXiv identifier of either era.
func IsArxiv(val string) bool {
	return IsArxivPost2007(val) || IsArxivPre2007(val)
}

// IsHAL reports whether val is a HAL identifier.
// See https://hal.archives-ouvertes.fr.
func IsHAL(val string) bool {
	return HALPattern.MatchString(val)
}

// IsADS reports whether val is an ADS bibliographic code. The value is
// NFKD-folded first since bibcodes circulate with compatibility characters.
func IsADS(val string) bool {
	return ADSPattern.MatchString(norm.NFKD.String(val))
}

// IsPMID reports whether val is a PubMed ID.
//
// Warning: PMIDs are just integers with no structure, so this predicate
// accepts any digit run.
func IsPMID(val string) bool {
	return PMIDPattern.MatchString(val)
}

// IsPMCID reports whether val is a PubMed Central ID.
func IsPMCID(val string) bool {
	return PMCIDPattern.MatchString(val)
}

// IsGND reports whether val is a GND identifier, optionally wrapped in the
// d-nb.info resolver URL.
func IsGND(val string) bool {
	val = strings.TrimPrefix(val, GNDResolverURL)
	return GNDPattern.MatchString(val)
}

// IsASCL reports whether val is an ASCL identifier.
func IsASCL(val string) bool {
	return ASCLPattern.MatchString(val)
}

// IsSWH reports whether val is a Software Heritage identifier.
func IsSWH(val string) bool {
	return SWHPattern.MatchString(val)
}

// IsROR reports whether val is a ROR identifier.
func IsROR(val string) bool {
	return RORPattern.MatchString(val)
}

// IsVIAF reports whether val is a VIAF identifier, either as one of the
// known VIAF landing URLs or as a bare (optionally viaf:-prefixed) number.
func IsVIAF(val string) bool {
	for _, viafURL := range VIAFURLs {
		if strings.HasPrefix(val, viafURL) {
			return true
		}
	}
	m := VIAFPattern.FindString(val)
	return m != "" && m == val
}

// IsSRA reports whether val is a Sequence Read Archive accession.
func IsSRA(val string) bool {
	return SRAPattern.MatchString(val)
}

// IsBioProject reports whether val is a BioProject accession.
func IsBioProject(val string) bool {
	return BioProjectPattern.MatchString(val)
}

// IsBioSample reports whether val is a BioSample accession.
func IsBioSample(val string) bool {
	return BioSamplePattern.MatchString(val)
}

// IsEnsembl reports whether val is an Ensembl accession.
func IsEnsembl(val string) bool {
	return EnsemblPattern.MatchString(val)
}

// IsUniProt reports whether val is a UniProt accession.
func IsUniProt(val string) bool {
	return UniProtPattern.MatchString(val)
}

// IsRefSeq reports whether val is a RefSeq accession.
func IsRefSeq(val string) bool {
	return RefSeqPattern.MatchString(val)
}

// IsGenome reports whether val is a GenBank or RefSeq genome assembly
// accession.
func IsGenome(val string) bool {
	return GenomePattern.MatchString(val)
}

// IsGEO reports whether val is a Gene Expression Omnibus accession.
func IsGEO(val string) bool {
	return GEOPattern.MatchString(val)
}

// IsArrayExpressArray reports whether val is an ArrayExpress array
// accession.
func IsArrayExpressArray(val string) bool {
	return ArrayExpressArrayPattern.MatchString(val)
}

// IsArrayExpressExperiment reports whether val is an ArrayExpress
// experiment accession.
func IsArrayExpressExperiment(val string) bool {
	return ArrayExpressExperimentPattern.MatchString(val)
}

// IsEmail reports whether val has a plausible email shape. It is a
// pragmatic check, not an RFC 5322 grammar.
func IsEmail(val string) bool {
	return EmailPattern.MatchString(val)
}

// IsSHA1 reports whether val is a bare lowercase 40-hex-digit SHA-1.
func IsSHA1(val string) bool {
	return SHA1Pattern.MatchString(val)
}
