package scheme

import "github.com/lehigh-university-libraries/pid/validate"

// Builtin is the ordered table of built-in scheme validators. The order is
// significant: detection evaluates validators in this order and it decides
// which scheme name appears first for ambiguous values (doi before handle,
// because a DOI is the semantically narrower match even though Handle
// syntax subsumes it). Callers must not modify the table.
var Builtin = []Named{
	{"doi", validate.IsDOI},
	{"ark", validate.IsARK},
	{"handle", validate.IsHandle},
	{"purl", validate.IsPURL},
	{"lsid", validate.IsLSID},
	{"urn", validate.IsURN},
	{"ads", validate.IsADS},
	{"arxiv", validate.IsArxiv},
	{"ascl", validate.IsASCL},
	{"hal", validate.IsHAL},
	{"pmcid", validate.IsPMCID},
	{"isbn", validate.IsISBN},
	{"issn", validate.IsISSN},
	{"orcid", validate.IsORCID},
	{"isni", validate.IsISNI},
	{"ean13", validate.IsEAN13},
	{"ean8", validate.IsEAN8},
	{"istc", validate.IsISTC},
	{"gnd", validate.IsGND},
	{"ror", validate.IsROR},
	{"pmid", validate.IsPMID},
	{"url", validate.IsURL},
	{"sra", validate.IsSRA},
	{"bioproject", validate.IsBioProject},
	{"biosample", validate.IsBioSample},
	{"ensembl", validate.IsEnsembl},
	{"uniprot", validate.IsUniProt},
	{"refseq", validate.IsRefSeq},
	{"genome", validate.IsGenome},
	{"geo", validate.IsGEO},
	{"arrayexpress_array", validate.IsArrayExpressArray},
	{"arrayexpress_experiment", validate.IsArrayExpressExperiment},
	{"swh", validate.IsSWH},
	{"viaf", validate.IsVIAF},
}

// BuiltinFilters is the declarative disambiguation table: whenever the
// trigger scheme is in the candidate set, the listed schemes are removed.
// Rules apply sequentially in table order.
var BuiltinFilters = []FilterRule{
	// None of these can have URLs, in which case we exclude them.
	{"url", []string{"isbn", "istc", "urn", "lsid", "issn", "ean8", "viaf"}},
	{"ean8", []string{"gnd", "pmid", "viaf"}},
	{"ean13", []string{"gnd", "pmid"}},
	{"isbn", []string{"gnd", "pmid"}},
	{"orcid", []string{"gnd", "pmid"}},
	{"isni", []string{"gnd", "pmid"}},
	{"issn", []string{"gnd", "viaf"}},
	{"pmid", []string{"viaf"}},
}

var builtinNames = func() map[string]struct{} {
	names := make(map[string]struct{}, len(Builtin))
	for _, s := range Builtin {
		names[s.Name] = struct{}{}
	}
	return names
}()

// IsBuiltin reports whether name is one of the built-in scheme names.
func IsBuiltin(name string) bool {
	_, ok := builtinNames[name]
	return ok
}
