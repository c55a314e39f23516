package validate

import (
	"regexp"
	"strings"
)

// ArrayExpressCodes lists the four-letter institution codes used in
// ArrayExpress accessions, used to build the two ArrayExpress patterns.
// See https://www.ebi.ac.uk/arrayexpress/help/accession_codes.html.
var ArrayExpressCodes = []string{
	"AFFY", "AFMX", "AGIL", "ATMX", "BAIR", "BASE", "BIOD", "BUGS",
	"CAGE", "CBIL", "DKFZ", "DORD", "EMBL", "ERAD", "FLYC", "FPMI",
	"GEAD", "GEHB", "GEOD", "GEUV", "HGMP", "IPKG", "JCVI", "JJRD",
	"LGCL", "MANP", "MARS", "MAXD", "MEXP", "MIMR", "MNIA", "MTAB",
	"MUGN", "NASC", "NCMF", "NGEN", "RUBN", "RZPD", "SGRP", "SMDB",
	"SNGR", "SYBR", "TABM", "TIGR", "TOXM", "UCON", "UHNC", "UMCU",
	"WMIT",
}

// ArrayExpressArrayPattern matches ArrayExpress array accessions.
var ArrayExpressArrayPattern = regexp.MustCompile(
	`^A-(` + strings.Join(ArrayExpressCodes, "|") + `)-\d+$`,
)

// ArrayExpressExperimentPattern matches ArrayExpress experiment accessions.
var ArrayExpressExperimentPattern = regexp.MustCompile(
	`^E-(` + strings.Join(ArrayExpressCodes, "|") + `)-\d+$`,
)
