package validate

import "testing"

func TestIsDOI(t *testing.T) {
	valid := []string{
		"10.1000/123456",
		"10.1038/issn.1476-4687",
		"doi:10.1016/j.epsl.2011.11.037",
		"doi: 10.1016/j.epsl.2011.11.037",
		"http://dx.doi.org/10.1016/j.epsl.2011.11.037",
		"https://doi.org/10.1016/j.epsl.2011.11.037",
		"doi.org/10.1016/j.epsl.2011.11.037",
		"10.1016/üникóδé-дôΐ",
	}
	for _, v := range valid {
		if !IsDOI(v) {
			t.Errorf("IsDOI(%q) = false, want true", v)
		}
	}
	invalid := []string{"", "10.1000/", "10/123456", "doi:10.1000/", "11.1000/123456"}
	for _, v := range invalid {
		if IsDOI(v) {
			t.Errorf("IsDOI(%q) = true, want false", v)
		}
	}
}

func TestIsHandle(t *testing.T) {
	valid := []string{
		"10013/epic.10033",
		"hdl:10013/epic.10033",
		"hdl.handle.net/10013/epic.10033",
		"http://hdl.handle.net/10013/epic.10033",
		"10.1016/j.epsl.2011.11.037",
	}
	for _, v := range valid {
		if !IsHandle(v) {
			t.Errorf("IsHandle(%q) = false, want true", v)
		}
	}
	invalid := []string{
		"",
		"10013",
		// Software Heritage IDs are Handle-shaped but never Handles.
		"swh:1:dir:d198bc9d7a6bcf6db04f476d29314f157507d505;origin=https://github.com/user/repo",
	}
	for _, v := range invalid {
		if IsHandle(v) {
			t.Errorf("IsHandle(%q) = true, want false", v)
		}
	}
}

func TestIsArxiv(t *testing.T) {
	valid := []string{
		"arXiv:1310.2590",
		"arxiv:1310.2590",
		"1310.2590",
		"9912.12345v2",
		"math.GT/0309136",
		"hep-th/9901001v27",
		"arxiv:math.GT/0309136v2",
		"arXiv:hep-th/1601.07616",
		"hep-th/1601.07616",
	}
	for _, v := range valid {
		if !IsArxiv(v) {
			t.Errorf("IsArxiv(%q) = false, want true", v)
		}
	}
	invalid := []string{"", "1310", "arXiv:1310", "math/0309", "10.1000/123456"}
	for _, v := range invalid {
		if IsArxiv(v) {
			t.Errorf("IsArxiv(%q) = true, want false", v)
		}
	}

	if !IsArxivPost2007("1310.2590") || IsArxivPost2007("math.GT/0309136") {
		t.Error("IsArxivPost2007 misclassifies")
	}
	if !IsArxivPre2007("math.GT/0309136") || IsArxivPre2007("1310.2590") {
		t.Error("IsArxivPre2007 misclassifies")
	}
}

func TestIsADS(t *testing.T) {
	if !IsADS("2011ApJS..192...18K") || !IsADS("ads:2011ApJS..192...18K") {
		t.Error("IsADS valid bibcode = false, want true")
	}
	// Unicode digit lookalikes fold to ASCII before matching.
	if !IsADS("2015ＭNRAS.tmp..838R") {
		t.Error("IsADS should NFKD-fold fullwidth characters")
	}
	if IsADS("") || IsADS("2011ApJS..192...18") {
		t.Error("IsADS invalid bibcode = true, want false")
	}
}

func TestIsGND(t *testing.T) {
	valid := []string{
		"gnd:4079154-3",
		"GND:4079154-3",
		"4079154-3",
		"1055864695",
		"http://d-nb.info/gnd/1055864695",
	}
	for _, v := range valid {
		if !IsGND(v) {
			t.Errorf("IsGND(%q) = false, want true", v)
		}
	}
	invalid := []string{"", "gnd:", "abc", "0-1"}
	for _, v := range invalid {
		if IsGND(v) {
			t.Errorf("IsGND(%q) = true, want false", v)
		}
	}
}

func TestIsURNAndLSID(t *testing.T) {
	urns := []string{
		"urn:isbn:0451450523",
		"urn:nbn:de:bvb:19-146642",
		"urn:lsid:ubio.org:namebank:11815",
	}
	for _, v := range urns {
		if !IsURN(v) {
			t.Errorf("IsURN(%q) = false, want true", v)
		}
	}
	if IsURN("") || IsURN("isbn:0451450523") || IsURN("http://example.org/") {
		t.Error("IsURN accepted a non-URN")
	}

	if !IsLSID("urn:lsid:ubio.org:namebank:11815") {
		t.Error("IsLSID valid LSID = false, want true")
	}
	if IsLSID("urn:isbn:0451450523") {
		t.Error("IsLSID non-LSID URN = true, want false")
	}
}

func TestIsURL(t *testing.T) {
	valid := []string{
		"http://www.heatflow.und.edu/index2.html",
		"https://doi.org/10.1016/j.epsl.2011.11.037",
		"ftp://ftp.example.org/pub/file.txt",
	}
	for _, v := range valid {
		if !IsURL(v) {
			t.Errorf("IsURL(%q) = false, want true", v)
		}
	}
	invalid := []string{"", "www.example.org", "10.1000/123456", "urn:nbn:de:bvb:19-146642"}
	for _, v := range invalid {
		if IsURL(v) {
			t.Errorf("IsURL(%q) = true, want false", v)
		}
	}
}

func TestIsARK(t *testing.T) {
	if !IsARK("ark:/13030/tqb3kh97gh8w") {
		t.Error("IsARK bare ARK = false, want true")
	}
	if !IsARK("http://www.example.org/ark:/13030/tqb3kh97gh8w") {
		t.Error("IsARK ARK URL = false, want true")
	}
	invalid := []string{"", "ark:/13030", "ark:13030/tqb3kh97gh8w", "http://www.example.org/13030/x"}
	for _, v := range invalid {
		if IsARK(v) {
			t.Errorf("IsARK(%q) = true, want false", v)
		}
	}
}

func TestIsPURL(t *testing.T) {
	if !IsPURL("http://purl.oclc.org/foo/bar") {
		t.Error("IsPURL valid PURL = false, want true")
	}
	if IsPURL("http://www.heatflow.und.edu/index2.html") || IsPURL("") {
		t.Error("IsPURL non-PURL = true, want false")
	}
}

func TestIsPMCIDAndPMID(t *testing.T) {
	if !IsPMCID("PMC2631623") || !IsPMCID("pmc2631623") {
		t.Error("IsPMCID valid ID = false, want true")
	}
	if IsPMCID("2631623") || IsPMCID("") {
		t.Error("IsPMCID non-PMCID = true, want false")
	}

	if !IsPMID("12082125") || !IsPMID("pmid:12082125") ||
		!IsPMID("https://pubmed.ncbi.nlm.nih.gov/12082125/") {
		t.Error("IsPMID valid ID = false, want true")
	}
	if IsPMID("PMC2631623") || IsPMID("") {
		t.Error("IsPMID non-PMID = true, want false")
	}
}

func TestIsHAL(t *testing.T) {
	valid := []string{"hal-02144558", "halshs-01885375", "mem_00000123", "hal-02144558v2"}
	for _, v := range valid {
		if !IsHAL(v) {
			t.Errorf("IsHAL(%q) = false, want true", v)
		}
	}
	invalid := []string{"", "hal-0214455", "HAL-02144558", "xyz_00000123"}
	for _, v := range invalid {
		if IsHAL(v) {
			t.Errorf("IsHAL(%q) = true, want false", v)
		}
	}
}

func TestIsASCL(t *testing.T) {
	if !IsASCL("ascl:1908.011") {
		t.Error("IsASCL valid ID = false, want true")
	}
	if IsASCL("1908.011") || IsASCL("ascl:1908") || IsASCL("") {
		t.Error("IsASCL non-ASCL = true, want false")
	}
}

func TestIsSWH(t *testing.T) {
	valid := []string{
		"swh:1:cnt:94a9ed024d3859793618152ea559a168bbcbb5e2",
		"swh:1:dir:d198bc9d7a6bcf6db04f476d29314f157507d505;origin=https://github.com/user/repo",
	}
	for _, v := range valid {
		if !IsSWH(v) {
			t.Errorf("IsSWH(%q) = false, want true", v)
		}
	}
	invalid := []string{"", "swh:1:cnt:94a9", "swh:2:cnt:94a9ed024d3859793618152ea559a168bbcbb5e2"}
	for _, v := range invalid {
		if IsSWH(v) {
			t.Errorf("IsSWH(%q) = true, want false", v)
		}
	}
}

func TestIsROR(t *testing.T) {
	valid := []string{"05dxps055", "https://ror.org/05dxps055", "ror.org/05dxps055"}
	for _, v := range valid {
		if !IsROR(v) {
			t.Errorf("IsROR(%q) = false, want true", v)
		}
	}
	invalid := []string{"", "15dxps055", "05dxps05"}
	for _, v := range invalid {
		if IsROR(v) {
			t.Errorf("IsROR(%q) = true, want false", v)
		}
	}
}

func TestIsVIAF(t *testing.T) {
	valid := []string{
		"viaf:75121530",
		"VIAF:75121530",
		"75121530",
		"http://viaf.org/viaf/75121530",
		"https://www.viaf.org/viaf/75121530",
	}
	for _, v := range valid {
		if !IsVIAF(v) {
			t.Errorf("IsVIAF(%q) = false, want true", v)
		}
	}
	invalid := []string{"", "075121530", "viaf:", "75121530abc"}
	for _, v := range invalid {
		if IsVIAF(v) {
			t.Errorf("IsVIAF(%q) = true, want false", v)
		}
	}
}

func TestLifeScienceAccessions(t *testing.T) {
	cases := []struct {
		name  string
		fn    func(string) bool
		value string
	}{
		{"sra", IsSRA, "SRR123456"},
		{"bioproject", IsBioProject, "PRJNA224116"},
		{"biosample", IsBioSample, "SAMN08289383"},
		{"ensembl", IsEnsembl, "ENSMUSG00000017167"},
		{"uniprot", IsUniProt, "Q9GYV0"},
		{"refseq", IsRefSeq, "NM_002165.3"},
		{"genome", IsGenome, "GCA_000001405.28"},
		{"geo", IsGEO, "GPL28"},
		{"arrayexpress_array", IsArrayExpressArray, "A-AFFY-44"},
		{"arrayexpress_experiment", IsArrayExpressExperiment, "E-MEXP-1712"},
	}
	for _, tc := range cases {
		if !tc.fn(tc.value) {
			t.Errorf("%s validator rejected %q", tc.name, tc.value)
		}
		if tc.fn("") || tc.fn("nonsense") {
			t.Errorf("%s validator accepted garbage", tc.name)
		}
	}
}

func TestIsEmail(t *testing.T) {
	if !IsEmail("info@example.org") {
		t.Error("IsEmail valid address = false, want true")
	}
	if IsEmail("info@example") || IsEmail("not an email") || IsEmail("") {
		t.Error("IsEmail non-address = true, want false")
	}
}

func TestIsSHA1(t *testing.T) {
	if !IsSHA1("94a9ed024d3859793618152ea559a168bbcbb5e2") {
		t.Error("IsSHA1 valid digest = false, want true")
	}
	if IsSHA1("94a9ed024d") || IsSHA1("") {
		t.Error("IsSHA1 non-digest = true, want false")
	}
}
