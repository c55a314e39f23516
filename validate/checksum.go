package validate

import (
	"strconv"
	"strings"
)

// digitX converts a check character to its numeric value, with "X"
// counting as 10.
func digitX(c byte) (int, bool) {
	if c >= '0' && c <= '9' {
		return int(c - '0'), true
	}
	if c == 'X' {
		return 10, true
	}
	return 0, false
}

func stripSeparators(val string) string {
	val = strings.ReplaceAll(val, "-", "")
	return strings.ReplaceAll(val, " ", "")
}

// IsISSN reports whether val is an ISSN number.
func IsISSN(val string) bool {
	val = strings.ToUpper(stripSeparators(val))
	if len(val) != 8 {
		return false
	}
	r := 0
	for i := 0; i < len(val); i++ {
		v, ok := digitX(val[i])
		if !ok {
			return false
		}
		r += (8 - i) * v
	}
	return r%11 == 0
}

// IsISTC reports whether val is an International Standard Text Code.
// See http://www.istc-international.org/html/about_structure_syntax.aspx.
func IsISTC(val string) bool {
	val = strings.ToUpper(stripSeparators(val))
	if len(val) != 16 {
		return false
	}
	weights := []int{11, 9, 3, 1}
	r := 0
	for i := 0; i < 15; i++ {
		v, err := strconv.ParseInt(string(val[i]), 16, 32)
		if err != nil {
			return false
		}
		r += int(v) * weights[i%4]
	}
	ck := strings.ToUpper(strconv.FormatInt(int64(r%16), 16))
	return ck == string(val[15])
}

// IsEAN8 reports whether val is an International Article Number (EAN-8).
func IsEAN8(val string) bool {
	if len(val) != 8 {
		return false
	}
	weights := []int{3, 1}
	r := 0
	for i := 0; i < 7; i++ {
		if val[i] < '0' || val[i] > '9' {
			return false
		}
		r += int(val[i]-'0') * weights[i%2]
	}
	if val[7] < '0' || val[7] > '9' {
		return false
	}
	return (10-r%10)%10 == int(val[7]-'0')
}

// IsEAN13 reports whether val is an International Article Number (EAN-13).
func IsEAN13(val string) bool {
	if len(val) != 13 {
		return false
	}
	weights := []int{1, 3}
	r := 0
	for i := 0; i < 12; i++ {
		if val[i] < '0' || val[i] > '9' {
			return false
		}
		r += int(val[i]-'0') * weights[i%2]
	}
	if val[12] < '0' || val[12] > '9' {
		return false
	}
	return (10-r%10)%10 == int(val[12]-'0')
}

// IsEAN reports whether val is an International Article Number of either
// length. See http://en.wikipedia.org/wiki/International_Article_Number_(EAN).
func IsEAN(val string) bool {
	return IsEAN13(val) || IsEAN8(val)
}

// IsISNI reports whether val is an International Standard Name Identifier.
func IsISNI(val string) bool {
	val = strings.ToUpper(stripSeparators(val))
	if len(val) != 16 {
		return false
	}
	r := 0
	for i := 0; i < 15; i++ {
		if val[i] < '0' || val[i] > '9' {
			return false
		}
		r = (r + int(val[i]-'0')) * 2
	}
	ck := (12 - r%11) % 11
	v, ok := digitX(val[15])
	return ok && ck == v
}

// IsORCID reports whether val is an ORCID identifier: an ISNI whose payload
// falls inside one of the ISNI blocks assigned to ORCID.
// See https://support.orcid.org/hc/en-us/articles/360006897674.
func IsORCID(val string) bool {
	for _, orcidURL := range ORCIDURLs {
		if strings.HasPrefix(val, orcidURL) {
			val = val[len(orcidURL):]
			break
		}
	}
	val = stripSeparators(val)
	if !IsISNI(val) {
		return false
	}
	payload, err := strconv.ParseInt(val[:len(val)-1], 10, 64)
	if err != nil {
		return false
	}
	for _, r := range ORCIDISNIRanges {
		if payload >= r[0] && payload <= r[1] {
			return true
		}
	}
	return false
}
