package validate

import "strings"

// CanonicalISBN strips separators from an ISBN and uppercases a trailing x.
// It returns "" if the remaining characters are not digits (or a final X).
func CanonicalISBN(val string) string {
	val = strings.ToUpper(stripSeparators(val))
	for i := 0; i < len(val); i++ {
		if val[i] >= '0' && val[i] <= '9' {
			continue
		}
		if val[i] == 'X' && i == len(val)-1 {
			continue
		}
		return ""
	}
	return val
}

// IsISBN10 reports whether val is an ISBN-10 number.
func IsISBN10(val string) bool {
	c := CanonicalISBN(val)
	if len(c) != 10 {
		return false
	}
	r := 0
	for i := 0; i < 10; i++ {
		v, ok := digitX(c[i])
		if !ok || (v == 10 && i != 9) {
			return false
		}
		r += (10 - i) * v
	}
	return r%11 == 0
}

// IsISBN13 reports whether val is an ISBN-13 number.
func IsISBN13(val string) bool {
	c := CanonicalISBN(val)
	if len(c) != 13 || strings.HasSuffix(c, "X") {
		return false
	}
	if !strings.HasPrefix(c, "978") && !strings.HasPrefix(c, "979") {
		return false
	}
	return ean13Check(c)
}

func ean13Check(c string) bool {
	weights := []int{1, 3}
	r := 0
	for i := 0; i < 12; i++ {
		r += int(c[i]-'0') * weights[i%2]
	}
	return (10-r%10)%10 == int(c[12]-'0')
}

// IsISBN reports whether val is an ISBN-10 or ISBN-13 number. A bare EAN-13
// outside the 978/979 bookland prefixes is not an ISBN.
func IsISBN(val string) bool {
	if !IsISBN10(val) && !IsISBN13(val) {
		return false
	}
	if len(val) >= 3 && (val[:3] == "978" || val[:3] == "979") {
		return true
	}
	return !IsEAN13(val)
}

// ToISBN13 converts a canonical ISBN-10 into its ISBN-13 form, recomputing
// the check digit. A value that is already 13 digits is returned as is.
func ToISBN13(val string) string {
	c := CanonicalISBN(val)
	if len(c) == 13 {
		return c
	}
	if len(c) != 10 {
		return c
	}
	body := "978" + c[:9]
	weights := []int{1, 3}
	r := 0
	for i := 0; i < 12; i++ {
		r += int(body[i]-'0') * weights[i%2]
	}
	return body + string(byte('0'+(10-r%10)%10))
}

// isbnRange maps a 7-digit window inside a registration group to the
// registrant-element length used for hyphenation.
type isbnRange struct {
	min, max int
	length   int
}

// isbnGroups is a snapshot of the ISBN registration-group range rules for
// the groups commonly seen in bibliographic data. Values in groups outside
// the snapshot are rendered unhyphenated.
var isbnGroups = map[string][]isbnRange{
	"978-0": {
		{0, 1999999, 2}, {2000000, 2279999, 3}, {2280000, 2289999, 4},
		{2290000, 3689999, 3}, {3690000, 3699999, 4}, {3700000, 6389999, 3},
		{6390000, 6397999, 4}, {6398000, 6399999, 7}, {6400000, 6479999, 3},
		{6480000, 6489999, 7}, {6490000, 6549999, 3}, {6550000, 6559999, 4},
		{6560000, 6999999, 3}, {7000000, 8499999, 4}, {8500000, 8999999, 5},
		{9000000, 9499999, 6}, {9500000, 9999999, 7},
	},
	"978-1": {
		{0, 999999, 2}, {1000000, 3999999, 3}, {4000000, 5499999, 4},
		{5500000, 8697999, 5}, {8698000, 9989999, 6}, {9990000, 9999999, 7},
	},
	"978-2": {
		{0, 1999999, 2}, {2000000, 3499999, 3}, {3500000, 3999999, 5},
		{4000000, 6999999, 3}, {7000000, 8399999, 4}, {8400000, 8999999, 5},
		{9000000, 9499999, 6}, {9500000, 9999999, 7},
	},
	"978-3": {
		{0, 299999, 2}, {300000, 339999, 3}, {340000, 369999, 4},
		{370000, 399999, 5}, {400000, 1999999, 2}, {2000000, 6999999, 3},
		{7000000, 8499999, 4}, {8500000, 8999999, 5}, {9000000, 9499999, 6},
		{9500000, 9539999, 7}, {9540000, 9699999, 3}, {9700000, 9849999, 4},
		{9850000, 9999999, 5},
	},
	"978-4": {
		{0, 1999999, 2}, {2000000, 6999999, 3}, {7000000, 8499999, 4},
		{8500000, 8999999, 5}, {9000000, 9499999, 6}, {9500000, 9999999, 7},
	},
	"978-5": {
		{0, 1999999, 2}, {2000000, 6999999, 3}, {7000000, 8499999, 4},
		{8500000, 8999999, 5}, {9000000, 9499999, 6}, {9500000, 9999999, 7},
	},
	"978-7": {
		{0, 999999, 2}, {1000000, 4999999, 3}, {5000000, 7999999, 4},
		{8000000, 8999999, 5}, {9000000, 9999999, 6},
	},
	"978-84": {
		{0, 1999999, 2}, {2000000, 6999999, 3}, {7000000, 8499999, 4},
		{8500000, 8999999, 5}, {9000000, 9499999, 6}, {9500000, 9999999, 7},
	},
	"978-88": {
		{0, 1999999, 2}, {2000000, 5999999, 3}, {6000000, 8499999, 4},
		{8500000, 8999999, 5}, {9000000, 9499999, 6}, {9500000, 9999999, 7},
	},
	"978-90": {
		{0, 1999999, 2}, {2000000, 4999999, 3}, {5000000, 6999999, 4},
		{7000000, 7999999, 5}, {8000000, 8499999, 6}, {8500000, 8999999, 7},
		{9000000, 9099999, 2}, {9100000, 9399999, 3}, {9400000, 9499999, 4},
		{9500000, 9999999, 7},
	},
	"979-8": {
		{0, 1999999, 2}, {2000000, 6999999, 3}, {7000000, 8499999, 4},
		{8500000, 8999999, 5}, {9000000, 9499999, 6}, {9500000, 9999999, 7},
	},
	"979-10": {
		{0, 1999999, 2}, {2000000, 6999999, 3}, {7000000, 8999999, 4},
		{9000000, 9759999, 5}, {9760000, 9999999, 6},
	},
	"979-11": {
		{0, 2499999, 2}, {2500000, 5499999, 3}, {5500000, 8499999, 4},
		{8500000, 9499999, 5}, {9500000, 9999999, 6},
	},
	"979-12": {
		{2000000, 2999999, 3}, {5450000, 5999999, 4}, {8000000, 8499999, 5},
	},
}

// MaskISBN renders a canonical ISBN-13 with its registration-group,
// registrant and publication elements hyphenated. If the registration group
// is outside the embedded range snapshot the canonical form is returned
// unhyphenated.
func MaskISBN(val string) string {
	c := CanonicalISBN(val)
	if len(c) != 13 {
		return c
	}
	prefix := c[:3]
	for gl := 1; gl <= 5; gl++ {
		group := c[3 : 3+gl]
		ranges, ok := isbnGroups[prefix+"-"+group]
		if !ok {
			continue
		}
		rest := c[3+gl : 12]
		window := 0
		for i := 0; i < 7; i++ {
			window *= 10
			if i < len(rest) {
				window += int(rest[i] - '0')
			}
		}
		for _, r := range ranges {
			if window < r.min || window > r.max {
				continue
			}
			if r.length >= len(rest) {
				break
			}
			return strings.Join([]string{
				prefix, group, rest[:r.length], rest[r.length:], c[12:],
			}, "-")
		}
		break
	}
	return c
}
