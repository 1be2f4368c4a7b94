package wxhist

import "strings"

var (
	lineBreaks = strings.NewReplacer("\t", "", "\n", "", "\r", "")
	separators = strings.NewReplacer("&nbsp;", " ", "\u00a0", " ", ",", " ")
)

// Normalize cleans a raw cell value for field f.
//
// Steps, in order: trim; drop tabs and line breaks; turn non-breaking spaces
// into spaces; turn commas into spaces; cut numeric fields (and wind speed
// when it has a digit) to their leading numeric run; trim again. Because
// commas become spaces before the cut, "1,013" yields "1".
func Normalize(raw string, f Field) string {
	s := strings.TrimSpace(raw)
	s = lineBreaks.Replace(s)
	s = separators.Replace(s)
	if f.Numeric() || (f == FieldWindSpeed && hasDigit(s)) {
		s = LeadingNumeric(s)
	}
	return strings.TrimSpace(s)
}

// LeadingNumeric returns the longest prefix of s made of digits, commas,
// hyphens and periods.
func LeadingNumeric(s string) string {
	for i := 0; i < len(s); i++ {
		if !isNumericByte(s[i]) {
			return s[:i]
		}
	}
	return s
}

func isNumericByte(c byte) bool {
	return (c >= '0' && c <= '9') || c == ',' || c == '-' || c == '.'
}

func hasDigit(s string) bool {
	return strings.ContainsAny(s, "0123456789")
}
