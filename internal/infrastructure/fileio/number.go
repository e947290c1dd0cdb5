package fileio

import (
	"regexp"
	"strconv"
	"strings"
)

var rxKeepNums = regexp.MustCompile(`[^\d.\-]`)

// ParseAmount reads amounts as written in French sheets: "1 234,50",
// "1.234,50 €", "2 345,6" (NBSP/NNBSP separators), as well as "1234.5".
// When both '.' and ',' appear, the last one is the decimal separator.
func ParseAmount(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	s = strings.NewReplacer("\u00A0", "", "\u202F", "", " ", "", "\t", "").Replace(s)

	lastDot := strings.LastIndex(s, ".")
	lastComma := strings.LastIndex(s, ",")
	switch {
	case lastComma > lastDot:
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	case lastDot > lastComma && lastComma >= 0:
		s = strings.ReplaceAll(s, ",", "")
	}

	s = rxKeepNums.ReplaceAllString(s, "")
	if s == "" || s == "-" || s == "." {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	return f, err == nil
}
