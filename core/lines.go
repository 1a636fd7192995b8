package core

import (
	"sort"
	"strings"
	"unicode"
)

// ParseLines extracts the line codes encoded after the last '~' in a station
// name. Every letter of the suffix is one line code, upper-cased; the result is
// sorted and de-duplicated. A name without '~' has no lines.
//
//	ParseLines("Rajiv Chowk~BY") == []string{"B", "Y"}
//	ParseLines("Saket~Y")        == []string{"Y"}
func ParseLines(name string) []string {
	idx := strings.LastIndexByte(name, LineSeparator)
	if idx < 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(name)-idx)
	lines := make([]string, 0, len(name)-idx)
	var r rune
	for _, r = range name[idx+1:] {
		if !unicode.IsLetter(r) {
			continue
		}
		code := string(unicode.ToUpper(r))
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}
		lines = append(lines, code)
	}
	sort.Strings(lines)

	return lines
}

// DisplayName returns the station name without its line suffix.
func DisplayName(name string) string {
	if idx := strings.LastIndexByte(name, LineSeparator); idx >= 0 {
		return name[:idx]
	}

	return name
}

// SameLines reports whether two line sets are identical.
func SameLines(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// SharesLine reports whether the two line sets have at least one code in common.
// Both inputs must be sorted, as returned by ParseLines.
func SharesLine(a, b []string) bool {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			return true
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}

	return false
}

// IsInterchange reports whether the station serves more than one line.
func (s *Station) IsInterchange() bool { return len(s.Lines) > 1 }
