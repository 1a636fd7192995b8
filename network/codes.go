package network

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/katalvlaran/metronav/core"
)

// Code returns the short lookup code of a station name.
//
// For each whitespace-separated word the leading digits are kept, followed by
// the first non-digit character if it is an ordinary character (below '{', so
// the '~' of the line suffix is dropped). A code shorter than two characters
// borrows the second character of the last word. The result is upper-cased.
func Code(name string) string {
	words := strings.Fields(name)
	if len(words) == 0 {
		return ""
	}

	var b strings.Builder
	var word string
	var i int
	for _, word = range words {
		i = 0
		for i < len(word) && word[i] >= '0' && word[i] <= '9' {
			b.WriteByte(word[i])
			i++
		}
		if i < len(word) && word[i] < '{' {
			b.WriteByte(word[i])
		}
	}

	last := words[len(words)-1]
	if b.Len() < 2 && len(last) > 1 {
		b.WriteByte(last[1])
	}

	return strings.ToUpper(b.String())
}

// Codes maps each code to its station. When two stations share a code, the
// one that sorts first keeps it.
func Codes(names []string) map[string]string {
	out := make(map[string]string, len(names))
	var name string
	for _, name = range names {
		code := Code(name)
		if _, taken := out[code]; taken {
			continue
		}
		out[code] = name
	}

	return out
}

// Lookup selects how Resolve interprets its input.
type Lookup string

const (
	// ByName matches the full station name.
	ByName Lookup = "name"
	// ByCode matches the short code, case-insensitively.
	ByCode Lookup = "code"
	// ByIndex matches a 1-based position in the sorted station list.
	ByIndex Lookup = "index"
)

// ParseLookup converts a flag value to a Lookup.
func ParseLookup(s string) (Lookup, error) {
	switch l := Lookup(strings.ToLower(strings.TrimSpace(s))); l {
	case ByName, ByCode, ByIndex:
		return l, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrBadLookup, s)
	}
}

// Resolve finds the station that input refers to under the given lookup mode.
func Resolve(g *core.Graph, input string, by Lookup) (string, error) {
	input = strings.TrimSpace(input)
	switch by {
	case ByName, "":
		if g.HasStation(input) {
			return input, nil
		}
		// Accept the display name without the line suffix when unambiguous.
		var match string
		var name string
		for _, name = range g.Stations() {
			if strings.EqualFold(core.DisplayName(name), input) {
				if match != "" {
					return "", fmt.Errorf("%w: %q is ambiguous", ErrUnknownStation, input)
				}
				match = name
			}
		}
		if match == "" {
			return "", fmt.Errorf("%w: %q", ErrUnknownStation, input)
		}

		return match, nil

	case ByCode:
		code := strings.Map(func(r rune) rune {
			if unicode.IsSpace(r) {
				return -1
			}
			return unicode.ToUpper(r)
		}, input)
		if name, ok := Codes(g.Stations())[code]; ok {
			return name, nil
		}

		return "", fmt.Errorf("%w: code %q", ErrUnknownStation, input)

	case ByIndex:
		idx, err := strconv.Atoi(input)
		stations := g.Stations()
		if err != nil || idx < 1 || idx > len(stations) {
			return "", fmt.Errorf("%w: %q (1..%d)", ErrBadIndex, input, len(stations))
		}

		return stations[idx-1], nil

	default:
		return "", fmt.Errorf("%w: %q", ErrBadLookup, by)
	}
}
