package env

import (
	"fmt"
	"slices"
	"strings"

	"github.com/runs-on/envinfo/internal/display"
)

// Delimiter separates a variable's prefix from the rest of its name.
const Delimiter = "_"

// Section is a named group of variables sharing one prefix.
type Section struct {
	Prefix string
	Pairs  []display.Pair
}

// Title is the header shown for the section, e.g. "GITHUB_* (12)".
func (s Section) Title() string {
	return fmt.Sprintf("%s%s* (%d)", s.Prefix, Delimiter, len(s.Pairs))
}

// Grouped holds every collected variable exactly once: either in Singles
// or in one of Sections.
type Grouped struct {
	Singles  []display.Pair
	Sections []Section
}

// SinglesTitle is the header of the single-variables section.
func (g Grouped) SinglesTitle() string {
	return fmt.Sprintf("Variables (%d)", len(g.Singles))
}

// Collect turns KEY=VALUE entries (as returned by os.Environ) into pairs
// sorted by key. An entry without '=' gets an empty value.
func Collect(environ []string) []display.Pair {
	pairs := make([]display.Pair, 0, len(environ))
	for _, entry := range environ {
		key, value := splitEntry(entry)
		pairs = append(pairs, display.Pair{Key: key, Value: value})
	}
	sortByKey(pairs)
	return pairs
}

// splitEntry splits at the first '=' after the first byte. Windows keeps
// per-drive directories in variables named like "=C:".
func splitEntry(entry string) (string, string) {
	if entry == "" {
		return "", ""
	}
	i := strings.Index(entry[1:], "=")
	if i < 0 {
		return entry, ""
	}
	i++
	return entry[:i], entry[i+1:]
}

// Group partitions pairs by the prefix before the first Delimiter. Prefixes
// shared by fewer than two variables are folded back into Singles.
func Group(pairs []display.Pair) Grouped {
	var grouped Grouped
	byPrefix := make(map[string][]display.Pair)

	for _, pair := range pairs {
		prefix, _, found := strings.Cut(pair.Key, Delimiter)
		if !found {
			grouped.Singles = append(grouped.Singles, pair)
			continue
		}
		byPrefix[prefix] = append(byPrefix[prefix], pair)
	}

	for prefix, members := range byPrefix {
		if len(members) == 1 {
			grouped.Singles = append(grouped.Singles, members[0])
			continue
		}
		grouped.Sections = append(grouped.Sections, Section{Prefix: prefix, Pairs: members})
	}

	sortByKey(grouped.Singles)
	slices.SortFunc(grouped.Sections, func(a, b Section) int {
		return strings.Compare(a.Prefix, b.Prefix)
	})
	return grouped
}

// DisplayEnvVars prints the single variables first, then one foldable
// section per prefix in alphabetical order.
func DisplayEnvVars(p display.Printer, pairs []display.Pair) Grouped {
	grouped := Group(pairs)
	display.PrintVariables(p, grouped.SinglesTitle(), grouped.Singles)
	for _, section := range grouped.Sections {
		display.PrintVariables(p, section.Title(), section.Pairs)
	}
	return grouped
}

func sortByKey(pairs []display.Pair) {
	slices.SortStableFunc(pairs, func(a, b display.Pair) int {
		return strings.Compare(a.Key, b.Key)
	})
}
