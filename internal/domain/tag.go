package domain

import (
	"strings"
)

// NormalizeTag trims a tag name, lowercases it and collapses inner whitespace.
func NormalizeTag(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

// ParseTagList splits a comma-separated tag list, normalizes every name and
// drops empties and duplicates. Order of first appearance is kept.
func ParseTagList(list string) []string {
	return NormalizeTags(strings.Split(list, ","))
}

// NormalizeTags normalizes names and drops empties and duplicates.
func NormalizeTags(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = NormalizeTag(n)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
