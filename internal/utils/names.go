package utils

import (
	"sort"
	"strings"
)

// NormalizeName folds a dialect name to its lookup key. Dialect keywords
// are case-insensitive; surrounding whitespace is not significant.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// NormalizeKeys returns a copy of m with every key normalized. When two keys
// fold to the same name the one that sorts last wins, so the result does
// not depend on map iteration order.
func NormalizeKeys[V any](m map[string]V) map[string]V {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make(map[string]V, len(m))
	for _, k := range keys {
		out[NormalizeName(k)] = m[k]
	}
	return out
}

// SortedKeys returns the keys of m in ascending order.
func SortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
