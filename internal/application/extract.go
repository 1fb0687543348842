package application

import (
	"regexp"
	"sort"
)

// Lexical heuristics, not a parser: computed keys, template literals and
// calls split over lines with the quote on a later line are invisible.
var (
	namespacePattern = regexp.MustCompile(`useTranslations\(\s*['"]([^'"]+)['"]\s*\)`)
	usageKeyPattern  = regexp.MustCompile(`\bt\(\s*['"]([^'"]+)['"]`)
)

// ExtractNamespace returns the argument of the first useTranslations('...')
// declaration in src.
func ExtractNamespace(src string) (string, bool) {
	m := namespacePattern.FindStringSubmatch(src)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// ExtractKeys returns the distinct first string arguments of t('...') calls,
// sorted.
func ExtractKeys(src string) []string {
	seen := make(map[string]struct{})
	for _, m := range usageKeyPattern.FindAllStringSubmatch(src, -1) {
		seen[m[1]] = struct{}{}
	}
	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
