package entities

import "sort"

// MissingKeyIndex maps a namespace to the keys used under it that the catalog
// cannot resolve.
type MissingKeyIndex map[string]map[string]struct{}

// Add records key as missing under namespace.
func (idx MissingKeyIndex) Add(namespace, key string) {
	set, ok := idx[namespace]
	if !ok {
		set = make(map[string]struct{})
		idx[namespace] = set
	}
	set[key] = struct{}{}
}

// Sorted returns each namespace's keys as a sorted slice.
func (idx MissingKeyIndex) Sorted() map[string][]string {
	out := make(map[string][]string, len(idx))
	for ns, set := range idx {
		keys := make([]string, 0, len(set))
		for k := range set {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out[ns] = keys
	}
	return out
}

// Inconsistency flags a page that uses a key the catalog only knows under a
// renamed sibling.
type Inconsistency struct {
	Path       string
	Namespace  string
	UsedKey    string
	CatalogKey string
}

// PageKeys is the per-page entry of the report.
type PageKeys struct {
	Namespace string   `json:"namespace"`
	Keys      []string `json:"keys"`
}

// AuditReport is the snapshot produced once at the end of an audit run.
type AuditReport struct {
	Timestamp       string              `json:"timestamp"`
	TotalPages      int                 `json:"total_pages"`
	TotalNamespaces int                 `json:"total_namespaces"`
	Namespaces      []string            `json:"namespaces"`
	MissingKeys     map[string][]string `json:"missing_keys"`
	KeysByPage      map[string]PageKeys `json:"keys_by_page"`

	// Inconsistencies are printed, not persisted.
	Inconsistencies []Inconsistency `json:"-"`
}

// MissingCount returns the number of missing keys in the report.
func (r *AuditReport) MissingCount() int {
	n := 0
	for _, keys := range r.MissingKeys {
		n += len(keys)
	}
	return n
}

// SortedMissingNamespaces returns the namespaces having missing keys, sorted.
func (r *AuditReport) SortedMissingNamespaces() []string {
	out := make([]string, 0, len(r.MissingKeys))
	for ns := range r.MissingKeys {
		out = append(out, ns)
	}
	sort.Strings(out)
	return out
}
