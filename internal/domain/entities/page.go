package entities

// PageRecord is one scanned page with a detected namespace.
type PageRecord struct {
	Path      string   // relative to the scan root, slash separated
	Namespace string
	Keys      []string // deduplicated, sorted
}
