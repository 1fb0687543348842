package output

// PageFile is a discovered page source.
type PageFile struct {
	Path    string // absolute or root-joined path used for reading
	RelPath string // relative to the scan root, slash separated
}

// PageSource discovers and reads page sources.
type PageSource interface {
	// Discover returns every matching file under the scan root in lexical
	// order. A missing root yields no files and no error.
	Discover() ([]PageFile, error)
	Read(file PageFile) (string, error)
}
