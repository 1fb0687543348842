package entities

import "fmt"

// Catalog is the nested translation tree. Root keys are namespaces; values are
// either nested maps or leaf values.
type Catalog struct {
	root map[string]any
}

// NewCatalog wraps a decoded catalog tree. A nil tree yields an empty catalog.
func NewCatalog(root map[string]any) *Catalog {
	if root == nil {
		root = map[string]any{}
	}
	return &Catalog{root: root}
}

// Resolve walks path segment by segment. It reports false as soon as the
// current node is not a map or lacks the next segment. The type of the value
// reached after the last segment is not checked.
func (c *Catalog) Resolve(path []string) bool {
	var node any = c.root
	for _, segment := range path {
		m, ok := asMap(node)
		if !ok {
			return false
		}
		next, ok := m[segment]
		if !ok {
			return false
		}
		node = next
	}
	return true
}

// Namespace returns the catalog entry at name when it is a nested map.
func (c *Catalog) Namespace(name string) (map[string]any, bool) {
	entry, ok := c.root[name]
	if !ok {
		return nil, false
	}
	return asMap(entry)
}

// Len returns the number of root namespaces.
func (c *Catalog) Len() int {
	return len(c.root)
}

// asMap accepts the map shapes produced by the JSON, TOML and YAML decoders.
// YAML keys such as 404 decode as non-strings and are matched by their text.
func asMap(node any) (map[string]any, bool) {
	switch m := node.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, v := range m {
			out[fmt.Sprint(k)] = v
		}
		return out, true
	}
	return nil, false
}
