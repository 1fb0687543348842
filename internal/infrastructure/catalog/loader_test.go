package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"admintools/internal/domain"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestFileLoader_Formats(t *testing.T) {
	files := map[string]string{
		"en.json": `{"Orders": {"title": "Orders", "table": {"empty": "None"}}}`,
		"en.toml": "[Orders]\ntitle = \"Orders\"\n\n[Orders.table]\nempty = \"None\"\n",
		"en.yaml": "Orders:\n  title: Orders\n  table:\n    empty: None\n",
		"en.yml":  "Orders:\n  title: Orders\n  table:\n    empty: None\n",
	}
	for name, content := range files {
		t.Run(name, func(t *testing.T) {
			c, err := NewFileLoader().Load(writeFile(t, name, content))
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if !c.Resolve([]string{"Orders", "table", "empty"}) {
				t.Fatalf("nested key not resolved")
			}
			if c.Resolve([]string{"Orders", "title", "x"}) {
				t.Fatalf("leaf must not resolve deeper")
			}
		})
	}
}

func TestFileLoader_StripsBOM(t *testing.T) {
	path := writeFile(t, "en.json", "\xEF\xBB\xBF{\"A\": {\"k\": \"v\"}}")
	c, err := NewFileLoader().Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !c.Resolve([]string{"A", "k"}) {
		t.Fatalf("key not resolved")
	}
}

func TestFileLoader_Errors(t *testing.T) {
	tests := []struct {
		name    string
		path    func(t *testing.T) string
		wantErr error
	}{
		{"malformed json", func(t *testing.T) string { return writeFile(t, "en.json", `{"A": `) }, domain.ErrCatalogMalformed},
		{"array root", func(t *testing.T) string { return writeFile(t, "en.json", `[1, 2]`) }, domain.ErrCatalogMalformed},
		{"null root", func(t *testing.T) string { return writeFile(t, "en.json", `null`) }, domain.ErrCatalogMalformed},
		{"malformed toml", func(t *testing.T) string { return writeFile(t, "en.toml", "[A\nk = ") }, domain.ErrCatalogMalformed},
		{"malformed yaml", func(t *testing.T) string { return writeFile(t, "en.yaml", "A: [unclosed") }, domain.ErrCatalogMalformed},
		{"unknown extension", func(t *testing.T) string { return writeFile(t, "en.po", "msgid") }, domain.ErrCatalogFormat},
		{"missing file", func(t *testing.T) string { return filepath.Join(t.TempDir(), "absent.json") }, domain.ErrCatalogNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFileLoader().Load(tt.path(t))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Load() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestFileLoader_EmptyYAMLIsEmptyCatalog(t *testing.T) {
	c, err := NewFileLoader().Load(writeFile(t, "en.yaml", ""))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Len() != 0 {
		t.Fatalf("expected empty catalog, got %d namespaces", c.Len())
	}
}

func TestFileLoader_NumericKeysResolveLikeJSON(t *testing.T) {
	files := map[string]string{
		"en.json": `{"Errors": {"404": "Not found", "title": "x", "codes": {"500": "Oops"}}}`,
		"en.yaml": "Errors:\n  404: Not found\n  title: x\n  codes:\n    500: Oops\n",
		"en.toml": "[Errors]\n404 = \"Not found\"\ntitle = \"x\"\n\n[Errors.codes]\n500 = \"Oops\"\n",
	}
	for name, content := range files {
		t.Run(name, func(t *testing.T) {
			c, err := NewFileLoader().Load(writeFile(t, name, content))
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			for _, path := range [][]string{
				{"Errors", "404"},
				{"Errors", "title"},
				{"Errors", "codes", "500"},
			} {
				if !c.Resolve(path) {
					t.Errorf("%v not resolved", path)
				}
			}
			if c.Resolve([]string{"Errors", "403"}) {
				t.Errorf("absent numeric key resolved")
			}
			if _, ok := c.Namespace("Errors"); !ok {
				t.Errorf("Errors namespace not found")
			}
		})
	}
}
