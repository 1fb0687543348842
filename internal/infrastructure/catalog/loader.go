package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"admintools/internal/domain"
	"admintools/internal/domain/entities"
	"admintools/internal/ports/output"
)

var _ output.CatalogLoader = (*FileLoader)(nil)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

type unmarshalFunc func(data []byte, v any) error

// FileLoader reads a catalog file, picking the decoder from its extension.
type FileLoader struct {
	decoders map[string]unmarshalFunc
}

func NewFileLoader() *FileLoader {
	return &FileLoader{
		decoders: map[string]unmarshalFunc{
			".json": json.Unmarshal,
			".toml": toml.Unmarshal,
			".yaml": yaml.Unmarshal,
			".yml":  yaml.Unmarshal,
		},
	}
}

// Load decodes the whole catalog at path. The root must be an object.
func (l *FileLoader) Load(path string) (*entities.Catalog, error) {
	ext := strings.ToLower(filepath.Ext(path))
	decode, ok := l.decoders[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrCatalogFormat, ext)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrCatalogNotFound, path)
		}
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	var root map[string]any
	if err := decode(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrCatalogMalformed, path, err)
	}
	// An empty TOML or YAML document is an empty catalog; JSON null is not.
	if root == nil && ext == ".json" {
		return nil, fmt.Errorf("%w: %s: root is not an object", domain.ErrCatalogMalformed, path)
	}
	return entities.NewCatalog(root), nil
}
