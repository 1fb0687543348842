package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"admintools/internal/domain/entities"
	"admintools/internal/ports/output"
)

var _ output.ReportWriter = (*JSONWriter)(nil)

// JSONWriter writes the audit report as indented JSON to a fixed path.
type JSONWriter struct {
	path string
}

func NewJSONWriter(path string) *JSONWriter {
	return &JSONWriter{path: path}
}

func (w *JSONWriter) Path() string { return w.path }

// Write replaces the file at the writer's path. Map keys are emitted sorted
// by encoding/json, so unchanged inputs give identical output apart from the
// timestamp.
func (w *JSONWriter) Write(r *entities.AuditReport) error {
	out := *r
	if out.Namespaces == nil {
		out.Namespaces = []string{}
	}
	if out.MissingKeys == nil {
		out.MissingKeys = map[string][]string{}
	}
	if out.KeysByPage == nil {
		out.KeysByPage = map[string]entities.PageKeys{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(&out); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	if dir := filepath.Dir(w.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create report dir: %w", err)
		}
	}
	if err := os.WriteFile(w.path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", w.path, err)
	}
	return nil
}
