package application

import (
	"context"
	"errors"
	"fmt"

	"admintools/internal/domain"
	"admintools/internal/domain/entities"
	"admintools/internal/ports/output"
)

type fakePages struct {
	files   []output.PageFile
	sources map[string]string
	reads   int
}

func newFakePages(sources map[string]string, order ...string) *fakePages {
	p := &fakePages{sources: sources}
	for _, rel := range order {
		p.files = append(p.files, output.PageFile{Path: "/scan/" + rel, RelPath: rel})
	}
	return p
}

func (p *fakePages) Discover() ([]output.PageFile, error) { return p.files, nil }

func (p *fakePages) Read(f output.PageFile) (string, error) {
	p.reads++
	src, ok := p.sources[f.RelPath]
	if !ok {
		return "", fmt.Errorf("%w: %s", domain.ErrPageUnreadable, f.RelPath)
	}
	return src, nil
}

type fakeCatalogs struct {
	root map[string]any
	err  error
}

func (c fakeCatalogs) Load(string) (*entities.Catalog, error) {
	if c.err != nil {
		return nil, c.err
	}
	return entities.NewCatalog(c.root), nil
}

type fakeWriter struct {
	written []*entities.AuditReport
}

func (w *fakeWriter) Write(r *entities.AuditReport) error {
	w.written = append(w.written, r)
	return nil
}

type fakeNotifier struct {
	calls int
	err   error
}

func (n *fakeNotifier) Notify(context.Context, *entities.AuditReport) error {
	n.calls++
	return n.err
}

var errBoom = errors.New("boom")
