package application

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"admintools/internal/domain/entities"
	"admintools/internal/ports/input"
	"admintools/internal/ports/output"
)

const (
	renamedKey = "pageSubtitle"
	currentKey = "pageDescription"
)

var _ input.AuditUseCase = (*AuditService)(nil)

// AuditOptions holds the per-run inputs of the audit.
type AuditOptions struct {
	CatalogPath string
	Location    *time.Location
	Now         func() time.Time
}

type AuditService struct {
	pages    output.PageSource
	catalogs output.CatalogLoader
	writer   output.ReportWriter
	notifier output.Notifier
	opts     AuditOptions
	log      *zap.Logger
}

// NewAuditService wires the audit pipeline. notifier may be nil.
func NewAuditService(
	pages output.PageSource,
	catalogs output.CatalogLoader,
	writer output.ReportWriter,
	notifier output.Notifier,
	opts AuditOptions,
	log *zap.Logger,
) *AuditService {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &AuditService{
		pages:    pages,
		catalogs: catalogs,
		writer:   writer,
		notifier: notifier,
		opts:     opts,
		log:      log,
	}
}

// Run discovers pages, loads the catalog, resolves every key and writes the
// report. The first unreadable page or a malformed catalog aborts the run
// before anything is written.
func (s *AuditService) Run(ctx context.Context) (*entities.AuditReport, error) {
	files, err := s.pages.Discover()
	if err != nil {
		return nil, fmt.Errorf("discover pages: %w", err)
	}
	s.log.Info("pages discovered", zap.Int("count", len(files)))

	catalog, err := s.catalogs.Load(s.opts.CatalogPath)
	if err != nil {
		return nil, err
	}
	s.log.Info("catalog loaded", zap.String("path", s.opts.CatalogPath), zap.Int("namespaces", catalog.Len()))

	records := make([]entities.PageRecord, 0, len(files))
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		src, err := s.pages.Read(f)
		if err != nil {
			return nil, err
		}
		ns, ok := ExtractNamespace(src)
		if !ok {
			s.log.Debug("page without namespace", zap.String("page", f.RelPath))
			continue
		}
		keys := ExtractKeys(src)
		s.log.Debug("page scanned",
			zap.String("page", f.RelPath),
			zap.String("namespace", ns),
			zap.Int("keys", len(keys)),
		)
		records = append(records, entities.PageRecord{
			Path:      f.RelPath,
			Namespace: ns,
			Keys:      keys,
		})
	}

	report := Audit(catalog, len(files), records)
	report.Timestamp = s.opts.Now().In(s.opts.Location).Format(time.RFC3339)

	if err := s.writer.Write(report); err != nil {
		return nil, fmt.Errorf("write report: %w", err)
	}
	s.log.Info("report written", zap.Int("missing", report.MissingCount()))

	if s.notifier != nil {
		if err := s.notifier.Notify(ctx, report); err != nil {
			s.log.Warn("audit notification failed", zap.Error(err))
		}
	}
	return report, nil
}

// Audit resolves every page's keys against catalog and assembles the report.
// totalPages counts every scanned file, including those without a namespace.
// The returned report has no timestamp.
func Audit(catalog *entities.Catalog, totalPages int, records []entities.PageRecord) *entities.AuditReport {
	missing := entities.MissingKeyIndex{}
	namespaces := make(map[string]struct{})
	byPage := make(map[string]entities.PageKeys, len(records))
	var warnings []entities.Inconsistency

	for _, rec := range records {
		namespaces[rec.Namespace] = struct{}{}
		for _, key := range rec.Keys {
			if !catalog.Resolve(KeyPath(rec.Namespace, key)) {
				missing.Add(rec.Namespace, key)
			}
		}
		if w, ok := CheckRename(catalog, rec); ok {
			warnings = append(warnings, w)
		}
		keys := rec.Keys
		if keys == nil {
			keys = []string{}
		}
		byPage[rec.Path] = entities.PageKeys{Namespace: rec.Namespace, Keys: keys}
	}

	sortedNS := make([]string, 0, len(namespaces))
	for ns := range namespaces {
		sortedNS = append(sortedNS, ns)
	}
	sort.Strings(sortedNS)

	return &entities.AuditReport{
		TotalPages:      totalPages,
		TotalNamespaces: len(sortedNS),
		Namespaces:      sortedNS,
		MissingKeys:     missing.Sorted(),
		KeysByPage:      byPage,
		Inconsistencies: warnings,
	}
}

// KeyPath is the catalog path of key under namespace.
func KeyPath(namespace, key string) []string {
	return append([]string{namespace}, strings.Split(key, ".")...)
}

// CheckRename flags a page calling t('pageSubtitle') when its namespace only
// defines pageDescription.
func CheckRename(catalog *entities.Catalog, rec entities.PageRecord) (entities.Inconsistency, bool) {
	if !containsKey(rec.Keys, renamedKey) {
		return entities.Inconsistency{}, false
	}
	entry, ok := catalog.Namespace(rec.Namespace)
	if !ok {
		return entities.Inconsistency{}, false
	}
	_, hasCurrent := entry[currentKey]
	_, hasRenamed := entry[renamedKey]
	if !hasCurrent || hasRenamed {
		return entities.Inconsistency{}, false
	}
	return entities.Inconsistency{
		Path:       rec.Path,
		Namespace:  rec.Namespace,
		UsedKey:    renamedKey,
		CatalogKey: currentKey,
	}, true
}

func containsKey(sorted []string, key string) bool {
	i := sort.SearchStrings(sorted, key)
	return i < len(sorted) && sorted[i] == key
}
