package console

import (
	"fmt"
	"io"
	"strings"

	"admintools/internal/domain"
	"admintools/internal/domain/entities"
	"admintools/internal/ports/output"
)

// Printer writes the human-readable output of both tools.
type Printer struct {
	w      io.Writer
	t      output.T
	locale string
}

func NewPrinter(w io.Writer, t output.T, locale string) *Printer {
	return &Printer{w: w, t: t, locale: locale}
}

func (p *Printer) line(key string, data map[string]any) {
	fmt.Fprintln(p.w, strings.TrimRight(p.t.T(p.locale, key, data), " "))
}

// AuditHeader prints the inputs of the run.
func (p *Printer) AuditHeader(root, pattern, catalog string) {
	p.line("audit.header", nil)
	p.line("audit.inputs", map[string]any{"Root": root, "Pattern": pattern, "Catalog": catalog})
	fmt.Fprintln(p.w)
}

// AuditReport prints missing keys grouped by namespace, the naming warnings
// in discovery order and the final summary.
func (p *Printer) AuditReport(r *entities.AuditReport, reportPath string) {
	if n := r.MissingCount(); n == 0 {
		p.line("audit.missing_none", nil)
	} else {
		p.line("audit.missing_count", map[string]any{"Count": n})
		for _, ns := range r.SortedMissingNamespaces() {
			keys := r.MissingKeys[ns]
			p.line("audit.missing_namespace", map[string]any{"Namespace": ns, "Count": len(keys)})
			for _, key := range keys {
				fmt.Fprintf(p.w, "     - %s\n", key)
			}
		}
	}

	if len(r.Inconsistencies) > 0 {
		fmt.Fprintln(p.w)
		p.line("audit.inconsistency_count", map[string]any{"Count": len(r.Inconsistencies)})
		for _, w := range r.Inconsistencies {
			p.line("audit.inconsistency", map[string]any{
				"Page":       w.Path,
				"Namespace":  w.Namespace,
				"UsedKey":    w.UsedKey,
				"CatalogKey": w.CatalogKey,
			})
		}
	}

	fmt.Fprintln(p.w)
	p.line("audit.summary_header", nil)
	p.line("audit.summary_pages", map[string]any{"Count": r.TotalPages})
	p.line("audit.summary_namespaces", map[string]any{"Count": r.TotalNamespaces})
	p.line("audit.summary_namespace_list", map[string]any{"List": strings.Join(r.Namespaces, ", ")})
	if reportPath != "" {
		p.line("audit.report_written", map[string]any{"Path": reportPath})
	}
}

// SmokeHeader prints the target of the smoke run.
func (p *Printer) SmokeHeader(baseURL, key string) {
	p.line("smoke.header", map[string]any{"BaseURL": baseURL, "Key": key})
}

// SmokeStep prints one step with its success or failure marker.
func (p *Printer) SmokeStep(step entities.StepResult) {
	key := "smoke.step_failed"
	if step.Passed {
		key = "smoke.step_passed"
	}
	p.line(key, map[string]any{"Step": step.Name, "Status": step.Status, "Detail": step.Detail})
}

// SmokeSummary prints the pass/fail counts.
func (p *Printer) SmokeSummary(r *entities.SmokeResult) {
	fmt.Fprintln(p.w)
	p.line("smoke.summary", map[string]any{
		"Passed": r.Passed(),
		"Failed": r.Failed(),
		"Total":  len(r.Steps),
	})
}

// Fatal prints err with the message of its domain code, if any.
func (p *Printer) Fatal(err error) {
	key := "error.generic"
	if code := domain.Code(err); code != "" {
		key = "error." + code
	}
	msg := p.t.T(p.locale, key, map[string]any{"Error": err.Error()})
	if msg == key {
		msg = p.t.T(p.locale, "error.generic", map[string]any{"Error": err.Error()})
	}
	fmt.Fprintln(p.w, msg)
}
