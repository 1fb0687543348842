package output

import (
	"context"

	"admintools/internal/domain/entities"
)

// ReportWriter persists the audit report.
type ReportWriter interface {
	Write(report *entities.AuditReport) error
}

// Notifier publishes an audit summary somewhere outside the console.
type Notifier interface {
	Notify(ctx context.Context, report *entities.AuditReport) error
}
