package input

import (
	"context"

	"admintools/internal/domain/entities"
)

// AuditUseCase runs the translation audit end to end.
type AuditUseCase interface {
	Run(ctx context.Context) (*entities.AuditReport, error)
}
