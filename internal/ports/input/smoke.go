package input

import (
	"context"

	"admintools/internal/domain/entities"
)

// SmokeUseCase runs the settings smoke sequence.
type SmokeUseCase interface {
	Run(ctx context.Context) (*entities.SmokeResult, error)
}
