package ports

import (
	"context"

	"github.com/Tomas-vilte/MateChangeset/internal/domain/models"
)

// ChangeCollector envuelve al colaborador de control de versiones. Solo
// refleja cambios staged (índice): nunca working tree ni commits previos.
type ChangeCollector interface {
	// Name identifica al proveedor ("git", "gogit")
	Name() string
	// RepoRoot retorna la raíz del repositorio
	RepoRoot(ctx context.Context) (string, error)
	// HasStagedChanges verifica si hay cambios en el área de staging
	HasStagedChanges(ctx context.Context) bool
	// Collect obtiene los cambios staged y el diff del índice
	Collect(ctx context.Context) (*models.CollectedChanges, error)
}
