package ports

import (
	"context"

	"github.com/Tomas-vilte/MateChangeset/internal/domain/models"
)

// SpaceClassifier asigna cada cambio staged a lo sumo un workspace según
// la tabla de reglas de prefijo (gana el prefijo más largo) y resuelve el
// nombre declarado de cada workspace tocado.
type SpaceClassifier interface {
	Classify(ctx context.Context, repoRoot string, changes []models.StagedChange) (*models.Classification, error)
}
