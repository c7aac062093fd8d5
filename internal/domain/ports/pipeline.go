package ports

import (
	"context"

	"github.com/Tomas-vilte/MateChangeset/internal/domain/models"
)

// RunOptions son las opciones de una invocación del pipeline
type RunOptions struct {
	// ExplicitType es el keyword de categoría elegido por el usuario;
	// vacío para inferir por heurística
	ExplicitType string
	// Scope es el scope opcional del título del commit
	Scope string
	// Subject es el título del commit
	Subject string
	// CommitText es el mensaje completo (título + body); los bullets del
	// body alimentan los fragmentos
	CommitText string
	// APIChanged lo declara el caller: no se adivina con heurísticas
	APIChanged bool
	// WriteFragments persiste los changesets en disco además de reportarlos
	WriteFragments bool
}

// PipelineService corre la pasada única Collector → Classifier →
// Categorizer → Emitter y arma el reporte final.
type PipelineService interface {
	Run(ctx context.Context, opts RunOptions) (*models.Report, error)
}
