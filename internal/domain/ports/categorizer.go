package ports

import "github.com/Tomas-vilte/MateChangeset/internal/domain/models"

// CategorizeInput es lo que el categorizador inspecciona: el diff y las
// rutas recolectadas, más el tipo explícito y el texto de commit que el
// usuario pueda haber pasado.
type CategorizeInput struct {
	Changes      []models.StagedChange
	Diff         string
	ExplicitType string
	CommitText   string
}

// ChangeCategorizer resuelve una categoría convencional y el flag de
// breaking change. El tipo explícito del usuario siempre gana sobre la
// inferencia heurística.
type ChangeCategorizer interface {
	Categorize(input CategorizeInput) (models.CategoryResolution, error)
}
