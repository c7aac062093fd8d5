package ports

import "github.com/Tomas-vilte/MateChangeset/internal/domain/models"

// EmitInput agrupa las señales que el emitter necesita además del
// workspace: la categoría resuelta, los bullets del mensaje y flags que
// solo puede aportar el caller (ej: cambio de API declarado).
type EmitInput struct {
	Category   models.ChangeCategory
	Breaking   bool
	Bullets    []string
	APIChanged bool
}

// ReleaseNoteEmitter deriva el bump por workspace, arma el fragmento de
// changeset y señala qué secciones del README convendría revisar. Es una
// transformación estructural: no inventa prosa.
type ReleaseNoteEmitter interface {
	EmitFragment(workspace models.Workspace, input EmitInput) (*models.ReleaseFragment, error)
	RecommendReadme(workspace models.Workspace, input EmitInput) *models.ReadmeRecommendation
}

// FragmentWriter persiste fragmentos bajo el directorio de changesets con
// un nombre único por invocación.
type FragmentWriter interface {
	Write(repoRoot string, category models.ChangeCategory, fragment *models.ReleaseFragment) (string, error)
}
