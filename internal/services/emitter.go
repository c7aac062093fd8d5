package services

import (
	domainerrors "github.com/Tomas-vilte/MateChangeset/internal/domain/errors"
	"github.com/Tomas-vilte/MateChangeset/internal/domain/models"
	"github.com/Tomas-vilte/MateChangeset/internal/domain/ports"
	"github.com/Tomas-vilte/MateChangeset/internal/i18n"
	"github.com/Tomas-vilte/MateChangeset/internal/regex"
)

var _ ports.ReleaseNoteEmitter = (*EmitterService)(nil)

// EmitterService deriva el bump por workspace y arma el fragmento y la
// recomendación de README. Es una transformación estructural: los bullets
// vienen del caller, acá no se genera prosa.
type EmitterService struct {
	trans *i18n.Translations
}

func NewEmitterService(trans *i18n.Translations) *EmitterService {
	return &EmitterService{trans: trans}
}

func (s *EmitterService) EmitFragment(workspace models.Workspace, input ports.EmitInput) (*models.ReleaseFragment, error) {
	if len(input.Bullets) == 0 {
		return nil, domainerrors.NewEmptyFragmentError(workspace.DeclaredName)
	}

	return &models.ReleaseFragment{
		WorkspaceName: workspace.DeclaredName,
		Bump:          models.ResolveBump(input.Category, input.Breaking),
		Body:          input.Bullets,
	}, nil
}

// RecommendReadme arma el set consultivo de secciones a revisar. Retorna
// nil si el workspace no tiene README (entidad ausente); si lo tiene pero
// no hay nada que señalar, retorna la entidad con el set vacío.
func (s *EmitterService) RecommendReadme(workspace models.Workspace, input ports.EmitInput) *models.ReadmeRecommendation {
	if !workspace.HasReadme {
		return nil
	}

	sections := make(map[models.ReadmeSection]string)

	for _, section := range models.SectionsForCategory(input.Category) {
		sections[section] = s.instruction(section)
	}

	if input.Breaking {
		for _, section := range models.SectionsForBreaking() {
			sections[section] = s.instruction(section)
		}
	}

	if input.APIChanged {
		sections[models.SectionUsage] = s.instruction(models.SectionUsage)
		sections[models.SectionFeatures] = s.instruction(models.SectionFeatures)
	}

	// Señales por ruta: configuración, scripts del manifiesto y el README
	// en sí aplican a cualquier categoría
	for _, change := range workspace.ChangedFiles {
		switch {
		case regex.ConfigPath.MatchString(change.Path):
			sections[models.SectionConfiguration] = s.instruction(models.SectionConfiguration)
			sections[models.SectionEnvironmentVariables] = s.instruction(models.SectionEnvironmentVariables)
		case regex.ManifestPath.MatchString(change.Path):
			sections[models.SectionScripts] = s.instruction(models.SectionScripts)
		case regex.ReadmePath.MatchString(change.Path):
			sections[models.SectionUsage] = s.instruction(models.SectionUsage)
		}
	}

	return &models.ReadmeRecommendation{
		WorkspaceName: workspace.DeclaredName,
		Sections:      sections,
	}
}

func (s *EmitterService) instruction(section models.ReadmeSection) string {
	ids := map[models.ReadmeSection]string{
		models.SectionFeatures:             "readme_instr_features",
		models.SectionUsage:                "readme_instr_usage",
		models.SectionConfiguration:        "readme_instr_configuration",
		models.SectionTroubleshooting:      "readme_instr_troubleshooting",
		models.SectionBreakingChanges:      "readme_instr_breaking",
		models.SectionScripts:              "readme_instr_scripts",
		models.SectionEnvironmentVariables: "readme_instr_env",
	}
	return s.trans.GetMessage(ids[section], 0, nil)
}
