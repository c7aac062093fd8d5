package services

import (
	"fmt"
	"strings"

	"github.com/Tomas-vilte/MateChangeset/internal/domain/models"
	"github.com/Tomas-vilte/MateChangeset/internal/domain/ports"
	"github.com/Tomas-vilte/MateChangeset/internal/regex"
)

var _ ports.ChangeCategorizer = (*CategorizerService)(nil)

// CategorizerService resuelve la categoría convencional y el flag de
// breaking change. La detección de breaking es puramente textual: el
// marcador BREAKING CHANGE o el `!` después del prefijo type(scope);
// nunca se analiza si el cambio es incompatible de verdad.
type CategorizerService struct{}

func NewCategorizerService() *CategorizerService {
	return &CategorizerService{}
}

func (s *CategorizerService) Categorize(input ports.CategorizeInput) (models.CategoryResolution, error) {
	breaking := s.detectBreaking(input.CommitText)

	// El tipo explícito del usuario siempre gana
	if input.ExplicitType != "" {
		category, ok := models.ParseCategory(strings.ToLower(input.ExplicitType))
		if !ok {
			return models.CategoryResolution{}, fmt.Errorf("'%s' no es un tipo de commit válido", input.ExplicitType)
		}
		return models.CategoryResolution{Category: category, Breaking: breaking}, nil
	}

	// Un título ya convencional también cuenta como elección del caller
	if match := regex.ConventionalCommit.FindStringSubmatch(firstLine(input.CommitText)); match != nil {
		if category, ok := models.ParseCategory(match[1]); ok {
			return models.CategoryResolution{Category: category, Breaking: breaking}, nil
		}
	}

	if category, ok := s.inferFromPaths(input.Changes); ok {
		return models.CategoryResolution{Category: category, Breaking: breaking}, nil
	}

	if category, ok := s.inferFromDiff(input.Diff, input.CommitText); ok {
		return models.CategoryResolution{Category: category, Breaking: breaking}, nil
	}

	// Sin señal: chore por defecto, marcado como ambiguo
	return models.CategoryResolution{
		Category:  models.CategoryChore,
		Breaking:  breaking,
		Ambiguous: true,
	}, nil
}

func (s *CategorizerService) detectBreaking(commitText string) bool {
	if regex.BreakingChange.MatchString(commitText) {
		return true
	}
	if match := regex.ConventionalCommit.FindStringSubmatch(firstLine(commitText)); match != nil {
		return match[4] == "!"
	}
	return false
}

// inferFromPaths reconoce cambios cuya forma alcanza para clasificar: si
// todas las rutas staged son de un mismo tipo (tests, docs, CI, build),
// la categoría es esa
func (s *CategorizerService) inferFromPaths(changes []models.StagedChange) (models.ChangeCategory, bool) {
	if len(changes) == 0 {
		return "", false
	}

	checks := []struct {
		category models.ChangeCategory
		matches  func(path string) bool
	}{
		{models.CategoryTest, regex.TestPath.MatchString},
		{models.CategoryDocs, regex.DocPath.MatchString},
		{models.CategoryCI, regex.CIPath.MatchString},
		{models.CategoryBuild, func(p string) bool {
			return regex.BuildPath.MatchString(p) || regex.ManifestPath.MatchString(p)
		}},
	}

	for _, check := range checks {
		all := true
		for _, change := range changes {
			if !check.matches(change.Path) {
				all = false
				break
			}
		}
		if all {
			return check.category, true
		}
	}

	return "", false
}

// inferFromDiff es best-effort: símbolos exportados nuevos sugieren una
// feature; si no, keywords en el mensaje o en el diff
func (s *CategorizerService) inferFromDiff(diff, commitText string) (models.ChangeCategory, bool) {
	if regex.NewExportedSymbol.MatchString(diff) {
		return models.CategoryFeature, true
	}

	for _, text := range []string{commitText, diff} {
		if text == "" {
			continue
		}
		switch {
		case regex.FixKeywords.MatchString(text):
			return models.CategoryFix, true
		case regex.FeatKeywords.MatchString(text):
			return models.CategoryFeature, true
		case regex.RefactorKeywords.MatchString(text):
			return models.CategoryRefactor, true
		}
	}

	return "", false
}

func firstLine(text string) string {
	if idx := strings.Index(text, "\n"); idx != -1 {
		return text[:idx]
	}
	return text
}
