package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tomas-vilte/MateChangeset/internal/domain/models"
	"github.com/Tomas-vilte/MateChangeset/internal/domain/ports"
)

func TestCategorizerService_ExplicitType(t *testing.T) {
	t.Run("explicit keyword always wins over heuristics", func(t *testing.T) {
		service := NewCategorizerService()

		resolution, err := service.Categorize(ports.CategorizeInput{
			ExplicitType: "refactor",
			Changes:      []models.StagedChange{{Path: "packages/dto/src/utils_test.ts"}},
			Diff:         "+export function newThing() {}",
		})

		require.NoError(t, err)
		assert.Equal(t, models.CategoryRefactor, resolution.Category)
		assert.False(t, resolution.Breaking)
		assert.False(t, resolution.Ambiguous)
	})

	t.Run("aliases are accepted", func(t *testing.T) {
		service := NewCategorizerService()

		resolution, err := service.Categorize(ports.CategorizeInput{ExplicitType: "feature"})

		require.NoError(t, err)
		assert.Equal(t, models.CategoryFeature, resolution.Category)
	})

	t.Run("invalid keyword is an error", func(t *testing.T) {
		service := NewCategorizerService()

		_, err := service.Categorize(ports.CategorizeInput{ExplicitType: "banana"})

		assert.Error(t, err)
	})
}

func TestCategorizerService_BreakingDetection(t *testing.T) {
	service := NewCategorizerService()

	tests := []struct {
		name       string
		commitText string
		breaking   bool
	}{
		{"literal marker", "feat: algo\n\nBREAKING CHANGE: se fue el v1", true},
		{"hyphenated marker", "fix: algo\n\nBREAKING-CHANGE: adios", true},
		{"bang after type", "feat!: nueva api", true},
		{"bang after scope", "feat(core)!: nueva api", true},
		{"no marker", "feat: nada raro", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolution, err := service.Categorize(ports.CategorizeInput{CommitText: tt.commitText})
			require.NoError(t, err)
			assert.Equal(t, tt.breaking, resolution.Breaking)
		})
	}
}

func TestCategorizerService_PathInference(t *testing.T) {
	service := NewCategorizerService()

	tests := []struct {
		name     string
		paths    []string
		expected models.ChangeCategory
	}{
		{"only test files", []string{"packages/dto/src/utils.test.ts", "apps/rx/src/__tests__/a.ts"}, models.CategoryTest},
		{"only docs", []string{"documentation/setup.md", "packages/dto/README.md"}, models.CategoryDocs},
		{"only workflows", []string{".github/workflows/ci.yml"}, models.CategoryCI},
		{"only manifests and locks", []string{"packages/dto/package.json", "package-lock.json"}, models.CategoryBuild},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			changes := make([]models.StagedChange, 0, len(tt.paths))
			for _, path := range tt.paths {
				changes = append(changes, models.StagedChange{Path: path, Status: models.StatusModified})
			}

			resolution, err := service.Categorize(ports.CategorizeInput{Changes: changes})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, resolution.Category)
		})
	}
}

func TestCategorizerService_DiffInference(t *testing.T) {
	t.Run("new exported symbol suggests a feature", func(t *testing.T) {
		service := NewCategorizerService()

		resolution, err := service.Categorize(ports.CategorizeInput{
			Changes: []models.StagedChange{{Path: "packages/dto/src/utils.ts"}},
			Diff:    "diff --git a/x b/x\n+export function parseAll() {}\n",
		})

		require.NoError(t, err)
		assert.Equal(t, models.CategoryFeature, resolution.Category)
	})

	t.Run("conventional headline in the message decides", func(t *testing.T) {
		service := NewCategorizerService()

		resolution, err := service.Categorize(ports.CategorizeInput{
			CommitText: "perf(core): cachear la tabla de reglas",
			Changes:    []models.StagedChange{{Path: "packages/core/src/rules.ts"}},
		})

		require.NoError(t, err)
		assert.Equal(t, models.CategoryPerformance, resolution.Category)
	})
}

func TestCategorizerService_AmbiguousDefaultsToChore(t *testing.T) {
	service := NewCategorizerService()

	input := ports.CategorizeInput{
		Changes: []models.StagedChange{{Path: "packages/dto/src/styles.css"}},
	}

	resolution, err := service.Categorize(input)
	require.NoError(t, err)

	assert.Equal(t, models.CategoryChore, resolution.Category)
	assert.True(t, resolution.Ambiguous)

	// Determinismo: la misma entrada produce siempre el mismo resultado
	again, err := service.Categorize(input)
	require.NoError(t, err)
	assert.Equal(t, resolution, again)
}
