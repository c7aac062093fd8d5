package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/Tomas-vilte/MateChangeset/internal/domain/errors"
	"github.com/Tomas-vilte/MateChangeset/internal/domain/models"
	"github.com/Tomas-vilte/MateChangeset/internal/domain/ports"
	"github.com/Tomas-vilte/MateChangeset/internal/i18n"
)

func newEmitter(t *testing.T) *EmitterService {
	t.Helper()
	trans, err := i18n.NewTranslations("en", "")
	require.NoError(t, err)
	return NewEmitterService(trans)
}

func TestEmitterService_BumpTable(t *testing.T) {
	emitter := newEmitter(t)
	workspace := models.Workspace{DeclaredName: "@scope/dto"}

	// La tabla completa: feature → minor, el resto → patch; cualquier
	// breaking → major
	for _, category := range models.Categories {
		expected := models.BumpPatch
		if category == models.CategoryFeature {
			expected = models.BumpMinor
		}

		fragment, err := emitter.EmitFragment(workspace, ports.EmitInput{
			Category: category,
			Bullets:  []string{"algo cambió"},
		})
		require.NoError(t, err)
		assert.Equal(t, expected, fragment.Bump, "categoría %s sin breaking", category)

		fragment, err = emitter.EmitFragment(workspace, ports.EmitInput{
			Category: category,
			Breaking: true,
			Bullets:  []string{"algo cambió"},
		})
		require.NoError(t, err)
		assert.Equal(t, models.BumpMajor, fragment.Bump, "categoría %s con breaking", category)
	}
}

func TestEmitterService_EmptyBodyIsAnError(t *testing.T) {
	emitter := newEmitter(t)

	_, err := emitter.EmitFragment(models.Workspace{DeclaredName: "@scope/dto"}, ports.EmitInput{
		Category: models.CategoryFix,
	})

	var emptyErr *domainerrors.EmptyFragmentError
	require.ErrorAs(t, err, &emptyErr)
	assert.Equal(t, "@scope/dto", emptyErr.Workspace)
}

func TestEmitterService_RecommendReadme(t *testing.T) {
	emitter := newEmitter(t)

	t.Run("no readme means no entity at all", func(t *testing.T) {
		recommendation := emitter.RecommendReadme(
			models.Workspace{DeclaredName: "@scope/dto", HasReadme: false},
			ports.EmitInput{Category: models.CategoryFeature},
		)
		assert.Nil(t, recommendation)
	})

	t.Run("readme without signals yields an empty set, not nil", func(t *testing.T) {
		recommendation := emitter.RecommendReadme(
			models.Workspace{
				DeclaredName: "@scope/dto",
				HasReadme:    true,
				ChangedFiles: []models.StagedChange{{Path: "packages/dto/src/utils.ts"}},
			},
			ports.EmitInput{Category: models.CategoryRefactor},
		)
		require.NotNil(t, recommendation)
		assert.Empty(t, recommendation.Sections)
	})

	t.Run("feature suggests Features and Usage", func(t *testing.T) {
		recommendation := emitter.RecommendReadme(
			models.Workspace{DeclaredName: "bot-status", HasReadme: true},
			ports.EmitInput{Category: models.CategoryFeature},
		)
		require.NotNil(t, recommendation)
		assert.Contains(t, recommendation.Sections, models.SectionFeatures)
		assert.Contains(t, recommendation.Sections, models.SectionUsage)
	})

	t.Run("fix suggests Troubleshooting and Features", func(t *testing.T) {
		recommendation := emitter.RecommendReadme(
			models.Workspace{DeclaredName: "portal-api", HasReadme: true},
			ports.EmitInput{Category: models.CategoryFix},
		)
		require.NotNil(t, recommendation)
		assert.Contains(t, recommendation.Sections, models.SectionTroubleshooting)
		assert.Contains(t, recommendation.Sections, models.SectionFeatures)
	})

	t.Run("breaking adds BreakingChanges, Configuration and Usage", func(t *testing.T) {
		recommendation := emitter.RecommendReadme(
			models.Workspace{DeclaredName: "portal-api", HasReadme: true},
			ports.EmitInput{Category: models.CategoryFeature, Breaking: true},
		)
		require.NotNil(t, recommendation)
		assert.Contains(t, recommendation.Sections, models.SectionBreakingChanges)
		assert.Contains(t, recommendation.Sections, models.SectionConfiguration)
		assert.Contains(t, recommendation.Sections, models.SectionUsage)
	})

	t.Run("config paths add Configuration and EnvironmentVariables", func(t *testing.T) {
		// Scenario: feature sobre apps/bots/status/src/config/index.ts
		recommendation := emitter.RecommendReadme(
			models.Workspace{
				DeclaredName: "bot-status",
				HasReadme:    true,
				ChangedFiles: []models.StagedChange{
					{Path: "apps/bots/status/src/config/index.ts", Status: models.StatusModified},
				},
			},
			ports.EmitInput{Category: models.CategoryFeature},
		)
		require.NotNil(t, recommendation)
		assert.Contains(t, recommendation.Sections, models.SectionConfiguration)
		assert.Contains(t, recommendation.Sections, models.SectionEnvironmentVariables)
	})

	t.Run("touched manifest adds Scripts even for chore", func(t *testing.T) {
		recommendation := emitter.RecommendReadme(
			models.Workspace{
				DeclaredName: "@scope/dto",
				HasReadme:    true,
				ChangedFiles: []models.StagedChange{
					{Path: "packages/dto/package.json", Status: models.StatusModified},
				},
			},
			ports.EmitInput{Category: models.CategoryChore},
		)
		require.NotNil(t, recommendation)
		assert.Contains(t, recommendation.Sections, models.SectionScripts)
	})

	t.Run("declared api change adds Usage and Features", func(t *testing.T) {
		recommendation := emitter.RecommendReadme(
			models.Workspace{DeclaredName: "@scope/dto", HasReadme: true},
			ports.EmitInput{Category: models.CategoryRefactor, APIChanged: true},
		)
		require.NotNil(t, recommendation)
		assert.Contains(t, recommendation.Sections, models.SectionUsage)
		assert.Contains(t, recommendation.Sections, models.SectionFeatures)
	})
}
