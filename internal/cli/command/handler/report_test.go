package handler

import (
	"bytes"
	"errors"
	"testing"

	domainerrors "github.com/Tomas-vilte/MateChangeset/internal/domain/errors"
	"github.com/Tomas-vilte/MateChangeset/internal/domain/models"
	"github.com/Tomas-vilte/MateChangeset/internal/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTranslations(t *testing.T) *i18n.Translations {
	t.Helper()
	trans, err := i18n.NewTranslations("en", "")
	require.NoError(t, err)
	return trans
}

func TestReportHandler_HandleReport(t *testing.T) {
	t.Run("imprime el commit y los workspaces afectados", func(t *testing.T) {
		var buf bytes.Buffer
		h := NewReportHandlerWithWriter(newTestTranslations(t), &buf)

		report := &models.Report{
			Category: models.CategoryFeature,
			Commit: models.CommitMessage{
				Category: models.CategoryFeature,
				Scope:    "portal",
				Subject:  "agregar exportación de reportes",
				Body:     []string{"nuevo endpoint de exportación"},
			},
			Results: []models.WorkspaceResult{
				{
					RootPath: "apps/portal",
					Name:     "@acme/portal",
					Fragment: &models.ReleaseFragment{
						WorkspaceName: "@acme/portal",
						Bump:          models.BumpMinor,
						Body:          []string{"nuevo endpoint de exportación"},
					},
					FragmentPath: ".changeset/feat-acme-portal-ab12cd34.md",
					Readme: &models.ReadmeRecommendation{
						WorkspaceName: "@acme/portal",
						Sections: map[models.ReadmeSection]string{
							models.SectionFeatures: "Describe the new behavior in the Features section",
						},
					},
				},
			},
		}

		err := h.HandleReport(report)
		require.NoError(t, err)

		out := buf.String()
		assert.Contains(t, out, "feat(portal): agregar exportación de reportes")
		assert.Contains(t, out, "@acme/portal")
		assert.Contains(t, out, "minor")
		assert.Contains(t, out, ".changeset/feat-acme-portal-ab12cd34.md")
		assert.Contains(t, out, "Features")
	})

	t.Run("un workspace fallido se reporta sin frenar a los demás", func(t *testing.T) {
		var buf bytes.Buffer
		h := NewReportHandlerWithWriter(newTestTranslations(t), &buf)

		report := &models.Report{
			Category: models.CategoryFix,
			Commit:   models.CommitMessage{Category: models.CategoryFix, Subject: "arreglo"},
			Results: []models.WorkspaceResult{
				{
					RootPath: "apps/api",
					Err:      domainerrors.NewManifestReadError("apps/api", errors.New("json inválido")),
				},
				{
					RootPath: "packages/dto",
					Name:     "@acme/dto",
					Fragment: &models.ReleaseFragment{WorkspaceName: "@acme/dto", Bump: models.BumpPatch, Body: []string{"arreglo"}},
				},
			},
		}

		err := h.HandleReport(report)
		require.NoError(t, err)

		out := buf.String()
		assert.Contains(t, out, "apps/api")
		assert.Contains(t, out, "json inválido")
		assert.Contains(t, out, "@acme/dto")
	})

	t.Run("sin README imprime la nota y no inventa secciones", func(t *testing.T) {
		var buf bytes.Buffer
		trans := newTestTranslations(t)
		h := NewReportHandlerWithWriter(trans, &buf)

		report := &models.Report{
			Category: models.CategoryChore,
			Commit:   models.CommitMessage{Category: models.CategoryChore, Subject: "limpieza"},
			Results: []models.WorkspaceResult{
				{
					RootPath: "packages/utils",
					Name:     "@acme/utils",
					Fragment: &models.ReleaseFragment{WorkspaceName: "@acme/utils", Bump: models.BumpPatch, Body: []string{"limpieza"}},
					Readme:   nil,
				},
			},
		}

		require.NoError(t, h.HandleReport(report))
		assert.Contains(t, buf.String(), trans.GetMessage("readme_missing", 0, nil))
	})

	t.Run("unmanaged y warnings aparecen al final", func(t *testing.T) {
		var buf bytes.Buffer
		h := NewReportHandlerWithWriter(newTestTranslations(t), &buf)

		report := &models.Report{
			Category:  models.CategoryChore,
			Commit:    models.CommitMessage{Category: models.CategoryChore, Subject: "varios"},
			Unmanaged: []string{".gitignore", "scripts/deploy.sh"},
			Warnings:  []string{domainerrors.NewCategoryAmbiguousWarning(string(models.CategoryChore)).Error()},
		}

		require.NoError(t, h.HandleReport(report))

		out := buf.String()
		assert.Contains(t, out, ".gitignore")
		assert.Contains(t, out, "scripts/deploy.sh")
		assert.Contains(t, out, "chore")
	})
}
