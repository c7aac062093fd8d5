package classify

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"testing"

	domainerrors "github.com/Tomas-vilte/MateChangeset/internal/domain/errors"
	"github.com/Tomas-vilte/MateChangeset/internal/domain/models"
	"github.com/Tomas-vilte/MateChangeset/internal/i18n"
	"github.com/Tomas-vilte/MateChangeset/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestTranslations(t *testing.T) *i18n.Translations {
	t.Helper()
	trans, err := i18n.NewTranslations("en", "")
	require.NoError(t, err)
	return trans
}

// captureOutput corre fn con stdout redirigido y devuelve lo impreso
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	original := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	runErr := fn()

	require.NoError(t, w.Close())
	os.Stdout = original

	var buf bytes.Buffer
	_, err = io.Copy(&buf, r)
	require.NoError(t, err)

	return buf.String(), runErr
}

func TestClassifyCommand(t *testing.T) {
	t.Run("imprime la ruta de cada archivo, no el hunk del diff", func(t *testing.T) {
		collector := new(services.MockChangeCollector)
		classifier := new(services.MockSpaceClassifier)

		changes := []models.StagedChange{
			{
				Path:     "packages/dto/src/utils.ts",
				Status:   models.StatusModified,
				DiffHunk: "diff --git a/packages/dto/src/utils.ts b/packages/dto/src/utils.ts\n+export const y = 2",
			},
		}
		collector.On("HasStagedChanges", mock.Anything).Return(true)
		collector.On("RepoRoot", mock.Anything).Return("/repo", nil)
		collector.On("Collect", mock.Anything).Return(&models.CollectedChanges{Changes: changes}, nil)
		classifier.On("Classify", mock.Anything, "/repo", changes).Return(&models.Classification{
			Workspaces: []models.Workspace{
				{
					RootPath:     "packages/dto",
					DeclaredName: "@acme/dto",
					Kind:         models.KindPackage,
					ChangedFiles: changes,
				},
			},
			Unmanaged: []string{".gitignore"},
		}, nil)

		factory := NewClassifyCommandFactory(collector, classifier)
		cmd := factory.CreateCommand(newTestTranslations(t), nil)

		out, err := captureOutput(t, func() error {
			return cmd.Run(context.Background(), []string{"classify"})
		})

		require.NoError(t, err)
		assert.Contains(t, out, "@acme/dto")
		assert.Contains(t, out, "- packages/dto/src/utils.ts\n")
		assert.NotContains(t, out, "diff --git")
		assert.NotContains(t, out, "+export const y = 2")
		assert.Contains(t, out, ".gitignore")
	})

	t.Run("un manifiesto ilegible se reporta como salteado", func(t *testing.T) {
		collector := new(services.MockChangeCollector)
		classifier := new(services.MockSpaceClassifier)

		changes := []models.StagedChange{{Path: "apps/api/main.go", Status: models.StatusModified}}
		collector.On("HasStagedChanges", mock.Anything).Return(true)
		collector.On("RepoRoot", mock.Anything).Return("/repo", nil)
		collector.On("Collect", mock.Anything).Return(&models.CollectedChanges{Changes: changes}, nil)
		classifier.On("Classify", mock.Anything, "/repo", changes).Return(&models.Classification{
			Failed: []models.WorkspaceFailure{
				{RootPath: "apps/api", Err: domainerrors.NewManifestReadError("apps/api", errors.New("json inválido"))},
			},
		}, nil)

		factory := NewClassifyCommandFactory(collector, classifier)
		cmd := factory.CreateCommand(newTestTranslations(t), nil)

		out, err := captureOutput(t, func() error {
			return cmd.Run(context.Background(), []string{"classify"})
		})

		require.NoError(t, err)
		assert.Contains(t, out, "apps/api")
		assert.Contains(t, out, "json inválido")
	})

	t.Run("sin cambios staged no clasifica nada", func(t *testing.T) {
		collector := new(services.MockChangeCollector)
		classifier := new(services.MockSpaceClassifier)

		collector.On("HasStagedChanges", mock.Anything).Return(false)

		factory := NewClassifyCommandFactory(collector, classifier)
		cmd := factory.CreateCommand(newTestTranslations(t), nil)

		_, err := captureOutput(t, func() error {
			return cmd.Run(context.Background(), []string{"classify"})
		})

		require.NoError(t, err)
		classifier.AssertNotCalled(t, "Classify", mock.Anything, mock.Anything, mock.Anything)
	})
}
