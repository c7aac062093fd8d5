package gogit

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/Tomas-vilte/MateChangeset/internal/domain/models"
	git "github.com/go-git/go-git/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupRepo crea un repo real en un directorio temporal con un archivo
// staged, sin depender del binario git
func setupRepo(t *testing.T) (string, *git.Worktree) {
	t.Helper()

	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "apps", "portal"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "apps", "portal", "index.ts"), []byte("export const x = 1\n"), 0644))

	worktree, err := repo.Worktree()
	require.NoError(t, err)

	_, err = worktree.Add("apps/portal/index.ts")
	require.NoError(t, err)

	return dir, worktree
}

func TestCollector(t *testing.T) {
	t.Run("detecta cambios staged", func(t *testing.T) {
		dir, _ := setupRepo(t)
		c := NewCollector(dir)

		assert.True(t, c.HasStagedChanges(context.Background()))
	})

	t.Run("un repo limpio no tiene cambios staged", func(t *testing.T) {
		dir := t.TempDir()
		_, err := git.PlainInit(dir, false)
		require.NoError(t, err)

		c := NewCollector(dir)
		assert.False(t, c.HasStagedChanges(context.Background()))
	})

	t.Run("recolecta el archivo agregado con su contenido en el diff", func(t *testing.T) {
		dir, _ := setupRepo(t)
		c := NewCollector(dir)

		collected, err := c.Collect(context.Background())
		require.NoError(t, err)

		require.Len(t, collected.Changes, 1)
		assert.Equal(t, "apps/portal/index.ts", collected.Changes[0].Path)
		assert.Equal(t, models.StatusAdded, collected.Changes[0].Status)
		assert.Contains(t, collected.Diff, "diff --git a/apps/portal/index.ts b/apps/portal/index.ts")
		assert.Contains(t, collected.Diff, "+export const x = 1")
	})

	t.Run("la raíz del repo es el directorio del worktree", func(t *testing.T) {
		dir, _ := setupRepo(t)
		c := NewCollector(dir)

		root, err := c.RepoRoot(context.Background())
		require.NoError(t, err)
		assert.Equal(t, dir, root)
	})

	t.Run("abrir un directorio sin repo es un error de colección", func(t *testing.T) {
		c := NewCollector(t.TempDir())

		_, err := c.Collect(context.Background())
		assert.Error(t, err)
	})
}
