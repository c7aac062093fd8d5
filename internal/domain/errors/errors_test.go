package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollectionError(t *testing.T) {
	cause := stderrors.New("exit 128")
	err := NewCollectionError("no es un repositorio", cause)

	assert.Contains(t, err.Error(), "no es un repositorio")
	assert.ErrorIs(t, err, cause)
}

func TestManifestReadError(t *testing.T) {
	t.Run("with cause", func(t *testing.T) {
		cause := stderrors.New("json inválido")
		err := NewManifestReadError("packages/dto", cause)

		assert.Contains(t, err.Error(), "packages/dto")
		assert.ErrorIs(t, err, cause)
	})

	t.Run("without cause names the missing manifest", func(t *testing.T) {
		err := NewManifestReadError("apps/rx", nil)
		assert.Contains(t, err.Error(), "apps/rx")
		assert.Contains(t, err.Error(), "manifiesto")
	})
}

func TestFragmentWriteError(t *testing.T) {
	cause := stderrors.New("disco lleno")
	err := NewFragmentWriteError("@scope/dto", "/repo/.changeset/x.md", cause)

	assert.Contains(t, err.Error(), "@scope/dto")
	assert.Contains(t, err.Error(), "/repo/.changeset/x.md")
	assert.ErrorIs(t, err, cause)
}

func TestEmptyFragmentError(t *testing.T) {
	err := NewEmptyFragmentError("bot-status")
	assert.Contains(t, err.Error(), "bot-status")
}

func TestCategoryAmbiguousWarning(t *testing.T) {
	err := NewCategoryAmbiguousWarning("chore")
	assert.Contains(t, err.Error(), "chore")
}
