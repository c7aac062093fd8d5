package changeset

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	domainerrors "github.com/Tomas-vilte/MateChangeset/internal/domain/errors"
	"github.com/Tomas-vilte/MateChangeset/internal/domain/models"
	"github.com/Tomas-vilte/MateChangeset/internal/domain/ports"
)

var _ ports.FragmentWriter = (*Writer)(nil)

// Writer persiste fragmentos bajo el directorio de changesets. El nombre
// del archivo lleva un sufijo aleatorio para que sea único por invocación
// y nunca pise un fragmento previo.
type Writer struct {
	dir string
}

func NewWriter(dir string) *Writer {
	if dir == "" {
		dir = ".changeset"
	}
	return &Writer{dir: dir}
}

func (w *Writer) Write(repoRoot string, category models.ChangeCategory, fragment *models.ReleaseFragment) (string, error) {
	content, err := RenderFragment(fragment)
	if err != nil {
		return "", domainerrors.NewFragmentWriteError(fragment.WorkspaceName, "", err)
	}

	dir := filepath.Join(repoRoot, w.dir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", domainerrors.NewFragmentWriteError(fragment.WorkspaceName, dir, err)
	}

	name := fragmentFileName(category, fragment.WorkspaceName)
	path := filepath.Join(dir, name)

	// O_EXCL garantiza que no se sobreescriba un fragmento existente
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return "", domainerrors.NewFragmentWriteError(fragment.WorkspaceName, path, err)
	}

	if _, err := file.WriteString(content); err != nil {
		_ = file.Close()
		return "", domainerrors.NewFragmentWriteError(fragment.WorkspaceName, path, err)
	}

	if err := file.Close(); err != nil {
		return "", domainerrors.NewFragmentWriteError(fragment.WorkspaceName, path, err)
	}

	return path, nil
}

func fragmentFileName(category models.ChangeCategory, workspaceName string) string {
	suffix := uuid.NewString()[:8]
	return string(category) + "-" + slugify(workspaceName) + "-" + suffix + ".md"
}

// slugify reduce un nombre de workspace (ej: @scope/dto) a algo apto para
// nombre de archivo
func slugify(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	return strings.Trim(b.String(), "-")
}
