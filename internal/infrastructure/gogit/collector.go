package gogit

import (
	"bufio"
	"context"
	"fmt"
	"sort"
	"strings"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	domainerrors "github.com/Tomas-vilte/MateChangeset/internal/domain/errors"
	"github.com/Tomas-vilte/MateChangeset/internal/domain/models"
	"github.com/Tomas-vilte/MateChangeset/internal/domain/ports"
)

var _ ports.ChangeCollector = (*Collector)(nil)

// Collector obtiene los cambios staged con go-git, sin depender del binario
// git. El diff que produce es un resumen por archivo (con el contenido de
// los archivos nuevos); los hunks detallados quedan vacíos, que el modelo
// permite.
type Collector struct {
	path string
}

func NewCollector(path string) *Collector {
	if path == "" {
		path = "."
	}
	return &Collector{path: path}
}

func (c *Collector) Name() string {
	return "gogit"
}

func (c *Collector) open() (*git.Repository, *git.Worktree, error) {
	repo, err := git.PlainOpenWithOptions(c.path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, nil, err
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return nil, nil, err
	}

	return repo, worktree, nil
}

func (c *Collector) RepoRoot(_ context.Context) (string, error) {
	_, worktree, err := c.open()
	if err != nil {
		return "", domainerrors.NewCollectionError("no se pudo abrir el repositorio", err)
	}
	return worktree.Filesystem.Root(), nil
}

func (c *Collector) HasStagedChanges(_ context.Context) bool {
	_, worktree, err := c.open()
	if err != nil {
		return false
	}

	status, err := worktree.Status()
	if err != nil {
		return false
	}

	for _, fileStatus := range status {
		if isStaged(fileStatus.Staging) {
			return true
		}
	}
	return false
}

func (c *Collector) Collect(_ context.Context) (*models.CollectedChanges, error) {
	repo, worktree, err := c.open()
	if err != nil {
		return nil, domainerrors.NewCollectionError("no se pudo abrir el repositorio", err)
	}

	status, err := worktree.Status()
	if err != nil {
		return nil, domainerrors.NewCollectionError("no se pudo obtener el estado del índice", err)
	}

	paths := make([]string, 0, len(status))
	for path, fileStatus := range status {
		if isStaged(fileStatus.Staging) {
			paths = append(paths, path)
		}
	}
	sort.Strings(paths)

	var diff strings.Builder
	changes := make([]models.StagedChange, 0, len(paths))

	for _, path := range paths {
		fileStatus := status[path]
		change := models.StagedChange{
			Path:   path,
			Status: mapStatus(fileStatus.Staging),
		}
		changes = append(changes, change)

		diff.WriteString(fmt.Sprintf("diff --git a/%s b/%s\n", path, path))
		if change.Status == models.StatusAdded {
			if content, err := c.stagedContent(repo, path); err == nil {
				writePrefixedLines(&diff, content)
			}
		}
	}

	return &models.CollectedChanges{Changes: changes, Diff: diff.String()}, nil
}

// stagedContent lee el contenido de un archivo tal como está en el índice
func (c *Collector) stagedContent(repo *git.Repository, path string) (string, error) {
	idx, err := repo.Storer.Index()
	if err != nil {
		return "", err
	}

	for _, entry := range idx.Entries {
		if entry.Name != path {
			continue
		}
		if entry.Hash == plumbing.ZeroHash {
			return "", fmt.Errorf("entrada sin blob: %s", path)
		}

		blob, err := object.GetBlob(repo.Storer, entry.Hash)
		if err != nil {
			return "", err
		}

		reader, err := blob.Reader()
		if err != nil {
			return "", err
		}
		defer func() {
			_ = reader.Close()
		}()

		var content strings.Builder
		scanner := bufio.NewScanner(reader)
		for scanner.Scan() {
			content.WriteString(scanner.Text())
			content.WriteString("\n")
		}
		return content.String(), scanner.Err()
	}

	return "", fmt.Errorf("la ruta %s no está en el índice", path)
}

func isStaged(code git.StatusCode) bool {
	switch code {
	case git.Added, git.Modified, git.Deleted, git.Renamed, git.Copied:
		return true
	}
	return false
}

func mapStatus(code git.StatusCode) models.ChangeStatus {
	switch code {
	case git.Added:
		return models.StatusAdded
	case git.Deleted:
		return models.StatusDeleted
	case git.Renamed, git.Copied:
		return models.StatusRenamed
	default:
		return models.StatusModified
	}
}

func writePrefixedLines(b *strings.Builder, content string) {
	for _, line := range strings.Split(strings.TrimRight(content, "\n"), "\n") {
		b.WriteString("+")
		b.WriteString(line)
		b.WriteString("\n")
	}
}
