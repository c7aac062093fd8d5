package git

import (
	"context"
	"os/exec"
	"strings"

	domainerrors "github.com/Tomas-vilte/MateChangeset/internal/domain/errors"
	"github.com/Tomas-vilte/MateChangeset/internal/domain/models"
	"github.com/Tomas-vilte/MateChangeset/internal/domain/ports"
)

var _ ports.ChangeCollector = (*Collector)(nil)

// Collector obtiene los cambios staged ejecutando git como subproceso.
// Solo mira el índice: nunca el working tree ni commits ya hechos.
type Collector struct{}

func NewCollector() *Collector {
	return &Collector{}
}

func (c *Collector) Name() string {
	return "git"
}

func (c *Collector) RepoRoot(ctx context.Context) (string, error) {
	cmd := exec.CommandContext(ctx, "git", "rev-parse", "--show-toplevel")
	output, err := cmd.Output()
	if err != nil {
		return "", domainerrors.NewCollectionError("no se pudo resolver la raíz del repositorio", err)
	}
	return strings.TrimSpace(string(output)), nil
}

// HasStagedChanges verifica si hay cambios en el área de staging
func (c *Collector) HasStagedChanges(ctx context.Context) bool {
	cmd := exec.CommandContext(ctx, "git", "diff", "--cached", "--quiet")
	err := cmd.Run()

	// Exit status 1 significa que hay cambios staged
	return err != nil && cmd.ProcessState != nil && cmd.ProcessState.ExitCode() == 1
}

func (c *Collector) Collect(ctx context.Context) (*models.CollectedChanges, error) {
	statusCmd := exec.CommandContext(ctx, "git", "diff", "--cached", "--name-status")
	statusOutput, err := statusCmd.Output()
	if err != nil {
		return nil, domainerrors.NewCollectionError("no se pudo listar el área de staging", err)
	}

	diffCmd := exec.CommandContext(ctx, "git", "diff", "--cached")
	diffOutput, err := diffCmd.Output()
	if err != nil {
		return nil, domainerrors.NewCollectionError("no se pudo obtener el diff del índice", err)
	}

	diff := string(diffOutput)
	hunks := splitDiffByFile(diff)

	changes := make([]models.StagedChange, 0)
	for _, line := range strings.Split(string(statusOutput), "\n") {
		change, ok := parseNameStatusLine(line)
		if !ok {
			continue
		}
		change.DiffHunk = hunks[change.Path]
		changes = append(changes, change)
	}

	return &models.CollectedChanges{Changes: changes, Diff: diff}, nil
}

// parseNameStatusLine interpreta una línea de `git diff --name-status`:
// `M\truta`, o `R100\tvieja\tnueva` para renombres
func parseNameStatusLine(line string) (models.StagedChange, bool) {
	fields := strings.Split(strings.TrimRight(line, "\r"), "\t")
	if len(fields) < 2 || fields[0] == "" {
		return models.StagedChange{}, false
	}

	var status models.ChangeStatus
	switch fields[0][0] {
	case 'A':
		status = models.StatusAdded
	case 'M':
		status = models.StatusModified
	case 'D':
		status = models.StatusDeleted
	case 'R', 'C':
		status = models.StatusRenamed
	default:
		status = models.StatusModified
	}

	// En renombres y copias la ruta que vale es la nueva
	path := fields[len(fields)-1]
	if path == "" {
		return models.StagedChange{}, false
	}

	return models.StagedChange{Path: path, Status: status}, true
}

// splitDiffByFile separa un diff unificado en hunks por archivo, indexados
// por la ruta del lado b/
func splitDiffByFile(diff string) map[string]string {
	hunks := make(map[string]string)
	if diff == "" {
		return hunks
	}

	sections := strings.Split(diff, "diff --git ")
	for _, section := range sections {
		if section == "" {
			continue
		}

		headerEnd := strings.Index(section, "\n")
		if headerEnd == -1 {
			continue
		}

		header := section[:headerEnd]
		parts := strings.Fields(header)
		if len(parts) < 2 {
			continue
		}

		path := strings.TrimPrefix(parts[len(parts)-1], "b/")
		hunks[path] = "diff --git " + section
	}

	return hunks
}
