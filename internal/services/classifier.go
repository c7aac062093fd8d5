package services

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/Tomas-vilte/MateChangeset/internal/domain/models"
	"github.com/Tomas-vilte/MateChangeset/internal/domain/ports"
	"github.com/Tomas-vilte/MateChangeset/internal/logger"
)

var _ ports.SpaceClassifier = (*ClassifierService)(nil)

// manifestReadConcurrency acota las lecturas de manifiestos en paralelo
const manifestReadConcurrency = 4

// ClassifierService asigna cada cambio staged a lo sumo un workspace.
// La resolución es por tabla de reglas de prefijo: entre todas las reglas
// que matchean gana siempre la de prefijo más largo, para que una regla
// genérica nunca le robe rutas a una más específica.
type ClassifierService struct {
	rules     []models.PrefixRule
	manifests ports.ManifestResolver
}

func NewClassifierService(rules []models.PrefixRule, manifests ports.ManifestResolver) *ClassifierService {
	return &ClassifierService{
		rules:     rules,
		manifests: manifests,
	}
}

func (s *ClassifierService) Classify(ctx context.Context, repoRoot string, changes []models.StagedChange) (*models.Classification, error) {
	grouped := make(map[string][]models.StagedChange)
	kinds := make(map[string]models.WorkspaceKind)
	unmanaged := make([]string, 0)

	for _, change := range changes {
		root, kind, ok := s.resolveRoot(change.Path)
		if !ok {
			unmanaged = append(unmanaged, change.Path)
			continue
		}
		grouped[root] = append(grouped[root], change)
		kinds[root] = kind
	}
	sort.Strings(unmanaged)

	roots := make([]string, 0, len(grouped))
	for root := range grouped {
		roots = append(roots, root)
	}
	sort.Strings(roots)

	// Los manifiestos se leen en paralelo: los workspaces no comparten
	// estado y las lecturas son de solo lectura. El orden final lo da el
	// sort por raíz, no el orden de finalización. El nombre se resuelve
	// de nuevo en cada invocación: nunca se cachea entre corridas.
	names := make([]string, len(roots))
	failures := make([]error, len(roots))

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(manifestReadConcurrency)

	for i, root := range roots {
		group.Go(func() error {
			name, err := s.manifests.ResolveName(filepath.Join(repoRoot, root))
			if err != nil {
				logger.Warn(ctx, "manifiesto ilegible, se saltea el workspace", "root", root)
				failures[i] = err
				return nil
			}
			names[i] = name
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	classification := &models.Classification{Unmanaged: unmanaged}
	for i, root := range roots {
		if failures[i] != nil {
			classification.Failed = append(classification.Failed, models.WorkspaceFailure{
				RootPath: root,
				Err:      failures[i],
			})
			continue
		}

		classification.Workspaces = append(classification.Workspaces, models.Workspace{
			RootPath:     root,
			DeclaredName: names[i],
			Kind:         kinds[root],
			ChangedFiles: grouped[root],
			HasReadme:    hasReadme(filepath.Join(repoRoot, root)),
		})
	}

	return classification, nil
}

// resolveRoot aplica la tabla de reglas a una ruta. Una regla sin Fixed es
// dueña de la ruta solo si queda al menos un segmento después del nombre
// del workspace; si no, cae la siguiente regla más corta que sí aplique.
func (s *ClassifierService) resolveRoot(path string) (string, models.WorkspaceKind, bool) {
	best := -1
	var root string
	var kind models.WorkspaceKind

	for _, rule := range s.rules {
		if !strings.HasPrefix(path, rule.Prefix) {
			continue
		}

		var candidate string
		if rule.Fixed {
			candidate = strings.TrimSuffix(rule.Prefix, "/")
		} else {
			rest := path[len(rule.Prefix):]
			idx := strings.Index(rest, "/")
			if idx <= 0 {
				continue
			}
			candidate = rule.Prefix + rest[:idx]
		}

		if len(rule.Prefix) > best {
			best = len(rule.Prefix)
			root = candidate
			kind = rule.Kind
		}
	}

	return root, kind, best >= 0
}

func hasReadme(root string) bool {
	for _, name := range []string{"README.md", "readme.md", "Readme.md"} {
		if info, err := os.Stat(filepath.Join(root, name)); err == nil && !info.IsDir() {
			return true
		}
	}
	return false
}
