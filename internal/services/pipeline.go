package services

import (
	"context"
	"sort"
	"strings"

	domainerrors "github.com/Tomas-vilte/MateChangeset/internal/domain/errors"
	"github.com/Tomas-vilte/MateChangeset/internal/domain/models"
	"github.com/Tomas-vilte/MateChangeset/internal/domain/ports"
	"github.com/Tomas-vilte/MateChangeset/internal/logger"
	"github.com/Tomas-vilte/MateChangeset/internal/regex"
)

var _ ports.PipelineService = (*Pipeline)(nil)

// Pipeline corre la pasada única Collector → Classifier → Categorizer →
// Emitter. Los errores acotados a un workspace nunca abortan a los demás;
// solo un error de colección es fatal para toda la corrida.
type Pipeline struct {
	collector   ports.ChangeCollector
	classifier  ports.SpaceClassifier
	categorizer ports.ChangeCategorizer
	emitter     ports.ReleaseNoteEmitter
	writer      ports.FragmentWriter
}

func NewPipeline(
	collector ports.ChangeCollector,
	classifier ports.SpaceClassifier,
	categorizer ports.ChangeCategorizer,
	emitter ports.ReleaseNoteEmitter,
	writer ports.FragmentWriter,
) *Pipeline {
	return &Pipeline{
		collector:   collector,
		classifier:  classifier,
		categorizer: categorizer,
		emitter:     emitter,
		writer:      writer,
	}
}

func (p *Pipeline) Run(ctx context.Context, opts ports.RunOptions) (*models.Report, error) {
	repoRoot, err := p.collector.RepoRoot(ctx)
	if err != nil {
		return nil, err
	}

	collected, err := p.collector.Collect(ctx)
	if err != nil {
		return nil, err
	}
	logger.Debug(ctx, "cambios staged recolectados", "count", len(collected.Changes))

	classification, err := p.classifier.Classify(ctx, repoRoot, collected.Changes)
	if err != nil {
		return nil, err
	}

	resolution, err := p.categorizer.Categorize(ports.CategorizeInput{
		Changes:      collected.Changes,
		Diff:         collected.Diff,
		ExplicitType: opts.ExplicitType,
		CommitText:   opts.CommitText,
	})
	if err != nil {
		return nil, err
	}

	report := &models.Report{
		Category:  resolution.Category,
		Breaking:  resolution.Breaking,
		Unmanaged: classification.Unmanaged,
	}

	if resolution.Ambiguous {
		report.Warnings = append(report.Warnings,
			domainerrors.NewCategoryAmbiguousWarning(string(models.CategoryChore)).Error())
	}

	subject := opts.Subject
	if subject == "" {
		subject = subjectFromCommitText(opts.CommitText)
	}

	bullets := extractBullets(opts.CommitText)
	if len(bullets) == 0 && subject != "" {
		// Sin body explícito, el título es el único bullet disponible
		bullets = []string{subject}
	}

	report.Commit = models.CommitMessage{
		Category: resolution.Category,
		Scope:    opts.Scope,
		Subject:  subject,
		Breaking: resolution.Breaking,
		Body:     bullets,
	}

	input := ports.EmitInput{
		Category:   resolution.Category,
		Breaking:   resolution.Breaking,
		Bullets:    bullets,
		APIChanged: opts.APIChanged,
	}

	for _, workspace := range classification.Workspaces {
		report.Results = append(report.Results, p.emitWorkspace(ctx, repoRoot, workspace, input, opts.WriteFragments))
	}

	for _, failure := range classification.Failed {
		report.Results = append(report.Results, models.WorkspaceResult{
			RootPath: failure.RootPath,
			Err:      failure.Err,
		})
		report.Warnings = append(report.Warnings, failure.Err.Error())
	}

	// El orden del reporte es determinístico sin importar en qué orden
	// terminaron las lecturas
	sort.Slice(report.Results, func(i, j int) bool {
		return report.Results[i].RootPath < report.Results[j].RootPath
	})

	return report, nil
}

func (p *Pipeline) emitWorkspace(ctx context.Context, repoRoot string, workspace models.Workspace, input ports.EmitInput, write bool) models.WorkspaceResult {
	result := models.WorkspaceResult{
		RootPath: workspace.RootPath,
		Name:     workspace.DeclaredName,
	}

	fragment, err := p.emitter.EmitFragment(workspace, input)
	if err != nil {
		result.Err = err
		return result
	}
	result.Fragment = fragment
	result.Readme = p.emitter.RecommendReadme(workspace, input)

	if write {
		path, err := p.writer.Write(repoRoot, input.Category, fragment)
		if err != nil {
			// El fragmento de este workspace falló; los ya escritos de
			// otros workspaces no se revierten
			logger.Error(ctx, "no se pudo escribir el fragmento", err, "workspace", workspace.DeclaredName)
			result.Fragment = nil
			result.Readme = nil
			result.Err = err
			return result
		}
		result.FragmentPath = path
	}

	return result
}

// subjectFromCommitText toma la primera línea del mensaje, sin el prefijo
// convencional si ya lo trae
func subjectFromCommitText(text string) string {
	line := text
	if idx := strings.Index(text, "\n"); idx != -1 {
		line = text[:idx]
	}
	if match := regex.ConventionalCommit.FindStringSubmatch(line); match != nil {
		return strings.TrimSpace(match[5])
	}
	return strings.TrimSpace(line)
}

// extractBullets convierte el body del mensaje (las líneas después de la
// primera) en bullets: una por línea no vacía, sin el marcador de lista
// si lo trae. No se inventa contenido: lo que no está en el mensaje no
// aparece en el fragmento.
func extractBullets(text string) []string {
	lines := strings.Split(text, "\n")
	if len(lines) < 2 {
		return nil
	}

	bullets := make([]string, 0)
	for _, line := range lines[1:] {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if match := regex.BulletLine.FindStringSubmatch(trimmed); match != nil {
			bullets = append(bullets, match[1])
			continue
		}
		bullets = append(bullets, trimmed)
	}
	return bullets
}
