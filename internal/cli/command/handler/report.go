package handler

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/Tomas-vilte/MateChangeset/internal/domain/models"
	"github.com/Tomas-vilte/MateChangeset/internal/domain/ports"
	"github.com/Tomas-vilte/MateChangeset/internal/i18n"
	"github.com/Tomas-vilte/MateChangeset/internal/ui"
)

// ReportHandler imprime el reporte de una corrida: mensaje de commit,
// resultados por workspace, recomendaciones de README, paths sin dueño
// y warnings.
type ReportHandler struct {
	t   *i18n.Translations
	out io.Writer
}

var _ ports.ReportHandler = (*ReportHandler)(nil)

func NewReportHandler(t *i18n.Translations) *ReportHandler {
	return &ReportHandler{t: t, out: os.Stdout}
}

// NewReportHandlerWithWriter permite capturar la salida en los tests
func NewReportHandlerWithWriter(t *i18n.Translations, out io.Writer) *ReportHandler {
	return &ReportHandler{t: t, out: out}
}

func (h *ReportHandler) HandleReport(report *models.Report) error {
	h.printCommit(report)
	h.printWorkspaces(report)
	h.printUnmanaged(report)
	h.printWarnings(report)
	return nil
}

func (h *ReportHandler) printCommit(report *models.Report) {
	fmt.Fprintf(h.out, "\n%s %s\n", ui.MateEmoji, ui.Info.Sprint(h.t.GetMessage("commit_message_title", 0, nil)))
	fmt.Fprintln(h.out, "━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Fprintln(h.out, report.Commit.Format())
	fmt.Fprintln(h.out, "━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Fprintf(h.out, "%s\n", h.t.GetMessage("category_resolved", 0, map[string]interface{}{
		"Category": string(report.Category),
		"Breaking": report.Breaking,
	}))
}

func (h *ReportHandler) printWorkspaces(report *models.Report) {
	if len(report.Results) == 0 {
		return
	}

	fmt.Fprintf(h.out, "\n%s %s\n", ui.PackageEmoji, h.t.GetMessage("affected_workspaces", 0, nil))
	for _, result := range report.Results {
		if result.Failed() {
			fmt.Fprintf(h.out, "   %s %s\n", ui.WarningEmoji, h.t.GetMessage("workspace_error_line", 0, map[string]interface{}{
				"Root":  result.RootPath,
				"Error": result.Err.Error(),
			}))
			continue
		}

		fmt.Fprintf(h.out, "   %s %s\n", ui.SuccessEmoji, h.t.GetMessage("workspace_line", 0, map[string]interface{}{
			"Name": result.Name,
			"Root": result.RootPath,
			"Bump": string(result.Fragment.Bump),
		}))
		if result.FragmentPath != "" {
			fmt.Fprintf(h.out, "      %s\n", h.t.GetMessage("fragment_written", 0, map[string]interface{}{
				"Path": result.FragmentPath,
			}))
		}
		h.printReadme(result)
	}
}

func (h *ReportHandler) printReadme(result models.WorkspaceResult) {
	if result.Readme == nil {
		fmt.Fprintf(h.out, "      %s\n", ui.Dim.Sprint(h.t.GetMessage("readme_missing", 0, nil)))
		return
	}
	if len(result.Readme.Sections) == 0 {
		fmt.Fprintf(h.out, "      %s\n", ui.Dim.Sprint(h.t.GetMessage("no_readme_sections", 0, nil)))
		return
	}

	fmt.Fprintf(h.out, "      %s\n", h.t.GetMessage("readme_recommendation_title", 0, nil))

	// Orden estable para que dos corridas impriman lo mismo
	sections := make([]string, 0, len(result.Readme.Sections))
	for section := range result.Readme.Sections {
		sections = append(sections, string(section))
	}
	sort.Strings(sections)

	for _, section := range sections {
		instruction := result.Readme.Sections[models.ReadmeSection(section)]
		fmt.Fprintf(h.out, "      - %s: %s\n", section, instruction)
	}
}

func (h *ReportHandler) printUnmanaged(report *models.Report) {
	if len(report.Unmanaged) == 0 {
		return
	}

	fmt.Fprintf(h.out, "\n%s %s\n", ui.InfoEmoji, h.t.GetMessage("unmanaged_paths", 0, nil))
	for _, path := range report.Unmanaged {
		fmt.Fprintf(h.out, "   - %s\n", path)
	}
}

func (h *ReportHandler) printWarnings(report *models.Report) {
	if len(report.Warnings) == 0 {
		return
	}

	fmt.Fprintf(h.out, "\n%s %s\n", ui.WarningEmoji, ui.Warning.Sprint(h.t.GetMessage("warnings_title", 0, nil)))
	for _, warning := range report.Warnings {
		fmt.Fprintf(h.out, "   - %s\n", warning)
	}
}
