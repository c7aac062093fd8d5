package classify

import (
	"context"
	"fmt"

	"github.com/Tomas-vilte/MateChangeset/internal/config"
	"github.com/Tomas-vilte/MateChangeset/internal/domain/ports"
	"github.com/Tomas-vilte/MateChangeset/internal/i18n"
	"github.com/Tomas-vilte/MateChangeset/internal/ui"
	"github.com/urfave/cli/v3"
)

type ClassifyCommandFactory struct {
	collector  ports.ChangeCollector
	classifier ports.SpaceClassifier
}

func NewClassifyCommandFactory(collector ports.ChangeCollector, classifier ports.SpaceClassifier) *ClassifyCommandFactory {
	return &ClassifyCommandFactory{
		collector:  collector,
		classifier: classifier,
	}
}

func (f *ClassifyCommandFactory) CreateCommand(t *i18n.Translations, _ *config.Config) *cli.Command {
	return &cli.Command{
		Name:        "classify",
		Aliases:     []string{"c"},
		Usage:       t.GetMessage("classify_command_usage", 0, nil),
		Description: t.GetMessage("classify_command_description", 0, nil),
		Action:      f.createAction(t),
	}
}

func (f *ClassifyCommandFactory) createAction(t *i18n.Translations) cli.ActionFunc {
	return func(ctx context.Context, command *cli.Command) error {
		if !f.collector.HasStagedChanges(ctx) {
			fmt.Println(t.GetMessage("no_staged_changes", 0, nil))
			return nil
		}

		repoRoot, err := f.collector.RepoRoot(ctx)
		if err != nil {
			return err
		}

		collected, err := f.collector.Collect(ctx)
		if err != nil {
			return err
		}

		classification, err := f.classifier.Classify(ctx, repoRoot, collected.Changes)
		if err != nil {
			return err
		}

		fmt.Printf("\n%s %s\n", ui.PackageEmoji, t.GetMessage("classify_title", 0, nil))
		for _, workspace := range classification.Workspaces {
			fmt.Printf("   %s (%s) [%s]\n", ui.Accent.Sprint(workspace.DeclaredName), workspace.RootPath, workspace.Kind)
			for _, file := range workspace.ChangedFiles {
				fmt.Printf("      - %s\n", file.Path)
			}
		}

		for _, failure := range classification.Failed {
			fmt.Printf("   %s %s\n", ui.WarningEmoji, t.GetMessage("workspace_error_line", 0, map[string]interface{}{
				"Root":  failure.RootPath,
				"Error": failure.Err.Error(),
			}))
		}

		if len(classification.Unmanaged) > 0 {
			fmt.Printf("\n%s %s\n", ui.InfoEmoji, t.GetMessage("unmanaged_paths", 0, nil))
			for _, path := range classification.Unmanaged {
				fmt.Printf("   - %s\n", path)
			}
		}

		return nil
	}
}
