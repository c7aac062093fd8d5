package suggest

import (
	"context"
	"fmt"
	"strings"

	"github.com/Tomas-vilte/MateChangeset/internal/config"
	"github.com/Tomas-vilte/MateChangeset/internal/domain/ports"
	"github.com/Tomas-vilte/MateChangeset/internal/i18n"
	"github.com/Tomas-vilte/MateChangeset/internal/ui"
	"github.com/urfave/cli/v3"
)

type SuggestCommandFactory struct {
	collector     ports.ChangeCollector
	pipeline      ports.PipelineService
	reportHandler ports.ReportHandler
}

func NewSuggestCommandFactory(collector ports.ChangeCollector, pipeline ports.PipelineService, reportHandler ports.ReportHandler) *SuggestCommandFactory {
	return &SuggestCommandFactory{
		collector:     collector,
		pipeline:      pipeline,
		reportHandler: reportHandler,
	}
}

func (f *SuggestCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:        "suggest",
		Aliases:     []string{"s"},
		Usage:       t.GetMessage("suggest_command_usage", 0, nil),
		Description: t.GetMessage("suggest_command_description", 0, nil),
		Flags:       f.createFlags(cfg, t),
		Action:      f.createAction(cfg, t),
	}
}

func (f *SuggestCommandFactory) createFlags(cfg *config.Config, t *i18n.Translations) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "type",
			Aliases: []string{"t"},
			Usage:   t.GetMessage("type_flag_usage", 0, nil),
		},
		&cli.StringFlag{
			Name:    "scope",
			Aliases: []string{"s"},
			Usage:   t.GetMessage("scope_flag_usage", 0, nil),
		},
		&cli.StringFlag{
			Name:    "message",
			Aliases: []string{"m"},
			Usage:   t.GetMessage("message_flag_usage", 0, nil),
		},
		&cli.StringSliceFlag{
			Name:    "body",
			Aliases: []string{"b"},
			Usage:   t.GetMessage("body_flag_usage", 0, nil),
		},
		&cli.BoolFlag{
			Name:  "api-change",
			Usage: t.GetMessage("api_change_flag_usage", 0, nil),
		},
		&cli.StringFlag{
			Name:    "lang",
			Aliases: []string{"l"},
			Usage:   t.GetMessage("lang_flag_usage", 0, nil),
			Value:   cfg.Language,
		},
	}
}

func (f *SuggestCommandFactory) createAction(cfg *config.Config, t *i18n.Translations) cli.ActionFunc {
	return func(ctx context.Context, command *cli.Command) error {
		if lang := command.String("lang"); lang != cfg.Language {
			if err := t.SetLanguage(lang); err != nil {
				return err
			}
		}

		if !f.collector.HasStagedChanges(ctx) {
			fmt.Println(t.GetMessage("no_staged_changes", 0, nil))
			return nil
		}

		spin := ui.NewSmartSpinner(t.GetMessage("analyzing_changes", 0, nil))
		spin.Start()

		report, err := f.pipeline.Run(ctx, ports.RunOptions{
			ExplicitType:   command.String("type"),
			Scope:          command.String("scope"),
			Subject:        command.String("message"),
			CommitText:     buildCommitText(command.String("message"), command.StringSlice("body")),
			APIChanged:     command.Bool("api-change"),
			WriteFragments: false,
		})
		spin.Stop()
		if err != nil {
			return err
		}

		return f.reportHandler.HandleReport(report)
	}
}

// buildCommitText arma el mensaje completo a partir de los flags: el título
// en la primera línea y un bullet por cada --body
func buildCommitText(subject string, body []string) string {
	if len(body) == 0 {
		return subject
	}

	var b strings.Builder
	b.WriteString(subject)
	for _, line := range body {
		b.WriteString("\n- ")
		b.WriteString(strings.TrimSpace(line))
	}
	return b.String()
}
