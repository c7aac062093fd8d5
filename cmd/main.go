package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/Tomas-vilte/MateChangeset/internal/cli/command/changeset"
	"github.com/Tomas-vilte/MateChangeset/internal/cli/command/classify"
	"github.com/Tomas-vilte/MateChangeset/internal/cli/command/completion"
	configcmd "github.com/Tomas-vilte/MateChangeset/internal/cli/command/config"
	"github.com/Tomas-vilte/MateChangeset/internal/cli/command/handler"
	"github.com/Tomas-vilte/MateChangeset/internal/cli/command/suggest"
	"github.com/Tomas-vilte/MateChangeset/internal/cli/command/update"
	"github.com/Tomas-vilte/MateChangeset/internal/cli/registry"
	cfg "github.com/Tomas-vilte/MateChangeset/internal/config"
	"github.com/Tomas-vilte/MateChangeset/internal/domain/ports"
	"github.com/Tomas-vilte/MateChangeset/internal/i18n"
	"github.com/Tomas-vilte/MateChangeset/internal/infrastructure/di"
	"github.com/Tomas-vilte/MateChangeset/internal/infrastructure/git"
	"github.com/Tomas-vilte/MateChangeset/internal/infrastructure/gogit"
	updatesvc "github.com/Tomas-vilte/MateChangeset/internal/infrastructure/update"
	"github.com/Tomas-vilte/MateChangeset/internal/logger"
	"github.com/Tomas-vilte/MateChangeset/internal/ui"
	"github.com/Tomas-vilte/MateChangeset/internal/version"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"
)

func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Error iniciando la cli: %v", err)
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func initializeApp() (*cli.Command, error) {
	_ = godotenv.Load()

	logger.Initialize(os.Getenv("MATECHANGESET_DEBUG") != "", false)

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("no se pudo obtener el directorio del usuario: %w", err)
	}

	cfgApp, err := cfg.LoadConfig(homeDir)
	if err != nil {
		return nil, err
	}

	translations, err := i18n.NewTranslations(cfgApp.Language, "")
	if err != nil {
		return nil, fmt.Errorf("error al cargar las traducciones: %w", err)
	}

	container := di.NewContainer(cfgApp, translations)

	if err := container.RegisterCollector("git", func() ports.ChangeCollector {
		return git.NewCollector()
	}); err != nil {
		return nil, err
	}

	if err := container.RegisterCollector("gogit", func() ports.ChangeCollector {
		return gogit.NewCollector(".")
	}); err != nil {
		return nil, err
	}

	changeCollector, err := container.GetChangeCollector()
	if err != nil {
		return nil, err
	}

	pipeline, err := container.GetPipeline()
	if err != nil {
		return nil, err
	}

	reportHandler := handler.NewReportHandler(translations)

	commands, err := registerCommands(container, cfgApp, translations, changeCollector, pipeline, reportHandler)
	if err != nil {
		return nil, err
	}

	go notifyIfOutdated(homeDir)

	return &cli.Command{
		Name:                  "matechangeset",
		Usage:                 translations.GetMessage("app_usage", 0, nil),
		Version:               version.Version,
		Description:           translations.GetMessage("app_description", 0, nil),
		Commands:              commands,
		EnableShellCompletion: true,
	}, nil
}

func registerCommands(
	container *di.Container,
	cfgApp *cfg.Config,
	translations *i18n.Translations,
	changeCollector ports.ChangeCollector,
	pipeline ports.PipelineService,
	reportHandler ports.ReportHandler,
) ([]*cli.Command, error) {
	registerCommand := registry.NewRegistry(cfgApp, translations)

	factories := map[string]registry.CommandFactory{
		"suggest":   suggest.NewSuggestCommandFactory(changeCollector, pipeline, reportHandler),
		"changeset": changeset.NewChangesetCommandFactory(changeCollector, pipeline, reportHandler),
		"classify":  classify.NewClassifyCommandFactory(changeCollector, container.GetClassifier()),
		"config":    configcmd.NewConfigCommandFactory(container.GetCollectorRegistry()),
		"update":    update.NewUpdateCommandFactory(version.Version),
	}

	for name, factory := range factories {
		if err := registerCommand.Register(name, factory); err != nil {
			return nil, fmt.Errorf("error al registrar el comando '%s': %w", name, err)
		}
	}

	commands := registerCommand.CreateCommands()
	commands = append(commands, completion.NewCompletionCommand(translations))

	helpCommand := &cli.Command{
		Name:    "help",
		Aliases: []string{"h"},
		Usage:   translations.GetMessage("help_command_usage", 0, nil),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return cli.ShowAppHelp(cmd)
		},
	}
	commands = append(commands, helpCommand)

	return commands, nil
}

// notifyIfOutdated avisa en background si hay una release más nueva. Nunca
// frena ni ensucia la corrida: ante cualquier error se calla.
func notifyIfOutdated(homeDir string) {
	checker := updatesvc.NewService(version.Version, filepath.Join(homeDir, ".matechangeset"))
	latest, err := checker.CheckLatest(context.Background())
	if err != nil || latest == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "\n%s %s\n", ui.MateEmoji, ui.Dim.Sprintf("matechangeset %s disponible (tenés %s)", latest.Version, version.Version))
}
