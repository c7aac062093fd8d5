package update

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Tomas-vilte/MateChangeset/internal/config"
	"github.com/Tomas-vilte/MateChangeset/internal/i18n"
	"github.com/Tomas-vilte/MateChangeset/internal/infrastructure/update"
	"github.com/urfave/cli/v3"
)

type UpdateCommandFactory struct {
	currentVersion string
}

func NewUpdateCommandFactory(currentVersion string) *UpdateCommandFactory {
	return &UpdateCommandFactory{
		currentVersion: currentVersion,
	}
}

func (f *UpdateCommandFactory) CreateCommand(trans *i18n.Translations, _ *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "update",
		Usage: trans.GetMessage("update_command_usage", 0, nil),
		Action: func(ctx context.Context, command *cli.Command) error {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return err
			}

			checker := update.NewService(f.currentVersion, filepath.Join(homeDir, ".matechangeset"))
			latest, err := checker.CheckLatest(ctx)
			if err != nil {
				fmt.Println(trans.GetMessage("update_check_failed", 0, map[string]interface{}{"Error": err.Error()}))
				return nil
			}

			if latest == nil {
				fmt.Println(trans.GetMessage("update_not_available", 0, nil))
				return nil
			}

			fmt.Println(trans.GetMessage("update_available", 0, map[string]interface{}{
				"Version": latest.Version,
				"Current": f.currentVersion,
			}))
			if latest.URL != "" {
				fmt.Println(latest.URL)
			}
			return nil
		},
	}
}
