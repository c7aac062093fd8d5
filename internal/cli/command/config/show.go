package config

import (
	"context"
	"fmt"

	"github.com/Tomas-vilte/MateChangeset/internal/config"
	"github.com/Tomas-vilte/MateChangeset/internal/i18n"
	"github.com/Tomas-vilte/MateChangeset/internal/ui"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newShowCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: t.GetMessage("config_show_usage", 0, nil),
		Action: func(ctx context.Context, command *cli.Command) error {
			fmt.Printf("\n%s %s\n", ui.MateEmoji, ui.Info.Sprint(t.GetMessage("current_config", 0, nil)))
			fmt.Printf("   language:      %s\n", cfg.Language)
			fmt.Printf("   collector:     %s\n", cfg.Collector)
			fmt.Printf("   changeset_dir: %s\n", cfg.ChangesetDir)
			fmt.Printf("   max_length:    %d\n", cfg.MaxLength)
			fmt.Printf("   use_emoji:     %t\n", cfg.UseEmoji)
			fmt.Printf("   config_file:   %s\n", cfg.PathFile)

			if len(cfg.ExtraRules) > 0 {
				fmt.Println("   extra_rules:")
				for _, rule := range cfg.ExtraRules {
					fmt.Printf("      - %s → %s (fixed: %t)\n", rule.Prefix, rule.Kind, rule.Fixed)
				}
			}
			return nil
		},
	}
}
