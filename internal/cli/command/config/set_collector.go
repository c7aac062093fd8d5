package config

import (
	"context"
	"fmt"
	"slices"

	"github.com/Tomas-vilte/MateChangeset/internal/config"
	"github.com/Tomas-vilte/MateChangeset/internal/i18n"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newSetCollectorCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "set-collector",
		Usage: t.GetMessage("config_set_collector_usage", 0, nil),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "collector",
				Aliases:  []string{"c"},
				Usage:    t.GetMessage("config_set_collector_flag_usage", 0, nil),
				Required: true,
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			name := command.String("collector")
			if !slices.Contains(c.collectors.Names(), name) {
				msg := t.GetMessage("invalid_collector", 0, map[string]interface{}{"Collector": name})
				return fmt.Errorf("%s", msg)
			}

			cfg.Collector = name
			if err := config.SaveConfig(cfg); err != nil {
				return err
			}

			fmt.Printf("%s\n", t.GetMessage("collector_set", 0, map[string]interface{}{"Collector": name}))
			return nil
		},
	}
}
