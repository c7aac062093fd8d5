package config

import (
	"github.com/Tomas-vilte/MateChangeset/internal/config"
	"github.com/Tomas-vilte/MateChangeset/internal/i18n"
	"github.com/Tomas-vilte/MateChangeset/internal/infrastructure/collector"
	"github.com/urfave/cli/v3"
)

// ConfigCommandFactory agrupa los subcomandos de configuración
type ConfigCommandFactory struct {
	collectors *collector.Registry
}

func NewConfigCommandFactory(collectors *collector.Registry) *ConfigCommandFactory {
	return &ConfigCommandFactory{collectors: collectors}
}

func (c *ConfigCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: t.GetMessage("config_command_usage", 0, nil),
		Commands: []*cli.Command{
			c.newInitCommand(t, cfg),
			c.newShowCommand(t, cfg),
			c.newSetLangCommand(t, cfg),
			c.newSetCollectorCommand(t, cfg),
		},
	}
}
