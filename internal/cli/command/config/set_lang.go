package config

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/Tomas-vilte/MateChangeset/internal/config"
	"github.com/Tomas-vilte/MateChangeset/internal/i18n"
	"github.com/urfave/cli/v3"
)

// supportedLanguages son los idiomas con catálogo de mensajes propio
var supportedLanguages = []string{"en", "es"}

func (c *ConfigCommandFactory) newSetLangCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "set-lang",
		Usage: t.GetMessage("config_set_lang_usage", 0, nil),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "lang",
				Aliases:  []string{"l"},
				Usage:    t.GetMessage("config_set_lang_flag_usage", 0, nil),
				Required: true,
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			lang := strings.ToLower(strings.TrimSpace(command.String("lang")))
			if !slices.Contains(supportedLanguages, lang) {
				return fmt.Errorf("%s", t.GetMessage("unsupported_language", 0, nil))
			}

			cfg.Language = lang
			if err := config.SaveConfig(cfg); err != nil {
				return err
			}

			// La preferencia guardada es lo que importa; si el catálogo del
			// idioma no está cargado en esta instalación, la confirmación
			// sale en el idioma anterior
			_ = t.SetLanguage(lang)

			fmt.Printf("%s\n", t.GetMessage("language_set", 0, map[string]interface{}{"Lang": lang}))
			return nil
		},
	}
}
