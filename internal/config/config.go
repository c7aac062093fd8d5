package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Tomas-vilte/MateChangeset/internal/domain/models"
)

type (
	Config struct {
		Language     string `json:"language"`
		UseEmoji     bool   `json:"use_emoji"`
		MaxLength    int    `json:"max_length"`
		PathFile     string `json:"path_file"`
		ChangesetDir string `json:"changeset_dir"`

		// Collector es el proveedor de colección activo: "git" (subproceso)
		// o "gogit" (librería)
		Collector string `json:"collector"`

		// ExtraRules permite sumar reglas de prefijo a la tabla fija.
		// Nunca reemplazan a las reglas por defecto.
		ExtraRules []RuleConfig `json:"extra_rules,omitempty"`
	}

	RuleConfig struct {
		Prefix string `json:"prefix"`
		Kind   string `json:"kind"`
		Fixed  bool   `json:"fixed,omitempty"`
	}
)

const (
	defaultLang         = "en"
	defaultUseEmoji     = true
	defaultMaxLength    = 72
	defaultChangesetDir = ".changeset"
	defaultCollector    = "git"
)

func LoadConfig(path string) (*Config, error) {
	var configPath string

	if filepath.Ext(path) == ".json" {
		configPath = path
	} else {
		configDir := filepath.Join(path, ".matechangeset")
		configPath = filepath.Join(configDir, "config.json")

		if _, err := os.Stat(configDir); os.IsNotExist(err) {
			if err := os.MkdirAll(configDir, 0755); err != nil {
				return nil, fmt.Errorf("error al crear el directorio de configuración: %w", err)
			}
		}
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig(configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error al leer el archivo de configuración: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("error al decodificar el archivo JSON: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("la configuración cargada no es válida: %w", err)
	}

	return &config, nil
}

func createDefaultConfig(path string) (*Config, error) {
	config := &Config{
		Language:     defaultLang,
		UseEmoji:     defaultUseEmoji,
		MaxLength:    defaultMaxLength,
		PathFile:     path,
		ChangesetDir: defaultChangesetDir,
		Collector:    defaultCollector,
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("error al crear el directorio de configuración: %w", err)
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("error al codificar la configuración por defecto: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return nil, fmt.Errorf("error al guardar la configuración por defecto: %w", err)
	}

	return config, nil
}

func SaveConfig(config *Config) error {
	if err := validateConfig(config); err != nil {
		return fmt.Errorf("la configuración a guardar no es válida: %w", err)
	}

	if config.PathFile == "" {
		return errors.New("la ruta del archivo de configuración no está definida")
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("error al codificar la configuración: %w", err)
	}

	if err := os.WriteFile(config.PathFile, data, 0644); err != nil {
		return fmt.Errorf("error al guardar la configuración: %w", err)
	}

	return nil
}

func validateConfig(config *Config) error {
	if config.MaxLength <= 0 {
		return errors.New("MaxLength debe ser mayor que 0")
	}
	if config.Language == "" {
		return errors.New("Language no puede estar vacío")
	}
	if config.ChangesetDir == "" {
		config.ChangesetDir = defaultChangesetDir
	}
	if config.Collector == "" {
		config.Collector = defaultCollector
	}
	for _, rule := range config.ExtraRules {
		if rule.Prefix == "" {
			return errors.New("una regla extra tiene el prefijo vacío")
		}
	}
	return nil
}

// PrefixRules arma la tabla efectiva: las reglas fijas más las extras de
// la configuración
func (c *Config) PrefixRules() []models.PrefixRule {
	rules := make([]models.PrefixRule, 0, len(models.DefaultPrefixRules)+len(c.ExtraRules))
	rules = append(rules, models.DefaultPrefixRules...)
	for _, r := range c.ExtraRules {
		rules = append(rules, models.PrefixRule{
			Prefix: r.Prefix,
			Kind:   models.WorkspaceKind(r.Kind),
			Fixed:  r.Fixed,
		})
	}
	return rules
}
