package di

import (
	"fmt"

	"github.com/Tomas-vilte/MateChangeset/internal/config"
	"github.com/Tomas-vilte/MateChangeset/internal/domain/ports"
	"github.com/Tomas-vilte/MateChangeset/internal/i18n"
	"github.com/Tomas-vilte/MateChangeset/internal/infrastructure/changeset"
	"github.com/Tomas-vilte/MateChangeset/internal/infrastructure/collector"
	"github.com/Tomas-vilte/MateChangeset/internal/infrastructure/manifest"
	"github.com/Tomas-vilte/MateChangeset/internal/services"
)

// Container gestiona las dependencias de la aplicación
type Container struct {
	config       *config.Config
	translations *i18n.Translations

	// Registries
	collectorRegistry *collector.Registry
	manifestRegistry  *manifest.ReaderRegistry

	// Services (lazy initialized)
	changeCollector ports.ChangeCollector
	classifier      ports.SpaceClassifier
	pipeline        ports.PipelineService
}

// NewContainer crea un nuevo contenedor de dependencias
func NewContainer(cfg *config.Config, trans *i18n.Translations) *Container {
	return &Container{
		config:            cfg,
		translations:      trans,
		collectorRegistry: collector.NewRegistry(),
		manifestRegistry:  manifest.NewReaderRegistry(),
	}
}

// RegisterCollector registra un proveedor de colección
func (c *Container) RegisterCollector(name string, factory collector.Factory) error {
	return c.collectorRegistry.Register(name, factory)
}

// GetCollectorRegistry retorna el registro de collectors
func (c *Container) GetCollectorRegistry() *collector.Registry {
	return c.collectorRegistry
}

// GetManifestRegistry retorna el registro de readers de manifiestos
func (c *Container) GetManifestRegistry() *manifest.ReaderRegistry {
	return c.manifestRegistry
}

// SetChangeCollector fija el collector activo (lo usan los tests)
func (c *Container) SetChangeCollector(changeCollector ports.ChangeCollector) {
	c.changeCollector = changeCollector
}

// GetChangeCollector retorna el collector activo según la configuración
// (lazy initialization)
func (c *Container) GetChangeCollector() (ports.ChangeCollector, error) {
	if c.changeCollector != nil {
		return c.changeCollector, nil
	}

	created, err := c.collectorRegistry.Create(c.config.Collector)
	if err != nil {
		return nil, fmt.Errorf("no se pudo crear el collector '%s': %w", c.config.Collector, err)
	}

	c.changeCollector = created
	return created, nil
}

// GetClassifier arma el clasificador de workspaces (lazy initialization)
func (c *Container) GetClassifier() ports.SpaceClassifier {
	if c.classifier == nil {
		c.classifier = services.NewClassifierService(c.config.PrefixRules(), c.manifestRegistry)
	}
	return c.classifier
}

// GetPipeline arma el pipeline completo (lazy initialization)
func (c *Container) GetPipeline() (ports.PipelineService, error) {
	if c.pipeline != nil {
		return c.pipeline, nil
	}

	changeCollector, err := c.GetChangeCollector()
	if err != nil {
		return nil, err
	}

	classifier := c.GetClassifier()
	categorizer := services.NewCategorizerService()
	emitter := services.NewEmitterService(c.translations)
	writer := changeset.NewWriter(c.config.ChangesetDir)

	c.pipeline = services.NewPipeline(changeCollector, classifier, categorizer, emitter, writer)
	return c.pipeline, nil
}
