package collector

import (
	"fmt"
	"sort"

	"github.com/Tomas-vilte/MateChangeset/internal/domain/ports"
)

// Factory crea una instancia del collector de un proveedor
type Factory func() ports.ChangeCollector

// Registry mantiene los proveedores de colección disponibles ("git",
// "gogit"). Mismo patrón que los registries de proveedores del resto de
// la aplicación.
type Registry struct {
	factories map[string]Factory
}

func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
	}
}

// Register registra un proveedor; falla si el nombre ya existe
func (r *Registry) Register(name string, factory Factory) error {
	if name == "" {
		return fmt.Errorf("el nombre del collector no puede estar vacío")
	}
	if factory == nil {
		return fmt.Errorf("la factory del collector '%s' es nil", name)
	}
	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("el collector '%s' ya está registrado", name)
	}

	r.factories[name] = factory
	return nil
}

// Create instancia el collector del proveedor pedido
func (r *Registry) Create(name string) (ports.ChangeCollector, error) {
	factory, exists := r.factories[name]
	if !exists {
		return nil, fmt.Errorf("collector '%s' no encontrado en el registro", name)
	}
	return factory(), nil
}

// Names retorna los proveedores registrados, ordenados
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
