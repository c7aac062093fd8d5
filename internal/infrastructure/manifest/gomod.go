package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/mod/modfile"

	"github.com/Tomas-vilte/MateChangeset/internal/domain/ports"
)

var _ ports.ManifestReader = (*GoModReader)(nil)

// GoModReader resuelve el nombre de un workspace Go leyendo la directiva
// module de su go.mod
type GoModReader struct{}

func NewGoModReader() *GoModReader {
	return &GoModReader{}
}

func (g *GoModReader) Name() string {
	return "go.mod"
}

func (g *GoModReader) CanHandle(root string) bool {
	info, err := os.Stat(filepath.Join(root, "go.mod"))
	return err == nil && !info.IsDir()
}

func (g *GoModReader) ReadName(root string) (string, error) {
	path := filepath.Join(root, "go.mod")

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("error al leer el go.mod: %w", err)
	}

	file, err := modfile.ParseLax(path, data, nil)
	if err != nil {
		return "", fmt.Errorf("error al parsear el go.mod: %w", err)
	}

	if file.Module == nil || file.Module.Mod.Path == "" {
		return "", fmt.Errorf("el go.mod no declara una directiva module")
	}

	return file.Module.Mod.Path, nil
}
