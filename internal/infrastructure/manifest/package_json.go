package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Tomas-vilte/MateChangeset/internal/domain/ports"
)

var _ ports.ManifestReader = (*PackageJsonReader)(nil)

// PackageJsonReader resuelve el nombre de un workspace Node leyendo el
// campo `name` de su package.json
type PackageJsonReader struct{}

func NewPackageJsonReader() *PackageJsonReader {
	return &PackageJsonReader{}
}

func (p *PackageJsonReader) Name() string {
	return "package.json"
}

func (p *PackageJsonReader) CanHandle(root string) bool {
	info, err := os.Stat(filepath.Join(root, "package.json"))
	return err == nil && !info.IsDir()
}

type packageJson struct {
	Name string `json:"name"`
}

func (p *PackageJsonReader) ReadName(root string) (string, error) {
	data, err := os.ReadFile(filepath.Join(root, "package.json"))
	if err != nil {
		return "", fmt.Errorf("error al leer el package.json: %w", err)
	}

	var pkg packageJson
	if err := json.Unmarshal(data, &pkg); err != nil {
		return "", fmt.Errorf("error al parsear el package.json: %w", err)
	}

	name := strings.TrimSpace(pkg.Name)
	if name == "" {
		return "", fmt.Errorf("el package.json no declara un campo name")
	}

	return name, nil
}
