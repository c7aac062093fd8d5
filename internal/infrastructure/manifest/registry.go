package manifest

import (
	domainerrors "github.com/Tomas-vilte/MateChangeset/internal/domain/errors"
	"github.com/Tomas-vilte/MateChangeset/internal/domain/ports"
)

// ReaderRegistry prueba cada tipo de manifiesto soportado contra la raíz
// de un workspace y delega en el primero que aplica
type ReaderRegistry struct {
	readers []ports.ManifestReader
}

func NewReaderRegistry() *ReaderRegistry {
	return &ReaderRegistry{
		readers: []ports.ManifestReader{
			NewPackageJsonReader(),
			NewGoModReader(),
		},
	}
}

// RegisterReader agrega un reader personalizado
func (r *ReaderRegistry) RegisterReader(reader ports.ManifestReader) {
	r.readers = append(r.readers, reader)
}

// ResolveName lee el nombre declarado del workspace. Si ningún reader
// reconoce un manifiesto en la raíz, o la lectura falla, retorna un
// ManifestReadError que aborta la salida de ese workspace solamente.
func (r *ReaderRegistry) ResolveName(root string) (string, error) {
	for _, reader := range r.readers {
		if !reader.CanHandle(root) {
			continue
		}

		name, err := reader.ReadName(root)
		if err != nil {
			return "", domainerrors.NewManifestReadError(root, err)
		}
		return name, nil
	}

	return "", domainerrors.NewManifestReadError(root, nil)
}
