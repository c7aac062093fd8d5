package ports

// ManifestReader resuelve el nombre declarado de un workspace leyendo su
// manifiesto. El nombre nunca se infiere del nombre del directorio.
type ManifestReader interface {
	// Name identifica al tipo de manifiesto ("package.json", "go.mod")
	Name() string
	// CanHandle indica si el workspace tiene un manifiesto de este tipo
	CanHandle(root string) bool
	// ReadName extrae el nombre declarado del manifiesto
	ReadName(root string) (string, error)
}

// ManifestResolver elige el reader que aplica a la raíz de un workspace y
// resuelve su nombre declarado
type ManifestResolver interface {
	ResolveName(root string) (string, error)
}
