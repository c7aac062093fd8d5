package errors

import "fmt"

// CollectionError indica que no se pudieron obtener los cambios staged del
// repositorio. Es fatal para toda la corrida: no hay resultado parcial.
type CollectionError struct {
	Reason string
	Err    error
}

func (e *CollectionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("collection error: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("collection error: %s", e.Reason)
}

func (e *CollectionError) Unwrap() error {
	return e.Err
}

// NewCollectionError crea un nuevo error de colección
func NewCollectionError(reason string, err error) *CollectionError {
	return &CollectionError{Reason: reason, Err: err}
}

// ManifestReadError indica que el manifiesto de un workspace no se pudo
// leer o parsear. Aborta la salida de ese workspace solamente; el resto
// del pipeline sigue.
type ManifestReadError struct {
	Root string
	Err  error
}

func (e *ManifestReadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("manifest error [%s]: %v", e.Root, e.Err)
	}
	return fmt.Sprintf("manifest error [%s]: manifiesto no encontrado", e.Root)
}

func (e *ManifestReadError) Unwrap() error {
	return e.Err
}

// NewManifestReadError crea un nuevo error de lectura de manifiesto
func NewManifestReadError(root string, err error) *ManifestReadError {
	return &ManifestReadError{Root: root, Err: err}
}

// FragmentWriteError indica que el fragmento de changeset de un workspace
// no se pudo escribir. No hay rollback de fragmentos ya escritos de otros
// workspaces.
type FragmentWriteError struct {
	Workspace string
	Path      string
	Err       error
}

func (e *FragmentWriteError) Error() string {
	return fmt.Sprintf("fragment error [%s]: no se pudo escribir %s: %v", e.Workspace, e.Path, e.Err)
}

func (e *FragmentWriteError) Unwrap() error {
	return e.Err
}

// NewFragmentWriteError crea un nuevo error de escritura de fragmento
func NewFragmentWriteError(workspace, path string, err error) *FragmentWriteError {
	return &FragmentWriteError{Workspace: workspace, Path: path, Err: err}
}

// EmptyFragmentError indica que un workspace afectado quedó sin bullets.
// Un fragmento con body vacío no es válido.
type EmptyFragmentError struct {
	Workspace string
}

func (e *EmptyFragmentError) Error() string {
	return fmt.Sprintf("fragment error [%s]: el body del fragmento no puede estar vacío", e.Workspace)
}

// NewEmptyFragmentError crea un nuevo error de fragmento vacío
func NewEmptyFragmentError(workspace string) *EmptyFragmentError {
	return &EmptyFragmentError{Workspace: workspace}
}

// CategoryAmbiguousWarning no es un error fatal: la inferencia no encontró
// señal y se usó la categoría por defecto (chore). Se reporta como warning.
type CategoryAmbiguousWarning struct {
	Fallback string
}

func (e *CategoryAmbiguousWarning) Error() string {
	return fmt.Sprintf("categoría ambigua: sin señal en el diff, se usa '%s' por defecto", e.Fallback)
}

// NewCategoryAmbiguousWarning crea un nuevo warning de categoría ambigua
func NewCategoryAmbiguousWarning(fallback string) *CategoryAmbiguousWarning {
	return &CategoryAmbiguousWarning{Fallback: fallback}
}
