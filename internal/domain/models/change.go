package models

// ChangeStatus indica el estado de un archivo en el área de staging
type ChangeStatus string

const (
	StatusAdded    ChangeStatus = "added"
	StatusModified ChangeStatus = "modified"
	StatusDeleted  ChangeStatus = "deleted"
	StatusRenamed  ChangeStatus = "renamed"
)

type (
	// StagedChange representa un archivo staged. Se crea una sola vez por
	// invocación y los componentes posteriores lo consumen en modo lectura.
	StagedChange struct {
		Path     string
		Status   ChangeStatus
		DiffHunk string
	}

	// CollectedChanges agrupa lo que el collector obtiene del repositorio:
	// los archivos staged en orden y el diff unificado del índice.
	CollectedChanges struct {
		Changes []StagedChange
		Diff    string
	}
)

// IsDeleted indica si el archivo dejó de existir en el índice
func (c StagedChange) IsDeleted() bool {
	return c.Status == StatusDeleted
}
