package models

type (
	// WorkspaceResult es la salida por workspace del pipeline: o bien un
	// fragmento (con recomendación de README opcional), o bien un error
	// con nombre. Nunca ambos.
	WorkspaceResult struct {
		RootPath     string
		Name         string
		Fragment     *ReleaseFragment
		FragmentPath string
		Readme       *ReadmeRecommendation
		Err          error
	}

	// Report es el resultado completo de una invocación. Se arma en
	// memoria, pertenece exclusivamente a la invocación y se descarta al
	// final: no hay cache entre corridas.
	Report struct {
		Category  ChangeCategory
		Breaking  bool
		Commit    CommitMessage
		Results   []WorkspaceResult
		Unmanaged []string
		Warnings  []string
	}
)

// Failed indica si el resultado corresponde a un workspace con error
func (r WorkspaceResult) Failed() bool {
	return r.Err != nil
}
