package models

// WorkspaceKind identifica la regla de prefijo que reconoció al workspace
type WorkspaceKind string

const (
	KindPackage       WorkspaceKind = "package"
	KindApp           WorkspaceKind = "app"
	KindPortalApp     WorkspaceKind = "portal-app"
	KindBotApp        WorkspaceKind = "bot-app"
	KindDocumentation WorkspaceKind = "documentation"
)

type (
	// PrefixRule asocia un prefijo de ruta con un tipo de workspace.
	// Si Fixed es true el prefijo en sí es la raíz del workspace; si no,
	// la raíz es el prefijo más el siguiente segmento de la ruta.
	PrefixRule struct {
		Prefix string
		Kind   WorkspaceKind
		Fixed  bool
	}

	// Workspace es un directorio con su propio manifiesto, versionado de
	// forma independiente. Se construye por invocación y se descarta al
	// terminar: el nombre declarado nunca se cachea entre corridas.
	Workspace struct {
		RootPath     string
		DeclaredName string
		Kind         WorkspaceKind
		ChangedFiles []StagedChange
		HasReadme    bool
	}

	// Classification es la salida del clasificador: los workspaces
	// afectados (ordenados por raíz), las rutas que ninguna regla
	// reconoce y los workspaces cuyo manifiesto no se pudo leer.
	Classification struct {
		Workspaces []Workspace
		Unmanaged  []string
		Failed     []WorkspaceFailure
	}

	// WorkspaceFailure registra un workspace que quedó fuera del reporte
	// por un error acotado a ese workspace (ej: manifiesto ilegible)
	WorkspaceFailure struct {
		RootPath string
		Err      error
	}
)

// DefaultPrefixRules es la tabla fija de reglas. El orden no importa para
// la resolución (gana siempre el prefijo coincidente más largo), pero se
// mantiene de más específico a más genérico para que sea auditable.
var DefaultPrefixRules = []PrefixRule{
	{Prefix: "apps/portal/", Kind: KindPortalApp},
	{Prefix: "apps/bots/", Kind: KindBotApp},
	{Prefix: "apps/", Kind: KindApp},
	{Prefix: "packages/", Kind: KindPackage},
	{Prefix: "documentation/", Kind: KindDocumentation, Fixed: true},
}
