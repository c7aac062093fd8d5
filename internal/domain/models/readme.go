package models

// ReadmeSection es una sección candidata a revisión manual en el README
// de un workspace
type ReadmeSection string

const (
	SectionFeatures             ReadmeSection = "Features"
	SectionUsage                ReadmeSection = "Usage"
	SectionConfiguration        ReadmeSection = "Configuration"
	SectionTroubleshooting      ReadmeSection = "Troubleshooting"
	SectionBreakingChanges      ReadmeSection = "BreakingChanges"
	SectionScripts              ReadmeSection = "Scripts"
	SectionEnvironmentVariables ReadmeSection = "EnvironmentVariables"
)

// ReadmeRecommendation es salida consultiva: qué secciones del README de un
// workspace conviene revisar, con una instrucción corta por sección. Nunca
// se edita el README. Un set vacío es válido y significa "nada para revisar";
// la ausencia total de la entidad significa que el workspace no tiene README.
type ReadmeRecommendation struct {
	WorkspaceName string
	Sections      map[ReadmeSection]string
}

// categorySections es la tabla categoría → secciones candidatas. Las
// categorías ausentes no generan recomendación salvo señales adicionales
// (README tocado, manifiesto/scripts tocados, rutas de configuración).
var categorySections = map[ChangeCategory][]ReadmeSection{
	CategoryFeature: {SectionFeatures, SectionUsage},
	CategoryFix:     {SectionTroubleshooting, SectionFeatures},
}

// breakingSections se suma siempre que el cambio sea breaking
var breakingSections = []ReadmeSection{
	SectionBreakingChanges,
	SectionConfiguration,
	SectionUsage,
}

// SectionsForCategory retorna las secciones base de la tabla para una
// categoría; puede ser vacío
func SectionsForCategory(category ChangeCategory) []ReadmeSection {
	return categorySections[category]
}

// SectionsForBreaking retorna las secciones que todo breaking change agrega
func SectionsForBreaking() []ReadmeSection {
	return breakingSections
}
