package models

// ChangeCategory es el tipo de commit convencional resuelto para la invocación
type ChangeCategory string

const (
	CategoryFeature     ChangeCategory = "feat"
	CategoryFix         ChangeCategory = "fix"
	CategoryRefactor    ChangeCategory = "refactor"
	CategoryPerformance ChangeCategory = "perf"
	CategoryStyle       ChangeCategory = "style"
	CategoryDocs        ChangeCategory = "docs"
	CategoryTest        ChangeCategory = "test"
	CategoryChore       ChangeCategory = "chore"
	CategoryCI          ChangeCategory = "ci"
	CategoryBuild       ChangeCategory = "build"
	CategoryRevert      ChangeCategory = "revert"
)

// Categories lista todas las categorías soportadas, en el orden de la tabla
// de bumps. Útil para validar input del usuario y para tests exhaustivos.
var Categories = []ChangeCategory{
	CategoryFeature,
	CategoryFix,
	CategoryRefactor,
	CategoryPerformance,
	CategoryStyle,
	CategoryDocs,
	CategoryTest,
	CategoryChore,
	CategoryCI,
	CategoryBuild,
	CategoryRevert,
}

var categoryAliases = map[string]ChangeCategory{
	"feat":        CategoryFeature,
	"feature":     CategoryFeature,
	"fix":         CategoryFix,
	"refactor":    CategoryRefactor,
	"perf":        CategoryPerformance,
	"performance": CategoryPerformance,
	"style":       CategoryStyle,
	"docs":        CategoryDocs,
	"doc":         CategoryDocs,
	"test":        CategoryTest,
	"tests":       CategoryTest,
	"chore":       CategoryChore,
	"ci":          CategoryCI,
	"build":       CategoryBuild,
	"revert":      CategoryRevert,
}

// ParseCategory resuelve un keyword del usuario a una categoría.
// Acepta alias comunes como "feature" o "performance".
func ParseCategory(keyword string) (ChangeCategory, bool) {
	cat, ok := categoryAliases[keyword]
	return cat, ok
}

// CategoryResolution es el resultado del categorizador: una categoría, el
// flag de breaking change y si la inferencia fue ambigua (default chore).
type CategoryResolution struct {
	Category  ChangeCategory
	Breaking  bool
	Ambiguous bool
}
