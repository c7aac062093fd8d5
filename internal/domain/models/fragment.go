package models

// VersionBump es el nivel de bump semver derivado de (categoría, breaking)
type VersionBump string

const (
	BumpMajor VersionBump = "major"
	BumpMinor VersionBump = "minor"
	BumpPatch VersionBump = "patch"
)

// bumpTable es pura data: la tabla categoría → bump sin breaking. Con
// breaking=true el resultado es siempre major, sin importar la categoría.
var bumpTable = map[ChangeCategory]VersionBump{
	CategoryFeature:     BumpMinor,
	CategoryFix:         BumpPatch,
	CategoryRefactor:    BumpPatch,
	CategoryPerformance: BumpPatch,
	CategoryStyle:       BumpPatch,
	CategoryDocs:        BumpPatch,
	CategoryTest:        BumpPatch,
	CategoryChore:       BumpPatch,
	CategoryCI:          BumpPatch,
	CategoryBuild:       BumpPatch,
	CategoryRevert:      BumpPatch,
}

// ResolveBump deriva el bump de forma determinística. Nunca lo elige el
// usuario directamente.
func ResolveBump(category ChangeCategory, breaking bool) VersionBump {
	if breaking {
		return BumpMajor
	}
	if bump, ok := bumpTable[category]; ok {
		return bump
	}
	return BumpPatch
}

// ParseBump valida un string como nivel de bump
func ParseBump(s string) (VersionBump, bool) {
	switch VersionBump(s) {
	case BumpMajor, BumpMinor, BumpPatch:
		return VersionBump(s), true
	}
	return "", false
}

// ReleaseFragment es el changeset pendiente de un workspace afectado.
// El body nunca puede estar vacío: un workspace sin bullets es un error,
// no un fragmento vacío.
type ReleaseFragment struct {
	WorkspaceName string
	Bump          VersionBump
	Body          []string
}
