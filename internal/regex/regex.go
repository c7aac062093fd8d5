package regex

import "regexp"

var (
	// Commit patterns
	ConventionalCommit = regexp.MustCompile(`^(feat|fix|docs|style|refactor|perf|test|build|ci|chore|revert)(\(([^)]+)\))?(!)?:\s*(.+)`)
	BreakingChange     = regexp.MustCompile(`BREAKING[ -]CHANGE`)
	SemVer             = regexp.MustCompile(`v?(\d+)\.(\d+)\.(\d+)`)
	BulletLine         = regexp.MustCompile(`^\s*[-*+]\s+(.+)`)

	// Heuristic keywords for category inference
	FixKeywords      = regexp.MustCompile(`(?i)(fix|bug|resolve|close)`)
	FeatKeywords     = regexp.MustCompile(`(?i)(feat|feature|add|implement)`)
	RefactorKeywords = regexp.MustCompile(`(?i)(refactor|restructure|reorganize)`)

	// Diff signals
	NewExportedSymbol = regexp.MustCompile(`(?m)^\+\s*(export\s+(default\s+)?(function|class|const|interface|type|enum)\b|func\s+[A-Z]\w*|type\s+[A-Z]\w*\s)`)

	// Path signals
	TestPath     = regexp.MustCompile(`(_test\.|\.test\.|\.spec\.|(^|/)__tests__/|(^|/)tests?/)`)
	DocPath      = regexp.MustCompile(`(\.(md|mdx|rst)$|(^|/)docs?/|^documentation/)`)
	CIPath       = regexp.MustCompile(`(^\.github/workflows/|^\.gitlab-ci|^\.circleci/|(^|/)Jenkinsfile$)`)
	BuildPath    = regexp.MustCompile(`((^|/)(Dockerfile|Makefile)$|\.(mk|dockerfile)$|(^|/)(package-lock\.json|pnpm-lock\.yaml|yarn\.lock|go\.sum)$)`)
	ConfigPath   = regexp.MustCompile(`((^|/)config/|(^|/)\.env(\.|$)|\.config\.(js|ts|cjs|mjs|json)$)`)
	ReadmePath   = regexp.MustCompile(`(?i)(^|/)readme\.md$`)
	ManifestPath = regexp.MustCompile(`((^|/)package\.json$|(^|/)go\.mod$)`)
)
