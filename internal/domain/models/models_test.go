package models

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestResolveBump(t *testing.T) {
	t.Run("feature without breaking is minor, the rest patch", func(t *testing.T) {
		for _, category := range Categories {
			expected := BumpPatch
			if category == CategoryFeature {
				expected = BumpMinor
			}
			assert.Equal(t, expected, ResolveBump(category, false), "categoría %s", category)
		}
	})

	t.Run("breaking always forces major", func(t *testing.T) {
		for _, category := range Categories {
			assert.Equal(t, BumpMajor, ResolveBump(category, true), "categoría %s", category)
		}
	})

	t.Run("pure function: repeated calls agree", func(t *testing.T) {
		for _, category := range Categories {
			for _, breaking := range []bool{false, true} {
				first := ResolveBump(category, breaking)
				for i := 0; i < 3; i++ {
					assert.Equal(t, first, ResolveBump(category, breaking))
				}
			}
		}
	})
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		keyword  string
		expected ChangeCategory
		ok       bool
	}{
		{"feat", CategoryFeature, true},
		{"feature", CategoryFeature, true},
		{"perf", CategoryPerformance, true},
		{"performance", CategoryPerformance, true},
		{"docs", CategoryDocs, true},
		{"banana", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		category, ok := ParseCategory(tt.keyword)
		assert.Equal(t, tt.ok, ok, "keyword %q", tt.keyword)
		if ok {
			assert.Equal(t, tt.expected, category)
		}
	}
}

func TestCommitMessage(t *testing.T) {
	t.Run("headline with scope and breaking bang", func(t *testing.T) {
		msg := CommitMessage{
			Category: CategoryFeature,
			Scope:    "portal-api",
			Subject:  "nuevo contrato de sesiones",
			Breaking: true,
		}
		assert.Equal(t, "feat(portal-api)!: nuevo contrato de sesiones", msg.Headline())
	})

	t.Run("headline never exceeds the limit", func(t *testing.T) {
		msg := CommitMessage{
			Category: CategoryFeature,
			Subject:  strings.Repeat("x", 100),
		}
		assert.LessOrEqual(t, len(msg.Headline()), MaxHeadlineLength)
	})

	t.Run("truncar un subject con acentos no parte un carácter", func(t *testing.T) {
		msg := CommitMessage{
			Category: CategoryFeature,
			Subject:  strings.Repeat("ñ", 100),
		}
		headline := msg.Headline()
		assert.True(t, utf8.ValidString(headline))
		assert.Equal(t, MaxHeadlineLength, utf8.RuneCountInString(headline))
	})

	t.Run("format renders headline, blank line and bullets", func(t *testing.T) {
		msg := CommitMessage{
			Category: CategoryFix,
			Subject:  "corregir parser",
			Body:     []string{"caso borde de rutas", "tests del parser"},
		}
		expected := "fix: corregir parser\n\n- caso borde de rutas\n- tests del parser"
		assert.Equal(t, expected, msg.Format())
	})

	t.Run("format without body is just the headline", func(t *testing.T) {
		msg := CommitMessage{Category: CategoryChore, Subject: "limpieza"}
		assert.Equal(t, "chore: limpieza", msg.Format())
	})
}

func TestParseBump(t *testing.T) {
	for _, valid := range []string{"major", "minor", "patch"} {
		bump, ok := ParseBump(valid)
		assert.True(t, ok)
		assert.Equal(t, VersionBump(valid), bump)
	}

	_, ok := ParseBump("enormous")
	assert.False(t, ok)
}
