package models

import (
	"fmt"
	"strings"
)

// MaxHeadlineLength es el límite de la línea de título del commit
const MaxHeadlineLength = 72

// CommitMessage es el mensaje convencional armado por el emitter:
// `type(scope): subject`, línea en blanco, cuerpo con bullets.
type CommitMessage struct {
	Category ChangeCategory
	Scope    string
	Subject  string
	Breaking bool
	Body     []string
}

// Headline arma la primera línea, truncada a MaxHeadlineLength
func (m CommitMessage) Headline() string {
	var b strings.Builder
	b.WriteString(string(m.Category))
	if m.Scope != "" {
		b.WriteString(fmt.Sprintf("(%s)", m.Scope))
	}
	if m.Breaking {
		b.WriteString("!")
	}
	b.WriteString(": ")
	b.WriteString(m.Subject)

	return truncateRunes(b.String(), MaxHeadlineLength)
}

// truncateRunes corta en un límite de runas, nunca a mitad de un carácter
// multibyte
func truncateRunes(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

// Format renderiza el mensaje completo
func (m CommitMessage) Format() string {
	var b strings.Builder
	b.WriteString(m.Headline())

	if len(m.Body) > 0 {
		b.WriteString("\n\n")
		for i, bullet := range m.Body {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString("- ")
			b.WriteString(bullet)
		}
	}
	return b.String()
}
