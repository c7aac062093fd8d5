package changeset

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Tomas-vilte/MateChangeset/internal/domain/models"
	"github.com/Tomas-vilte/MateChangeset/internal/regex"
)

// RenderFragment serializa un fragmento a su formato en disco:
//
//	---
//	'<workspaceName>': <major|minor|patch>
//	---
//
//	- bullet
//
// El frontmatter se genera con yaml para que ParseFragment recupere
// exactamente la misma tupla (nombre, bump, body).
func RenderFragment(fragment *models.ReleaseFragment) (string, error) {
	if len(fragment.Body) == 0 {
		return "", fmt.Errorf("el fragmento de '%s' no tiene bullets", fragment.WorkspaceName)
	}

	front, err := yaml.Marshal(map[string]string{
		fragment.WorkspaceName: string(fragment.Bump),
	})
	if err != nil {
		return "", fmt.Errorf("error al serializar el frontmatter: %w", err)
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(front)
	b.WriteString("---\n\n")

	for _, bullet := range fragment.Body {
		b.WriteString("- ")
		b.WriteString(bullet)
		b.WriteString("\n")
	}

	return b.String(), nil
}

// ParseFragment es la inversa de RenderFragment
func ParseFragment(content string) (*models.ReleaseFragment, error) {
	lines := strings.Split(content, "\n")
	if len(lines) < 3 || strings.TrimSpace(lines[0]) != "---" {
		return nil, fmt.Errorf("el fragmento no empieza con frontmatter")
	}

	closing := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			closing = i
			break
		}
	}
	if closing == -1 {
		return nil, fmt.Errorf("el frontmatter no está cerrado")
	}

	var front map[string]string
	frontText := strings.Join(lines[1:closing], "\n")
	if err := yaml.Unmarshal([]byte(frontText), &front); err != nil {
		return nil, fmt.Errorf("error al parsear el frontmatter: %w", err)
	}
	if len(front) != 1 {
		return nil, fmt.Errorf("el frontmatter debe declarar exactamente un workspace, tiene %d", len(front))
	}

	fragment := &models.ReleaseFragment{}
	for name, bumpText := range front {
		bump, ok := models.ParseBump(bumpText)
		if !ok {
			return nil, fmt.Errorf("'%s' no es un nivel de bump válido", bumpText)
		}
		fragment.WorkspaceName = name
		fragment.Bump = bump
	}

	for _, line := range lines[closing+1:] {
		if match := regex.BulletLine.FindStringSubmatch(line); match != nil {
			fragment.Body = append(fragment.Body, match[1])
		}
	}

	if len(fragment.Body) == 0 {
		return nil, fmt.Errorf("el fragmento de '%s' no tiene bullets", fragment.WorkspaceName)
	}

	return fragment, nil
}
