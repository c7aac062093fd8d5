package update

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNewer(t *testing.T) {
	tests := []struct {
		name    string
		current string
		latest  string
		newer   bool
	}{
		{"newer patch", "v1.2.3", "v1.2.4", true},
		{"same version", "v1.2.3", "v1.2.3", false},
		{"older remote", "v1.2.3", "v1.2.2", false},
		{"without v prefix", "1.2.3", "1.3.0", true},
		{"dev build never notifies", "dev", "v9.9.9", false},
		{"empty latest", "v1.2.3", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewService(tt.current, t.TempDir())
			assert.Equal(t, tt.newer, service.isNewer(tt.latest))
		})
	}
}
