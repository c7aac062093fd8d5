package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tomas-vilte/MateChangeset/internal/domain/models"
)

func TestLoadConfig(t *testing.T) {
	t.Run("creates the default config on first run", func(t *testing.T) {
		home := t.TempDir()

		cfg, err := LoadConfig(home)
		require.NoError(t, err)

		assert.Equal(t, "en", cfg.Language)
		assert.Equal(t, ".changeset", cfg.ChangesetDir)
		assert.Equal(t, "git", cfg.Collector)
		assert.FileExists(t, filepath.Join(home, ".matechangeset", "config.json"))
	})

	t.Run("reads an existing config file", func(t *testing.T) {
		home := t.TempDir()
		dir := filepath.Join(home, ".matechangeset")
		require.NoError(t, os.MkdirAll(dir, 0755))

		content := `{"language": "es", "use_emoji": false, "max_length": 72, "path_file": "` +
			filepath.Join(dir, "config.json") + `", "changeset_dir": ".changeset", "collector": "gogit"}`
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte(content), 0644))

		cfg, err := LoadConfig(home)
		require.NoError(t, err)

		assert.Equal(t, "es", cfg.Language)
		assert.Equal(t, "gogit", cfg.Collector)
	})

	t.Run("invalid json is an error", func(t *testing.T) {
		home := t.TempDir()
		dir := filepath.Join(home, ".matechangeset")
		require.NoError(t, os.MkdirAll(dir, 0755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte("{"), 0644))

		_, err := LoadConfig(home)
		assert.Error(t, err)
	})
}

func TestSaveConfig(t *testing.T) {
	home := t.TempDir()

	cfg, err := LoadConfig(home)
	require.NoError(t, err)

	cfg.Language = "es"
	require.NoError(t, SaveConfig(cfg))

	reloaded, err := LoadConfig(home)
	require.NoError(t, err)
	assert.Equal(t, "es", reloaded.Language)
}

func TestPrefixRules(t *testing.T) {
	t.Run("defaults only", func(t *testing.T) {
		cfg := &Config{Language: "en", MaxLength: 72}
		assert.Equal(t, models.DefaultPrefixRules, cfg.PrefixRules())
	})

	t.Run("extra rules are appended, never replace defaults", func(t *testing.T) {
		cfg := &Config{
			Language:  "en",
			MaxLength: 72,
			ExtraRules: []RuleConfig{
				{Prefix: "libs/", Kind: "package"},
			},
		}

		rules := cfg.PrefixRules()
		require.Len(t, rules, len(models.DefaultPrefixRules)+1)
		assert.Equal(t, models.PrefixRule{Prefix: "libs/", Kind: models.KindPackage}, rules[len(rules)-1])
	})

	t.Run("an extra rule with empty prefix fails validation", func(t *testing.T) {
		cfg := &Config{
			Language:   "en",
			MaxLength:  72,
			PathFile:   "x.json",
			ExtraRules: []RuleConfig{{Prefix: ""}},
		}
		assert.Error(t, SaveConfig(cfg))
	})
}
