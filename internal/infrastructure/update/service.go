package update

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/go-github/v80/github"
	"golang.org/x/mod/semver"
)

const (
	repoOwner     = "Tomas-vilte"
	repoName      = "MateChangeset"
	checkInterval = 24 * time.Hour
	checkTimeout  = 2 * time.Second
)

type (
	// Service verifica si hay una release más nueva en GitHub
	Service struct {
		currentVersion string
		cachePath      string
		client         *github.Client
	}

	// ReleaseInfo es lo mínimo que necesitamos de una release
	ReleaseInfo struct {
		Version string
		URL     string
	}

	cacheEntry struct {
		LastCheck   time.Time `json:"last_check"`
		LatestKnown string    `json:"latest_known"`
	}
)

func NewService(currentVersion, cacheDir string) *Service {
	return &Service{
		currentVersion: currentVersion,
		cachePath:      filepath.Join(cacheDir, "update-check.json"),
		client:         github.NewClient(nil),
	}
}

// CheckLatest retorna la release más nueva si supera a la versión actual,
// nil si ya estamos al día. Usa un cache de 24hs para no pegarle a la API
// en cada corrida.
func (s *Service) CheckLatest(ctx context.Context) (*ReleaseInfo, error) {
	if cached, ok := s.loadCache(); ok && time.Since(cached.LastCheck) < checkInterval {
		if s.isNewer(cached.LatestKnown) {
			return &ReleaseInfo{Version: cached.LatestKnown}, nil
		}
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	release, _, err := s.client.Repositories.GetLatestRelease(ctx, repoOwner, repoName)
	if err != nil {
		return nil, err
	}

	latest := release.GetTagName()
	_ = s.saveCache(cacheEntry{LastCheck: time.Now(), LatestKnown: latest})

	if s.isNewer(latest) {
		return &ReleaseInfo{Version: latest, URL: release.GetHTMLURL()}, nil
	}
	return nil, nil
}

func (s *Service) isNewer(latest string) bool {
	if latest == "" {
		return false
	}
	current := normalize(s.currentVersion)
	if !semver.IsValid(current) {
		// Builds de desarrollo: no molestar con notificaciones
		return false
	}
	return semver.Compare(normalize(latest), current) > 0
}

func normalize(v string) string {
	if !strings.HasPrefix(v, "v") {
		return "v" + v
	}
	return v
}

func (s *Service) loadCache() (cacheEntry, bool) {
	var entry cacheEntry

	data, err := os.ReadFile(s.cachePath)
	if err != nil {
		return entry, false
	}
	if err := json.Unmarshal(data, &entry); err != nil {
		return entry, false
	}
	return entry, true
}

func (s *Service) saveCache(entry cacheEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	return os.WriteFile(s.cachePath, data, 0644)
}
