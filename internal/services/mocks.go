package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Tomas-vilte/MateChangeset/internal/domain/models"
	"github.com/Tomas-vilte/MateChangeset/internal/domain/ports"
)

type (
	MockChangeCollector struct {
		mock.Mock
	}

	MockSpaceClassifier struct {
		mock.Mock
	}

	MockChangeCategorizer struct {
		mock.Mock
	}

	MockReleaseNoteEmitter struct {
		mock.Mock
	}

	MockFragmentWriter struct {
		mock.Mock
	}

	MockManifestResolver struct {
		mock.Mock
	}

	MockPipelineService struct {
		mock.Mock
	}
)

func (m *MockChangeCollector) Name() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockChangeCollector) RepoRoot(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockChangeCollector) HasStagedChanges(ctx context.Context) bool {
	args := m.Called(ctx)
	return args.Bool(0)
}

func (m *MockChangeCollector) Collect(ctx context.Context) (*models.CollectedChanges, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CollectedChanges), args.Error(1)
}

func (m *MockSpaceClassifier) Classify(ctx context.Context, repoRoot string, changes []models.StagedChange) (*models.Classification, error) {
	args := m.Called(ctx, repoRoot, changes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Classification), args.Error(1)
}

func (m *MockChangeCategorizer) Categorize(input ports.CategorizeInput) (models.CategoryResolution, error) {
	args := m.Called(input)
	return args.Get(0).(models.CategoryResolution), args.Error(1)
}

func (m *MockReleaseNoteEmitter) EmitFragment(workspace models.Workspace, input ports.EmitInput) (*models.ReleaseFragment, error) {
	args := m.Called(workspace, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ReleaseFragment), args.Error(1)
}

func (m *MockReleaseNoteEmitter) RecommendReadme(workspace models.Workspace, input ports.EmitInput) *models.ReadmeRecommendation {
	args := m.Called(workspace, input)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*models.ReadmeRecommendation)
}

func (m *MockFragmentWriter) Write(repoRoot string, category models.ChangeCategory, fragment *models.ReleaseFragment) (string, error) {
	args := m.Called(repoRoot, category, fragment)
	return args.String(0), args.Error(1)
}

func (m *MockManifestResolver) ResolveName(root string) (string, error) {
	args := m.Called(root)
	return args.String(0), args.Error(1)
}

func (m *MockPipelineService) Run(ctx context.Context, opts ports.RunOptions) (*models.Report, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Report), args.Error(1)
}
