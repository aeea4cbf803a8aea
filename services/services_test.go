package services

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"world-scribe/database"
	"world-scribe/models"
	"world-scribe/storage"

	"github.com/hack-pad/hackpadfs/mem"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// ==================== MOCKS ====================

// MockImageStore is a mock implementation of the ImageStore interface
type MockImageStore struct {
	mock.Mock
}

// Ensure MockImageStore implements ImageStore interface
var _ ImageStore = (*MockImageStore)(nil)

func (m *MockImageStore) Save(data []byte, mimeType string) (models.ImageDescriptor, error) {
	args := m.Called(data, mimeType)
	return args.Get(0).(models.ImageDescriptor), args.Error(1)
}

func (m *MockImageStore) Read(filename string) ([]byte, error) {
	args := m.Called(filename)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockImageStore) Delete(filename string) error {
	args := m.Called(filename)
	return args.Error(0)
}

// ==================== HELPERS ====================

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func setupTestRepo(t *testing.T) *database.Repository {
	t.Helper()

	db, err := database.New(filepath.Join(t.TempDir(), database.FileName))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.Migrate(context.Background()))
	return database.NewRepository(db)
}

func setupTestImages(t *testing.T) *storage.ImageStore {
	t.Helper()

	fs, err := mem.NewFS()
	require.NoError(t, err)

	images, err := storage.NewImageStore(fs, storage.UploadsDir)
	require.NoError(t, err)
	return images
}

func mustCreateCategory(t *testing.T, repo *database.Repository, name string, fields ...string) *models.Category {
	t.Helper()

	ctx := context.Background()
	category, err := NewCategoryService(repo, nil, testLogger()).Create(ctx, name, nil)
	require.NoError(t, err)

	for _, field := range fields {
		_, err := NewFieldService(repo).Create(ctx, category.ID, field)
		require.NoError(t, err)
	}
	return category
}

func mustCreateArticle(t *testing.T, repo *database.Repository, name string, categoryID int64) *models.Article {
	t.Helper()

	article, err := NewArticleService(repo, nil, testLogger()).Create(context.Background(), name, categoryID)
	require.NoError(t, err)
	return article
}

func strPtr(s string) *string {
	return &s
}

func int64Ptr(i int64) *int64 {
	return &i
}
