package services

import (
	"context"
	"errors"
	"testing"

	"world-scribe/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCategoryService_Create(t *testing.T) {
	repo := setupTestRepo(t)
	cs := NewCategoryService(repo, setupTestImages(t), testLogger())
	ctx := context.Background()

	_, err := cs.Create(ctx, "Creature", nil)
	require.NoError(t, err)

	tests := []struct {
		name          string
		categoryName  string
		description   *string
		expectedError string
		expectedDesc  string
	}{
		{
			name:         "Success - Description defaults to empty",
			categoryName: "Vehicle",
			expectedDesc: "",
		},
		{
			name:         "Success - Description kept",
			categoryName: "Event",
			description:  strPtr("Things that happened"),
			expectedDesc: "Things that happened",
		},
		{
			name:         "Success - Names are case sensitive",
			categoryName: "creature",
		},
		{
			name:          "Error - Duplicate name",
			categoryName:  "Creature",
			expectedError: "The current World already has a Category named 'Creature'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			category, err := cs.Create(ctx, tt.categoryName, tt.description)

			if tt.expectedError != "" {
				require.Error(t, err)
				assert.True(t, IsConflict(err))
				assert.EqualError(t, err, tt.expectedError)
				assert.Nil(t, category)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.categoryName, category.Name)
			require.NotNil(t, category.Description)
			assert.Equal(t, tt.expectedDesc, *category.Description)
		})
	}

	page, err := cs.List(ctx, 1, 10)
	require.NoError(t, err)
	count := 0
	for _, c := range page.Items {
		if c.Name == "Creature" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestCategoryService_NotFound(t *testing.T) {
	repo := setupTestRepo(t)
	cs := NewCategoryService(repo, setupTestImages(t), testLogger())
	ctx := context.Background()

	_, err := cs.Get(ctx, 42)
	assert.True(t, IsNotFound(err))
	assert.EqualError(t, err, "Category '42' not found")

	_, err = cs.GetMetadata(ctx, 42)
	assert.True(t, IsNotFound(err))

	_, err = cs.UpdateName(ctx, 42, "Name")
	assert.True(t, IsNotFound(err))

	_, err = cs.Delete(ctx, 42)
	assert.True(t, IsNotFound(err))
}

func TestCategoryService_UpdateName(t *testing.T) {
	repo := setupTestRepo(t)
	cs := NewCategoryService(repo, setupTestImages(t), testLogger())
	ctx := context.Background()

	first := mustCreateCategory(t, repo, "First")
	mustCreateCategory(t, repo, "Second")

	_, err := cs.UpdateName(ctx, first.ID, "Second")
	assert.True(t, IsConflict(err))

	same, err := cs.UpdateName(ctx, first.ID, "First")
	require.NoError(t, err)
	assert.Equal(t, "First", same.Name)

	renamed, err := cs.UpdateName(ctx, first.ID, "Renamed")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", renamed.Name)
	assert.Equal(t, first.ID, renamed.ID)
}

func TestCategoryService_UpdateDescriptionAndMetadata(t *testing.T) {
	repo := setupTestRepo(t)
	cs := NewCategoryService(repo, setupTestImages(t), testLogger())
	ctx := context.Background()

	category := mustCreateCategory(t, repo, "Place")

	updated, err := cs.UpdateDescription(ctx, category.ID, "Where things are")
	require.NoError(t, err)
	assert.Equal(t, "Where things are", *updated.Description)

	meta, err := cs.GetMetadata(ctx, category.ID)
	require.NoError(t, err)
	assert.Equal(t, category.ID, meta.ID)
	assert.Equal(t, "Place", meta.Name)
	assert.Equal(t, "Where things are", *meta.Description)
}

func TestCategoryService_Images(t *testing.T) {
	repo := setupTestRepo(t)
	images := setupTestImages(t)
	cs := NewCategoryService(repo, images, testLogger())
	ctx := context.Background()

	category := mustCreateCategory(t, repo, "Person")

	_, err := cs.GetImage(ctx, category.ID)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.EqualError(t, err, "Image does not exist for Category '1'")

	withImage, err := cs.SetImage(ctx, category.ID, []byte("first"), "image/png")
	require.NoError(t, err)
	require.NotNil(t, withImage.Image)
	firstFile := withImage.Image.Filename

	image, err := cs.GetImage(ctx, category.ID)
	require.NoError(t, err)
	assert.Equal(t, "first", string(image.Data))
	assert.Equal(t, "image/png", image.MimeType)

	replaced, err := cs.SetImage(ctx, category.ID, []byte("second"), "image/jpeg")
	require.NoError(t, err)
	assert.NotEqual(t, firstFile, replaced.Image.Filename)

	exists, err := images.Exists(firstFile)
	require.NoError(t, err)
	assert.False(t, exists, "previous image file is removed")

	image, err = cs.GetImage(ctx, category.ID)
	require.NoError(t, err)
	assert.Equal(t, "second", string(image.Data))
	assert.Equal(t, "image/jpeg", image.MimeType)

	_, err = cs.SetImage(ctx, category.ID, nil, "image/png")
	assert.True(t, IsValidation(err))
}

func TestCategoryService_SetImageWriteFailure(t *testing.T) {
	repo := setupTestRepo(t)
	images := new(MockImageStore)
	cs := NewCategoryService(repo, images, testLogger())
	ctx := context.Background()

	category := mustCreateCategory(t, repo, "Person")
	old := &models.ImageDescriptor{Filename: "old", MimeType: "image/png"}
	require.NoError(t, repo.UpdateCategoryImage(ctx, category.ID, old))

	images.On("Save", []byte("new"), "image/png").Return(models.ImageDescriptor{}, errors.New("disk full"))

	_, err := cs.SetImage(ctx, category.ID, []byte("new"), "image/png")
	require.Error(t, err)

	got, err := cs.Get(ctx, category.ID)
	require.NoError(t, err)
	assert.Equal(t, old, got.Image, "row is untouched")
	images.AssertNotCalled(t, "Delete", mock.Anything)
}

func TestCategoryService_Delete(t *testing.T) {
	repo := setupTestRepo(t)
	images := setupTestImages(t)
	cs := NewCategoryService(repo, images, testLogger())
	as := NewArticleService(repo, images, testLogger())
	ctx := context.Background()

	category := mustCreateCategory(t, repo, "Category to Delete", "Field")
	kept := mustCreateCategory(t, repo, "Other Category", "Field")

	categoryWithImage, err := cs.SetImage(ctx, category.ID, []byte("category"), "image/png")
	require.NoError(t, err)

	a1 := mustCreateArticle(t, repo, "Article 1", category.ID)
	a1, err = as.SetImage(ctx, a1.ID, []byte("article 1"), "image/jpeg")
	require.NoError(t, err)
	mustCreateArticle(t, repo, "Article 2", category.ID)
	a3 := mustCreateArticle(t, repo, "Article 3", kept.ID)
	a3, err = as.SetImage(ctx, a3.ID, []byte("article 3"), "image/jpeg")
	require.NoError(t, err)

	deleted, err := cs.Delete(ctx, category.ID)
	require.NoError(t, err)
	assert.Equal(t, "Category to Delete", deleted.Name)
	assert.Equal(t, categoryWithImage.Image, deleted.Image)

	for _, filename := range []string{deleted.Image.Filename, a1.Image.Filename} {
		exists, err := images.Exists(filename)
		require.NoError(t, err)
		assert.False(t, exists)
	}

	exists, err := images.Exists(a3.Image.Filename)
	require.NoError(t, err)
	assert.True(t, exists)

	_, err = cs.Get(ctx, category.ID)
	assert.True(t, IsNotFound(err))

	page, err := as.List(ctx, 1, 10)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, a3.ID, page.Items[0].ID)
}

func TestCategoryService_DeleteToleratesImageRemovalFailure(t *testing.T) {
	repo := setupTestRepo(t)
	images := new(MockImageStore)
	cs := NewCategoryService(repo, images, testLogger())
	ctx := context.Background()

	category := mustCreateCategory(t, repo, "Person")
	require.NoError(t, repo.UpdateCategoryImage(ctx, category.ID, &models.ImageDescriptor{Filename: "stale", MimeType: "image/png"}))

	images.On("Delete", "stale").Return(errors.New("permission denied"))

	deleted, err := cs.Delete(ctx, category.ID)
	require.NoError(t, err)
	assert.Equal(t, "Person", deleted.Name)
	images.AssertExpectations(t)
}
