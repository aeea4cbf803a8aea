package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnippetService(t *testing.T) {
	repo := setupTestRepo(t)
	ss := NewSnippetService(repo)
	ctx := context.Background()

	category := mustCreateCategory(t, repo, "Person")
	alice := mustCreateArticle(t, repo, "Alice", category.ID)

	_, err := ss.Create(ctx, 99, "Orphan", "")
	assert.True(t, IsNotFound(err))

	second, err := ss.Create(ctx, alice.ID, "Second", "b")
	require.NoError(t, err)
	first, err := ss.Create(ctx, alice.ID, "First", "a")
	require.NoError(t, err)

	snippets, err := ss.ListForArticle(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, snippets, 2)
	assert.Equal(t, first.ID, snippets[0].ID)
	assert.Equal(t, second.ID, snippets[1].ID)

	t.Run("Partial update keeps the other field", func(t *testing.T) {
		updated, err := ss.Update(ctx, first.ID, nil, strPtr("new content"))
		require.NoError(t, err)
		assert.Equal(t, "First", updated.Name)
		assert.Equal(t, "new content", updated.Content)

		updated, err = ss.Update(ctx, first.ID, strPtr("Renamed"), nil)
		require.NoError(t, err)
		assert.Equal(t, "Renamed", updated.Name)
		assert.Equal(t, "new content", updated.Content)
	})

	t.Run("Delete returns the removed snippet", func(t *testing.T) {
		deleted, err := ss.Delete(ctx, second.ID)
		require.NoError(t, err)
		assert.Equal(t, "Second", deleted.Name)

		_, err = ss.Get(ctx, second.ID)
		assert.EqualError(t, err, fmt.Sprintf("Snippet '%d' not found", second.ID))
	})
}
