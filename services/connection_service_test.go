package services

import (
	"context"
	"testing"

	"world-scribe/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectionService_Create(t *testing.T) {
	repo := setupTestRepo(t)
	cs := NewConnectionService(repo)
	ctx := context.Background()

	category := mustCreateCategory(t, repo, "Person")
	alice := mustCreateArticle(t, repo, "Alice", category.ID)
	bob := mustCreateArticle(t, repo, "Bob", category.ID)

	existing, err := repo.CreateConnectionDescription(ctx, "Old friends")
	require.NoError(t, err)

	tests := []struct {
		name        string
		req         models.CreateConnectionRequest
		checkError  func(error) bool
		description string
	}{
		{
			name: "Success - New description",
			req: models.CreateConnectionRequest{
				MainArticleID:    alice.ID,
				OtherArticleID:   bob.ID,
				OtherArticleRole: "friend",
				Description:      strPtr("Met at school"),
			},
			description: "Met at school",
		},
		{
			name: "Success - Existing description",
			req: models.CreateConnectionRequest{
				MainArticleID:           bob.ID,
				OtherArticleID:          alice.ID,
				ConnectionDescriptionID: int64Ptr(existing.ID),
			},
			description: "Old friends",
		},
		{
			name: "Error - Neither description nor id",
			req: models.CreateConnectionRequest{
				MainArticleID:  alice.ID,
				OtherArticleID: bob.ID,
			},
			checkError: IsValidation,
		},
		{
			name: "Error - Both description and id",
			req: models.CreateConnectionRequest{
				MainArticleID:           alice.ID,
				OtherArticleID:          bob.ID,
				Description:             strPtr("x"),
				ConnectionDescriptionID: int64Ptr(existing.ID),
			},
			checkError: IsValidation,
		},
		{
			name: "Error - Self connection",
			req: models.CreateConnectionRequest{
				MainArticleID:  alice.ID,
				OtherArticleID: alice.ID,
				Description:    strPtr("x"),
			},
			checkError: IsValidation,
		},
		{
			name: "Error - Missing article",
			req: models.CreateConnectionRequest{
				MainArticleID:  alice.ID,
				OtherArticleID: 99,
				Description:    strPtr("x"),
			},
			checkError: IsNotFound,
		},
		{
			name: "Error - Missing description",
			req: models.CreateConnectionRequest{
				MainArticleID:           alice.ID,
				OtherArticleID:          bob.ID,
				ConnectionDescriptionID: int64Ptr(99),
			},
			checkError: IsNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			connection, err := cs.Create(ctx, tt.req)

			if tt.checkError != nil {
				require.Error(t, err)
				assert.True(t, tt.checkError(err), "unexpected error: %v", err)
				return
			}

			require.NoError(t, err)
			summaries, err := cs.ListForArticle(ctx, tt.req.MainArticleID)
			require.NoError(t, err)
			require.Len(t, summaries, 1)
			assert.Equal(t, connection.ID, summaries[0].ID)
			assert.Equal(t, tt.description, summaries[0].Description)
		})
	}

	// Failed requests must not leave a description behind
	leftover, err := repo.GetConnectionDescription(ctx, 3)
	require.NoError(t, err)
	assert.Nil(t, leftover)
}

func TestConnectionService_SharedDescription(t *testing.T) {
	repo := setupTestRepo(t)
	cs := NewConnectionService(repo)
	ctx := context.Background()

	category := mustCreateCategory(t, repo, "Person")
	alice := mustCreateArticle(t, repo, "Alice", category.ID)
	bob := mustCreateArticle(t, repo, "Bob", category.ID)

	forward, err := cs.Create(ctx, models.CreateConnectionRequest{
		MainArticleID:    alice.ID,
		OtherArticleID:   bob.ID,
		OtherArticleRole: "brother",
		Description:      strPtr("Siblings"),
	})
	require.NoError(t, err)
	backward, err := cs.Create(ctx, models.CreateConnectionRequest{
		MainArticleID:           bob.ID,
		OtherArticleID:          alice.ID,
		OtherArticleRole:        "sister",
		ConnectionDescriptionID: int64Ptr(forward.ConnectionDescriptionID),
	})
	require.NoError(t, err)

	t.Run("Updating the description is seen from both sides", func(t *testing.T) {
		_, err := cs.UpdateDescription(ctx, forward.ConnectionDescriptionID, "Twins")
		require.NoError(t, err)

		for _, articleID := range []int64{alice.ID, bob.ID} {
			summaries, err := cs.ListForArticle(ctx, articleID)
			require.NoError(t, err)
			require.Len(t, summaries, 1)
			assert.Equal(t, "Twins", summaries[0].Description)
		}
	})

	t.Run("Role update", func(t *testing.T) {
		updated, err := cs.UpdateRole(ctx, backward.ID, "twin sister")
		require.NoError(t, err)
		assert.Equal(t, "twin sister", updated.OtherArticleRole)

		_, err = cs.UpdateRole(ctx, 99, "x")
		assert.True(t, IsNotFound(err))
	})

	t.Run("Description survives until the last reference is gone", func(t *testing.T) {
		deleted, err := cs.Delete(ctx, forward.ID)
		require.NoError(t, err)
		assert.Equal(t, forward.ID, deleted.ID)

		d, err := repo.GetConnectionDescription(ctx, forward.ConnectionDescriptionID)
		require.NoError(t, err)
		assert.NotNil(t, d)

		_, err = cs.Delete(ctx, backward.ID)
		require.NoError(t, err)

		d, err = repo.GetConnectionDescription(ctx, forward.ConnectionDescriptionID)
		require.NoError(t, err)
		assert.Nil(t, d)

		_, err = cs.Delete(ctx, backward.ID)
		assert.True(t, IsNotFound(err))
	})
}
