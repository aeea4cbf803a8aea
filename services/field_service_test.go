package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldService(t *testing.T) {
	repo := setupTestRepo(t)
	fs := NewFieldService(repo)
	as := NewArticleService(repo, setupTestImages(t), testLogger())
	ctx := context.Background()

	person := mustCreateCategory(t, repo, "Person", "Age")
	alice := mustCreateArticle(t, repo, "Alice", person.ID)

	field, err := fs.Create(ctx, person.ID, "Occupation")
	require.NoError(t, err)
	assert.Equal(t, person.ID, field.CategoryID)

	fields, err := fs.ListByCategory(ctx, person.ID)
	require.NoError(t, err)
	require.Len(t, fields, 2)
	assert.Equal(t, "Age", fields[0].Name)
	assert.Equal(t, "Occupation", fields[1].Name)

	values, err := as.GetFieldValues(ctx, alice.ID)
	require.NoError(t, err)
	assert.Len(t, values, 2, "existing articles get a value for the new field")

	_, err = fs.Create(ctx, 99, "Nope")
	assert.True(t, IsNotFound(err))

	_, err = fs.ListByCategory(ctx, 99)
	assert.True(t, IsNotFound(err))
}

func TestFieldValueService_Update(t *testing.T) {
	repo := setupTestRepo(t)
	fvs := NewFieldValueService(repo)
	fs := NewFieldService(repo)
	ctx := context.Background()

	person := mustCreateCategory(t, repo, "Person", "Age")
	place := mustCreateCategory(t, repo, "Place", "Climate")
	alice := mustCreateArticle(t, repo, "Alice", person.ID)

	personFields, err := fs.ListByCategory(ctx, person.ID)
	require.NoError(t, err)
	placeFields, err := fs.ListByCategory(ctx, place.ID)
	require.NoError(t, err)

	tests := []struct {
		name       string
		fieldID    int64
		articleID  int64
		checkError func(error) bool
	}{
		{"Success", personFields[0].ID, alice.ID, nil},
		{"Error - Field from another category", placeFields[0].ID, alice.ID, IsValidation},
		{"Error - Missing field", 99, alice.ID, IsNotFound},
		{"Error - Missing article", personFields[0].ID, 99, IsNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fv, err := fvs.Update(ctx, tt.fieldID, tt.articleID, "31")

			if tt.checkError != nil {
				require.Error(t, err)
				assert.True(t, tt.checkError(err))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "31", fv.Value)
			assert.Equal(t, tt.fieldID, fv.FieldID)
			assert.Equal(t, tt.articleID, fv.ArticleID)
		})
	}
}
