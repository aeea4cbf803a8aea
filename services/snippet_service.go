package services

import (
	"context"

	"world-scribe/database"
	"world-scribe/models"
)

type SnippetService struct {
	repo *database.Repository
}

func NewSnippetService(repo *database.Repository) *SnippetService {
	return &SnippetService{repo: repo}
}

// Create attaches a Snippet to an existing Article
func (ss *SnippetService) Create(ctx context.Context, articleID int64, name, content string) (*models.Snippet, error) {
	article, err := ss.repo.GetArticle(ctx, articleID)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, entityNotFound("Article", articleID)
	}

	snippet := &models.Snippet{Name: name, Content: content, ArticleID: articleID}
	if err := ss.repo.CreateSnippet(ctx, snippet); err != nil {
		return nil, err
	}
	return snippet, nil
}

func (ss *SnippetService) Get(ctx context.Context, id int64) (*models.Snippet, error) {
	snippet, err := ss.repo.GetSnippet(ctx, id)
	if err != nil {
		return nil, err
	}
	if snippet == nil {
		return nil, entityNotFound("Snippet", id)
	}
	return snippet, nil
}

// Update changes the name and/or content. Nil arguments keep the current value.
func (ss *SnippetService) Update(ctx context.Context, id int64, name, content *string) (*models.Snippet, error) {
	snippet, err := ss.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if name != nil {
		snippet.Name = *name
	}
	if content != nil {
		snippet.Content = *content
	}

	if err := ss.repo.UpdateSnippet(ctx, id, snippet.Name, snippet.Content); err != nil {
		return nil, err
	}

	return ss.Get(ctx, id)
}

func (ss *SnippetService) Delete(ctx context.Context, id int64) (*models.Snippet, error) {
	snippet, err := ss.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := ss.repo.DeleteSnippet(ctx, id); err != nil {
		return nil, err
	}
	return snippet, nil
}

// ListForArticle returns an Article's Snippets ordered by name
func (ss *SnippetService) ListForArticle(ctx context.Context, articleID int64) ([]models.Snippet, error) {
	article, err := ss.repo.GetArticle(ctx, articleID)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, entityNotFound("Article", articleID)
	}
	return ss.repo.ListSnippetsForArticle(ctx, articleID)
}
