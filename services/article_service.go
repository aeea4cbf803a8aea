package services

import (
	"context"
	"log/slog"

	"world-scribe/database"
	"world-scribe/models"
	"world-scribe/pagination"
)

// ArticleService handles business logic for articles
type ArticleService struct {
	repo   *database.Repository
	images ImageStore
	logger *slog.Logger
}

// NewArticleService creates a new article service
func NewArticleService(repo *database.Repository, images ImageStore, logger *slog.Logger) *ArticleService {
	return &ArticleService{
		repo:   repo,
		images: images,
		logger: logger,
	}
}

// Create inserts an Article together with one empty FieldValue per Field of its Category
func (as *ArticleService) Create(ctx context.Context, name string, categoryID int64) (*models.Article, error) {
	category, err := as.repo.GetCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, entityNotFound("Category", categoryID)
	}

	article := &models.Article{Name: name, CategoryID: categoryID}
	if err := as.repo.CreateArticle(ctx, article); err != nil {
		return nil, err
	}
	return article, nil
}

// Get retrieves an Article by ID
func (as *ArticleService) Get(ctx context.Context, id int64) (*models.Article, error) {
	article, err := as.repo.GetArticle(ctx, id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, entityNotFound("Article", id)
	}
	return article, nil
}

func (as *ArticleService) GetMetadata(ctx context.Context, id int64) (*models.ArticleMetadata, error) {
	meta, err := as.repo.GetArticleMetadata(ctx, id)
	if err != nil {
		return nil, err
	}
	if meta == nil {
		return nil, entityNotFound("Article", id)
	}
	return meta, nil
}

// GetFieldValues lists the Article's FieldValues labelled with their Field names
func (as *ArticleService) GetFieldValues(ctx context.Context, id int64) ([]models.ArticleFieldValue, error) {
	if _, err := as.Get(ctx, id); err != nil {
		return nil, err
	}
	return as.repo.ListArticleFieldValues(ctx, id)
}

func (as *ArticleService) List(ctx context.Context, page, size int) (pagination.Page[models.Article], error) {
	return as.repo.ListArticles(ctx, page, size)
}

// ListByCategory returns one page of the Articles of a Category
func (as *ArticleService) ListByCategory(ctx context.Context, categoryID int64, page, size int) (pagination.Page[models.Article], error) {
	category, err := as.repo.GetCategory(ctx, categoryID)
	if err != nil {
		return pagination.Page[models.Article]{}, err
	}
	if category == nil {
		return pagination.Page[models.Article]{}, entityNotFound("Category", categoryID)
	}
	return as.repo.ListArticlesByCategory(ctx, categoryID, page, size)
}

func (as *ArticleService) UpdateName(ctx context.Context, id int64, name string) (*models.Article, error) {
	if _, err := as.Get(ctx, id); err != nil {
		return nil, err
	}

	if err := as.repo.UpdateArticleName(ctx, id, name); err != nil {
		return nil, err
	}

	return as.Get(ctx, id)
}

// SetImage stores a new image for the Article and drops the previous file
func (as *ArticleService) SetImage(ctx context.Context, id int64, data []byte, mimeType string) (*models.Article, error) {
	article, err := as.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	_, err = replaceImage(as.images, as.logger, data, mimeType, article.Image, func(desc *models.ImageDescriptor) error {
		return as.repo.UpdateArticleImage(ctx, id, desc)
	})
	if err != nil {
		return nil, err
	}

	return as.Get(ctx, id)
}

func (as *ArticleService) GetImage(ctx context.Context, id int64) (*Image, error) {
	article, err := as.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return readImage(as.images, article.Image, "Article", id)
}

// Delete removes the Article with its Connections, FieldValues and Snippets.
// The image file is removed after the transaction commits.
func (as *ArticleService) Delete(ctx context.Context, id int64) (*models.Article, error) {
	article, err := as.repo.DeleteArticleCascade(ctx, id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, entityNotFound("Article", id)
	}

	if article.Image != nil {
		removeImage(as.images, as.logger, article.Image.Filename)
	}

	as.logger.Info("article deleted", "article_id", id, "name", article.Name)
	return article, nil
}
