package services

import (
	"context"
	"log/slog"

	"world-scribe/database"
	"world-scribe/models"
	"world-scribe/pagination"
)

// CategoryService handles business logic for categories
type CategoryService struct {
	repo   *database.Repository
	images ImageStore
	logger *slog.Logger
}

// NewCategoryService creates a new category service
func NewCategoryService(repo *database.Repository, images ImageStore, logger *slog.Logger) *CategoryService {
	return &CategoryService{
		repo:   repo,
		images: images,
		logger: logger,
	}
}

func categoryConflict(name string) error {
	return NewConflictError("The current World already has a Category named '%s'", name)
}

// Create inserts a Category. Description defaults to the empty string.
func (cs *CategoryService) Create(ctx context.Context, name string, description *string) (*models.Category, error) {
	existing, err := cs.repo.GetCategoryByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, categoryConflict(name)
	}

	if description == nil {
		empty := ""
		description = &empty
	}

	category := &models.Category{Name: name, Description: description}
	if err := cs.repo.CreateCategory(ctx, category); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, categoryConflict(name)
		}
		return nil, err
	}

	return category, nil
}

// Get retrieves a Category by ID
func (cs *CategoryService) Get(ctx context.Context, id int64) (*models.Category, error) {
	category, err := cs.repo.GetCategory(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, entityNotFound("Category", id)
	}
	return category, nil
}

func (cs *CategoryService) GetMetadata(ctx context.Context, id int64) (*models.CategoryMetadata, error) {
	meta, err := cs.repo.GetCategoryMetadata(ctx, id)
	if err != nil {
		return nil, err
	}
	if meta == nil {
		return nil, entityNotFound("Category", id)
	}
	return meta, nil
}

// List returns one page of Categories ordered by name
func (cs *CategoryService) List(ctx context.Context, page, size int) (pagination.Page[models.Category], error) {
	return cs.repo.ListCategories(ctx, page, size)
}

// UpdateName renames a Category. Keeping the current name is allowed.
func (cs *CategoryService) UpdateName(ctx context.Context, id int64, name string) (*models.Category, error) {
	if _, err := cs.Get(ctx, id); err != nil {
		return nil, err
	}

	existing, err := cs.repo.GetCategoryByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.ID != id {
		return nil, categoryConflict(name)
	}

	if err := cs.repo.UpdateCategoryName(ctx, id, name); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, categoryConflict(name)
		}
		return nil, err
	}

	return cs.Get(ctx, id)
}

func (cs *CategoryService) UpdateDescription(ctx context.Context, id int64, description string) (*models.Category, error) {
	if _, err := cs.Get(ctx, id); err != nil {
		return nil, err
	}

	if err := cs.repo.UpdateCategoryDescription(ctx, id, description); err != nil {
		return nil, err
	}

	return cs.Get(ctx, id)
}

// SetImage stores a new image for the Category and drops the previous file
func (cs *CategoryService) SetImage(ctx context.Context, id int64, data []byte, mimeType string) (*models.Category, error) {
	category, err := cs.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	_, err = replaceImage(cs.images, cs.logger, data, mimeType, category.Image, func(desc *models.ImageDescriptor) error {
		return cs.repo.UpdateCategoryImage(ctx, id, desc)
	})
	if err != nil {
		return nil, err
	}

	return cs.Get(ctx, id)
}

func (cs *CategoryService) GetImage(ctx context.Context, id int64) (*Image, error) {
	category, err := cs.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return readImage(cs.images, category.Image, "Category", id)
}

// Delete removes the Category with all of its Articles and Fields in one
// transaction. Image files are removed once the transaction has committed.
// Returns the Category as it was before deletion.
func (cs *CategoryService) Delete(ctx context.Context, id int64) (*models.Category, error) {
	deletion, err := cs.repo.DeleteCategoryCascade(ctx, id)
	if err != nil {
		return nil, err
	}
	if deletion == nil {
		return nil, entityNotFound("Category", id)
	}

	for _, image := range deletion.ArticleImages {
		removeImage(cs.images, cs.logger, image.Filename)
	}
	if deletion.Category.Image != nil {
		removeImage(cs.images, cs.logger, deletion.Category.Image.Filename)
	}

	cs.logger.Info("category deleted", "category_id", id, "name", deletion.Category.Name)
	return deletion.Category, nil
}
