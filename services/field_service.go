package services

import (
	"context"

	"world-scribe/database"
	"world-scribe/models"
)

// FieldService handles business logic for fields.
// Fields cannot be renamed or deleted once created.
type FieldService struct {
	repo *database.Repository
}

func NewFieldService(repo *database.Repository) *FieldService {
	return &FieldService{repo: repo}
}

// Create adds a Field to a Category. Existing Articles of the Category get an
// empty FieldValue for it.
func (fs *FieldService) Create(ctx context.Context, categoryID int64, name string) (*models.Field, error) {
	if err := fs.requireCategory(ctx, categoryID); err != nil {
		return nil, err
	}

	field := &models.Field{Name: name, CategoryID: categoryID}
	if err := fs.repo.CreateField(ctx, field); err != nil {
		return nil, err
	}
	return field, nil
}

func (fs *FieldService) ListByCategory(ctx context.Context, categoryID int64) ([]models.Field, error) {
	if err := fs.requireCategory(ctx, categoryID); err != nil {
		return nil, err
	}
	return fs.repo.ListFieldsByCategory(ctx, categoryID)
}

func (fs *FieldService) requireCategory(ctx context.Context, categoryID int64) error {
	category, err := fs.repo.GetCategory(ctx, categoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return entityNotFound("Category", categoryID)
	}
	return nil
}
