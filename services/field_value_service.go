package services

import (
	"context"

	"world-scribe/database"
	"world-scribe/models"
)

type FieldValueService struct {
	repo *database.Repository
}

func NewFieldValueService(repo *database.Repository) *FieldValueService {
	return &FieldValueService{repo: repo}
}

// Update sets the value an Article holds for a Field. The Field must belong to
// the Article's Category.
func (fvs *FieldValueService) Update(ctx context.Context, fieldID, articleID int64, value string) (*models.FieldValue, error) {
	field, err := fvs.repo.GetField(ctx, fieldID)
	if err != nil {
		return nil, err
	}
	if field == nil {
		return nil, entityNotFound("Field", fieldID)
	}

	article, err := fvs.repo.GetArticle(ctx, articleID)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, entityNotFound("Article", articleID)
	}

	if field.CategoryID != article.CategoryID {
		return nil, NewValidationError("Field '%d' does not belong to the Category of Article '%d'", fieldID, articleID)
	}

	return fvs.repo.UpsertFieldValue(ctx, fieldID, articleID, value)
}
