package database

import (
	"context"

	"world-scribe/models"
)

// ==================== CASCADING DELETES ====================
//
// Deletes walk the entity graph explicitly instead of relying on ON DELETE
// CASCADE: ConnectionDescriptions are reference counted, which a foreign key
// cascade cannot express. Image files are never touched here; callers remove
// them after the transaction commits.

// DeleteArticleCascade removes an Article and everything that depends on it:
// its Connections in either direction, any ConnectionDescription left
// unreferenced, its FieldValues and its Snippets. Returns the pre-delete
// Article, or nil if it did not exist.
func (r *Repository) DeleteArticleCascade(ctx context.Context, articleID int64) (*models.Article, error) {
	var deleted *models.Article

	err := r.WithTx(ctx, func(tx *Repository) error {
		article, err := tx.GetArticle(ctx, articleID)
		if err != nil || article == nil {
			return err
		}

		descriptionIDs, err := tx.connectionDescriptionIDsForArticle(ctx, articleID)
		if err != nil {
			return err
		}

		if _, err := tx.q.ExecContext(ctx, `
			DELETE FROM connections
			WHERE main_article_id = ? OR other_article_id = ?
		`, articleID, articleID); err != nil {
			return err
		}

		for _, descriptionID := range descriptionIDs {
			if _, err := tx.deleteConnectionDescriptionIfOrphaned(ctx, descriptionID); err != nil {
				return err
			}
		}

		if _, err := tx.q.ExecContext(ctx, "DELETE FROM field_values WHERE article_id = ?", articleID); err != nil {
			return err
		}
		if _, err := tx.q.ExecContext(ctx, "DELETE FROM snippets WHERE article_id = ?", articleID); err != nil {
			return err
		}
		if _, err := tx.q.ExecContext(ctx, "DELETE FROM articles WHERE id = ?", articleID); err != nil {
			return err
		}

		deleted = article
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}

func (r *Repository) connectionDescriptionIDsForArticle(ctx context.Context, articleID int64) ([]int64, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT DISTINCT connection_description_id
		FROM connections
		WHERE main_article_id = ? OR other_article_id = ?
		ORDER BY connection_description_id ASC
	`, articleID, articleID)
	if err != nil {
		return nil, err
	}
	return collectIDs(rows)
}

// CategoryDeletion is the outcome of DeleteCategoryCascade.
type CategoryDeletion struct {
	Category *models.Category
	// ArticleImages holds the image descriptors of the Articles removed with the Category.
	ArticleImages []models.ImageDescriptor
}

// DeleteCategoryCascade removes every Article of a Category with the full
// Article cascade, then the Category's Fields, then the Category row, in one
// transaction. Returns nil if the Category did not exist.
func (r *Repository) DeleteCategoryCascade(ctx context.Context, categoryID int64) (*CategoryDeletion, error) {
	var deletion *CategoryDeletion

	err := r.WithTx(ctx, func(tx *Repository) error {
		category, err := tx.GetCategory(ctx, categoryID)
		if err != nil || category == nil {
			return err
		}

		articleIDs, err := tx.listArticleIDsByCategory(ctx, categoryID)
		if err != nil {
			return err
		}

		images := make([]models.ImageDescriptor, 0)
		for _, articleID := range articleIDs {
			article, err := tx.DeleteArticleCascade(ctx, articleID)
			if err != nil {
				return err
			}
			if article != nil && article.Image != nil {
				images = append(images, *article.Image)
			}
		}

		if err := tx.deleteFieldsByCategory(ctx, categoryID); err != nil {
			return err
		}
		if err := tx.DeleteCategory(ctx, categoryID); err != nil {
			return err
		}

		deletion = &CategoryDeletion{Category: category, ArticleImages: images}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deletion, nil
}
