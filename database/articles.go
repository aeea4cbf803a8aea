package database

import (
	"context"
	"database/sql"
	"errors"

	"world-scribe/models"
	"world-scribe/pagination"
)

// ==================== ARTICLE OPERATIONS ====================

const articleColumns = `id, name, category_id, image, created_at, updated_at`

func scanArticle(row rowScanner) (*models.Article, error) {
	var article models.Article
	var image models.NullImage

	if err := row.Scan(
		&article.ID, &article.Name, &article.CategoryID, &image,
		&article.CreatedAt, &article.UpdatedAt,
	); err != nil {
		return nil, err
	}

	article.Image = image.Ptr()
	return &article, nil
}

func scanArticles(rows *sql.Rows) ([]models.Article, error) {
	defer rows.Close()

	articles := make([]models.Article, 0)
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, *article)
	}
	return articles, rows.Err()
}

// CreateArticle inserts an Article and one empty FieldValue for every Field of
// its Category. Both happen in one transaction.
func (r *Repository) CreateArticle(ctx context.Context, article *models.Article) error {
	return r.WithTx(ctx, func(tx *Repository) error {
		ts := now()
		result, err := tx.q.ExecContext(ctx, `
			INSERT INTO articles (name, category_id, image, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?)
		`, article.Name, article.CategoryID, article.Image, ts, ts)
		if err != nil {
			return err
		}

		id, err := result.LastInsertId()
		if err != nil {
			return err
		}

		fieldIDs, err := tx.listFieldIDs(ctx, article.CategoryID)
		if err != nil {
			return err
		}

		stmt, err := tx.q.PrepareContext(ctx, `
			INSERT INTO field_values (value, field_id, article_id, created_at, updated_at)
			VALUES ('', ?, ?, ?, ?)
		`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for _, fieldID := range fieldIDs {
			if _, err := stmt.ExecContext(ctx, fieldID, id, ts, ts); err != nil {
				return err
			}
		}

		article.ID = id
		article.CreatedAt = ts
		article.UpdatedAt = ts
		return nil
	})
}

func (r *Repository) listFieldIDs(ctx context.Context, categoryID int64) ([]int64, error) {
	rows, err := r.q.QueryContext(ctx,
		"SELECT id FROM fields WHERE category_id = ? ORDER BY id ASC", categoryID)
	if err != nil {
		return nil, err
	}
	return collectIDs(rows)
}

// GetArticle retrieves an Article by ID
func (r *Repository) GetArticle(ctx context.Context, articleID int64) (*models.Article, error) {
	article, err := scanArticle(r.q.QueryRowContext(ctx,
		`SELECT `+articleColumns+` FROM articles WHERE id = ?`, articleID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return article, err
}

// GetArticleMetadata retrieves an Article joined with its Category name
func (r *Repository) GetArticleMetadata(ctx context.Context, articleID int64) (*models.ArticleMetadata, error) {
	var meta models.ArticleMetadata
	err := r.q.QueryRowContext(ctx, `
		SELECT articles.id, articles.name, articles.category_id, categories.name,
		       articles.created_at, articles.updated_at
		FROM articles
			INNER JOIN categories ON categories.id = articles.category_id
		WHERE articles.id = ?
	`, articleID).Scan(
		&meta.ID, &meta.Name, &meta.CategoryID, &meta.CategoryName,
		&meta.CreatedAt, &meta.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &meta, nil
}

// ListArticles returns one page of all Articles ordered by name, then ID
func (r *Repository) ListArticles(ctx context.Context, page, size int) (pagination.Page[models.Article], error) {
	limit, offset := pagination.Window(page, size)

	rows, err := r.q.QueryContext(ctx, `
		SELECT `+articleColumns+`
		FROM articles
		ORDER BY name ASC, id ASC
		LIMIT ? OFFSET ?
	`, limit, offset)
	if err != nil {
		return pagination.Page[models.Article]{}, err
	}

	articles, err := scanArticles(rows)
	if err != nil {
		return pagination.Page[models.Article]{}, err
	}
	return pagination.Trim(articles, size), nil
}

// ListArticlesByCategory returns one page of a Category's Articles ordered by name, then ID
func (r *Repository) ListArticlesByCategory(ctx context.Context, categoryID int64, page, size int) (pagination.Page[models.Article], error) {
	limit, offset := pagination.Window(page, size)

	rows, err := r.q.QueryContext(ctx, `
		SELECT `+articleColumns+`
		FROM articles
		WHERE category_id = ?
		ORDER BY name ASC, id ASC
		LIMIT ? OFFSET ?
	`, categoryID, limit, offset)
	if err != nil {
		return pagination.Page[models.Article]{}, err
	}

	articles, err := scanArticles(rows)
	if err != nil {
		return pagination.Page[models.Article]{}, err
	}
	return pagination.Trim(articles, size), nil
}

// UpdateArticleName changes only the name and the update timestamp
func (r *Repository) UpdateArticleName(ctx context.Context, articleID int64, name string) error {
	_, err := r.q.ExecContext(ctx, `
		UPDATE articles SET
			name = ?,
			updated_at = ?
		WHERE id = ?
	`, name, now(), articleID)
	return err
}

// UpdateArticleImage replaces the image descriptor; nil clears it
func (r *Repository) UpdateArticleImage(ctx context.Context, articleID int64, image *models.ImageDescriptor) error {
	_, err := r.q.ExecContext(ctx, `
		UPDATE articles SET
			image = ?,
			updated_at = ?
		WHERE id = ?
	`, image, now(), articleID)
	return err
}

func (r *Repository) listArticleIDsByCategory(ctx context.Context, categoryID int64) ([]int64, error) {
	rows, err := r.q.QueryContext(ctx,
		"SELECT id FROM articles WHERE category_id = ? ORDER BY id ASC", categoryID)
	if err != nil {
		return nil, err
	}
	return collectIDs(rows)
}
