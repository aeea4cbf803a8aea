package database

import (
	"context"
	"database/sql"
	"errors"

	"world-scribe/models"
)

// ==================== FIELD VALUE OPERATIONS ====================

// UpsertFieldValue writes the value of one Field on one Article
func (r *Repository) UpsertFieldValue(ctx context.Context, fieldID, articleID int64, value string) (*models.FieldValue, error) {
	ts := now()
	if _, err := r.q.ExecContext(ctx, `
		INSERT INTO field_values (value, field_id, article_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(field_id, article_id) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`, value, fieldID, articleID, ts, ts); err != nil {
		return nil, err
	}

	return r.GetFieldValue(ctx, fieldID, articleID)
}

// GetFieldValue retrieves the FieldValue for a (Field, Article) pair
func (r *Repository) GetFieldValue(ctx context.Context, fieldID, articleID int64) (*models.FieldValue, error) {
	var fv models.FieldValue
	err := r.q.QueryRowContext(ctx, `
		SELECT id, value, field_id, article_id, created_at, updated_at
		FROM field_values
		WHERE field_id = ? AND article_id = ?
	`, fieldID, articleID).Scan(&fv.ID, &fv.Value, &fv.FieldID, &fv.ArticleID, &fv.CreatedAt, &fv.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &fv, nil
}

// ListArticleFieldValues returns an Article's values labelled with Field names,
// in Field creation order
func (r *Repository) ListArticleFieldValues(ctx context.Context, articleID int64) ([]models.ArticleFieldValue, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT fields.id, fields.name, field_values.value
		FROM field_values
			INNER JOIN fields ON fields.id = field_values.field_id
		WHERE field_values.article_id = ?
		ORDER BY fields.id ASC
	`, articleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	values := make([]models.ArticleFieldValue, 0)
	for rows.Next() {
		var v models.ArticleFieldValue
		if err := rows.Scan(&v.FieldID, &v.FieldName, &v.Value); err != nil {
			return nil, err
		}
		values = append(values, v)
	}

	return values, rows.Err()
}

// CountFieldValues counts the FieldValues of an Article
func (r *Repository) CountFieldValues(ctx context.Context, articleID int64) (int, error) {
	var count int
	err := r.q.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM field_values WHERE article_id = ?", articleID).Scan(&count)
	return count, err
}
