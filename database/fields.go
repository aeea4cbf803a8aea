package database

import (
	"context"
	"database/sql"
	"errors"

	"world-scribe/models"
)

// ==================== FIELD OPERATIONS ====================

// CreateField inserts a Field and gives every existing Article of its Category
// an empty FieldValue for it, in one transaction.
func (r *Repository) CreateField(ctx context.Context, field *models.Field) error {
	return r.WithTx(ctx, func(tx *Repository) error {
		ts := now()
		result, err := tx.q.ExecContext(ctx, `
			INSERT INTO fields (name, category_id, created_at, updated_at)
			VALUES (?, ?, ?, ?)
		`, field.Name, field.CategoryID, ts, ts)
		if err != nil {
			return err
		}

		id, err := result.LastInsertId()
		if err != nil {
			return err
		}

		if _, err := tx.q.ExecContext(ctx, `
			INSERT INTO field_values (value, field_id, article_id, created_at, updated_at)
			SELECT '', ?, id, ?, ?
			FROM articles
			WHERE category_id = ?
		`, id, ts, ts, field.CategoryID); err != nil {
			return err
		}

		field.ID = id
		field.CreatedAt = ts
		field.UpdatedAt = ts
		return nil
	})
}

// GetField retrieves a Field by ID
func (r *Repository) GetField(ctx context.Context, fieldID int64) (*models.Field, error) {
	var field models.Field
	err := r.q.QueryRowContext(ctx, `
		SELECT id, name, category_id, created_at, updated_at
		FROM fields
		WHERE id = ?
	`, fieldID).Scan(&field.ID, &field.Name, &field.CategoryID, &field.CreatedAt, &field.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &field, nil
}

// ListFieldsByCategory returns a Category's Fields in creation order
func (r *Repository) ListFieldsByCategory(ctx context.Context, categoryID int64) ([]models.Field, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, name, category_id, created_at, updated_at
		FROM fields
		WHERE category_id = ?
		ORDER BY id ASC
	`, categoryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	fields := make([]models.Field, 0)
	for rows.Next() {
		var field models.Field
		if err := rows.Scan(&field.ID, &field.Name, &field.CategoryID, &field.CreatedAt, &field.UpdatedAt); err != nil {
			return nil, err
		}
		fields = append(fields, field)
	}

	return fields, rows.Err()
}

// deleteFieldsByCategory removes a Category's Fields together with any
// FieldValue still pointing at them.
func (r *Repository) deleteFieldsByCategory(ctx context.Context, categoryID int64) error {
	if _, err := r.q.ExecContext(ctx, `
		DELETE FROM field_values
		WHERE field_id IN (SELECT id FROM fields WHERE category_id = ?)
	`, categoryID); err != nil {
		return err
	}

	_, err := r.q.ExecContext(ctx, "DELETE FROM fields WHERE category_id = ?", categoryID)
	return err
}
