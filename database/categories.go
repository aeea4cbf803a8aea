package database

import (
	"context"
	"database/sql"
	"errors"

	"world-scribe/models"
	"world-scribe/pagination"
)

// ==================== CATEGORY OPERATIONS ====================

const categoryColumns = `id, name, description, image, icon, created_at, updated_at`

func scanCategory(row rowScanner) (*models.Category, error) {
	var category models.Category
	var description, icon sql.NullString
	var image models.NullImage

	if err := row.Scan(
		&category.ID, &category.Name, &description, &image, &icon,
		&category.CreatedAt, &category.UpdatedAt,
	); err != nil {
		return nil, err
	}

	category.Description = stringPtr(description)
	category.Icon = stringPtr(icon)
	category.Image = image.Ptr()
	return &category, nil
}

// CreateCategory inserts a Category and fills in its ID and timestamps
func (r *Repository) CreateCategory(ctx context.Context, category *models.Category) error {
	ts := now()
	result, err := r.q.ExecContext(ctx, `
		INSERT INTO categories (name, description, image, icon, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, category.Name, nullString(category.Description), category.Image, nullString(category.Icon), ts, ts)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	category.ID = id
	category.CreatedAt = ts
	category.UpdatedAt = ts
	return nil
}

// GetCategory retrieves a Category by ID
func (r *Repository) GetCategory(ctx context.Context, categoryID int64) (*models.Category, error) {
	category, err := scanCategory(r.q.QueryRowContext(ctx,
		`SELECT `+categoryColumns+` FROM categories WHERE id = ?`, categoryID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return category, err
}

// GetCategoryByName retrieves a Category by exact, case-sensitive name
func (r *Repository) GetCategoryByName(ctx context.Context, name string) (*models.Category, error) {
	category, err := scanCategory(r.q.QueryRowContext(ctx,
		`SELECT `+categoryColumns+` FROM categories WHERE name = ?`, name))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return category, err
}

// GetCategoryMetadata retrieves the Category projection without image and icon
func (r *Repository) GetCategoryMetadata(ctx context.Context, categoryID int64) (*models.CategoryMetadata, error) {
	var meta models.CategoryMetadata
	var description sql.NullString

	err := r.q.QueryRowContext(ctx, `
		SELECT id, name, description, created_at, updated_at
		FROM categories
		WHERE id = ?
	`, categoryID).Scan(&meta.ID, &meta.Name, &description, &meta.CreatedAt, &meta.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	meta.Description = stringPtr(description)
	return &meta, nil
}

// ListCategories returns one page of Categories ordered by name, then ID
func (r *Repository) ListCategories(ctx context.Context, page, size int) (pagination.Page[models.Category], error) {
	limit, offset := pagination.Window(page, size)

	rows, err := r.q.QueryContext(ctx, `
		SELECT `+categoryColumns+`
		FROM categories
		ORDER BY name ASC, id ASC
		LIMIT ? OFFSET ?
	`, limit, offset)
	if err != nil {
		return pagination.Page[models.Category]{}, err
	}
	defer rows.Close()

	categories := make([]models.Category, 0, limit)
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return pagination.Page[models.Category]{}, err
		}
		categories = append(categories, *category)
	}
	if err := rows.Err(); err != nil {
		return pagination.Page[models.Category]{}, err
	}

	return pagination.Trim(categories, size), nil
}

// UpdateCategoryName changes only the name and the update timestamp
func (r *Repository) UpdateCategoryName(ctx context.Context, categoryID int64, name string) error {
	_, err := r.q.ExecContext(ctx, `
		UPDATE categories SET
			name = ?,
			updated_at = ?
		WHERE id = ?
	`, name, now(), categoryID)
	return err
}

// UpdateCategoryDescription changes only the description and the update timestamp
func (r *Repository) UpdateCategoryDescription(ctx context.Context, categoryID int64, description string) error {
	_, err := r.q.ExecContext(ctx, `
		UPDATE categories SET
			description = ?,
			updated_at = ?
		WHERE id = ?
	`, description, now(), categoryID)
	return err
}

// UpdateCategoryImage replaces the image descriptor; nil clears it
func (r *Repository) UpdateCategoryImage(ctx context.Context, categoryID int64, image *models.ImageDescriptor) error {
	_, err := r.q.ExecContext(ctx, `
		UPDATE categories SET
			image = ?,
			updated_at = ?
		WHERE id = ?
	`, image, now(), categoryID)
	return err
}

// DeleteCategory removes only the Category row. Use DeleteCategoryCascade to
// remove its dependents as well.
func (r *Repository) DeleteCategory(ctx context.Context, categoryID int64) error {
	_, err := r.q.ExecContext(ctx, "DELETE FROM categories WHERE id = ?", categoryID)
	return err
}
