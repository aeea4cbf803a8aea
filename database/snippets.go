package database

import (
	"context"
	"database/sql"
	"errors"

	"world-scribe/models"
)

// ==================== SNIPPET OPERATIONS ====================

const snippetColumns = `id, name, content, article_id, created_at, updated_at`

func scanSnippet(row rowScanner) (*models.Snippet, error) {
	var s models.Snippet
	if err := row.Scan(&s.ID, &s.Name, &s.Content, &s.ArticleID, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}

// CreateSnippet inserts a Snippet attached to an Article
func (r *Repository) CreateSnippet(ctx context.Context, s *models.Snippet) error {
	ts := now()
	result, err := r.q.ExecContext(ctx, `
		INSERT INTO snippets (name, content, article_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`, s.Name, s.Content, s.ArticleID, ts, ts)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	s.ID = id
	s.CreatedAt = ts
	s.UpdatedAt = ts
	return nil
}

// GetSnippet retrieves a Snippet by ID
func (r *Repository) GetSnippet(ctx context.Context, snippetID int64) (*models.Snippet, error) {
	s, err := scanSnippet(r.q.QueryRowContext(ctx,
		`SELECT `+snippetColumns+` FROM snippets WHERE id = ?`, snippetID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return s, err
}

// UpdateSnippet writes name and content
func (r *Repository) UpdateSnippet(ctx context.Context, snippetID int64, name, content string) error {
	_, err := r.q.ExecContext(ctx, `
		UPDATE snippets SET
			name = ?,
			content = ?,
			updated_at = ?
		WHERE id = ?
	`, name, content, now(), snippetID)
	return err
}

// DeleteSnippet removes a Snippet by ID
func (r *Repository) DeleteSnippet(ctx context.Context, snippetID int64) error {
	_, err := r.q.ExecContext(ctx, "DELETE FROM snippets WHERE id = ?", snippetID)
	return err
}

// ListSnippetsForArticle returns an Article's Snippets ordered by name, then ID
func (r *Repository) ListSnippetsForArticle(ctx context.Context, articleID int64) ([]models.Snippet, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT `+snippetColumns+`
		FROM snippets
		WHERE article_id = ?
		ORDER BY name ASC, id ASC
	`, articleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	snippets := make([]models.Snippet, 0)
	for rows.Next() {
		s, err := scanSnippet(rows)
		if err != nil {
			return nil, err
		}
		snippets = append(snippets, *s)
	}

	return snippets, rows.Err()
}
