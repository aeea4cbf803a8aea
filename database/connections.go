package database

import (
	"context"
	"database/sql"
	"errors"

	"world-scribe/models"
)

// ==================== CONNECTION OPERATIONS ====================

const connectionColumns = `id, main_article_id, other_article_id, other_article_role, connection_description_id, created_at, updated_at`

func scanConnection(row rowScanner) (*models.Connection, error) {
	var c models.Connection
	if err := row.Scan(
		&c.ID, &c.MainArticleID, &c.OtherArticleID, &c.OtherArticleRole,
		&c.ConnectionDescriptionID, &c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &c, nil
}

// CreateConnectionDescription inserts the shared narrative of one or more Connections
func (r *Repository) CreateConnectionDescription(ctx context.Context, content string) (*models.ConnectionDescription, error) {
	ts := now()
	result, err := r.q.ExecContext(ctx, `
		INSERT INTO connection_descriptions (content, created_at, updated_at)
		VALUES (?, ?, ?)
	`, content, ts, ts)
	if err != nil {
		return nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	return &models.ConnectionDescription{ID: id, Content: content, CreatedAt: ts, UpdatedAt: ts}, nil
}

// GetConnectionDescription retrieves a ConnectionDescription by ID
func (r *Repository) GetConnectionDescription(ctx context.Context, descriptionID int64) (*models.ConnectionDescription, error) {
	var d models.ConnectionDescription
	err := r.q.QueryRowContext(ctx, `
		SELECT id, content, created_at, updated_at
		FROM connection_descriptions
		WHERE id = ?
	`, descriptionID).Scan(&d.ID, &d.Content, &d.CreatedAt, &d.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// UpdateConnectionDescription rewrites the content shared by every Connection referencing it
func (r *Repository) UpdateConnectionDescription(ctx context.Context, descriptionID int64, content string) error {
	_, err := r.q.ExecContext(ctx, `
		UPDATE connection_descriptions SET
			content = ?,
			updated_at = ?
		WHERE id = ?
	`, content, now(), descriptionID)
	return err
}

// deleteConnectionDescriptionIfOrphaned removes a ConnectionDescription once no
// Connection references it. It reports whether a row was deleted.
func (r *Repository) deleteConnectionDescriptionIfOrphaned(ctx context.Context, descriptionID int64) (bool, error) {
	result, err := r.q.ExecContext(ctx, `
		DELETE FROM connection_descriptions
		WHERE id = ?
		  AND NOT EXISTS (
			SELECT 1 FROM connections WHERE connection_description_id = ?
		  )
	`, descriptionID, descriptionID)
	if err != nil {
		return false, err
	}

	n, err := result.RowsAffected()
	return n > 0, err
}

// CreateConnection inserts a directed Connection from main to other
func (r *Repository) CreateConnection(ctx context.Context, c *models.Connection) error {
	ts := now()
	result, err := r.q.ExecContext(ctx, `
		INSERT INTO connections (main_article_id, other_article_id, other_article_role,
			connection_description_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, c.MainArticleID, c.OtherArticleID, c.OtherArticleRole, c.ConnectionDescriptionID, ts, ts)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	c.ID = id
	c.CreatedAt = ts
	c.UpdatedAt = ts
	return nil
}

// GetConnection retrieves a Connection by ID
func (r *Repository) GetConnection(ctx context.Context, connectionID int64) (*models.Connection, error) {
	c, err := scanConnection(r.q.QueryRowContext(ctx,
		`SELECT `+connectionColumns+` FROM connections WHERE id = ?`, connectionID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return c, err
}

// UpdateConnectionRole changes how the other Article is described from the main Article
func (r *Repository) UpdateConnectionRole(ctx context.Context, connectionID int64, role string) error {
	_, err := r.q.ExecContext(ctx, `
		UPDATE connections SET
			other_article_role = ?,
			updated_at = ?
		WHERE id = ?
	`, role, now(), connectionID)
	return err
}

// DeleteConnection removes a Connection and, if it was the last one referencing
// it, its ConnectionDescription. Returns the deleted row, or nil if none existed.
func (r *Repository) DeleteConnection(ctx context.Context, connectionID int64) (*models.Connection, error) {
	var deleted *models.Connection

	err := r.WithTx(ctx, func(tx *Repository) error {
		c, err := tx.GetConnection(ctx, connectionID)
		if err != nil || c == nil {
			return err
		}

		if _, err := tx.q.ExecContext(ctx, "DELETE FROM connections WHERE id = ?", connectionID); err != nil {
			return err
		}
		if _, err := tx.deleteConnectionDescriptionIfOrphaned(ctx, c.ConnectionDescriptionID); err != nil {
			return err
		}

		deleted = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}

// ListConnectionsForArticle returns the Connections whose main Article is articleID,
// ordered by the other Article's name, then ID
func (r *Repository) ListConnectionsForArticle(ctx context.Context, articleID int64) ([]models.ConnectionSummary, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT connections.id, connections.main_article_id, connections.other_article_id,
		       articles.name, connections.other_article_role,
		       connections.connection_description_id, connection_descriptions.content
		FROM connections
			INNER JOIN articles ON articles.id = connections.other_article_id
			INNER JOIN connection_descriptions ON connection_descriptions.id = connections.connection_description_id
		WHERE connections.main_article_id = ?
		ORDER BY articles.name ASC, connections.id ASC
	`, articleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	connections := make([]models.ConnectionSummary, 0)
	for rows.Next() {
		var c models.ConnectionSummary
		if err := rows.Scan(
			&c.ID, &c.MainArticleID, &c.OtherArticleID, &c.OtherArticleName,
			&c.OtherArticleRole, &c.ConnectionDescriptionID, &c.Description,
		); err != nil {
			return nil, err
		}
		connections = append(connections, c)
	}

	return connections, rows.Err()
}
