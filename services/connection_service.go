package services

import (
	"context"

	"world-scribe/database"
	"world-scribe/models"
)

// ConnectionService handles business logic for connections between articles
type ConnectionService struct {
	repo *database.Repository
}

func NewConnectionService(repo *database.Repository) *ConnectionService {
	return &ConnectionService{repo: repo}
}

// Create adds a directed Connection from the main Article to the other Article.
// The request carries either the content of a new ConnectionDescription or the
// ID of an existing one, so both directions of a relationship can share it.
func (cs *ConnectionService) Create(ctx context.Context, req models.CreateConnectionRequest) (*models.Connection, error) {
	if (req.Description == nil) == (req.ConnectionDescriptionID == nil) {
		return nil, NewValidationError("Exactly one of description or connectionDescriptionId is required")
	}
	if req.MainArticleID == req.OtherArticleID {
		return nil, NewValidationError("An Article cannot be connected to itself")
	}

	connection := &models.Connection{
		MainArticleID:    req.MainArticleID,
		OtherArticleID:   req.OtherArticleID,
		OtherArticleRole: req.OtherArticleRole,
	}

	err := cs.repo.WithTx(ctx, func(tx *database.Repository) error {
		for _, articleID := range []int64{req.MainArticleID, req.OtherArticleID} {
			article, err := tx.GetArticle(ctx, articleID)
			if err != nil {
				return err
			}
			if article == nil {
				return entityNotFound("Article", articleID)
			}
		}

		if req.ConnectionDescriptionID != nil {
			description, err := tx.GetConnectionDescription(ctx, *req.ConnectionDescriptionID)
			if err != nil {
				return err
			}
			if description == nil {
				return entityNotFound("ConnectionDescription", *req.ConnectionDescriptionID)
			}
			connection.ConnectionDescriptionID = description.ID
		} else {
			description, err := tx.CreateConnectionDescription(ctx, *req.Description)
			if err != nil {
				return err
			}
			connection.ConnectionDescriptionID = description.ID
		}

		return tx.CreateConnection(ctx, connection)
	})
	if err != nil {
		return nil, err
	}

	return connection, nil
}

func (cs *ConnectionService) Get(ctx context.Context, id int64) (*models.Connection, error) {
	connection, err := cs.repo.GetConnection(ctx, id)
	if err != nil {
		return nil, err
	}
	if connection == nil {
		return nil, entityNotFound("Connection", id)
	}
	return connection, nil
}

// ListForArticle returns the Connections whose main Article is articleID
func (cs *ConnectionService) ListForArticle(ctx context.Context, articleID int64) ([]models.ConnectionSummary, error) {
	article, err := cs.repo.GetArticle(ctx, articleID)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, entityNotFound("Article", articleID)
	}
	return cs.repo.ListConnectionsForArticle(ctx, articleID)
}

func (cs *ConnectionService) UpdateRole(ctx context.Context, id int64, role string) (*models.Connection, error) {
	if _, err := cs.Get(ctx, id); err != nil {
		return nil, err
	}

	if err := cs.repo.UpdateConnectionRole(ctx, id, role); err != nil {
		return nil, err
	}

	return cs.Get(ctx, id)
}

// UpdateDescription rewrites the content shared by every Connection that references it
func (cs *ConnectionService) UpdateDescription(ctx context.Context, descriptionID int64, content string) (*models.ConnectionDescription, error) {
	description, err := cs.repo.GetConnectionDescription(ctx, descriptionID)
	if err != nil {
		return nil, err
	}
	if description == nil {
		return nil, entityNotFound("ConnectionDescription", descriptionID)
	}

	if err := cs.repo.UpdateConnectionDescription(ctx, descriptionID, content); err != nil {
		return nil, err
	}

	return cs.repo.GetConnectionDescription(ctx, descriptionID)
}

// Delete removes a Connection, and its ConnectionDescription when no other
// Connection references it. Returns the Connection as it was before deletion.
func (cs *ConnectionService) Delete(ctx context.Context, id int64) (*models.Connection, error) {
	connection, err := cs.repo.DeleteConnection(ctx, id)
	if err != nil {
		return nil, err
	}
	if connection == nil {
		return nil, entityNotFound("Connection", id)
	}
	return connection, nil
}
