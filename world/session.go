package world

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"world-scribe/database"
	"world-scribe/services"
	"world-scribe/storage"
)

// Session is everything bound to one open World: its database, its image
// folder and the entity services operating on them.
type Session struct {
	Name       string
	FolderPath string

	DB     *database.DB
	Repo   *database.Repository
	Images *storage.ImageStore

	Categories  *services.CategoryService
	Fields      *services.FieldService
	Articles    *services.ArticleService
	FieldValues *services.FieldValueService
	Connections *services.ConnectionService
	Snippets    *services.SnippetService
}

// openSession opens the database inside folderPath, brings the schema to the
// baseline version (or the latest one) and binds the image folder.
func openSession(ctx context.Context, folderPath string, migrateToLatest bool, logger *slog.Logger) (*Session, error) {
	db, err := database.New(filepath.Join(folderPath, database.FileName))
	if err != nil {
		return nil, err
	}

	if err := db.MigrateTo(ctx, database.BaselineVersion); err != nil {
		db.Close()
		return nil, err
	}
	if migrateToLatest {
		if err := db.Migrate(ctx); err != nil {
			db.Close()
			return nil, err
		}
	}

	images, err := storage.NewOSImageStore(filepath.Join(folderPath, storage.UploadsDir))
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to bind image folder: %w", err)
	}

	repo := database.NewRepository(db)
	name := filepath.Base(folderPath)
	logger = logger.With("world", name)

	return &Session{
		Name:        name,
		FolderPath:  folderPath,
		DB:          db,
		Repo:        repo,
		Images:      images,
		Categories:  services.NewCategoryService(repo, images, logger),
		Fields:      services.NewFieldService(repo),
		Articles:    services.NewArticleService(repo, images, logger),
		FieldValues: services.NewFieldValueService(repo),
		Connections: services.NewConnectionService(repo),
		Snippets:    services.NewSnippetService(repo),
	}, nil
}

// close releases the database handle. Only the Manager may call it; a Session
// handed to request handlers must not satisfy io.Closer, since fasthttp closes
// every Closer stored in a request's user values.
func (s *Session) close() error {
	return s.DB.Close()
}
