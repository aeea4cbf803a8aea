package world

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"world-scribe/database"
	"world-scribe/pagination"
	"world-scribe/services"
	"world-scribe/storage"
)

// Manager owns the single open World of the process.
type Manager struct {
	mu      sync.RWMutex
	session *Session
	logger  *slog.Logger
}

func NewManager(logger *slog.Logger) *Manager {
	return &Manager{logger: logger}
}

// Open closes any open World and opens the one at folderPath. On failure no
// World is left open.
func (m *Manager) Open(ctx context.Context, folderPath string, migrateToLatest bool) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closeLocked()

	info, err := os.Stat(folderPath)
	if err != nil || !info.IsDir() {
		return nil, services.NewNotFoundError("World at %q not found", folderPath)
	}

	session, err := openSession(ctx, folderPath, migrateToLatest, m.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open World at %q: %w", folderPath, err)
	}

	m.session = session
	m.logger.Info("world opened", "path", folderPath, "name", session.Name)
	return session, nil
}

// Close closes the open World. It is a no-op when nothing is open.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.closeLocked()
}

func (m *Manager) closeLocked() error {
	if m.session == nil {
		return nil
	}

	session := m.session
	m.session = nil

	if err := session.close(); err != nil {
		m.logger.Warn("failed to close world database", "path", session.FolderPath, "error", err)
		return err
	}
	m.logger.Info("world closed", "path", session.FolderPath)
	return nil
}

// Current returns the open World, or a NotConnectedError.
func (m *Manager) Current() (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.session == nil {
		return nil, services.ErrNotConnected
	}
	return m.session, nil
}

// Acquire returns the open World together with a release func. Until release
// is called the World cannot be closed or replaced, so a request holding it
// never sees its database closed underneath it. Callers must not call other
// Manager methods before releasing.
func (m *Manager) Acquire() (*Session, func(), error) {
	m.mu.RLock()
	if m.session == nil {
		m.mu.RUnlock()
		return nil, nil, services.ErrNotConnected
	}

	var once sync.Once
	release := func() { once.Do(m.mu.RUnlock) }
	return m.session, release, nil
}

// CurrentWorldName returns the folder name of the open World.
func (m *Manager) CurrentWorldName() (string, error) {
	session, err := m.Current()
	if err != nil {
		return "", err
	}
	return session.Name, nil
}

// Create makes a new World folder under worldsFolderPath with its uploads
// folder, the latest schema and the default Categories. It does not open the
// World. A failure after the folder was made removes it again.
func (m *Manager) Create(ctx context.Context, worldsFolderPath, name string) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}

	folderPath := filepath.Join(worldsFolderPath, name)
	if _, err := os.Stat(folderPath); err == nil {
		return "", services.NewConflictError("A World already exists with the name %s", name)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return "", err
	}

	if err := os.MkdirAll(worldsFolderPath, 0755); err != nil {
		return "", fmt.Errorf("failed to create worlds folder: %w", err)
	}
	if err := os.Mkdir(folderPath, 0755); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return "", services.NewConflictError("A World already exists with the name %s", name)
		}
		return "", fmt.Errorf("failed to create world folder: %w", err)
	}

	if err := initWorld(ctx, folderPath); err != nil {
		if rmErr := os.RemoveAll(folderPath); rmErr != nil {
			m.logger.Warn("failed to remove partial world folder", "path", folderPath, "error", rmErr)
		}
		return "", err
	}

	m.logger.Info("world created", "path", folderPath)
	return folderPath, nil
}

func initWorld(ctx context.Context, folderPath string) error {
	if err := os.MkdirAll(filepath.Join(folderPath, storage.UploadsDir), 0755); err != nil {
		return fmt.Errorf("failed to create uploads folder: %w", err)
	}

	db, err := database.New(filepath.Join(folderPath, database.FileName))
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		return err
	}

	if err := database.NewRepository(db).SeedDefaultCategories(ctx); err != nil {
		return fmt.Errorf("failed to seed default categories: %w", err)
	}
	return nil
}

// ListWorlds returns one page of the folder names directly under rootPath,
// ordered by name.
func (m *Manager) ListWorlds(rootPath string, page, size int) (pagination.Page[string], error) {
	entries, err := os.ReadDir(rootPath)
	if errors.Is(err, fs.ErrNotExist) {
		return pagination.Page[string]{}, services.NewNotFoundError("Folder at %q not found", rootPath)
	}
	if err != nil {
		return pagination.Page[string]{}, err
	}

	// ReadDir sorts by filename
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	return pagination.Slice(names, page, size), nil
}
