package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/zots0127/chatfs/internal/domain/entities"
	"github.com/zots0127/chatfs/internal/domain/repository"
)

// SQLiteRepository implements repository.FileSystemRepository on top of a
// single long-lived SQLite handle. The driver serializes conflicting
// writes; there is no cross-command transaction.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository opens the database and bootstraps the schema.
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	// Configure connection pool
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	if err := db.Ping(); err != nil {
		return nil, err
	}

	repo := &SQLiteRepository{db: db}
	if err := repo.initTables(); err != nil {
		return nil, err
	}

	return repo, nil
}

func (r *SQLiteRepository) initTables() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS tenants (
			tenant_id TEXT PRIMARY KEY,
			total_folders INTEGER DEFAULT 0,
			total_files INTEGER DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS folders (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			tenant_id TEXT NOT NULL,
			folder_name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			created_by TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			UNIQUE(tenant_id, folder_name)
		)`,

		`CREATE INDEX IF NOT EXISTS idx_folders_tenant ON folders(tenant_id)`,

		`CREATE TABLE IF NOT EXISTS files (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			folder_id INTEGER NOT NULL,
			file_name TEXT NOT NULL,
			content TEXT NOT NULL DEFAULT '',
			file_type TEXT NOT NULL DEFAULT '',
			size INTEGER NOT NULL DEFAULT 0,
			created_by TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			UNIQUE(folder_id, file_name)
		)`,

		`CREATE INDEX IF NOT EXISTS idx_files_folder ON files(folder_id)`,
	}

	for _, query := range queries {
		if _, err := r.db.Exec(query); err != nil {
			return fmt.Errorf("failed to create filesystem tables: %w", err)
		}
	}

	return nil
}

// EnsureTenant registers a tenant row if absent.
func (r *SQLiteRepository) EnsureTenant(ctx context.Context, tenantID string) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT OR IGNORE INTO tenants (tenant_id) VALUES (?)",
		tenantID,
	)
	return err
}

// CreateFolder inserts a folder and returns its ID.
func (r *SQLiteRepository) CreateFolder(ctx context.Context, folder *entities.Folder) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO folders (tenant_id, folder_name, description, created_by) VALUES (?, ?, ?, ?)",
		folder.TenantID, folder.Name, folder.Description, folder.CreatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, repository.ErrAlreadyExists
		}
		return 0, err
	}
	return result.LastInsertId()
}

// GetFolderID looks up a folder by name within a tenant.
func (r *SQLiteRepository) GetFolderID(ctx context.Context, tenantID, name string) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx,
		"SELECT id FROM folders WHERE tenant_id = ? AND folder_name = ?",
		tenantID, name,
	).Scan(&id)
	if err == sql.ErrNoRows {
		return 0, repository.ErrFolderNotFound
	}
	if err != nil {
		return 0, err
	}
	return id, nil
}

// CreateFile inserts a file under a folder and returns its ID.
func (r *SQLiteRepository) CreateFile(ctx context.Context, file *entities.File) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO files (folder_id, file_name, content, file_type, size, created_by) VALUES (?, ?, ?, ?, ?, ?)",
		file.FolderID, file.Name, file.Content, file.FileType, file.Size, file.CreatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, repository.ErrAlreadyExists
		}
		return 0, err
	}
	return result.LastInsertId()
}

// GetFileID looks up a file by name within a folder.
func (r *SQLiteRepository) GetFileID(ctx context.Context, folderID int64, name string) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx,
		"SELECT id FROM files WHERE folder_id = ? AND file_name = ?",
		folderID, name,
	).Scan(&id)
	if err == sql.ErrNoRows {
		return 0, repository.ErrFileNotFound
	}
	if err != nil {
		return 0, err
	}
	return id, nil
}

// GetFileContent returns a file's content by name within a folder.
func (r *SQLiteRepository) GetFileContent(ctx context.Context, folderID int64, name string) (string, error) {
	var content string
	err := r.db.QueryRowContext(ctx,
		"SELECT content FROM files WHERE folder_id = ? AND file_name = ?",
		folderID, name,
	).Scan(&content)
	if err == sql.ErrNoRows {
		return "", repository.ErrFileNotFound
	}
	if err != nil {
		return "", err
	}
	return content, nil
}

// ListFolders returns a tenant's folders in creation order.
func (r *SQLiteRepository) ListFolders(ctx context.Context, tenantID string) ([]*entities.Folder, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, tenant_id, folder_name, description, created_by, created_at
		FROM folders WHERE tenant_id = ? ORDER BY id`,
		tenantID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query folders: %w", err)
	}
	defer rows.Close()

	var folders []*entities.Folder
	for rows.Next() {
		var f entities.Folder
		if err := rows.Scan(&f.ID, &f.TenantID, &f.Name, &f.Description, &f.CreatedBy, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan folder row: %w", err)
		}
		folders = append(folders, &f)
	}

	return folders, rows.Err()
}

// ListFiles returns a folder's files in creation order.
func (r *SQLiteRepository) ListFiles(ctx context.Context, folderID int64) ([]*entities.File, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, folder_id, file_name, content, file_type, size, created_by, created_at
		FROM files WHERE folder_id = ? ORDER BY id`,
		folderID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query files: %w", err)
	}
	defer rows.Close()

	var files []*entities.File
	for rows.Next() {
		var f entities.File
		if err := rows.Scan(&f.ID, &f.FolderID, &f.Name, &f.Content, &f.FileType, &f.Size, &f.CreatedBy, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan file row: %w", err)
		}
		files = append(files, &f)
	}

	return files, rows.Err()
}

// DeleteFile removes one file by ID.
func (r *SQLiteRepository) DeleteFile(ctx context.Context, fileID int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM files WHERE id = ?", fileID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return repository.ErrFileNotFound
	}
	return nil
}

// DeleteFolder removes a folder and its files atomically, so a folder
// deletion never leaves orphaned file rows behind.
func (r *SQLiteRepository) DeleteFolder(ctx context.Context, folderID int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM files WHERE folder_id = ?", folderID); err != nil {
		return err
	}

	result, err := tx.ExecContext(ctx, "DELETE FROM folders WHERE id = ?", folderID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return repository.ErrFolderNotFound
	}

	return tx.Commit()
}

// Stats counts a tenant's folders and files with one join.
func (r *SQLiteRepository) Stats(ctx context.Context, tenantID string) (*entities.Stats, error) {
	var stats entities.Stats
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(DISTINCT folders.id), COUNT(files.id)
		FROM folders
		LEFT JOIN files ON folders.id = files.folder_id
		WHERE folders.tenant_id = ?`,
		tenantID,
	).Scan(&stats.Folders, &stats.Files)
	if err != nil {
		return nil, fmt.Errorf("failed to query stats: %w", err)
	}
	return &stats, nil
}

// Close closes the database connection.
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
