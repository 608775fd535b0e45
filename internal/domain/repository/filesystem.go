package repository

import (
	"context"
	"errors"

	"github.com/zots0127/chatfs/internal/domain/entities"
)

// FileSystemRepository defines the persistence contract for the virtual
// filesystem. Every lookup and mutation is scoped by tenant first; a
// folder ID only reaches a file operation after a tenant-scoped
// resolution.
type FileSystemRepository interface {
	// EnsureTenant registers a tenant if absent. Calling it again for the
	// same tenant is a no-op, never an error.
	EnsureTenant(ctx context.Context, tenantID string) error

	// CreateFolder inserts a folder and returns its ID. Returns
	// ErrAlreadyExists when the tenant already has a folder of that name.
	CreateFolder(ctx context.Context, folder *entities.Folder) (int64, error)

	// GetFolderID looks up a folder by name within a tenant. Returns
	// ErrFolderNotFound when no row matches.
	GetFolderID(ctx context.Context, tenantID, name string) (int64, error)

	// CreateFile inserts a file under a folder and returns its ID.
	// Returns ErrAlreadyExists when the folder already has a file of that
	// name.
	CreateFile(ctx context.Context, file *entities.File) (int64, error)

	// GetFileID looks up a file by name within a folder. Returns
	// ErrFileNotFound when no row matches.
	GetFileID(ctx context.Context, folderID int64, name string) (int64, error)

	// GetFileContent returns a file's content by name within a folder.
	// Returns ErrFileNotFound when no row matches.
	GetFileContent(ctx context.Context, folderID int64, name string) (string, error)

	// ListFolders returns a tenant's folders in creation order.
	ListFolders(ctx context.Context, tenantID string) ([]*entities.Folder, error)

	// ListFiles returns a folder's files in creation order.
	ListFiles(ctx context.Context, folderID int64) ([]*entities.File, error)

	// DeleteFile removes one file by ID. Returns ErrFileNotFound when no
	// row matched.
	DeleteFile(ctx context.Context, fileID int64) error

	// DeleteFolder removes a folder and all of its files in a single
	// transaction. Returns ErrFolderNotFound when no folder row matched.
	DeleteFolder(ctx context.Context, folderID int64) error

	// Stats returns the tenant's distinct folder count and total file
	// count. Both are zero for a tenant with no folders.
	Stats(ctx context.Context, tenantID string) (*entities.Stats, error)
}

// Error kinds surfaced by the filesystem core. The handler maps these to
// user-visible failures; anything else is a storage failure and is
// reported generically.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrFolderNotFound  = errors.New("folder not found")
	ErrFileNotFound    = errors.New("file not found")
	ErrEmptyFolder     = errors.New("no files in the folder")
	ErrAlreadyExists   = errors.New("already exists")
)
