package usecase

import (
	"context"

	"github.com/zots0127/chatfs/internal/domain/repository"
)

// Resolver translates human-supplied names into row IDs so the filesystem
// usecase never deals with raw lookup misses.
type Resolver struct {
	repo repository.FileSystemRepository
}

// NewResolver creates a new resolver over the given store.
func NewResolver(repo repository.FileSystemRepository) *Resolver {
	return &Resolver{repo: repo}
}

// ResolveFolder maps (tenant, folder name) to a folder ID. Fails with
// repository.ErrFolderNotFound when no folder matches.
func (r *Resolver) ResolveFolder(ctx context.Context, tenantID, name string) (int64, error) {
	return r.repo.GetFolderID(ctx, tenantID, name)
}

// ResolveFile maps (tenant, folder name, file name) to a file ID. A miss
// on the folder fails with repository.ErrFolderNotFound before the file is
// ever looked up; a miss on the file fails with repository.ErrFileNotFound.
func (r *Resolver) ResolveFile(ctx context.Context, tenantID, folderName, fileName string) (int64, error) {
	folderID, err := r.repo.GetFolderID(ctx, tenantID, folderName)
	if err != nil {
		return 0, err
	}
	return r.repo.GetFileID(ctx, folderID, fileName)
}
