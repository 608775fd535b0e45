package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/zots0127/chatfs/internal/domain/entities"
	"github.com/zots0127/chatfs/internal/domain/repository"
)

// ExportArchiver receives a copy of every successful folder export, for
// durable archiving outside the chat transport.
type ExportArchiver interface {
	Archive(ctx context.Context, fileName, content string) error
}

// FileSystemUseCase implements the command-level filesystem operations.
// Each operation validates its arguments before touching the store, and a
// failed resolution step stops the operation before any mutation runs.
type FileSystemUseCase struct {
	repo     repository.FileSystemRepository
	resolver *Resolver
	archiver ExportArchiver
}

// NewFileSystemUseCase creates a new filesystem use case. The archiver is
// optional; pass nil to disable export archiving.
func NewFileSystemUseCase(repo repository.FileSystemRepository, resolver *Resolver, archiver ExportArchiver) *FileSystemUseCase {
	return &FileSystemUseCase{
		repo:     repo,
		resolver: resolver,
		archiver: archiver,
	}
}

// Init registers the tenant. Re-initializing an existing tenant is a
// no-op, never an error.
func (u *FileSystemUseCase) Init(ctx context.Context, tenantID string) error {
	return u.repo.EnsureTenant(ctx, tenantID)
}

// CreateFolder creates a folder named by the first argument; any remaining
// arguments become the description.
func (u *FileSystemUseCase) CreateFolder(ctx context.Context, tenantID, actor string, args []string) (*entities.Folder, error) {
	if len(args) < 1 || args[0] == "" {
		return nil, fmt.Errorf("%w: please provide a folder name", repository.ErrInvalidArgument)
	}

	folder := &entities.Folder{
		TenantID:    tenantID,
		Name:        args[0],
		Description: strings.Join(args[1:], " "),
		CreatedBy:   actor,
	}
	if folder.Description == "" {
		folder.Description = entities.DefaultFolderDescription
	}

	id, err := u.repo.CreateFolder(ctx, folder)
	if err != nil {
		return nil, err
	}
	folder.ID = id

	return folder, nil
}

// AddFile creates a file under an existing folder. Arguments are folder
// name, file name, then the content tokens, which are joined with single
// spaces.
func (u *FileSystemUseCase) AddFile(ctx context.Context, tenantID, actor string, args []string) (*entities.File, error) {
	if len(args) < 3 {
		return nil, fmt.Errorf("%w: usage: addfile <folder> <filename> <content>", repository.ErrInvalidArgument)
	}

	folderID, err := u.resolver.ResolveFolder(ctx, tenantID, args[0])
	if err != nil {
		return nil, err
	}

	content := strings.Join(args[2:], " ")
	file := &entities.File{
		FolderID:  folderID,
		Name:      args[1],
		Content:   content,
		FileType:  entities.FileTypeOf(args[1]),
		Size:      int64(len(content)),
		CreatedBy: actor,
	}

	id, err := u.repo.CreateFile(ctx, file)
	if err != nil {
		return nil, err
	}
	file.ID = id

	return file, nil
}

// ViewFile returns a file's raw content.
func (u *FileSystemUseCase) ViewFile(ctx context.Context, tenantID string, args []string) (string, error) {
	if len(args) != 2 {
		return "", fmt.Errorf("%w: usage: view <folder> <filename>", repository.ErrInvalidArgument)
	}

	folderID, err := u.resolver.ResolveFolder(ctx, tenantID, args[0])
	if err != nil {
		return "", err
	}

	return u.repo.GetFileContent(ctx, folderID, args[1])
}

// List renders the tenant's full folder tree as a sequence of pages.
func (u *FileSystemUseCase) List(ctx context.Context, tenantID string) ([]entities.Page, error) {
	folders, err := u.repo.ListFolders(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	listings := make([]*entities.FolderListing, 0, len(folders))
	for _, folder := range folders {
		files, err := u.repo.ListFiles(ctx, folder.ID)
		if err != nil {
			return nil, err
		}
		listings = append(listings, &entities.FolderListing{Folder: folder, Files: files})
	}

	return BuildPages(listings), nil
}

// DeleteFile removes one file.
func (u *FileSystemUseCase) DeleteFile(ctx context.Context, tenantID string, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: usage: deletefile <folder> <filename>", repository.ErrInvalidArgument)
	}

	fileID, err := u.resolver.ResolveFile(ctx, tenantID, args[0], args[1])
	if err != nil {
		return err
	}

	return u.repo.DeleteFile(ctx, fileID)
}

// DeleteFolder removes a folder and its files. The whole argument sequence
// is joined into the folder name, so names containing spaces are
// deletable even though createfolder cannot produce them.
func (u *FileSystemUseCase) DeleteFolder(ctx context.Context, tenantID string, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("%w: please provide a folder name", repository.ErrInvalidArgument)
	}

	folderID, err := u.resolver.ResolveFolder(ctx, tenantID, strings.Join(args, " "))
	if err != nil {
		return err
	}

	return u.repo.DeleteFolder(ctx, folderID)
}

// Stats returns the tenant's folder and file counts.
func (u *FileSystemUseCase) Stats(ctx context.Context, tenantID string) (*entities.Stats, error) {
	return u.repo.Stats(ctx, tenantID)
}

// ExportFolder concatenates a folder's files into one text blob and
// suggests a timestamped download filename. Exporting an empty folder
// fails with repository.ErrEmptyFolder.
func (u *FileSystemUseCase) ExportFolder(ctx context.Context, tenantID string, args []string) (*entities.Export, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("%w: usage: export <folder>", repository.ErrInvalidArgument)
	}

	folderName := args[0]
	folderID, err := u.resolver.ResolveFolder(ctx, tenantID, folderName)
	if err != nil {
		return nil, err
	}

	files, err := u.repo.ListFiles(ctx, folderID)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, repository.ErrEmptyFolder
	}

	var blob strings.Builder
	for _, file := range files {
		blob.WriteString(fmt.Sprintf("--- %s ---\n%s\n\n", file.Name, file.Content))
	}

	export := &entities.Export{
		FileName: fmt.Sprintf("%s_export_%d.txt", folderName, time.Now().UnixMilli()),
		Content:  blob.String(),
	}

	if u.archiver != nil {
		if err := u.archiver.Archive(ctx, export.FileName, export.Content); err != nil {
			log.Printf("Warning: failed to archive export %s: %v", export.FileName, err)
		}
	}

	return export, nil
}
