package repository

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/zots0127/chatfs/internal/domain/entities"
	domain "github.com/zots0127/chatfs/internal/domain/repository"
)

func newTestRepository(t *testing.T) *SQLiteRepository {
	t.Helper()

	tempDB, err := os.CreateTemp("", "test_chatfs.db")
	if err != nil {
		t.Fatalf("Failed to create temp database: %v", err)
	}
	t.Cleanup(func() {
		os.Remove(tempDB.Name())
		tempDB.Close()
	})

	repo, err := NewSQLiteRepository(tempDB.Name())
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	t.Cleanup(func() { repo.Close() })

	return repo
}

func mustCreateFolder(t *testing.T, repo *SQLiteRepository, tenantID, name string) int64 {
	t.Helper()
	id, err := repo.CreateFolder(context.Background(), &entities.Folder{
		TenantID:    tenantID,
		Name:        name,
		Description: entities.DefaultFolderDescription,
		CreatedBy:   "tester",
	})
	if err != nil {
		t.Fatalf("Failed to create folder %s: %v", name, err)
	}
	return id
}

func mustCreateFile(t *testing.T, repo *SQLiteRepository, folderID int64, name, content string) int64 {
	t.Helper()
	id, err := repo.CreateFile(context.Background(), &entities.File{
		FolderID:  folderID,
		Name:      name,
		Content:   content,
		FileType:  entities.FileTypeOf(name),
		Size:      int64(len(content)),
		CreatedBy: "tester",
	})
	if err != nil {
		t.Fatalf("Failed to create file %s: %v", name, err)
	}
	return id
}

func TestSQLiteRepository(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	t.Run("EnsureTenantIdempotent", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			if err := repo.EnsureTenant(ctx, "tenant-a"); err != nil {
				t.Fatalf("EnsureTenant call %d failed: %v", i+1, err)
			}
		}
	})

	t.Run("CreateAndResolveFolder", func(t *testing.T) {
		id := mustCreateFolder(t, repo, "tenant-a", "docs")

		got, err := repo.GetFolderID(ctx, "tenant-a", "docs")
		if err != nil {
			t.Fatalf("GetFolderID failed: %v", err)
		}
		if got != id {
			t.Errorf("Expected folder ID %d, got %d", id, got)
		}
	})

	t.Run("DuplicateFolderName", func(t *testing.T) {
		_, err := repo.CreateFolder(ctx, &entities.Folder{TenantID: "tenant-a", Name: "docs"})
		if !errors.Is(err, domain.ErrAlreadyExists) {
			t.Errorf("Expected ErrAlreadyExists, got %v", err)
		}
	})

	t.Run("TenantIsolation", func(t *testing.T) {
		// The same folder name is legal in a different tenant and must
		// never be visible across the boundary.
		mustCreateFolder(t, repo, "tenant-b", "docs")

		folders, err := repo.ListFolders(ctx, "tenant-b")
		if err != nil {
			t.Fatalf("ListFolders failed: %v", err)
		}
		if len(folders) != 1 {
			t.Fatalf("Expected 1 folder for tenant-b, got %d", len(folders))
		}

		mustCreateFolder(t, repo, "tenant-b", "only-b")
		if _, err := repo.GetFolderID(ctx, "tenant-a", "only-b"); !errors.Is(err, domain.ErrFolderNotFound) {
			t.Errorf("Expected ErrFolderNotFound across tenants, got %v", err)
		}
	})

	t.Run("FileRoundTrip", func(t *testing.T) {
		folderID := mustCreateFolder(t, repo, "tenant-c", "notes")
		mustCreateFile(t, repo, folderID, "notes.txt", "hello world")

		content, err := repo.GetFileContent(ctx, folderID, "notes.txt")
		if err != nil {
			t.Fatalf("GetFileContent failed: %v", err)
		}
		if content != "hello world" {
			t.Errorf("Expected content %q, got %q", "hello world", content)
		}

		files, err := repo.ListFiles(ctx, folderID)
		if err != nil {
			t.Fatalf("ListFiles failed: %v", err)
		}
		if len(files) != 1 || files[0].FileType != "txt" || files[0].Size != int64(len("hello world")) {
			t.Errorf("Unexpected file row: %+v", files[0])
		}
	})

	t.Run("DuplicateFileName", func(t *testing.T) {
		folderID, err := repo.GetFolderID(ctx, "tenant-c", "notes")
		if err != nil {
			t.Fatalf("GetFolderID failed: %v", err)
		}
		_, err = repo.CreateFile(ctx, &entities.File{FolderID: folderID, Name: "notes.txt"})
		if !errors.Is(err, domain.ErrAlreadyExists) {
			t.Errorf("Expected ErrAlreadyExists, got %v", err)
		}
	})

	t.Run("DeleteMissingFile", func(t *testing.T) {
		if err := repo.DeleteFile(ctx, 99999); !errors.Is(err, domain.ErrFileNotFound) {
			t.Errorf("Expected ErrFileNotFound, got %v", err)
		}
	})

	t.Run("CascadingFolderDelete", func(t *testing.T) {
		folderID := mustCreateFolder(t, repo, "tenant-d", "scratch")
		mustCreateFile(t, repo, folderID, "a.txt", "a")
		mustCreateFile(t, repo, folderID, "b.txt", "b")

		if err := repo.DeleteFolder(ctx, folderID); err != nil {
			t.Fatalf("DeleteFolder failed: %v", err)
		}

		if _, err := repo.GetFolderID(ctx, "tenant-d", "scratch"); !errors.Is(err, domain.ErrFolderNotFound) {
			t.Errorf("Expected ErrFolderNotFound after delete, got %v", err)
		}

		// No orphaned file rows may survive the folder.
		files, err := repo.ListFiles(ctx, folderID)
		if err != nil {
			t.Fatalf("ListFiles failed: %v", err)
		}
		if len(files) != 0 {
			t.Errorf("Expected no files after cascade, got %d", len(files))
		}

		stats, err := repo.Stats(ctx, "tenant-d")
		if err != nil {
			t.Fatalf("Stats failed: %v", err)
		}
		if stats.Folders != 0 || stats.Files != 0 {
			t.Errorf("Expected empty stats after cascade, got %+v", stats)
		}
	})

	t.Run("DeleteMissingFolder", func(t *testing.T) {
		if err := repo.DeleteFolder(ctx, 99999); !errors.Is(err, domain.ErrFolderNotFound) {
			t.Errorf("Expected ErrFolderNotFound, got %v", err)
		}
	})

	t.Run("StatsJoin", func(t *testing.T) {
		folderID := mustCreateFolder(t, repo, "tenant-e", "full")
		mustCreateFolder(t, repo, "tenant-e", "empty")
		mustCreateFile(t, repo, folderID, "one.md", "1")
		mustCreateFile(t, repo, folderID, "two.md", "2")

		stats, err := repo.Stats(ctx, "tenant-e")
		if err != nil {
			t.Fatalf("Stats failed: %v", err)
		}
		if stats.Folders != 2 || stats.Files != 2 {
			t.Errorf("Expected 2 folders / 2 files, got %+v", stats)
		}
	})

	t.Run("StatsEmptyTenant", func(t *testing.T) {
		stats, err := repo.Stats(ctx, "tenant-never-seen")
		if err != nil {
			t.Fatalf("Stats failed: %v", err)
		}
		if stats.Folders != 0 || stats.Files != 0 {
			t.Errorf("Expected zero stats, got %+v", stats)
		}
	})

	t.Run("ListFoldersCreationOrder", func(t *testing.T) {
		mustCreateFolder(t, repo, "tenant-f", "first")
		mustCreateFolder(t, repo, "tenant-f", "second")
		mustCreateFolder(t, repo, "tenant-f", "third")

		folders, err := repo.ListFolders(ctx, "tenant-f")
		if err != nil {
			t.Fatalf("ListFolders failed: %v", err)
		}
		if len(folders) != 3 {
			t.Fatalf("Expected 3 folders, got %d", len(folders))
		}
		for i, want := range []string{"first", "second", "third"} {
			if folders[i].Name != want {
				t.Errorf("Expected folder %d to be %q, got %q", i, want, folders[i].Name)
			}
		}
	})
}
