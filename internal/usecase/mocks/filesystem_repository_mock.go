package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/zots0127/chatfs/internal/domain/entities"
)

// MockFileSystemRepository is a mock implementation of FileSystemRepository
type MockFileSystemRepository struct {
	mock.Mock
}

// EnsureTenant mocks the EnsureTenant method
func (m *MockFileSystemRepository) EnsureTenant(ctx context.Context, tenantID string) error {
	args := m.Called(ctx, tenantID)
	return args.Error(0)
}

// CreateFolder mocks the CreateFolder method
func (m *MockFileSystemRepository) CreateFolder(ctx context.Context, folder *entities.Folder) (int64, error) {
	args := m.Called(ctx, folder)
	return args.Get(0).(int64), args.Error(1)
}

// GetFolderID mocks the GetFolderID method
func (m *MockFileSystemRepository) GetFolderID(ctx context.Context, tenantID, name string) (int64, error) {
	args := m.Called(ctx, tenantID, name)
	return args.Get(0).(int64), args.Error(1)
}

// CreateFile mocks the CreateFile method
func (m *MockFileSystemRepository) CreateFile(ctx context.Context, file *entities.File) (int64, error) {
	args := m.Called(ctx, file)
	return args.Get(0).(int64), args.Error(1)
}

// GetFileID mocks the GetFileID method
func (m *MockFileSystemRepository) GetFileID(ctx context.Context, folderID int64, name string) (int64, error) {
	args := m.Called(ctx, folderID, name)
	return args.Get(0).(int64), args.Error(1)
}

// GetFileContent mocks the GetFileContent method
func (m *MockFileSystemRepository) GetFileContent(ctx context.Context, folderID int64, name string) (string, error) {
	args := m.Called(ctx, folderID, name)
	return args.String(0), args.Error(1)
}

// ListFolders mocks the ListFolders method
func (m *MockFileSystemRepository) ListFolders(ctx context.Context, tenantID string) ([]*entities.Folder, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Folder), args.Error(1)
}

// ListFiles mocks the ListFiles method
func (m *MockFileSystemRepository) ListFiles(ctx context.Context, folderID int64) ([]*entities.File, error) {
	args := m.Called(ctx, folderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.File), args.Error(1)
}

// DeleteFile mocks the DeleteFile method
func (m *MockFileSystemRepository) DeleteFile(ctx context.Context, fileID int64) error {
	args := m.Called(ctx, fileID)
	return args.Error(0)
}

// DeleteFolder mocks the DeleteFolder method
func (m *MockFileSystemRepository) DeleteFolder(ctx context.Context, folderID int64) error {
	args := m.Called(ctx, folderID)
	return args.Error(0)
}

// Stats mocks the Stats method
func (m *MockFileSystemRepository) Stats(ctx context.Context, tenantID string) (*entities.Stats, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Stats), args.Error(1)
}
