package entities

import (
	"time"
)

// DefaultFolderDescription is stored when a folder is created without one.
const DefaultFolderDescription = "No description provided"

// Folder belongs to exactly one tenant. Folder names are unique within a
// tenant but may repeat across tenants.
type Folder struct {
	ID          int64
	TenantID    string
	Name        string
	Description string
	CreatedBy   string
	CreatedAt   time.Time
}

// FolderListing pairs a folder with its files in creation order, as
// consumed by the listing renderer.
type FolderListing struct {
	Folder *Folder
	Files  []*File
}
