package entities

import (
	"time"
)

// Tenant is the isolation boundary under which all folders and files live.
// One tenant per chat community; tenants are created on first init and
// never deleted.
type Tenant struct {
	ID           string
	TotalFolders int
	TotalFiles   int
	CreatedAt    time.Time
}

// Stats holds the aggregate folder/file counts for one tenant.
type Stats struct {
	Folders int64
	Files   int64
}
