package entities

import (
	"path/filepath"
	"strings"
	"time"
)

// File belongs to exactly one folder. Content is plain text; FileType and
// Size are derived from the name and content at write time.
type File struct {
	ID        int64
	FolderID  int64
	Name      string
	Content   string
	FileType  string
	Size      int64
	CreatedBy string
	CreatedAt time.Time
}

// Export is a rendered folder export: the concatenated file blob plus a
// suggested download filename.
type Export struct {
	FileName string
	Content  string
}

// Page is one render-ready listing page.
type Page struct {
	Title string
	Body  string
}

// FileTypeOf derives the stored file type from a file name: the extension
// without its leading dot, lowercased, empty when the name has none.
func FileTypeOf(name string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
}
