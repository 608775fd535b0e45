package usecase_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zots0127/chatfs/internal/domain/entities"
	"github.com/zots0127/chatfs/internal/usecase"
)

func listing(name string, fileNames ...string) *entities.FolderListing {
	files := make([]*entities.File, 0, len(fileNames))
	for _, fn := range fileNames {
		files = append(files, &entities.File{Name: fn})
	}
	return &entities.FolderListing{
		Folder: &entities.Folder{Name: name},
		Files:  files,
	}
}

func TestBuildPages_NoFolders(t *testing.T) {
	pages := usecase.BuildPages(nil)

	require.Len(t, pages, 1)
	assert.Equal(t, "📂 File System", pages[0].Title)
	assert.Equal(t, "No folders available.", pages[0].Body)
}

func TestBuildPages_SinglePageUnderLimit(t *testing.T) {
	pages := usecase.BuildPages([]*entities.FolderListing{
		listing("docs", "readme.md", "notes.txt"),
		listing("empty"),
	})

	require.Len(t, pages, 1)
	assert.Equal(t, "📂 File System", pages[0].Title)
	assert.Contains(t, pages[0].Body, "📁 **docs**")
	assert.Contains(t, pages[0].Body, "   └── 🗃️ readme.md")
	assert.Contains(t, pages[0].Body, "   └── 🗃️ notes.txt")
	assert.Contains(t, pages[0].Body, "📁 **empty**\n   └── ❌ No files")
}

func TestBuildPages_RolloverKeepsFolderIntact(t *testing.T) {
	// Every folder block is about 1500 characters, so the third block
	// would cross the 4000-character budget and must open page two.
	wide := strings.Repeat("x", 1460)
	listings := []*entities.FolderListing{
		listing("a", wide),
		listing("b", wide),
		listing("c", wide),
	}

	pages := usecase.BuildPages(listings)

	require.Len(t, pages, 2)
	assert.Equal(t, "📂 File System", pages[0].Title)
	assert.Equal(t, "📂 File System (Continued)", pages[1].Title)

	assert.Contains(t, pages[0].Body, "📁 **a**")
	assert.Contains(t, pages[0].Body, "📁 **b**")
	assert.NotContains(t, pages[0].Body, "📁 **c**")

	// The folder that triggered the rollover starts the new page whole.
	assert.True(t, strings.HasPrefix(pages[1].Body, "📁 **c**"))
	assert.Contains(t, pages[1].Body, wide)
}

func TestBuildPages_OversizedFolderNeverEmitsEmptyPage(t *testing.T) {
	huge := strings.Repeat("y", 5000)
	pages := usecase.BuildPages([]*entities.FolderListing{listing("huge", huge)})

	require.Len(t, pages, 1)
	assert.NotEmpty(t, pages[0].Body)
}

func TestBuildPages_Deterministic(t *testing.T) {
	wide := strings.Repeat("z", 900)
	listings := []*entities.FolderListing{
		listing("one", wide, wide),
		listing("two", wide),
		listing("three", wide, wide, wide),
		listing("four"),
	}

	first := usecase.BuildPages(listings)
	second := usecase.BuildPages(listings)

	assert.Equal(t, first, second)
}
