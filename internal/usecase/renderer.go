package usecase

import (
	"strings"

	"github.com/zots0127/chatfs/internal/domain/entities"
)

// pageBodyLimit is the maximum body size of one listing page. A folder
// block that would push the body past the limit starts the next page
// intact; folders are never split across pages.
const pageBodyLimit = 4000

const (
	listTitle          = "📂 File System"
	listContinuedTitle = "📂 File System (Continued)"
)

// BuildPages paginates a tenant's folder tree into render-ready pages.
// It is a pure function: the same listings always produce the same page
// boundaries.
func BuildPages(listings []*entities.FolderListing) []entities.Page {
	if len(listings) == 0 {
		return []entities.Page{{Title: listTitle, Body: "No folders available."}}
	}

	var pages []entities.Page
	var body strings.Builder

	for _, listing := range listings {
		block := renderFolderBlock(listing)
		if body.Len() > 0 && body.Len()+len(block) > pageBodyLimit {
			pages = append(pages, entities.Page{Title: titleFor(len(pages)), Body: body.String()})
			body.Reset()
		}
		body.WriteString(block)
	}

	if body.Len() > 0 {
		pages = append(pages, entities.Page{Title: titleFor(len(pages)), Body: body.String()})
	}

	return pages
}

func titleFor(pageIndex int) string {
	if pageIndex == 0 {
		return listTitle
	}
	return listContinuedTitle
}

func renderFolderBlock(listing *entities.FolderListing) string {
	var block strings.Builder
	block.WriteString("📁 **" + listing.Folder.Name + "**\n")
	if len(listing.Files) == 0 {
		block.WriteString("   └── ❌ No files\n")
		return block.String()
	}
	for _, file := range listing.Files {
		block.WriteString("   └── 🗃️ " + file.Name + "\n")
	}
	return block.String()
}
