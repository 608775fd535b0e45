package handler

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/zots0127/chatfs/internal/domain/entities"
	"github.com/zots0127/chatfs/internal/domain/repository"
	"github.com/zots0127/chatfs/internal/usecase"
)

// CommandHandler dispatches parsed chat commands to the filesystem use
// case. Tokenizing the raw message line into command + args is the chat
// gateway's job; this handler only sees the result.
type CommandHandler struct {
	fs     *usecase.FileSystemUseCase
	apiKey string
}

// NewCommandHandler creates a new command handler.
func NewCommandHandler(fs *usecase.FileSystemUseCase, apiKey string) *CommandHandler {
	return &CommandHandler{
		fs:     fs,
		apiKey: apiKey,
	}
}

// CommandRequest is one parsed chat command.
type CommandRequest struct {
	TenantID string   `json:"tenant_id" binding:"required"`
	Actor    string   `json:"actor"`
	Command  string   `json:"command" binding:"required"`
	Args     []string `json:"args"`
}

// CommandResponse is the structured result the presentation layer renders.
// Pages is set for list, Export for export, Stats for stats; Body carries
// everything else.
type CommandResponse struct {
	Title  string          `json:"title"`
	Body   string          `json:"body,omitempty"`
	Pages  []entities.Page `json:"pages,omitempty"`
	Export *ExportPayload  `json:"export,omitempty"`
	Stats  *StatsPayload   `json:"stats,omitempty"`
}

// ExportPayload carries an export blob and its suggested filename.
type ExportPayload struct {
	FileName string `json:"file_name"`
	Content  string `json:"content"`
}

// StatsPayload carries a tenant's aggregate counts.
type StatsPayload struct {
	TotalFolders int64 `json:"total_folders"`
	TotalFiles   int64 `json:"total_files"`
}

// RegisterRoutes registers the command endpoint.
func (h *CommandHandler) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api")
	api.Use(h.authMiddleware())

	api.POST("/command", h.HandleCommand)
}

func (h *CommandHandler) authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader("X-API-Key")
		if apiKey != h.apiKey {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid API key"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// HandleCommand runs one command and returns its structured result.
func (h *CommandHandler) HandleCommand(c *gin.Context) {
	var req CommandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "tenant_id and command are required"})
		return
	}

	resp, err := h.dispatch(c, &req)
	if err != nil {
		invocationID := uuid.New().String()
		log.Printf("command %q failed (tenant=%s invocation=%s): %v", req.Command, req.TenantID, invocationID, err)
		status, message := statusForError(err)
		c.JSON(status, gin.H{"error": message, "invocation_id": invocationID})
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *CommandHandler) dispatch(c *gin.Context, req *CommandRequest) (*CommandResponse, error) {
	ctx := c.Request.Context()

	switch req.Command {
	case "help":
		return helpResponse(), nil

	case "init":
		if err := h.fs.Init(ctx, req.TenantID); err != nil {
			return nil, err
		}
		return &CommandResponse{
			Title: "📂 File System Initialized",
			Body:  "The virtual file system is ready to use.",
		}, nil

	case "createfolder":
		folder, err := h.fs.CreateFolder(ctx, req.TenantID, req.Actor, req.Args)
		if err != nil {
			return nil, err
		}
		return &CommandResponse{
			Title: "📁 Folder Created",
			Body:  fmt.Sprintf("Folder `%s` created\nDescription: %s", folder.Name, folder.Description),
		}, nil

	case "addfile":
		file, err := h.fs.AddFile(ctx, req.TenantID, req.Actor, req.Args)
		if err != nil {
			return nil, err
		}
		return &CommandResponse{
			Title: "📝 File Added",
			Body:  fmt.Sprintf("File `%s` added to folder `%s`", file.Name, req.Args[0]),
		}, nil

	case "view":
		content, err := h.fs.ViewFile(ctx, req.TenantID, req.Args)
		if err != nil {
			return nil, err
		}
		return &CommandResponse{
			Title: fmt.Sprintf("📄 %s", req.Args[1]),
			Body:  fmt.Sprintf("```%s```", content),
		}, nil

	case "list":
		pages, err := h.fs.List(ctx, req.TenantID)
		if err != nil {
			return nil, err
		}
		return &CommandResponse{Title: pages[0].Title, Pages: pages}, nil

	case "deletefile":
		if err := h.fs.DeleteFile(ctx, req.TenantID, req.Args); err != nil {
			return nil, err
		}
		return &CommandResponse{
			Title: "❌ File Deleted",
			Body:  fmt.Sprintf("File `%s` deleted from `%s`", req.Args[1], req.Args[0]),
		}, nil

	case "deletefolder":
		if err := h.fs.DeleteFolder(ctx, req.TenantID, req.Args); err != nil {
			return nil, err
		}
		return &CommandResponse{
			Title: "🗑 Folder Deleted",
			Body:  fmt.Sprintf("Folder `%s` deleted.", strings.Join(req.Args, " ")),
		}, nil

	case "stats":
		stats, err := h.fs.Stats(ctx, req.TenantID)
		if err != nil {
			return nil, err
		}
		return &CommandResponse{
			Title: "📊 File System Stats",
			Body:  fmt.Sprintf("**Total Folders:** %d\n**Total Files:** %d", stats.Folders, stats.Files),
			Stats: &StatsPayload{TotalFolders: stats.Folders, TotalFiles: stats.Files},
		}, nil

	case "export":
		export, err := h.fs.ExportFolder(ctx, req.TenantID, req.Args)
		if err != nil {
			return nil, err
		}
		return &CommandResponse{
			Title:  "📦 Folder Exported",
			Body:   fmt.Sprintf("Exported folder `%s`:", req.Args[0]),
			Export: &ExportPayload{FileName: export.FileName, Content: export.Content},
		}, nil

	default:
		return nil, fmt.Errorf("%w: unknown command %q", repository.ErrInvalidArgument, req.Command)
	}
}

func statusForError(err error) (int, string) {
	switch {
	case errors.Is(err, repository.ErrInvalidArgument):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, repository.ErrFolderNotFound):
		return http.StatusNotFound, "Folder not found."
	case errors.Is(err, repository.ErrFileNotFound):
		return http.StatusNotFound, "File not found."
	case errors.Is(err, repository.ErrAlreadyExists):
		return http.StatusConflict, "A folder or file with that name already exists."
	case errors.Is(err, repository.ErrEmptyFolder):
		return http.StatusBadRequest, "No files in the folder."
	default:
		// Storage failures never leak driver detail to the caller.
		return http.StatusInternalServerError, "Internal storage failure."
	}
}

func helpResponse() *CommandResponse {
	return &CommandResponse{
		Title: "📖 Advanced File System Help",
		Body: "Powerful file management commands:\n" +
			"`init` - Initialize the virtual file system.\n" +
			"`createfolder <name> [description]` - Create a new folder with optional description.\n" +
			"`addfile <folder> <filename> <content>` - Add a file to a folder.\n" +
			"`view <folder> <filename>` - View file content.\n" +
			"`list` - List all folders and files.\n" +
			"`deletefile <folder> <filename>` - Delete a file.\n" +
			"`deletefolder <folder>` - Delete a folder (name may contain spaces).\n" +
			"`stats` - View file system statistics.\n" +
			"`export <folder>` - Export folder contents as a text file.",
	}
}
