package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/heartmarshall/notetree/internal/domain"
	"github.com/heartmarshall/notetree/internal/service/tree"
)

// treeService is the subset of the tree store the HTTP API needs.
type treeService interface {
	Snapshot() domain.Tree
	Folder(folderID string) (domain.Folder, error)
	Path(folderID string) ([]domain.Folder, error)
	CreateFolder(ctx context.Context, input tree.CreateFolderInput) (*tree.FolderResult, error)
	CreateSiblingFolder(ctx context.Context, input tree.CreateSiblingInput) (*tree.FolderResult, error)
	DeleteFolder(ctx context.Context, folderID string) (domain.Tree, error)
	ToggleExpanded(ctx context.Context, folderID string) (*tree.FolderResult, error)
	AddNote(ctx context.Context, input tree.AddNoteInput) (*tree.NoteResult, error)
	UpdateNote(ctx context.Context, input tree.UpdateNoteInput) (*tree.NoteResult, error)
	DeleteNote(ctx context.Context, folderID, noteID string) (domain.Tree, error)
	Select(ctx context.Context, folderID string)
	ClearSelection(ctx context.Context)
	SelectedID() string
	Selected() (domain.Folder, bool)
}

// TreeHandler serves the folder, note and selection endpoints.
type TreeHandler struct {
	svc treeService
	log *slog.Logger
}

// NewTreeHandler creates a TreeHandler.
func NewTreeHandler(svc treeService, logger *slog.Logger) *TreeHandler {
	return &TreeHandler{svc: svc, log: logger.With("handler", "tree")}
}

// Tree returns the whole tree. GET /api/tree[?format=yaml]
func (h *TreeHandler) Tree(w http.ResponseWriter, r *http.Request) {
	resp := toTreeResponse(h.svc.Snapshot(), h.svc.SelectedID())

	switch r.URL.Query().Get("format") {
	case "", "json":
		writeJSON(w, http.StatusOK, resp)
	case "yaml":
		writeYAML(w, http.StatusOK, resp)
	default:
		writeError(w, http.StatusBadRequest, "format must be json or yaml")
	}
}

func (h *TreeHandler) treeResponse(t domain.Tree) treeResponse {
	return toTreeResponse(t, h.svc.SelectedID())
}

func (h *TreeHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	handleError(h.log, w, r, err)
}

func folderID(r *http.Request) string { return chi.URLParam(r, "folderID") }
