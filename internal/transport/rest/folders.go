package rest

import (
	"net/http"

	"github.com/heartmarshall/notetree/internal/domain"
	"github.com/heartmarshall/notetree/internal/service/tree"
)

type createFolderRequest struct {
	ParentID            string  `json:"parentId"`
	Name                string  `json:"name"`
	Icon                string  `json:"icon"`
	ChatBackgroundColor string  `json:"chatBackgroundColor"`
	BackgroundImageRef  *string `json:"backgroundImageRef"`
}

type nameRequest struct {
	Name string `json:"name"`
}

// CreateFolder handles POST /api/folders. An omitted parentId creates a
// top-level folder.
func (h *TreeHandler) CreateFolder(w http.ResponseWriter, r *http.Request) {
	var req createFolderRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ParentID == "" {
		req.ParentID = domain.TopLevel
	}

	res, err := h.svc.CreateFolder(r.Context(), tree.CreateFolderInput{
		ParentID:            req.ParentID,
		Name:                req.Name,
		Icon:                req.Icon,
		ChatBackgroundColor: req.ChatBackgroundColor,
		BackgroundImageRef:  req.BackgroundImageRef,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, folderResult{
		Folder: toFolderResponse(res.Folder),
		Tree:   h.treeResponse(res.Tree),
	})
}

// GetFolder handles GET /api/folders/{folderID}.
func (h *TreeHandler) GetFolder(w http.ResponseWriter, r *http.Request) {
	f, err := h.svc.Folder(folderID(r))
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toFolderResponse(f))
}

type pathEntry struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// FolderPath handles GET /api/folders/{folderID}/path, the breadcrumb from
// the top level down to the folder.
func (h *TreeHandler) FolderPath(w http.ResponseWriter, r *http.Request) {
	path, err := h.svc.Path(folderID(r))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := make([]pathEntry, 0, len(path))
	for _, f := range path {
		resp = append(resp, pathEntry{ID: f.ID, Name: f.Name, Icon: f.Icon})
	}
	writeJSON(w, http.StatusOK, resp)
}

// DeleteFolder handles DELETE /api/folders/{folderID}. The folder's whole
// subtree goes with it.
func (h *TreeHandler) DeleteFolder(w http.ResponseWriter, r *http.Request) {
	t, err := h.svc.DeleteFolder(r.Context(), folderID(r))
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.treeResponse(t))
}

// CreateSibling handles POST /api/folders/{folderID}/siblings.
func (h *TreeHandler) CreateSibling(w http.ResponseWriter, r *http.Request) {
	var req nameRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	res, err := h.svc.CreateSiblingFolder(r.Context(), tree.CreateSiblingInput{
		FolderID: folderID(r),
		Name:     req.Name,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, folderResult{
		Folder: toFolderResponse(res.Folder),
		Tree:   h.treeResponse(res.Tree),
	})
}

// ToggleFolder handles POST /api/folders/{folderID}/toggle.
func (h *TreeHandler) ToggleFolder(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.ToggleExpanded(r.Context(), folderID(r))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, folderResult{
		Folder: toFolderResponse(res.Folder),
		Tree:   h.treeResponse(res.Tree),
	})
}
