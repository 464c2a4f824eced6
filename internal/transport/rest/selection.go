package rest

import "net/http"

type selectRequest struct {
	FolderID string `json:"folderId"`
}

// Selection handles GET /api/selection. The folder is omitted when nothing
// is selected or the selected id is not in the tree.
func (h *TreeHandler) Selection(w http.ResponseWriter, r *http.Request) {
	resp := selectionResponse{SelectedID: h.svc.SelectedID()}
	if f, ok := h.svc.Selected(); ok {
		fr := toFolderResponse(f)
		resp.Folder = &fr
	}
	writeJSON(w, http.StatusOK, resp)
}

// Select handles PUT /api/selection. The id is stored as given.
func (h *TreeHandler) Select(w http.ResponseWriter, r *http.Request) {
	var req selectRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	h.svc.Select(r.Context(), req.FolderID)
	h.Selection(w, r)
}

// ClearSelection handles DELETE /api/selection.
func (h *TreeHandler) ClearSelection(w http.ResponseWriter, r *http.Request) {
	h.svc.ClearSelection(r.Context())
	w.WriteHeader(http.StatusNoContent)
}
