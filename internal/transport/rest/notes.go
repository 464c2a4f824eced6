package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/heartmarshall/notetree/internal/service/tree"
)

type addNoteRequest struct {
	Text      string   `json:"text"`
	ImageRefs []string `json:"imageRefs"`
	FileRefs  []string `json:"fileRefs"`
}

// updateNoteRequest distinguishes an omitted field (nil) from an explicit
// empty list, which clears the attachments.
type updateNoteRequest struct {
	Text      *string   `json:"text"`
	ImageRefs *[]string `json:"imageRefs"`
	FileRefs  *[]string `json:"fileRefs"`
}

// AddNote handles POST /api/folders/{folderID}/notes.
func (h *TreeHandler) AddNote(w http.ResponseWriter, r *http.Request) {
	var req addNoteRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	res, err := h.svc.AddNote(r.Context(), tree.AddNoteInput{
		FolderID:  folderID(r),
		Text:      req.Text,
		ImageRefs: req.ImageRefs,
		FileRefs:  req.FileRefs,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, noteResult{
		Note: toNoteResponse(res.Note),
		Tree: h.treeResponse(res.Tree),
	})
}

// UpdateNote handles PATCH /api/folders/{folderID}/notes/{noteID}.
func (h *TreeHandler) UpdateNote(w http.ResponseWriter, r *http.Request) {
	var req updateNoteRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := tree.UpdateNoteInput{
		FolderID: folderID(r),
		NoteID:   chi.URLParam(r, "noteID"),
		Text:     req.Text,
	}
	if req.ImageRefs != nil {
		input.ImageRefs = nonNil(*req.ImageRefs)
	}
	if req.FileRefs != nil {
		input.FileRefs = nonNil(*req.FileRefs)
	}

	res, err := h.svc.UpdateNote(r.Context(), input)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, noteResult{
		Note: toNoteResponse(res.Note),
		Tree: h.treeResponse(res.Tree),
	})
}

// DeleteNote handles DELETE /api/folders/{folderID}/notes/{noteID}.
func (h *TreeHandler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	t, err := h.svc.DeleteNote(r.Context(), folderID(r), chi.URLParam(r, "noteID"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.treeResponse(t))
}
