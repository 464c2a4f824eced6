package rest

import (
	"time"

	"github.com/heartmarshall/notetree/internal/domain"
)

type treeResponse struct {
	Folders    []folderResponse `json:"folders"              yaml:"folders"`
	SelectedID string           `json:"selectedId,omitempty" yaml:"selected_id,omitempty"`
}

type folderResponse struct {
	ID                  string           `json:"id"                           yaml:"id"`
	Name                string           `json:"name"                         yaml:"name"`
	Kind                string           `json:"type"                         yaml:"type"`
	Icon                string           `json:"icon"                         yaml:"icon"`
	BackgroundColor     string           `json:"backgroundColor"              yaml:"background_color"`
	ChatBackgroundColor string           `json:"chatBackgroundColor"          yaml:"chat_background_color"`
	BackgroundImageRef  *string          `json:"backgroundImageRef,omitempty" yaml:"background_image_ref,omitempty"`
	ParentID            string           `json:"parentId"                     yaml:"parent_id"`
	Expanded            bool             `json:"expanded"                     yaml:"expanded"`
	Children            []folderResponse `json:"children"                     yaml:"children,omitempty"`
	Notes               []noteResponse   `json:"notes"                        yaml:"notes,omitempty"`
}

type noteResponse struct {
	ID              string     `json:"id"                  yaml:"id"`
	Text            string     `json:"text"                yaml:"text"`
	ImageRefs       []string   `json:"imageRefs"           yaml:"image_refs,omitempty"`
	FileRefs        []string   `json:"fileRefs"            yaml:"file_refs,omitempty"`
	BackgroundColor string     `json:"backgroundColor"     yaml:"background_color"`
	CreatedAt       time.Time  `json:"createdAt"           yaml:"created_at"`
	UpdatedAt       *time.Time `json:"updatedAt,omitempty" yaml:"updated_at,omitempty"`
}

type folderResult struct {
	Folder folderResponse `json:"folder"`
	Tree   treeResponse   `json:"tree"`
}

type noteResult struct {
	Note noteResponse `json:"note"`
	Tree treeResponse `json:"tree"`
}

type selectionResponse struct {
	SelectedID string          `json:"selectedId"`
	Folder     *folderResponse `json:"folder,omitempty"`
}

func toTreeResponse(t domain.Tree, selectedID string) treeResponse {
	return treeResponse{Folders: toFolderResponses(t.Folders), SelectedID: selectedID}
}

func toFolderResponses(folders []domain.Folder) []folderResponse {
	out := make([]folderResponse, 0, len(folders))
	for _, f := range folders {
		out = append(out, toFolderResponse(f))
	}
	return out
}

func toFolderResponse(f domain.Folder) folderResponse {
	notes := make([]noteResponse, 0, len(f.Notes))
	for _, n := range f.Notes {
		notes = append(notes, toNoteResponse(n))
	}
	return folderResponse{
		ID:                  f.ID,
		Name:                f.Name,
		Kind:                f.Kind.String(),
		Icon:                f.Icon,
		BackgroundColor:     f.BackgroundColor,
		ChatBackgroundColor: f.ChatBackgroundColor,
		BackgroundImageRef:  f.BackgroundImageRef,
		ParentID:            f.ParentID,
		Expanded:            f.Expanded,
		Children:            toFolderResponses(f.Children),
		Notes:               notes,
	}
}

func toNoteResponse(n domain.Note) noteResponse {
	resp := noteResponse{
		ID:              n.ID,
		Text:            n.Text,
		ImageRefs:       nonNil(n.ImageRefs),
		FileRefs:        nonNil(n.FileRefs),
		BackgroundColor: n.BackgroundColor,
		CreatedAt:       n.CreatedAt,
	}
	if !n.UpdatedAt.IsZero() {
		updated := n.UpdatedAt
		resp.UpdatedAt = &updated
	}
	return resp
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
