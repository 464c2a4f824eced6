package tree

import (
	"strings"

	"github.com/heartmarshall/notetree/internal/domain"
)

// CreateFolderInput holds the parameters for creating a folder.
type CreateFolderInput struct {
	ParentID            string // domain.TopLevel attaches to the forest
	Name                string
	Icon                string  // empty = default icon
	ChatBackgroundColor string  // empty = default chat color
	BackgroundImageRef  *string // opaque, stored verbatim
}

// Validate checks all fields and collects all errors.
func (i CreateFolderInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.ParentID) == "" {
		errs = append(errs, domain.FieldError{Field: "parent_id", Message: "required"})
	}
	errs = append(errs, validateName(i.Name)...)
	if i.ChatBackgroundColor != "" && !ValidColor(i.ChatBackgroundColor) {
		errs = append(errs, domain.FieldError{Field: "chat_background_color", Message: "must be a hex color"})
	}
	if i.BackgroundImageRef != nil && strings.TrimSpace(*i.BackgroundImageRef) == "" {
		errs = append(errs, domain.FieldError{Field: "background_image_ref", Message: "must not be blank"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// CreateSiblingInput holds the parameters for creating a folder next to an existing one.
type CreateSiblingInput struct {
	FolderID string
	Name     string
}

// Validate checks all fields and collects all errors.
func (i CreateSiblingInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.FolderID) == "" {
		errs = append(errs, domain.FieldError{Field: "folder_id", Message: "required"})
	}
	errs = append(errs, validateName(i.Name)...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// AddNoteInput holds the parameters for appending a note to a folder.
type AddNoteInput struct {
	FolderID  string
	Text      string
	ImageRefs []string
	FileRefs  []string
}

// Validate checks all fields and collects all errors.
func (i AddNoteInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.FolderID) == "" {
		errs = append(errs, domain.FieldError{Field: "folder_id", Message: "required"})
	}
	if strings.TrimSpace(i.Text) == "" && len(i.ImageRefs) == 0 && len(i.FileRefs) == 0 {
		errs = append(errs, domain.FieldError{Field: "note", Message: "text or at least one attachment required"})
	}
	errs = append(errs, validateRefs("image_refs", i.ImageRefs)...)
	errs = append(errs, validateRefs("file_refs", i.FileRefs)...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateNoteInput holds the fields to merge into an existing note.
// A nil field is left unchanged; an empty slice clears the attachments.
type UpdateNoteInput struct {
	FolderID  string
	NoteID    string
	Text      *string
	ImageRefs []string
	FileRefs  []string
}

// Validate checks all fields and collects all errors.
func (i UpdateNoteInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.FolderID) == "" {
		errs = append(errs, domain.FieldError{Field: "folder_id", Message: "required"})
	}
	if strings.TrimSpace(i.NoteID) == "" {
		errs = append(errs, domain.FieldError{Field: "note_id", Message: "required"})
	}
	if i.Text == nil && i.ImageRefs == nil && i.FileRefs == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	errs = append(errs, validateRefs("image_refs", i.ImageRefs)...)
	errs = append(errs, validateRefs("file_refs", i.FileRefs)...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func validateName(name string) []domain.FieldError {
	name = strings.TrimSpace(name)
	if name == "" {
		return []domain.FieldError{{Field: "name", Message: "required"}}
	}
	if len(name) > MaxNameLength {
		return []domain.FieldError{{Field: "name", Message: "max 200 characters"}}
	}
	return nil
}

func validateRefs(field string, refs []string) []domain.FieldError {
	for _, r := range refs {
		if strings.TrimSpace(r) == "" {
			return []domain.FieldError{{Field: field, Message: "references must not be blank"}}
		}
	}
	return nil
}

func requireID(field, id string) error {
	if strings.TrimSpace(id) == "" {
		return domain.NewValidationError(field, "required")
	}
	return nil
}
