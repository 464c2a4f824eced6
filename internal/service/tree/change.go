package tree

import "github.com/heartmarshall/notetree/internal/domain"

// ChangeKind names the kind of change a listener is told about.
type ChangeKind string

const (
	ChangeFolderCreated    ChangeKind = "folder_created"
	ChangeFolderDeleted    ChangeKind = "folder_deleted"
	ChangeFolderUpdated    ChangeKind = "folder_updated"
	ChangeNoteCreated      ChangeKind = "note_created"
	ChangeNoteUpdated      ChangeKind = "note_updated"
	ChangeNoteDeleted      ChangeKind = "note_deleted"
	ChangeSelectionChanged ChangeKind = "selection_changed"
)

func (k ChangeKind) String() string { return string(k) }

// Change describes one applied mutation and carries the resulting snapshot.
type Change struct {
	Kind       ChangeKind
	FolderID   string
	NoteID     string
	Tree       domain.Tree
	SelectedID string
}
