package domain

import (
	"slices"
	"strings"
	"time"
)

// RootID identifies the root folder every tree starts with. The root is
// never deleted.
const RootID = "root"

// TopLevel is the parent id that attaches a new folder to the forest itself
// rather than under another folder. Folders created "under the root" become
// top-level siblings of the root folder.
const TopLevel = RootID

const (
	DefaultIcon                = "folder"
	DefaultChatBackgroundColor = "#DCF8C6"
	DefaultRootName            = "My Notes"
	DefaultRootColor           = "#FFFFFF"
)

// FolderKind distinguishes the kinds of tree nodes. Only plain folders exist today.
type FolderKind string

const (
	FolderKindFolder FolderKind = "folder"
)

func (k FolderKind) String() string { return string(k) }


// Folder is a node of the note tree. It owns its child folders and notes.
type Folder struct {
	ID                  string
	Name                string
	Kind                FolderKind
	Icon                string
	BackgroundColor     string
	ChatBackgroundColor string
	BackgroundImageRef  *string
	ParentID            string // TopLevel for forest entries, "" for the root
	Children            []Folder
	Notes               []Note
	Expanded            bool // presentation only
}

// Note is a timestamped message owned by exactly one folder. Attachments are
// opaque references and are never interpreted.
type Note struct {
	ID              string
	Text            string
	ImageRefs       []string
	FileRefs        []string
	BackgroundColor string // folder chat color captured at creation
	CreatedAt       time.Time
	UpdatedAt       time.Time // zero until the first update
}

// NewRootFolder builds the undeletable root folder.
func NewRootFolder(name, chatBackgroundColor string) Folder {
	return Folder{
		ID:                  RootID,
		Name:                name,
		Kind:                FolderKindFolder,
		Icon:                DefaultIcon,
		BackgroundColor:     DefaultRootColor,
		ChatBackgroundColor: chatBackgroundColor,
		Expanded:            true,
	}
}

// IsTopLevel reports whether f sits directly in the forest.
func (f Folder) IsTopLevel() bool { return f.ParentID == TopLevel || f.ParentID == "" }

// FindNote returns the note with the given id.
func (f Folder) FindNote(id string) (Note, bool) {
	i := f.noteIndex(id)
	if i < 0 {
		return Note{}, false
	}
	return f.Notes[i], true
}

func (f Folder) noteIndex(id string) int {
	return slices.IndexFunc(f.Notes, func(n Note) bool { return n.ID == id })
}

// DescendantIDs returns the ids of f and every folder below it, pre-order.
func (f Folder) DescendantIDs() []string {
	ids := []string{f.ID}
	for _, c := range f.Children {
		ids = append(ids, c.DescendantIDs()...)
	}
	return ids
}

// Clone returns a deep copy of f that shares no slices with it.
func (f Folder) Clone() Folder {
	out := f
	if f.BackgroundImageRef != nil {
		ref := *f.BackgroundImageRef
		out.BackgroundImageRef = &ref
	}
	if f.Children != nil {
		out.Children = make([]Folder, len(f.Children))
		for i, c := range f.Children {
			out.Children[i] = c.Clone()
		}
	}
	if f.Notes != nil {
		out.Notes = make([]Note, len(f.Notes))
		for i, n := range f.Notes {
			out.Notes[i] = n.Clone()
		}
	}
	return out
}

// HasContent reports whether the note carries text or at least one attachment.
func (n Note) HasContent() bool {
	return strings.TrimSpace(n.Text) != "" || len(n.ImageRefs) > 0 || len(n.FileRefs) > 0
}

// Clone returns a deep copy of n.
func (n Note) Clone() Note {
	out := n
	out.ImageRefs = slices.Clone(n.ImageRefs)
	out.FileRefs = slices.Clone(n.FileRefs)
	return out
}
