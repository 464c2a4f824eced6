package tree

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/heartmarshall/notetree/internal/domain"
)

// UpdateNote merges the supplied fields into the note; fields left nil keep
// their value. Id, color and creation time never change.
func (s *Service) UpdateNote(ctx context.Context, input UpdateNoteInput) (*NoteResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated domain.Note
	tree, err := s.mutate(func(cur domain.Tree) (domain.Tree, Change, error) {
		folders, found, err := rewrite(cur.Folders, input.FolderID, updateFolder(func(f domain.Folder) (domain.Folder, error) {
			i := slices.IndexFunc(f.Notes, func(n domain.Note) bool { return n.ID == input.NoteID })
			if i < 0 {
				return domain.Folder{}, fmt.Errorf("note %s: %w", input.NoteID, domain.ErrNotFound)
			}

			n := f.Notes[i]
			if input.Text != nil {
				n.Text = *input.Text
			}
			if input.ImageRefs != nil {
				n.ImageRefs = cloneRefs(input.ImageRefs)
			}
			if input.FileRefs != nil {
				n.FileRefs = cloneRefs(input.FileRefs)
			}
			if !n.HasContent() {
				return domain.Folder{}, domain.NewValidationError("note", "text or at least one attachment required")
			}
			n.UpdatedAt = s.clock.Now()

			notes := slices.Clone(f.Notes)
			notes[i] = n
			f.Notes = notes
			updated = n
			return f, nil
		}))
		if err != nil {
			return domain.Tree{}, Change{}, err
		}
		if !found {
			return domain.Tree{}, Change{}, fmt.Errorf("folder %s: %w", input.FolderID, domain.ErrNotFound)
		}
		return domain.Tree{Folders: folders}, Change{Kind: ChangeNoteUpdated, FolderID: input.FolderID, NoteID: input.NoteID}, nil
	})
	if err != nil {
		s.logMiss(ctx, "update note", err,
			slog.String("folder_id", input.FolderID),
			slog.String("note_id", input.NoteID),
		)
		return nil, fmt.Errorf("update note: %w", err)
	}

	s.log.InfoContext(ctx, "note updated",
		slog.String("folder_id", input.FolderID),
		slog.String("note_id", input.NoteID),
	)

	return &NoteResult{Tree: tree, Note: updated}, nil
}
