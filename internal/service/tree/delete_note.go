package tree

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/heartmarshall/notetree/internal/domain"
)

// DeleteNote removes the note from the folder.
func (s *Service) DeleteNote(ctx context.Context, folderID, noteID string) (domain.Tree, error) {
	if err := requireID("folder_id", folderID); err != nil {
		return domain.Tree{}, err
	}
	if err := requireID("note_id", noteID); err != nil {
		return domain.Tree{}, err
	}

	tree, err := s.mutate(func(cur domain.Tree) (domain.Tree, Change, error) {
		folders, found, err := rewrite(cur.Folders, folderID, updateFolder(func(f domain.Folder) (domain.Folder, error) {
			i := slices.IndexFunc(f.Notes, func(n domain.Note) bool { return n.ID == noteID })
			if i < 0 {
				return domain.Folder{}, fmt.Errorf("note %s: %w", noteID, domain.ErrNotFound)
			}
			notes := make([]domain.Note, 0, len(f.Notes)-1)
			notes = append(notes, f.Notes[:i]...)
			f.Notes = append(notes, f.Notes[i+1:]...)
			return f, nil
		}))
		if err != nil {
			return domain.Tree{}, Change{}, err
		}
		if !found {
			return domain.Tree{}, Change{}, fmt.Errorf("folder %s: %w", folderID, domain.ErrNotFound)
		}
		return domain.Tree{Folders: folders}, Change{Kind: ChangeNoteDeleted, FolderID: folderID, NoteID: noteID}, nil
	})
	if err != nil {
		s.logMiss(ctx, "delete note", err,
			slog.String("folder_id", folderID),
			slog.String("note_id", noteID),
		)
		return domain.Tree{}, fmt.Errorf("delete note: %w", err)
	}

	s.log.InfoContext(ctx, "note deleted",
		slog.String("folder_id", folderID),
		slog.String("note_id", noteID),
	)

	return tree, nil
}
