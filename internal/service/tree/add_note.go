package tree

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/heartmarshall/notetree/internal/domain"
)

// AddNote appends a note to the folder. The note takes the folder's current
// chat background color and the clock's current time.
func (s *Service) AddNote(ctx context.Context, input AddNoteInput) (*NoteResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var created domain.Note
	tree, err := s.mutate(func(cur domain.Tree) (domain.Tree, Change, error) {
		folders, found, err := rewrite(cur.Folders, input.FolderID, updateFolder(func(f domain.Folder) (domain.Folder, error) {
			created = domain.Note{
				ID:              s.ids.NewID(),
				Text:            input.Text,
				ImageRefs:       cloneRefs(input.ImageRefs),
				FileRefs:        cloneRefs(input.FileRefs),
				BackgroundColor: f.ChatBackgroundColor,
				CreatedAt:       s.clock.Now(),
			}
			f.Notes = appendCopy(f.Notes, created)
			return f, nil
		}))
		if err != nil {
			return domain.Tree{}, Change{}, err
		}
		if !found {
			return domain.Tree{}, Change{}, fmt.Errorf("folder %s: %w", input.FolderID, domain.ErrNotFound)
		}
		return domain.Tree{Folders: folders}, Change{Kind: ChangeNoteCreated, FolderID: input.FolderID, NoteID: created.ID}, nil
	})
	if err != nil {
		s.logMiss(ctx, "add note", err, slog.String("folder_id", input.FolderID))
		return nil, fmt.Errorf("add note: %w", err)
	}

	s.log.InfoContext(ctx, "note added",
		slog.String("folder_id", input.FolderID),
		slog.String("note_id", created.ID),
		slog.Int("images", len(created.ImageRefs)),
		slog.Int("files", len(created.FileRefs)),
	)

	return &NoteResult{Tree: tree, Note: created}, nil
}

// cloneRefs copies attachment references so callers keep no alias into the
// tree. A nil or empty input becomes an empty, non-nil slice.
func cloneRefs(refs []string) []string {
	if len(refs) == 0 {
		return []string{}
	}
	return slices.Clone(refs)
}
