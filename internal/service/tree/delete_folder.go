package tree

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/heartmarshall/notetree/internal/domain"
)

// DeleteFolder removes the folder and its whole subtree in one step. If the
// selection pointed at the folder or at anything below it, it is cleared.
// The root folder cannot be deleted.
func (s *Service) DeleteFolder(ctx context.Context, folderID string) (domain.Tree, error) {
	if err := requireID("folder_id", folderID); err != nil {
		return domain.Tree{}, err
	}
	if folderID == domain.RootID {
		return domain.Tree{}, fmt.Errorf("delete folder: root folder: %w", domain.ErrForbidden)
	}

	var (
		removed          domain.Folder
		selectionCleared bool
	)
	tree, err := s.mutate(func(cur domain.Tree) (domain.Tree, Change, error) {
		target, ok := cur.Find(folderID)
		if !ok {
			return domain.Tree{}, Change{}, fmt.Errorf("folder %s: %w", folderID, domain.ErrNotFound)
		}
		folders, _, err := rewrite(cur.Folders, folderID, removeFolder)
		if err != nil {
			return domain.Tree{}, Change{}, err
		}

		removed = target
		if s.selectedID != "" && slices.Contains(target.DescendantIDs(), s.selectedID) {
			s.selectedID = ""
			selectionCleared = true
		}
		return domain.Tree{Folders: folders}, Change{Kind: ChangeFolderDeleted, FolderID: folderID}, nil
	})
	if err != nil {
		s.logMiss(ctx, "delete folder", err, slog.String("folder_id", folderID))
		return domain.Tree{}, fmt.Errorf("delete folder: %w", err)
	}

	s.log.InfoContext(ctx, "folder deleted",
		slog.String("folder_id", folderID),
		slog.String("name", removed.Name),
		slog.Int("subtree_folders", len(removed.DescendantIDs())),
		slog.Bool("selection_cleared", selectionCleared),
	)

	return tree, nil
}
