package tree

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/notetree/internal/domain"
)

// ToggleExpanded flips the folder's expanded flag.
func (s *Service) ToggleExpanded(ctx context.Context, folderID string) (*FolderResult, error) {
	if err := requireID("folder_id", folderID); err != nil {
		return nil, err
	}

	var toggled domain.Folder
	tree, err := s.mutate(func(cur domain.Tree) (domain.Tree, Change, error) {
		folders, found, err := rewrite(cur.Folders, folderID, updateFolder(func(f domain.Folder) (domain.Folder, error) {
			f.Expanded = !f.Expanded
			toggled = f
			return f, nil
		}))
		if err != nil {
			return domain.Tree{}, Change{}, err
		}
		if !found {
			return domain.Tree{}, Change{}, fmt.Errorf("folder %s: %w", folderID, domain.ErrNotFound)
		}
		return domain.Tree{Folders: folders}, Change{Kind: ChangeFolderUpdated, FolderID: folderID}, nil
	})
	if err != nil {
		s.logMiss(ctx, "toggle folder", err, slog.String("folder_id", folderID))
		return nil, fmt.Errorf("toggle folder: %w", err)
	}

	s.log.DebugContext(ctx, "folder toggled",
		slog.String("folder_id", folderID),
		slog.Bool("expanded", toggled.Expanded),
	)

	return &FolderResult{Tree: tree, Folder: toggled}, nil
}
