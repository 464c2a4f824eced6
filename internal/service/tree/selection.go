package tree

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/notetree/internal/domain"
)

// Select makes folderID the selected folder. It is a plain assignment: the
// id is not checked against the tree. An empty id clears the selection.
func (s *Service) Select(ctx context.Context, folderID string) {
	s.mu.Lock()
	s.selectedID = folderID
	change := Change{Kind: ChangeSelectionChanged, FolderID: folderID, Tree: s.tree, SelectedID: folderID}
	listeners := s.listeners
	s.mu.Unlock()

	for _, l := range listeners {
		l(change)
	}

	s.log.DebugContext(ctx, "selection changed", slog.String("folder_id", folderID))
}

// ClearSelection unsets the selected folder.
func (s *Service) ClearSelection(ctx context.Context) {
	s.Select(ctx, "")
}

// SelectedID returns the selected folder id, or "" when nothing is selected.
func (s *Service) SelectedID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedID
}

// Selected resolves the selection against the current tree. It reports false
// when nothing is selected or the selected id no longer exists.
func (s *Service) Selected() (domain.Folder, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selectedID == "" {
		return domain.Folder{}, false
	}
	return s.tree.Find(s.selectedID)
}
