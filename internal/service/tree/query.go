package tree

import (
	"fmt"

	"github.com/heartmarshall/notetree/internal/domain"
)

// Folder returns the folder with the given id from the current tree.
func (s *Service) Folder(folderID string) (domain.Folder, error) {
	f, ok := s.Snapshot().Find(folderID)
	if !ok {
		return domain.Folder{}, fmt.Errorf("folder %s: %w", folderID, domain.ErrNotFound)
	}
	return f, nil
}

// Path returns the folders from the forest down to folderID, inclusive.
func (s *Service) Path(folderID string) ([]domain.Folder, error) {
	p, ok := s.Snapshot().Path(folderID)
	if !ok {
		return nil, fmt.Errorf("folder %s: %w", folderID, domain.ErrNotFound)
	}
	return p, nil
}

// Note returns a note of the given folder.
func (s *Service) Note(folderID, noteID string) (domain.Note, error) {
	f, err := s.Folder(folderID)
	if err != nil {
		return domain.Note{}, err
	}
	n, ok := f.FindNote(noteID)
	if !ok {
		return domain.Note{}, fmt.Errorf("note %s: %w", noteID, domain.ErrNotFound)
	}
	return n, nil
}
