package tree

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/notetree/internal/domain"
)

// CreateFolder creates a folder under input.ParentID, or in the forest when
// ParentID is domain.TopLevel. The selection is not touched.
func (s *Service) CreateFolder(ctx context.Context, input CreateFolderInput) (*FolderResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var created domain.Folder
	tree, err := s.mutate(func(cur domain.Tree) (domain.Tree, Change, error) {
		next, f, err := s.attach(cur, input)
		if err != nil {
			return domain.Tree{}, Change{}, err
		}
		created = f
		return next, Change{Kind: ChangeFolderCreated, FolderID: f.ID}, nil
	})
	if err != nil {
		s.logMiss(ctx, "create folder", err, slog.String("parent_id", input.ParentID))
		return nil, fmt.Errorf("create folder: %w", err)
	}

	s.log.InfoContext(ctx, "folder created",
		slog.String("folder_id", created.ID),
		slog.String("parent_id", created.ParentID),
		slog.String("name", created.Name),
	)

	return &FolderResult{Tree: tree, Folder: created}, nil
}

// CreateSiblingFolder creates a folder with default icon and colors next to
// folderID, under the same parent.
func (s *Service) CreateSiblingFolder(ctx context.Context, input CreateSiblingInput) (*FolderResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var created domain.Folder
	tree, err := s.mutate(func(cur domain.Tree) (domain.Tree, Change, error) {
		anchor, ok := cur.Find(input.FolderID)
		if !ok {
			return domain.Tree{}, Change{}, fmt.Errorf("folder %s: %w", input.FolderID, domain.ErrNotFound)
		}
		parentID := anchor.ParentID
		if anchor.IsTopLevel() {
			parentID = domain.TopLevel
		}
		next, f, err := s.attach(cur, CreateFolderInput{ParentID: parentID, Name: input.Name})
		if err != nil {
			return domain.Tree{}, Change{}, err
		}
		created = f
		return next, Change{Kind: ChangeFolderCreated, FolderID: f.ID}, nil
	})
	if err != nil {
		s.logMiss(ctx, "create sibling folder", err, slog.String("folder_id", input.FolderID))
		return nil, fmt.Errorf("create sibling folder: %w", err)
	}

	s.log.InfoContext(ctx, "sibling folder created",
		slog.String("folder_id", created.ID),
		slog.String("sibling_of", input.FolderID),
		slog.String("name", created.Name),
	)

	return &FolderResult{Tree: tree, Folder: created}, nil
}

// attach builds the new folder and appends it to its parent in cur.
func (s *Service) attach(cur domain.Tree, input CreateFolderInput) (domain.Tree, domain.Folder, error) {
	f := s.newFolder(input)

	if input.ParentID == domain.TopLevel {
		return domain.Tree{Folders: appendCopy(cur.Folders, f)}, f, nil
	}

	folders, found, err := rewrite(cur.Folders, input.ParentID, updateFolder(func(parent domain.Folder) (domain.Folder, error) {
		parent.Children = appendCopy(parent.Children, f)
		return parent, nil
	}))
	if err != nil {
		return domain.Tree{}, domain.Folder{}, err
	}
	if !found {
		return domain.Tree{}, domain.Folder{}, fmt.Errorf("parent %s: %w", input.ParentID, domain.ErrNotFound)
	}
	return domain.Tree{Folders: folders}, f, nil
}

func (s *Service) newFolder(input CreateFolderInput) domain.Folder {
	icon := input.Icon
	if icon == "" {
		icon = s.opts.DefaultIcon
	}
	chat := input.ChatBackgroundColor
	if chat == "" {
		chat = s.opts.DefaultChatBackgroundColor
	}
	var bg *string
	if input.BackgroundImageRef != nil {
		ref := *input.BackgroundImageRef
		bg = &ref
	}

	return domain.Folder{
		ID:                  s.ids.NewID(),
		Name:                strings.TrimSpace(input.Name),
		Kind:                domain.FolderKindFolder,
		Icon:                icon,
		BackgroundColor:     s.colors.RandomColor(),
		ChatBackgroundColor: chat,
		BackgroundImageRef:  bg,
		ParentID:            input.ParentID,
		Children:            []domain.Folder{},
		Notes:               []domain.Note{},
		Expanded:            true,
	}
}
