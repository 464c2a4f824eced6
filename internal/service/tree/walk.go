package tree

import (
	"slices"

	"github.com/heartmarshall/notetree/internal/domain"
)

// edit rewrites the sibling slice that holds the target folder at index i.
// It must return a new slice and leave siblings untouched.
type edit func(siblings []domain.Folder, i int) ([]domain.Folder, error)

// rewrite finds the folder with the given id depth-first, pre-order, applies
// fn to the slice holding it, and rebuilds every slice on the way back up.
// Subtrees off that path are shared with the input, never copied or written.
// found is false when no folder matches; errors come from fn only.
func rewrite(folders []domain.Folder, id string, fn edit) (out []domain.Folder, found bool, err error) {
	for i := range folders {
		if folders[i].ID == id {
			out, err = fn(folders, i)
			return out, true, err
		}
		children, ok, cerr := rewrite(folders[i].Children, id, fn)
		if !ok {
			continue
		}
		if cerr != nil {
			return nil, true, cerr
		}
		out = slices.Clone(folders)
		out[i].Children = children
		return out, true, nil
	}
	return nil, false, nil
}

// updateFolder returns an edit replacing the target folder with fn's result.
func updateFolder(fn func(f domain.Folder) (domain.Folder, error)) edit {
	return func(siblings []domain.Folder, i int) ([]domain.Folder, error) {
		f, err := fn(siblings[i])
		if err != nil {
			return nil, err
		}
		out := slices.Clone(siblings)
		out[i] = f
		return out, nil
	}
}

// removeFolder drops the target folder and with it the whole subtree.
func removeFolder(siblings []domain.Folder, i int) ([]domain.Folder, error) {
	out := make([]domain.Folder, 0, len(siblings)-1)
	out = append(out, siblings[:i]...)
	return append(out, siblings[i+1:]...), nil
}

// appendCopy appends v to a fresh backing array so s is never written.
func appendCopy[T any](s []T, v T) []T {
	return append(slices.Clip(s), v)
}
