package domain

// Tree is an immutable snapshot of the whole forest. The root folder is
// always the first entry. Values returned by the tree service must be
// treated as read-only; use Clone for a private, editable copy.
type Tree struct {
	Folders []Folder
}

// NewTree returns a tree holding only the given root folder.
func NewTree(root Folder) Tree {
	return Tree{Folders: []Folder{root}}
}

// Walk visits every folder depth-first, pre-order, with its depth (0 for
// forest entries). Returning false from fn stops the walk.
func (t Tree) Walk(fn func(f Folder, depth int) bool) {
	walk(t.Folders, 0, fn)
}

func walk(folders []Folder, depth int, fn func(Folder, int) bool) bool {
	for _, f := range folders {
		if !fn(f, depth) {
			return false
		}
		if !walk(f.Children, depth+1, fn) {
			return false
		}
	}
	return true
}

// Find returns the folder with the given id. The first pre-order match wins.
func (t Tree) Find(id string) (Folder, bool) {
	var (
		found Folder
		ok    bool
	)
	t.Walk(func(f Folder, _ int) bool {
		if f.ID == id {
			found, ok = f, true
			return false
		}
		return true
	})
	return found, ok
}

// Contains reports whether a folder with the given id exists.
func (t Tree) Contains(id string) bool {
	_, ok := t.Find(id)
	return ok
}

// Path returns the folders from the forest entry down to the folder with
// the given id, inclusive.
func (t Tree) Path(id string) ([]Folder, bool) {
	return path(t.Folders, id, nil)
}

func path(folders []Folder, id string, prefix []Folder) ([]Folder, bool) {
	for _, f := range folders {
		cur := append(prefix[:len(prefix):len(prefix)], f)
		if f.ID == id {
			return cur, true
		}
		if p, ok := path(f.Children, id, cur); ok {
			return p, true
		}
	}
	return nil, false
}

// CountFolders returns the number of folders in the tree, root included.
func (t Tree) CountFolders() int {
	n := 0
	t.Walk(func(Folder, int) bool {
		n++
		return true
	})
	return n
}

// CountNotes returns the number of notes across all folders.
func (t Tree) CountNotes() int {
	n := 0
	t.Walk(func(f Folder, _ int) bool {
		n += len(f.Notes)
		return true
	})
	return n
}

// Clone returns a deep copy of the tree.
func (t Tree) Clone() Tree {
	if t.Folders == nil {
		return Tree{}
	}
	out := Tree{Folders: make([]Folder, len(t.Folders))}
	for i, f := range t.Folders {
		out.Folders[i] = f.Clone()
	}
	return out
}
