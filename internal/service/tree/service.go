package tree

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/heartmarshall/notetree/internal/domain"
	"github.com/jonboulle/clockwork"
)

type idGenerator interface {
	NewID() string
}

type colorGenerator interface {
	RandomColor() string
}

const (
	MaxNameLength = 200
)

// Options holds the defaults applied to new folders and to the root.
type Options struct {
	RootName                   string
	DefaultIcon                string
	DefaultChatBackgroundColor string
}

func (o Options) withDefaults() Options {
	if strings.TrimSpace(o.RootName) == "" {
		o.RootName = domain.DefaultRootName
	}
	if strings.TrimSpace(o.DefaultIcon) == "" {
		o.DefaultIcon = domain.DefaultIcon
	}
	if strings.TrimSpace(o.DefaultChatBackgroundColor) == "" {
		o.DefaultChatBackgroundColor = domain.DefaultChatBackgroundColor
	}
	return o
}

// Service owns the note tree. Every mutation builds a new snapshot from the
// current one and swaps it in atomically; snapshots handed out earlier are
// never written to.
type Service struct {
	ids    idGenerator
	colors colorGenerator
	clock  clockwork.Clock
	opts   Options
	log    *slog.Logger

	mu         sync.Mutex
	tree       domain.Tree
	selectedID string
	listeners  []func(Change)
}

// NewService creates a tree service holding a fresh tree with only the root folder.
func NewService(
	log *slog.Logger,
	ids idGenerator,
	colors colorGenerator,
	clock clockwork.Clock,
	opts Options,
) *Service {
	opts = opts.withDefaults()
	return &Service{
		ids:    ids,
		colors: colors,
		clock:  clock,
		opts:   opts,
		log:    log.With("service", "tree"),
		tree:   domain.NewTree(domain.NewRootFolder(opts.RootName, opts.DefaultChatBackgroundColor)),
	}
}

// FolderResult is returned by operations that create or change a folder.
type FolderResult struct {
	Tree   domain.Tree
	Folder domain.Folder
}

// NoteResult is returned by operations that create or change a note.
type NoteResult struct {
	Tree domain.Tree
	Note domain.Note
}

// Snapshot returns the current tree.
func (s *Service) Snapshot() domain.Tree {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree
}

// OnChange registers fn to be called after every successful mutation and
// selection change. Listeners run outside the service lock, in registration
// order, on the goroutine that made the change.
func (s *Service) OnChange(fn func(Change)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// mutate runs fn against the current snapshot under the lock. On success the
// returned tree replaces the current one and listeners are notified. On
// error the current tree is left as it was.
func (s *Service) mutate(fn func(cur domain.Tree) (domain.Tree, Change, error)) (domain.Tree, error) {
	s.mu.Lock()
	next, change, err := fn(s.tree)
	if err != nil {
		s.mu.Unlock()
		return domain.Tree{}, err
	}
	s.tree = next
	change.Tree = next
	change.SelectedID = s.selectedID
	listeners := s.listeners
	s.mu.Unlock()

	for _, l := range listeners {
		l(change)
	}
	return next, nil
}

// logMiss records an operation that targeted a folder or note that does not
// exist. Other failures are left to the caller.
func (s *Service) logMiss(ctx context.Context, op string, err error, attrs ...slog.Attr) {
	if !errors.Is(err, domain.ErrNotFound) {
		return
	}
	attrs = append(attrs, slog.String("error", err.Error()))
	s.log.LogAttrs(ctx, slog.LevelDebug, op+": target not found", attrs...)
}
