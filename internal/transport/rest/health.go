package rest

import (
	"net/http"
	"time"

	"github.com/heartmarshall/notetree/internal/domain"
	"github.com/jonboulle/clockwork"
)

// snapshotter exposes the current tree for health reporting.
type snapshotter interface {
	Snapshot() domain.Tree
}

// clientCounter reports connected change-feed clients.
type clientCounter interface {
	Clients() int
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	tree    snapshotter
	feed    clientCounter
	version string
	clock   clockwork.Clock
	started time.Time
}

// NewHealthHandler creates a HealthHandler. feed may be nil.
func NewHealthHandler(tree snapshotter, feed clientCounter, version string, clock clockwork.Clock) *HealthHandler {
	return &HealthHandler{
		tree:    tree,
		feed:    feed,
		version: version,
		clock:   clock,
		started: clock.Now(),
	}
}

// HealthResponse is the JSON response for /live and /health.
type HealthResponse struct {
	Status    string      `json:"status"`
	Version   string      `json:"version,omitempty"`
	Uptime    string      `json:"uptime,omitempty"`
	Tree      *TreeStats  `json:"tree,omitempty"`
	Feed      *FeedStatus `json:"feed,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// TreeStats summarises the in-memory tree.
type TreeStats struct {
	Folders  int `json:"folders"`
	Notes    int `json:"notes"`
	TopLevel int `json:"topLevel"`
}

// FeedStatus describes the websocket change feed.
type FeedStatus struct {
	Clients int `json:"clients"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: h.clock.Now(),
	})
}

// Health reports version, uptime and tree statistics. The store lives in
// memory, so it is healthy whenever it holds its root folder.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	t := h.tree.Snapshot()
	now := h.clock.Now()

	resp := HealthResponse{
		Status:  "ok",
		Version: h.version,
		Uptime:  now.Sub(h.started).Round(time.Second).String(),
		Tree: &TreeStats{
			Folders:  t.CountFolders(),
			Notes:    t.CountNotes(),
			TopLevel: len(t.Folders),
		},
		Timestamp: now,
	}
	if h.feed != nil {
		resp.Feed = &FeedStatus{Clients: h.feed.Clients()}
	}

	status := http.StatusOK
	if !t.Contains(domain.RootID) {
		resp.Status = "down"
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, resp)
}
