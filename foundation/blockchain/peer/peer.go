// Package peer maintains peer related information such as the set of
// known peers addressable for ChainRequest/ChainResponse exchanges.
package peer

import (
	"sync"

	"github.com/google/uuid"
)

// Peer represents one other node in the network, addressed by a logical id
// rather than a dialed host, since the transport abstraction (see package
// bus) may be in-process or socket-based.
type Peer struct {
	ID string
}

// New constructs a Peer with a freshly generated id.
func New() Peer {
	return Peer{ID: uuid.NewString()}
}

// FromID constructs a Peer from an existing id, as recovered from the wire
// (a ChainRequest/ChainResponse "to" field) or from configuration.
func FromID(id string) Peer {
	return Peer{ID: id}
}

// Match reports whether id addresses this peer.
func (p Peer) Match(id string) bool {
	return p.ID == id
}

// =============================================================================

// Status describes what a peer is willing to report about itself in
// response to a status query.
type Status struct {
	LatestBlockHash   string `json:"latest_block_hash"`
	LatestBlockNumber uint64 `json:"latest_block_number"`
	KnownPeers        []Peer `json:"known_peers"`
}

// =============================================================================

// Set maintains the set of known peers, safe for concurrent use.
type Set struct {
	mu  sync.RWMutex
	set map[Peer]struct{}
}

// NewSet constructs an empty peer set.
func NewSet() *Set {
	return &Set{
		set: make(map[Peer]struct{}),
	}
}

// Add adds a peer to the set, reporting whether it was new.
func (ps *Set) Add(p Peer) bool {
	ps.mu.Lock()
	defer ps.mu.Unlock()

	if _, exists := ps.set[p]; exists {
		return false
	}
	ps.set[p] = struct{}{}
	return true
}

// Remove removes a peer from the set.
func (ps *Set) Remove(p Peer) {
	ps.mu.Lock()
	defer ps.mu.Unlock()

	delete(ps.set, p)
}

// Copy returns the known peers other than self.
func (ps *Set) Copy(self string) []Peer {
	ps.mu.RLock()
	defer ps.mu.RUnlock()

	var peers []Peer
	for p := range ps.set {
		if !p.Match(self) {
			peers = append(peers, p)
		}
	}
	return peers
}
