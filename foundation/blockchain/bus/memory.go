package bus

import (
	"sync"

	"github.com/driftchain/node/foundation/blockchain/message"
)

// messageBuffer bounds how many undelivered envelopes a subscriber may
// have queued before further sends to it are dropped, the same arbitrary
// buffer size the teacher's events package uses for its websocket
// receivers.
const messageBuffer = 100

// Memory is an in-process fan-out bus endpoint: every node sharing a
// MemoryHub receives every other node's publishes. It is grounded directly
// on foundation/events.Events (Acquire/Release/Send), generalized from
// "string log lines for one websocket viewer" to "wire envelopes for N
// peer nodes".
type Memory struct {
	hub *MemoryHub
	out chan message.Envelope
	id  string
}

// NewMemory constructs a bus endpoint identified by id and registers it
// with the shared hub. All endpoints sharing the same hub see each other's
// publishes.
func NewMemory(hub *MemoryHub, id string) *Memory {
	return &Memory{
		hub: hub,
		out: hub.register(id),
		id:  id,
	}
}

// Publish fans env out to every other registered endpoint on the hub.
func (m *Memory) Publish(env message.Envelope) {
	m.hub.publish(m.id, env)
}

// Receive returns this endpoint's inbound envelope channel.
func (m *Memory) Receive() <-chan message.Envelope {
	return m.out
}

// Shutdown releases this endpoint's channel on the hub.
func (m *Memory) Shutdown() {
	m.hub.release(m.id)
}

// =============================================================================

// MemoryHub owns the set of channels backing every Memory endpoint
// constructed against it, mirroring the map-of-channels a single
// foundation/events.Events hub owns. All access to the channel map goes
// through the hub's own mutex, so registration and publish from different
// endpoints never race.
type MemoryHub struct {
	mu    sync.RWMutex
	peers map[string]chan message.Envelope
}

// NewMemoryHub constructs an empty hub.
func NewMemoryHub() *MemoryHub {
	return &MemoryHub{
		peers: make(map[string]chan message.Envelope),
	}
}

func (h *MemoryHub) register(id string) chan message.Envelope {
	h.mu.Lock()
	defer h.mu.Unlock()

	if ch, exists := h.peers[id]; exists {
		return ch
	}
	ch := make(chan message.Envelope, messageBuffer)
	h.peers[id] = ch
	return ch
}

func (h *MemoryHub) publish(from string, env message.Envelope) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for id, ch := range h.peers {
		if id == from {
			continue
		}
		select {
		case ch <- env:
		default:
		}
	}
}

func (h *MemoryHub) release(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if ch, exists := h.peers[id]; exists {
		delete(h.peers, id)
		close(ch)
	}
}

// Shutdown closes and removes every registered endpoint's channel.
func (h *MemoryHub) Shutdown() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for id, ch := range h.peers {
		delete(h.peers, id)
		close(ch)
	}
}
