// Package node implements the orchestrator that owns the authoritative
// local chain and mediates between local mining, network ingress, and
// network egress. It is the core this module exists to build: every other
// package in foundation/blockchain is a leaf it assembles.
package node

import (
	"sync"

	"github.com/driftchain/node/foundation/blockchain/bus"
	"github.com/driftchain/node/foundation/blockchain/chain"
	"github.com/driftchain/node/foundation/blockchain/genesis"
	"github.com/driftchain/node/foundation/blockchain/mempool"
	"github.com/driftchain/node/foundation/blockchain/peer"
	"github.com/driftchain/node/foundation/blockchain/worker"
)

// EventHandler is called with progress and diagnostic messages as the node
// runs. It must be safe to call from multiple goroutines.
type EventHandler func(format string, args ...any)

// Config carries the values needed to construct a Node.
type Config struct {
	Suffix    string
	Bus       bus.Bus
	EvHandler EventHandler
}

// Node is the authoritative owner of the chain and the pending-transaction
// queue for one participant in the network. The chain, the queue, and the
// text of the transaction currently under active mining are guarded by mu
// and touched only through Node's own methods, which is how this package
// realizes the single-writer discipline: nothing outside Node ever reads
// or mutates chain or mempool state directly.
type Node struct {
	id        peer.Peer
	suffix    string
	bus       bus.Bus
	evHandler EventHandler

	mu      sync.Mutex
	chain   chain.Chain
	pending *mempool.Mempool
	mining  string // text of the tx currently under active mining, "" if idle
	peers   *peer.Set

	worker *worker.Worker

	shut chan struct{}
	wg   sync.WaitGroup
}

// New constructs a Node with a freshly mined genesis block for suffix, and
// starts its background network-listening goroutine and its mining worker.
func New(cfg Config) *Node {
	ev := cfg.EvHandler
	if ev == nil {
		ev = func(string, ...any) {}
	}

	n := &Node{
		id:        peer.New(),
		suffix:    cfg.Suffix,
		bus:       cfg.Bus,
		evHandler: ev,
		chain:     genesis.Build(cfg.Suffix),
		pending:   mempool.New(),
		peers:     peer.NewSet(),
		shut:      make(chan struct{}),
	}

	n.worker = worker.Run(n, worker.EventHandler(ev))

	n.wg.Add(1)
	go n.listenNetwork()

	return n
}

// ID returns this node's logical peer identifier.
func (n *Node) ID() string {
	return n.id.ID
}

// Snapshot returns a read-only copy of the current chain, safe to read
// after the call returns regardless of what Node does afterward.
func (n *Node) Snapshot() chain.Chain {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.chain
}

// PendingTexts returns a copy of the pending-transaction queue, in FIFO
// order, for display purposes.
func (n *Node) PendingTexts() []string {
	return n.pending.Values()
}

// Peers returns the peers known so far, learned from addressed ChainRequest
// traffic. The transport layer is free to track a richer peer list; this is
// only what the core can infer from the messages it consumes.
func (n *Node) Peers() []peer.Peer {
	return n.peers.Copy(n.id.ID)
}

// Status reports this node's current head and known peers, for display or
// for a peer's own status query.
func (n *Node) Status() peer.Status {
	c := n.Snapshot()
	return peer.Status{
		LatestBlockHash:   c.Head().Hash,
		LatestBlockNumber: c.Head().ID,
		KnownPeers:        n.Peers(),
	}
}

// Shutdown terminates the mining worker and the network-listening
// goroutine, and releases the bus.
func (n *Node) Shutdown() {
	n.evHandler("node: shutdown: started")
	defer n.evHandler("node: shutdown: completed")

	n.worker.Shutdown()
	close(n.shut)
	n.bus.Shutdown()
	n.wg.Wait()
}

func (n *Node) listenNetwork() {
	defer n.wg.Done()

	for {
		select {
		case env, ok := <-n.bus.Receive():
			if !ok {
				return
			}
			n.OnNetwork(env)
		case <-n.shut:
			return
		}
	}
}
