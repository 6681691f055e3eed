package node

import (
	"github.com/driftchain/node/foundation/blockchain/block"
	"github.com/driftchain/node/foundation/blockchain/message"
)

// MiningTemplate implements worker.Engine. It hands out the next block to
// attempt, peeking (not removing) the head of the pending queue: the text
// stays queued until a block carrying it is actually appended, whether
// mined locally or received from a peer.
func (n *Node) MiningTemplate() (id uint64, data, prev, suffix string, ok bool) {
	n.mu.Lock()
	defer n.mu.Unlock()

	text, has := n.pending.Peek()
	if !has {
		return 0, "", "", "", false
	}

	n.mining = text

	head := n.chain.Head()
	return head.ID + 1, text, head.Hash, n.suffix, true
}

// SubmitMinedBlock implements worker.Engine. It appends the freshly mined
// block, removes its transaction from the pending queue, and broadcasts it.
// Losing the append race to a peer block that arrived first is expected
// under concurrent mining and is not treated as an error: the block is
// simply discarded and mining restarts against the new head.
func (n *Node) SubmitMinedBlock(b block.Block) {
	n.mu.Lock()
	err := n.chain.TryAppend(b, n.suffix)
	if err != nil {
		n.mining = ""
		n.mu.Unlock()

		n.evHandler("node: SubmitMinedBlock: WARNING: lost append race: %s", err)
		n.worker.SignalStartMining()
		return
	}

	n.pending.Remove(b.Data)
	n.mining = ""
	hasMore := n.pending.Len() > 0
	n.mu.Unlock()

	n.bus.Publish(message.BlockMsg(b))

	if hasMore {
		n.worker.SignalStartMining()
	}
}
