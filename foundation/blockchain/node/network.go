package node

import (
	"errors"

	"github.com/driftchain/node/foundation/blockchain/block"
	"github.com/driftchain/node/foundation/blockchain/chain"
	"github.com/driftchain/node/foundation/blockchain/message"
	"github.com/driftchain/node/foundation/blockchain/peer"
)

// OnNetwork handles one decoded message arriving from a peer.
func (n *Node) OnNetwork(env message.Envelope) {
	switch env.Kind {
	case message.KindTx:
		n.onTx(env.Data)

	case message.KindBlock:
		if env.Block == nil {
			n.evHandler("node: OnNetwork: WARNING: Block message with no block")
			return
		}
		n.onBlock(*env.Block)

	case message.KindChainRequest:
		n.onChainRequest(env.To)

	case message.KindChainResponse:
		n.onChainResponse(env)

	default:
		n.evHandler("node: OnNetwork: WARNING: unknown message kind[%s]", env.Kind)
	}
}

// onTx enqueues a transaction announced by a peer. It is not rebroadcast;
// the peer that originated it already broadcast it to everyone.
func (n *Node) onTx(text string) {
	idle := n.enqueue(text)
	if idle {
		n.worker.SignalStartMining()
	}
}

// onBlock attempts to extend the local chain with a peer-announced block.
func (n *Node) onBlock(b block.Block) {
	n.mu.Lock()
	err := n.chain.TryAppend(b, n.suffix)
	n.mu.Unlock()

	if err != nil {
		n.rejectBlock(b, err)
		return
	}

	// The predecessor this node may have been mining against is now stale.
	// Cancel and wait for the in-flight attempt (if any) to fully settle
	// before touching pending/mining state, so a last-instant local success
	// can't race with what we're about to do here.
	wait := n.worker.SignalCancelMining()
	wait()

	n.mu.Lock()
	defer n.mu.Unlock()

	// A peer already mined this text, so it no longer needs a block of ours.
	n.pending.Remove(b.Data)
	n.mining = ""

	if n.pending.Len() > 0 {
		n.worker.SignalStartMining()
	}
}

// rejectBlock logs or reacts to a block that could not be appended.
func (n *Node) rejectBlock(b block.Block, err error) {
	switch {
	case errors.Is(err, chain.ErrBadHash):
		n.evHandler("node: onBlock: discard: invalid block[%s]", b.Hash)

	case errors.Is(err, chain.ErrBadPrev), errors.Is(err, chain.ErrBadID):
		n.evHandler("node: onBlock: chain mismatch: requesting peer chain: %s", err)
		n.bus.Publish(message.ChainRequest(n.id.ID))

	default:
		n.evHandler("node: onBlock: WARNING: unexpected append error: %s", err)
	}
}

// onChainRequest replies to requester with this node's full chain, and
// records requester as a known peer.
func (n *Node) onChainRequest(requester string) {
	n.peers.Add(peer.FromID(requester))
	n.bus.Publish(message.ChainResponse(requester, n.Snapshot()))
}

// onChainResponse arbitrates between the local chain and a peer's chain,
// but only if the response is addressed to this node.
func (n *Node) onChainResponse(env message.Envelope) {
	if env.To != n.id.ID {
		return
	}

	remote := env.ChainValue()

	wait := n.worker.SignalCancelMining()
	wait()

	n.mu.Lock()
	defer n.mu.Unlock()

	before := n.chain
	chosen := before.Choose(remote, n.suffix)
	if chosen.Len() == before.Len() {
		// The local chain stands: resume the attempt cancelled above.
		n.mining = ""
		if n.pending.Len() > 0 {
			n.worker.SignalStartMining()
		}
		return
	}

	n.chain = chosen
	n.mining = ""

	for _, b := range chosen.Blocks()[before.Len():] {
		n.pending.Remove(b.Data)
	}

	if n.pending.Len() > 0 {
		n.worker.SignalStartMining()
	}
}
