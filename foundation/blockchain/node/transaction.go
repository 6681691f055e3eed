package node

import "github.com/driftchain/node/foundation/blockchain/message"

// SubmitTransaction appends text to the pending-transaction queue and
// broadcasts it to peers. If the node is currently idle, it starts a
// mining task for the newly queued transaction.
func (n *Node) SubmitTransaction(text string) {
	idle := n.enqueue(text)
	if idle {
		n.worker.SignalStartMining()
	}

	n.bus.Publish(message.Tx(text))
}

// enqueue appends text to the pending queue under lock and reports whether
// the node was idle (no active mining task) at the time.
func (n *Node) enqueue(text string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.pending.Enqueue(text)
	return n.mining == ""
}
