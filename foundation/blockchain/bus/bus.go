// Package bus implements the opaque broadcast/subscribe message transport
// the node core treats as an external collaborator: something that can
// Publish an envelope to every other peer and deliver inbound envelopes to
// a receive channel. Two backends are provided: an in-process fan-out bus
// for same-process multi-node tests, and a websocket-mesh transport for
// real peer-to-peer use.
package bus

import "github.com/driftchain/node/foundation/blockchain/message"

// Bus is the minimal contract the Node depends on. Nothing about mining,
// validation, or conflict resolution knows which implementation backs it.
type Bus interface {
	// Publish broadcasts env to every other known peer.
	Publish(env message.Envelope)

	// Receive returns the channel of envelopes arriving from peers. It is
	// closed when the bus shuts down.
	Receive() <-chan message.Envelope

	// Shutdown releases any resources the bus holds (connections,
	// goroutines, registered channels).
	Shutdown()
}
