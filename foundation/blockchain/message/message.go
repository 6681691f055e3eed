// Package message implements the single-line, tagged-JSON wire envelope
// that carries transactions, blocks, and chain-exchange requests between
// peers.
package message

import (
	"encoding/json"
	"fmt"

	"github.com/driftchain/node/foundation/blockchain/block"
	"github.com/driftchain/node/foundation/blockchain/chain"
)

// Kind discriminates the four message variants the core consumes.
type Kind string

// The four wire message kinds, matching spec.md's wire encoding exactly.
const (
	KindTx            Kind = "Tx"
	KindBlock         Kind = "Block"
	KindChainRequest  Kind = "ChainRequest"
	KindChainResponse Kind = "ChainResponse"
)

// Envelope is the tagged JSON record exchanged between peers. Exactly one
// of the payload fields is populated, selected by Kind.
type Envelope struct {
	Kind  Kind          `json:"kind"`
	Data  string        `json:"data,omitempty"`
	Block *block.Block  `json:"block,omitempty"`
	To    string        `json:"to,omitempty"`
	Chain []block.Block `json:"chain,omitempty"`
}

// Tx constructs a new-transaction envelope.
func Tx(data string) Envelope {
	return Envelope{Kind: KindTx, Data: data}
}

// BlockMsg constructs a mined/received-block announcement envelope.
func BlockMsg(b block.Block) Envelope {
	return Envelope{Kind: KindBlock, Block: &b}
}

// ChainRequest constructs a request for a peer's full chain, addressed at
// the sender so replies can be routed back.
func ChainRequest(from string) Envelope {
	return Envelope{Kind: KindChainRequest, To: from}
}

// ChainResponse constructs a full-chain reply addressed at to.
func ChainResponse(to string, c chain.Chain) Envelope {
	return Envelope{Kind: KindChainResponse, To: to, Chain: c.Blocks()}
}

// Encode serializes the envelope to its single-line JSON wire form. No
// trailing newline is added.
func (e Envelope) Encode() ([]byte, error) {
	data, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("encode envelope: %w", err)
	}
	return data, nil
}

// Decode parses an envelope from its wire form.
func Decode(data []byte) (Envelope, error) {
	var e Envelope
	if err := json.Unmarshal(data, &e); err != nil {
		return Envelope{}, fmt.Errorf("decode envelope: %w", err)
	}
	return e, nil
}

// ChainValue reconstructs the chain carried by a ChainResponse envelope.
// Callers must still validate the result with chain.IsValid before trusting
// it; decoding never implies validity.
func (e Envelope) ChainValue() chain.Chain {
	return chain.New(e.Chain)
}
