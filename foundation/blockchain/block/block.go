// Package block defines the immutable Block record and its self-validation
// and wire-encoding rules.
package block

import (
	"encoding/json"
	"fmt"

	"github.com/driftchain/node/foundation/blockchain/hash"
)

// Block is an immutable record in the chain. Field order matches the wire
// and hashing order required by the protocol: id, data, prev, nonce, hash.
type Block struct {
	ID    uint64 `json:"id"`
	Data  string `json:"data"`
	Prev  string `json:"prev"`
	Nonce uint64 `json:"nonce"`
	Hash  string `json:"hash"`
}

// New constructs a Block from its five fields verbatim. It performs no
// hashing or validation; use IsValid to check the result.
func New(id uint64, data, prev string, nonce uint64, hash string) Block {
	return Block{
		ID:    id,
		Data:  data,
		Prev:  prev,
		Nonce: nonce,
		Hash:  hash,
	}
}

// IsValid recomputes the block's hash from id, data, prev, and nonce,
// compares it against the stored hash, and checks that the stored hash
// satisfies suffix.
func (b Block) IsValid(suffix string) bool {
	want := hash.Hash(b.ID, b.Data, b.Prev, b.Nonce)
	if want != b.Hash {
		return false
	}
	return hash.Satisfies(b.Hash, suffix)
}

// Encode serializes the block to its portable JSON form.
func (b Block) Encode() ([]byte, error) {
	data, err := json.Marshal(b)
	if err != nil {
		return nil, fmt.Errorf("encode block: %w", err)
	}
	return data, nil
}

// Decode parses a block from its portable JSON form.
func Decode(data []byte) (Block, error) {
	var b Block
	if err := json.Unmarshal(data, &b); err != nil {
		return Block{}, fmt.Errorf("decode block: %w", err)
	}
	return b, nil
}

// String renders one line of the form used by the CLI's "ls" command.
func (b Block) String() string {
	return fmt.Sprintf("#%d data=%q prev=%s nonce=%d hash=%s", b.ID, b.Data, b.Prev, b.Nonce, b.Hash)
}
