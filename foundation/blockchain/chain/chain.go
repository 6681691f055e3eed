// Package chain holds the ordered block sequence, enforces structural
// validity on append, and arbitrates between competing chains observed
// from peers (the fork-choice rule).
package chain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/driftchain/node/foundation/blockchain/block"
	"github.com/driftchain/node/foundation/blockchain/hash"
)

// Sentinel errors returned (wrapped) by TryAppend. Callers should use
// errors.Is against these values, matching the convention the teacher's
// database package uses for ErrChainForked.
var (
	// ErrBadPrev indicates the candidate block's prev hash does not match
	// the current head's hash.
	ErrBadPrev = errors.New("chain: block prev does not match head hash")

	// ErrBadID indicates the candidate block's id is not head.id + 1.
	ErrBadID = errors.New("chain: block id is not the next id")

	// ErrBadHash indicates the candidate block fails its own hash/suffix
	// self-validation.
	ErrBadHash = errors.New("chain: block hash is self-invalid")
)

// AppendError wraps one of the sentinel errors above with the offending
// block for diagnostic logging.
type AppendError struct {
	Err   error
	Block block.Block
}

func (e *AppendError) Error() string {
	return fmt.Sprintf("%s: block %s", e.Err, e.Block)
}

func (e *AppendError) Unwrap() error {
	return e.Err
}

// =============================================================================

// Chain is an ordered, non-empty sequence of blocks.
type Chain struct {
	blocks []block.Block
}

// New constructs a Chain from a non-empty block slice. It is used by the
// message codec's chain decoding; it performs no validation, callers that
// receive blocks from the network must call IsValid before trusting the
// result.
func New(blocks []block.Block) Chain {
	cp := make([]block.Block, len(blocks))
	copy(cp, blocks)
	return Chain{blocks: cp}
}

// Genesis mines a single genesis block — id 0, the fixed sentinel payload
// and predecessor hash — searching a nonce starting at 0 until the hash
// satisfies suffix. Because the search is deterministic and starts from the
// same inputs on every node, two nodes configured with the same suffix
// produce byte-identical genesis blocks without any network negotiation.
func Genesis(suffix, data, prevSentinel string) Chain {
	var nonce uint64
	for {
		h := hash.Hash(0, data, prevSentinel, nonce)
		if hash.Satisfies(h, suffix) {
			g := block.New(0, data, prevSentinel, nonce, h)
			return Chain{blocks: []block.Block{g}}
		}
		nonce++
	}
}

// Head returns the last block in the chain.
func (c Chain) Head() block.Block {
	return c.blocks[len(c.blocks)-1]
}

// Len returns the number of blocks in the chain.
func (c Chain) Len() int {
	return len(c.blocks)
}

// Blocks returns a defensive copy of the chain's blocks, oldest first.
func (c Chain) Blocks() []block.Block {
	cp := make([]block.Block, len(c.blocks))
	copy(cp, c.blocks)
	return cp
}

// TryAppend validates b against the current head — prev linkage, id
// sequencing, and the block's own hash/suffix self-validation, in that
// order — and on success appends it. On failure the chain is left
// unmodified.
func (c *Chain) TryAppend(b block.Block, suffix string) error {
	head := c.Head()

	if b.Prev != head.Hash {
		return &AppendError{Err: ErrBadPrev, Block: b}
	}
	if b.ID != head.ID+1 {
		return &AppendError{Err: ErrBadID, Block: b}
	}
	if !b.IsValid(suffix) {
		return &AppendError{Err: ErrBadHash, Block: b}
	}

	c.blocks = append(c.blocks, b)
	return nil
}

// IsValid validates the whole chain from genesis forward: every block must
// be individually valid under suffix, and every block after the first must
// correctly chain to its predecessor.
func (c Chain) IsValid(suffix string) bool {
	if len(c.blocks) == 0 {
		return false
	}

	for i, b := range c.blocks {
		if !b.IsValid(suffix) {
			return false
		}
		if i == 0 {
			continue
		}
		prev := c.blocks[i-1]
		if b.ID != prev.ID+1 {
			return false
		}
		if b.Prev != prev.Hash {
			return false
		}
	}

	return true
}

// Choose implements the fork-choice rule: the receiver (local chain) wins
// unless other is entirely valid under suffix and strictly longer.
func (c Chain) Choose(other Chain, suffix string) Chain {
	if !other.IsValid(suffix) {
		return c
	}
	if other.Len() > c.Len() {
		return other
	}
	return c
}

// String renders one line per block, the form the "ls" CLI command prints.
func (c Chain) String() string {
	var sb strings.Builder
	for _, b := range c.blocks {
		sb.WriteString(b.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
