// Package miner performs the proof-of-work nonce search: given a block
// template and a difficulty suffix, it searches nonces starting at zero
// until one produces a satisfying hash, polling for cancellation between
// batches of attempts so a caller can pre-empt the search promptly.
package miner

import (
	"context"
	"errors"
	"math"

	"github.com/driftchain/node/foundation/blockchain/block"
	"github.com/driftchain/node/foundation/blockchain/hash"
)

// ErrExhausted is returned if the nonce counter overflows before a solution
// is found. Unreachable in practice for any reasonable suffix.
var ErrExhausted = errors.New("miner: nonce space exhausted")

// pollInterval bounds how many hash attempts happen between checks of the
// cancellation signal, bounding cancellation latency while still allowing
// batches of work between context checks.
const pollInterval = 2000

// EventHandler is called with progress/diagnostic messages during the
// search, in the teacher's logging convention: a printf-style format string
// plus args, never raising an error of its own.
type EventHandler func(format string, args ...any)

// Search looks for the smallest non-negative nonce such that
// hash.Hash(id, data, prev, nonce) satisfies suffix, starting at zero and
// incrementing monotonically. It returns the completed block on success, or
// an error if ctx is cancelled or the nonce space is exhausted.
//
// Cancellation is cooperative: the context is checked every pollInterval
// attempts, not on every attempt, so batches of hashing happen between
// checks for throughput without unbounding cancellation latency.
func Search(ctx context.Context, id uint64, data, prev, suffix string, ev EventHandler) (block.Block, error) {
	if ev == nil {
		ev = func(string, ...any) {}
	}

	ev("miner: search: started id[%d] prev[%s]", id, prev)
	defer ev("miner: search: completed id[%d]", id)

	var nonce uint64
	var attempts uint64

	for {
		h := hash.Hash(id, data, prev, nonce)
		if hash.Satisfies(h, suffix) {
			ev("miner: search: solved id[%d] nonce[%d] attempts[%d]", id, nonce, attempts)
			return block.New(id, data, prev, nonce, h), nil
		}

		attempts++
		if attempts%pollInterval == 0 {
			if err := ctx.Err(); err != nil {
				ev("miner: search: cancelled id[%d] attempts[%d]", id, attempts)
				return block.Block{}, err
			}
		}

		if nonce == math.MaxUint64 {
			return block.Block{}, ErrExhausted
		}
		nonce++
	}
}
