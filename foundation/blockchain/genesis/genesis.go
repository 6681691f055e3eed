// Package genesis builds the deterministic first block every node agrees
// on without network negotiation. It plays the role the teacher's
// genesis.Load (reading a balances file) plays at startup, except there is
// nothing to load: every node mines the same genesis block from the same
// fixed inputs.
package genesis

import "github.com/driftchain/node/foundation/blockchain/chain"

// SentinelData is the fixed transaction payload carried by every node's
// genesis block.
const SentinelData = "genesis"

// SentinelPrev is the fixed predecessor hash carried by the genesis block,
// standing in for "no predecessor".
const SentinelPrev = "0"

// DefaultDifficulty is the difficulty suffix that applies when none is
// configured at startup. cmd/node declares the same value as the default of
// its Difficulty setting rather than referencing this constant.
const DefaultDifficulty = "00"

// Build mines and returns a chain containing only the genesis block for the
// given difficulty suffix. Because the search starts at nonce zero against
// fixed (id, data, prev) inputs, every node configured with the same suffix
// computes byte-identical genesis blocks.
func Build(suffix string) chain.Chain {
	return chain.Genesis(suffix, SentinelData, SentinelPrev)
}
