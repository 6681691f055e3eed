package chain_test

import (
	"errors"
	"testing"

	"github.com/driftchain/node/foundation/blockchain/block"
	"github.com/driftchain/node/foundation/blockchain/chain"
	"github.com/driftchain/node/foundation/blockchain/hash"
)

const suffix = "0" // trivial, fast to satisfy in tests

func mine(id uint64, data, prev string) block.Block {
	var nonce uint64
	for {
		h := hash.Hash(id, data, prev, nonce)
		if hash.Satisfies(h, suffix) {
			return block.New(id, data, prev, nonce, h)
		}
		nonce++
	}
}

func TestGenesisDeterministic(t *testing.T) {
	c1 := chain.Genesis(suffix, "genesis", "0")
	c2 := chain.Genesis(suffix, "genesis", "0")

	if c1.Head() != c2.Head() {
		t.Fatalf("genesis blocks differ: %+v != %+v", c1.Head(), c2.Head())
	}
	if c1.Len() != 1 {
		t.Fatalf("expected genesis chain length 1, got %d", c1.Len())
	}
}

func TestTryAppendSuccess(t *testing.T) {
	c := chain.Genesis(suffix, "genesis", "0")
	b := mine(1, "tx1", c.Head().Hash)

	if err := c.TryAppend(b, suffix); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("expected length 2, got %d", c.Len())
	}
	if c.Head() != b {
		t.Fatalf("expected head to be the appended block")
	}
}

func TestTryAppendBadPrev(t *testing.T) {
	c := chain.Genesis(suffix, "genesis", "0")
	b := mine(1, "tx1", "not-the-real-prev")

	err := c.TryAppend(b, suffix)
	if !errors.Is(err, chain.ErrBadPrev) {
		t.Fatalf("expected ErrBadPrev, got %v", err)
	}
	if c.Len() != 1 {
		t.Fatal("chain must not be modified on failed append")
	}
}

func TestTryAppendBadID(t *testing.T) {
	c := chain.Genesis(suffix, "genesis", "0")
	b := mine(2, "tx1", c.Head().Hash)

	err := c.TryAppend(b, suffix)
	if !errors.Is(err, chain.ErrBadID) {
		t.Fatalf("expected ErrBadID, got %v", err)
	}
}

func TestTryAppendBadHash(t *testing.T) {
	c := chain.Genesis(suffix, "genesis", "0")
	b := mine(1, "tx1", c.Head().Hash)
	b.Nonce++ // invalidate without recomputing the hash

	err := c.TryAppend(b, suffix)
	if !errors.Is(err, chain.ErrBadHash) {
		t.Fatalf("expected ErrBadHash, got %v", err)
	}
}

func TestIsValidWholeChain(t *testing.T) {
	c := chain.Genesis(suffix, "genesis", "0")
	b1 := mine(1, "tx1", c.Head().Hash)
	if err := c.TryAppend(b1, suffix); err != nil {
		t.Fatal(err)
	}
	b2 := mine(2, "tx2", c.Head().Hash)
	if err := c.TryAppend(b2, suffix); err != nil {
		t.Fatal(err)
	}

	if !c.IsValid(suffix) {
		t.Fatal("expected chain to be valid")
	}
}

func TestChooseLongerValidWins(t *testing.T) {
	local := chain.Genesis(suffix, "genesis", "0")

	remote := chain.Genesis(suffix, "genesis", "0")
	b1 := mine(1, "tx1", remote.Head().Hash)
	if err := remote.TryAppend(b1, suffix); err != nil {
		t.Fatal(err)
	}

	got := local.Choose(remote, suffix)
	if got.Len() != remote.Len() {
		t.Fatalf("expected local to adopt the longer remote chain, got len %d", got.Len())
	}
}

func TestChooseShorterLoses(t *testing.T) {
	local := chain.Genesis(suffix, "genesis", "0")
	b1 := mine(1, "tx1", local.Head().Hash)
	if err := local.TryAppend(b1, suffix); err != nil {
		t.Fatal(err)
	}

	remote := chain.Genesis(suffix, "genesis", "0")

	got := local.Choose(remote, suffix)
	if got.Len() != local.Len() {
		t.Fatal("expected local (longer) chain to win")
	}
}

func TestChooseTieKeepsLocal(t *testing.T) {
	local := chain.Genesis(suffix, "genesis", "0")
	remote := chain.Genesis(suffix, "genesis", "0")

	got := local.Choose(remote, suffix)
	if got.Head() != local.Head() {
		t.Fatal("expected tie to keep the receiver (local wins ties)")
	}
}

func TestChooseInvalidRemoteLoses(t *testing.T) {
	local := chain.Genesis(suffix, "genesis", "0")

	remote := chain.Genesis(suffix, "genesis", "0")
	b1 := mine(1, "tx1", remote.Head().Hash)
	b1.Nonce++ // corrupt without recomputing hash
	// Build an invalid two-block chain manually via New + tamper.
	badRemote := chain.New(append(remote.Blocks(), b1))

	got := local.Choose(badRemote, suffix)
	if got.Head() != local.Head() {
		t.Fatal("expected invalid remote chain to be rejected")
	}
}

func TestChooseIsIdempotent(t *testing.T) {
	c := chain.Genesis(suffix, "genesis", "0")
	got := c.Choose(c, suffix)
	if got.Head() != c.Head() || got.Len() != c.Len() {
		t.Fatal("choose(c, c) must equal c")
	}
}
