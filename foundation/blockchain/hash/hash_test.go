package hash_test

import (
	"testing"

	"github.com/driftchain/node/foundation/blockchain/hash"
)

func TestHashDeterministic(t *testing.T) {
	h1 := hash.Hash(1, "tx1", "0", 42)
	h2 := hash.Hash(1, "tx1", "0", 42)

	if h1 != h2 {
		t.Fatalf("hash is not deterministic: %s != %s", h1, h2)
	}
}

func TestHashSensitiveToEveryField(t *testing.T) {
	base := hash.Hash(1, "tx1", "0", 42)

	variants := []string{
		hash.Hash(2, "tx1", "0", 42),
		hash.Hash(1, "tx2", "0", 42),
		hash.Hash(1, "tx1", "1", 42),
		hash.Hash(1, "tx1", "0", 43),
	}

	for i, v := range variants {
		if v == base {
			t.Fatalf("variant %d collided with base hash", i)
		}
	}
}

func TestSatisfiesEmptySuffix(t *testing.T) {
	if !hash.Satisfies("anything", "") {
		t.Fatal("empty suffix must be trivially satisfied")
	}
}

func TestSatisfiesCaseInsensitive(t *testing.T) {
	if !hash.Satisfies("deadBEEF00", "beef00") {
		t.Fatal("suffix match must be case-insensitive")
	}
}

func TestSatisfiesRejectsMismatch(t *testing.T) {
	if hash.Satisfies("deadbeef", "ffff") {
		t.Fatal("expected suffix mismatch to be rejected")
	}
}
