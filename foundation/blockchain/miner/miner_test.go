package miner_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/driftchain/node/foundation/blockchain/hash"
	"github.com/driftchain/node/foundation/blockchain/miner"
)

func TestSearchFindsSmallestSatisfyingNonce(t *testing.T) {
	ctx := context.Background()

	b, err := miner.Search(ctx, 1, "tx1", "0", "0", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !b.IsValid("0") {
		t.Fatal("expected returned block to be valid")
	}

	for n := uint64(0); n < b.Nonce; n++ {
		if hash.Satisfies(hash.Hash(1, "tx1", "0", n), "0") {
			t.Fatalf("nonce %d also satisfies suffix but is smaller than returned nonce %d", n, b.Nonce)
		}
	}
}

func TestSearchEmptySuffixSolvesImmediately(t *testing.T) {
	b, err := miner.Search(context.Background(), 1, "tx1", "0", "", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Nonce != 0 {
		t.Fatalf("expected nonce 0 for the trivially-satisfied empty suffix, got %d", b.Nonce)
	}
}

func TestSearchCancellable(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	var err error
	go func() {
		_, err = miner.Search(ctx, 1, "tx1", "0", "ffffffffffff", nil)
		close(done)
	}()

	// Let a handful of batches run, then cancel.
	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("search did not respect cancellation promptly")
	}

	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
