package mempool_test

import (
	"testing"

	"github.com/driftchain/node/foundation/blockchain/mempool"
)

// Success and failure markers.
const (
	success = "✓"
	failed  = "✗"
)

func TestFIFOOrder(t *testing.T) {
	t.Log("Given the need to validate mempool FIFO ordering.")
	{
		t.Log("\tWhen enqueuing three transactions.")
		{
			mp := mempool.New()
			mp.Enqueue("tx1")
			mp.Enqueue("tx2")
			mp.Enqueue("tx3")

			if mp.Len() != 3 {
				t.Fatalf("\t%s\tShould have 3 pending transactions, got %d.", failed, mp.Len())
			}
			t.Logf("\t%s\tShould have 3 pending transactions.", success)

			got, ok := mp.Dequeue()
			if !ok || got != "tx1" {
				t.Fatalf("\t%s\tShould dequeue tx1 first, got %q.", failed, got)
			}
			t.Logf("\t%s\tShould dequeue in FIFO order.", success)

			if mp.Len() != 2 {
				t.Fatalf("\t%s\tShould have 2 remaining, got %d.", failed, mp.Len())
			}
			t.Logf("\t%s\tShould have 2 remaining after dequeue.", success)
		}
	}
}

func TestPeekDoesNotRemove(t *testing.T) {
	mp := mempool.New()
	mp.Enqueue("tx1")

	if v, ok := mp.Peek(); !ok || v != "tx1" {
		t.Fatalf("expected peek to return tx1, got %q, %v", v, ok)
	}
	if mp.Len() != 1 {
		t.Fatal("peek must not remove the item")
	}
}

func TestRemoveFirstOccurrence(t *testing.T) {
	mp := mempool.New()
	mp.Enqueue("tx1")
	mp.Enqueue("tx2")
	mp.Enqueue("tx1")

	if !mp.Remove("tx1") {
		t.Fatal("expected to remove an existing transaction")
	}

	got := mp.Values()
	want := []string{"tx2", "tx1"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestRemoveMissingReturnsFalse(t *testing.T) {
	mp := mempool.New()
	if mp.Remove("nope") {
		t.Fatal("expected Remove to report false for a missing entry")
	}
}

func TestDequeueEmpty(t *testing.T) {
	mp := mempool.New()
	if _, ok := mp.Dequeue(); ok {
		t.Fatal("expected Dequeue on empty mempool to report false")
	}
}
