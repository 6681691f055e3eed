package worker_test

import (
	"sync"
	"testing"
	"time"

	"github.com/driftchain/node/foundation/blockchain/block"
	"github.com/driftchain/node/foundation/blockchain/worker"
)

// stubEngine is a minimal Engine that hands out whatever template
// setTemplate last set (ok=false until then) and records the blocks it's
// handed back.
type stubEngine struct {
	mu       sync.Mutex
	template struct {
		id     uint64
		data   string
		prev   string
		suffix string
		ok     bool
	}
	submitted []block.Block
	submitCh  chan block.Block
}

func newStubEngine() *stubEngine {
	e := &stubEngine{submitCh: make(chan block.Block, 8)}
	e.template.ok = false
	return e
}

func (e *stubEngine) setTemplate(id uint64, data, prev, suffix string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.template.id = id
	e.template.data = data
	e.template.prev = prev
	e.template.suffix = suffix
	e.template.ok = true
}

func (e *stubEngine) clearTemplate() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.template.ok = false
}

func (e *stubEngine) MiningTemplate() (uint64, string, string, string, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	t := e.template
	return t.id, t.data, t.prev, t.suffix, t.ok
}

func (e *stubEngine) SubmitMinedBlock(b block.Block) {
	e.mu.Lock()
	e.submitted = append(e.submitted, b)
	e.mu.Unlock()
	e.submitCh <- b
}

func TestWorkerMinesAndSubmits(t *testing.T) {
	engine := newStubEngine()
	engine.setTemplate(1, "tx", "0", "")

	w := worker.Run(engine, nil)
	defer w.Shutdown()

	w.SignalStartMining()

	select {
	case b := <-engine.submitCh:
		if b.ID != 1 || b.Data != "tx" || b.Prev != "0" {
			t.Fatalf("unexpected submitted block: %+v", b)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for mined block")
	}
}

func TestWorkerSkipsWhenNothingPending(t *testing.T) {
	engine := newStubEngine()

	w := worker.Run(engine, nil)
	defer w.Shutdown()

	w.SignalStartMining()

	select {
	case b := <-engine.submitCh:
		t.Fatalf("expected no submission, got %+v", b)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestWorkerShutdownCancelsInFlightSearch(t *testing.T) {
	engine := newStubEngine()
	engine.setTemplate(1, "tx", "0", "ffffffffffffffff")

	w := worker.Run(engine, nil)

	w.SignalStartMining()
	time.Sleep(20 * time.Millisecond)

	done := make(chan struct{})
	go func() {
		w.Shutdown()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("shutdown did not complete promptly")
	}

	_ = engine
}

// TestSignalCancelMiningWhenIdleDoesNotBlock guards against a deadlock
// where a cancel signalled while no mining attempt is running never gets
// acknowledged, since nothing would otherwise be left to drain it.
func TestSignalCancelMiningWhenIdleDoesNotBlock(t *testing.T) {
	engine := newStubEngine()

	w := worker.Run(engine, nil)
	defer w.Shutdown()

	wait := w.SignalCancelMining()

	select {
	case <-waitDone(wait):
	case <-time.After(2 * time.Second):
		t.Fatal("SignalCancelMining wait() blocked with no mining in progress")
	}
}

func waitDone(wait func()) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		wait()
		close(done)
	}()
	return done
}
