package worker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/driftchain/node/foundation/blockchain/miner"
)

// miningOperations is the worker's single background goroutine: it waits
// for a start signal, runs one mining attempt to completion (success,
// cancellation, or exhaustion), then waits for the next signal.
func (w *Worker) miningOperations() {
	w.evHandler("worker: miningOperations: G started")
	defer w.evHandler("worker: miningOperations: G completed")

	for {
		select {
		case <-w.startMining:
			if !w.isShutdown() {
				w.runMiningOperation()
			}
		case wait := <-w.cancelMining:
			// Nothing is mining right now, so there is nothing to cancel;
			// close the signaller's wait() immediately instead of leaving it
			// queued for a mining operation that may never start.
			close(wait)
			w.evHandler("worker: miningOperations: MINING: CANCEL: nothing running, acknowledged")
		case <-w.shut:
			w.evHandler("worker: miningOperations: received shut signal")
			w.drainCancelMining()
			return
		}
	}
}

// runMiningOperation asks the engine for a template and searches for a
// satisfying nonce, cancellable at any point via SignalCancelMining.
func (w *Worker) runMiningOperation() {
	w.evHandler("worker: runMiningOperation: MINING: started")
	defer w.evHandler("worker: runMiningOperation: MINING: completed")

	id, data, prev, suffix, ok := w.engine.MiningTemplate()
	if !ok {
		w.evHandler("worker: runMiningOperation: MINING: nothing pending to mine")
		w.drainCancelMining()
		return
	}

	// If a cancel was signalled before this attempt even started, drain it
	// so it doesn't cancel the attempt we're about to begin. Nothing is
	// searching yet, so the signaller's wait() is closed right away rather
	// than carried into the defer below, which only fires for a cancel
	// received while a search is actually in flight.
	var wait chan struct{}
	defer func() {
		if wait != nil {
			w.evHandler("worker: runMiningOperation: MINING: termination signal: waiting")
			close(wait)
			w.evHandler("worker: runMiningOperation: MINING: termination signal: received")
		}
	}()

	w.drainCancelMining()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer func() {
			cancel()
			wg.Done()
		}()

		select {
		case wait = <-w.cancelMining:
			w.evHandler("worker: runMiningOperation: MINING: CANCEL: requested")
		case <-ctx.Done():
		}
	}()

	go func() {
		defer func() {
			cancel()
			wg.Done()
		}()

		t := time.Now()
		b, err := miner.Search(ctx, id, data, prev, suffix, miner.EventHandler(w.evHandler))
		duration := time.Since(t)

		w.evHandler("worker: runMiningOperation: MINING: mining duration[%v]", duration)

		if err != nil {
			switch {
			case errors.Is(err, context.Canceled):
				w.evHandler("worker: runMiningOperation: MINING: CANCEL: complete")
			case errors.Is(err, miner.ErrExhausted):
				w.evHandler("worker: runMiningOperation: MINING: ERROR: nonce space exhausted")
			default:
				w.evHandler("worker: runMiningOperation: MINING: ERROR: %s", err)
			}
			return
		}

		w.engine.SubmitMinedBlock(b)
	}()

	wg.Wait()
}
