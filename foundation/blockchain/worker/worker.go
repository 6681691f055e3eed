// Package worker runs the mining workflow as a background goroutine,
// started and cancelled by signal rather than called directly, so the node
// event loop is never blocked waiting on a hash search.
package worker

import (
	"sync"

	"github.com/driftchain/node/foundation/blockchain/block"
)

// EventHandler is the printf-style logging hook, matching every other
// package in this module.
type EventHandler func(format string, args ...any)

// Engine is the worker's only view of the node: the single authority over
// chain and mempool state. The worker mines against snapshots Engine hands
// out and reports finished blocks back through it; it never touches chain
// or mempool state directly.
type Engine interface {
	// MiningTemplate returns the next block to attempt and ok=false when
	// there is nothing pending worth mining.
	MiningTemplate() (id uint64, data, prev, suffix string, ok bool)

	// SubmitMinedBlock hands a successfully mined block back for
	// validation, append, and broadcast.
	SubmitMinedBlock(b block.Block)
}

// Worker manages the proof-of-work mining workflow.
type Worker struct {
	engine       Engine
	evHandler    EventHandler
	wg           sync.WaitGroup
	shut         chan struct{}
	startMining  chan struct{}
	cancelMining chan chan struct{}
}

// Run constructs a Worker and starts its background goroutine. It does not
// return until the goroutine has reported it is running.
func Run(engine Engine, evHandler EventHandler) *Worker {
	if evHandler == nil {
		evHandler = func(string, ...any) {}
	}

	w := Worker{
		engine:       engine,
		evHandler:    evHandler,
		shut:         make(chan struct{}),
		startMining:  make(chan struct{}, 1),
		cancelMining: make(chan chan struct{}, 1),
	}

	hasStarted := make(chan struct{})
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		close(hasStarted)
		w.miningOperations()
	}()
	<-hasStarted

	return &w
}

// Shutdown terminates the mining goroutine, cancelling any in-flight search.
func (w *Worker) Shutdown() {
	w.evHandler("worker: shutdown: started")
	defer w.evHandler("worker: shutdown: completed")

	wait := w.SignalCancelMining()
	close(w.shut)
	wait()
	w.wg.Wait()
}

// SignalStartMining requests a mining attempt. If one is already queued,
// this is a no-op.
func (w *Worker) SignalStartMining() {
	select {
	case w.startMining <- struct{}{}:
	default:
	}
	w.evHandler("worker: SignalStartMining: mining signaled")
}

// SignalCancelMining cancels any mining attempt in progress and returns a
// function that blocks until the cancellation has been acknowledged.
func (w *Worker) SignalCancelMining() func() {
	done := make(chan struct{})
	select {
	case w.cancelMining <- done:
	default:
		close(done)
	}
	w.evHandler("worker: SignalCancelMining: MINING: CANCEL: signaled")

	return func() { <-done }
}

// drainCancelMining closes out any cancel signal queued while no mining
// operation was running, so its caller's wait() never blocks on a search
// that will never start.
func (w *Worker) drainCancelMining() {
	select {
	case wait := <-w.cancelMining:
		close(wait)
		w.evHandler("worker: drainCancelMining: MINING: drained cancel channel")
	default:
	}
}

func (w *Worker) isShutdown() bool {
	select {
	case <-w.shut:
		return true
	default:
		return false
	}
}
