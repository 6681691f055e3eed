// Package v1 contains the full set of handler functions and routes
// supported by the v1 web api.
package v1

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/driftchain/node/business/web/errs"
	"github.com/driftchain/node/foundation/blockchain/bus"
	"github.com/driftchain/node/foundation/blockchain/node"
	"github.com/driftchain/node/foundation/validate"
	"github.com/driftchain/node/foundation/web"
)

// errNoMesh is returned when the websocket mesh endpoint is hit on a node
// that was started with an in-process bus rather than the websocket one.
var errNoMesh = errors.New("this node has no websocket mesh configured")

// Handlers manages the set of node API endpoints.
type Handlers struct {
	Log  *zap.SugaredLogger
	Node *node.Node
	Mesh *bus.WS
}

// Events accepts a peer's inbound websocket connection into the mesh bus.
// Once accepted, the node's bus starts reading and writing wire envelopes
// over this connection like any other peer.
func (h Handlers) Events(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	if h.Mesh == nil {
		return errs.NewTrusted(errNoMesh, http.StatusNotImplemented)
	}
	return h.Mesh.Accept(w, r)
}

// Status returns this node's head and known peers.
func (h Handlers) Status(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	return web.Respond(ctx, w, h.Node.Status(), http.StatusOK)
}

// Chain returns the full local chain, one block per element, genesis first.
func (h Handlers) Chain(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	return web.Respond(ctx, w, h.Node.Snapshot().Blocks(), http.StatusOK)
}

// Mempool returns the pending-transaction queue, in FIFO order.
func (h Handlers) Mempool(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	return web.Respond(ctx, w, h.Node.PendingTexts(), http.StatusOK)
}

// Peers returns the known peers other than this node.
func (h Handlers) Peers(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	return web.Respond(ctx, w, h.Node.Peers(), http.StatusOK)
}

// txRequest is the payload for submitting a new transaction.
type txRequest struct {
	Data string `json:"data" validate:"required"`
}

// SubmitTx queues a new transaction, both locally and broadcast to peers.
func (h Handlers) SubmitTx(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	var req txRequest
	if err := web.Decode(r, &req); err != nil {
		return errs.NewTrusted(err, http.StatusBadRequest)
	}

	if err := validate.Check(req); err != nil {
		return err
	}

	h.Node.SubmitTransaction(req.Data)

	resp := struct {
		Status string `json:"status"`
	}{
		Status: "transaction queued",
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}
