package v1

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/driftchain/node/foundation/blockchain/bus"
	"github.com/driftchain/node/foundation/blockchain/node"
	"github.com/driftchain/node/foundation/web"
)

const version = "v1"

// Config contains all the mandatory systems required by handlers.
type Config struct {
	Log  *zap.SugaredLogger
	Node *node.Node
	Mesh *bus.WS
}

// Routes binds all the version 1 routes.
func Routes(app *web.App, cfg Config) {
	hdl := Handlers{
		Log:  cfg.Log,
		Node: cfg.Node,
		Mesh: cfg.Mesh,
	}

	app.Handle(http.MethodGet, version, "/status", hdl.Status)
	app.Handle(http.MethodGet, version, "/chain", hdl.Chain)
	app.Handle(http.MethodGet, version, "/mempool", hdl.Mempool)
	app.Handle(http.MethodGet, version, "/peers", hdl.Peers)
	app.Handle(http.MethodPost, version, "/tx", hdl.SubmitTx)
	app.Handle(http.MethodGet, version, "/events", hdl.Events)
}
