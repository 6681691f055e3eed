package bus

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/driftchain/node/foundation/blockchain/message"
)

// pingInterval matches the teacher's Events websocket handler, which pings
// every second to keep idle connections alive through proxies.
const pingInterval = time.Second

// EventHandler is the printf-style logging hook every package in this
// module accepts, matching the teacher's EventHandler convention.
type EventHandler func(format string, args ...any)

// WS is a websocket-mesh transport: every configured peer address is held
// open as a gorilla/websocket connection (dialed by this node, or accepted
// from one that dialed us), and envelopes are exchanged as JSON text
// frames. Grounded on the teacher's v1/public Events handler — the same
// upgrade-and-ping-ticker shape, generalized from "serve a browser one-way
// log stream" to "exchange wire envelopes both ways with N peers".
type WS struct {
	upgrader websocket.Upgrader
	ev       EventHandler

	mu    sync.Mutex
	conns map[string]*websocket.Conn

	out    chan message.Envelope
	done   chan struct{}
	closed bool
}

// NewWS constructs a websocket bus endpoint. Connections are added with
// Dial (outbound) or Accept (inbound, from an HTTP upgrade handler).
func NewWS(ev EventHandler) *WS {
	if ev == nil {
		ev = func(string, ...any) {}
	}
	return &WS{
		upgrader: websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }},
		ev:       ev,
		conns:    make(map[string]*websocket.Conn),
		out:      make(chan message.Envelope, messageBuffer),
		done:     make(chan struct{}),
	}
}

// Dial opens an outbound connection to a peer's websocket address and
// begins reading envelopes from it.
func (w *WS) Dial(addr string) error {
	c, _, err := websocket.DefaultDialer.Dial(addr, nil)
	if err != nil {
		return err
	}
	w.addConn(addr, c)
	return nil
}

// Accept upgrades an inbound HTTP request to a websocket connection and
// begins reading envelopes from it. Used by the node's HTTP surface to
// accept peers that dial in.
func (w *WS) Accept(rw http.ResponseWriter, r *http.Request) error {
	c, err := w.upgrader.Upgrade(rw, r, nil)
	if err != nil {
		return err
	}
	w.addConn(r.RemoteAddr, c)
	return nil
}

func (w *WS) addConn(id string, c *websocket.Conn) {
	w.mu.Lock()
	w.conns[id] = c
	w.mu.Unlock()

	go w.readLoop(id, c)
	go w.pingLoop(c)
}

func (w *WS) readLoop(id string, c *websocket.Conn) {
	defer w.dropConn(id)

	for {
		_, data, err := c.ReadMessage()
		if err != nil {
			w.ev("bus: ws: readLoop: peer[%s]: %s", id, err)
			return
		}

		env, err := message.Decode(data)
		if err != nil {
			w.ev("bus: ws: decode: WARNING: malformed message from peer[%s]: %s", id, err)
			continue
		}

		select {
		case w.out <- env:
		case <-w.done:
			return
		}
	}
}

func (w *WS) pingLoop(c *websocket.Conn) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := c.WriteMessage(websocket.PingMessage, []byte("ping")); err != nil {
				return
			}
		case <-w.done:
			return
		}
	}
}

func (w *WS) dropConn(id string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if c, ok := w.conns[id]; ok {
		c.Close()
		delete(w.conns, id)
	}
}

// Publish writes env to every connected peer socket.
func (w *WS) Publish(env message.Envelope) {
	data, err := env.Encode()
	if err != nil {
		w.ev("bus: ws: publish: ERROR: %s", err)
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	for id, c := range w.conns {
		if err := c.WriteMessage(websocket.TextMessage, data); err != nil {
			w.ev("bus: ws: publish: WARNING: peer[%s]: %s", id, err)
		}
	}
}

// Receive returns the channel of envelopes decoded from any connected peer.
func (w *WS) Receive() <-chan message.Envelope {
	return w.out
}

// Shutdown closes every connection and stops the read/ping loops.
func (w *WS) Shutdown() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}
	w.closed = true

	close(w.done)
	for id, c := range w.conns {
		c.Close()
		delete(w.conns, id)
	}
	close(w.out)
}
