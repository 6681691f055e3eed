package mid

import (
	"context"
	"expvar"
	"net/http"
	"runtime"

	"github.com/driftchain/node/foundation/web"
)

// m holds the set of metrics exposed on /debug/vars via expvar.
var m = struct {
	req   *expvar.Int
	err   *expvar.Int
	goroutines *expvar.Int
}{
	req:        expvar.NewInt("requests"),
	err:        expvar.NewInt("errors"),
	goroutines: expvar.NewInt("goroutines"),
}

// Metrics updates program counters reported on /debug/vars.
func Metrics() web.Middleware {
	mw := func(handler web.Handler) web.Handler {
		h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
			err := handler(ctx, w, r)

			m.req.Add(1)
			if err != nil {
				m.err.Add(1)
			}

			if m.req.Value()%100 == 0 {
				m.goroutines.Set(int64(runtime.NumGoroutine()))
			}

			return err
		}

		return h
	}

	return mw
}
