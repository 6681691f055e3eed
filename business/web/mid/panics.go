package mid

import (
	"context"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/driftchain/node/business/web/errs"
	"github.com/driftchain/node/foundation/web"
)

// Panics recovers from panics and converts the panic to an error so it is
// reported in the metrics and handled in Errors.
func Panics() web.Middleware {
	m := func(handler web.Handler) web.Handler {
		h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) (err error) {
			defer func() {
				if rec := recover(); rec != nil {
					trace := debug.Stack()
					err = errs.NewTrusted(fmt.Errorf("PANIC [%v] TRACE[%s]", rec, string(trace)), http.StatusInternalServerError)
				}
			}()

			return handler(ctx, w, r)
		}

		return h
	}

	return m
}
