package mid

import (
	"context"
	"net/http"

	"github.com/driftchain/node/business/web/errs"
	"github.com/driftchain/node/foundation/validate"
	"github.com/driftchain/node/foundation/web"
	"go.uber.org/zap"
)

// Errors handles errors coming out of the call chain. It detects normal
// application errors which are used to respond to the client in a
// uniform way. Every error is logged, whatever its status.
func Errors(log *zap.SugaredLogger) web.Middleware {
	m := func(handler web.Handler) web.Handler {
		h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
			if err := handler(ctx, w, r); err != nil {
				v, verr := web.GetValues(ctx)
				if verr != nil {
					return web.NewShutdownError("web value missing from context")
				}

				log.Errorw("request error", "traceid", v.TraceID, "ERROR", err)

				var er errs.Response
				var status int

				switch {
				case validate.IsFieldErrors(err):
					fieldErrors := validate.GetFieldErrors(err)
					fields := make(map[string]string, len(fieldErrors))
					for _, fe := range fieldErrors {
						fields[fe.Field] = fe.Error
					}
					er = errs.Response{
						Error:  "data validation error",
						Fields: fields,
					}
					status = http.StatusBadRequest

				case errs.IsTrusted(err):
					reqErr := errs.GetTrusted(err)
					er = errs.Response{Error: reqErr.Err.Error()}
					status = reqErr.Status

				default:
					er = errs.Response{Error: http.StatusText(http.StatusInternalServerError)}
					status = http.StatusInternalServerError
				}

				if err := web.Respond(ctx, w, er, status); err != nil {
					return err
				}

				if web.IsShutdown(err) {
					return err
				}
			}

			return nil
		}

		return h
	}

	return m
}
