package mid

import (
	"context"
	"errors"
	"net/http"
	"path"

	"github.com/jrazmi/crudkit/bridge/scaffolding/errs"
	"github.com/jrazmi/crudkit/infrastructure/web"
	"github.com/jrazmi/crudkit/sdk/logger"
)

// Errors handles errors coming out of the call chain. Anything that is not an
// *errs.Error, and any InternalOnlyLog error, reaches the client as a generic
// 500 while the cause is logged.
func Errors(log *logger.Logger) web.Middleware {
	return func(next web.HandlerFunc) web.HandlerFunc {
		return func(ctx context.Context, r *http.Request) web.Encoder {
			resp := next(ctx, r)
			err := isError(resp)
			if err == nil {
				return resp
			}

			var appErr *errs.Error
			if !errors.As(err, &appErr) {
				appErr = errs.Newf(errs.Internal, "Internal Server Error")
			}

			level := log.WarnContext
			if appErr.HTTPStatus() >= http.StatusInternalServerError {
				level = log.ErrorContext
			}
			level(ctx, "handled error during request",
				"err", err,
				"status", appErr.HTTPStatus(),
				"source_err_file", path.Base(appErr.FileName),
				"source_err_func", path.Base(appErr.FuncName))

			if appErr.Code == errs.InternalOnlyLog {
				appErr = errs.Newf(errs.Internal, "Internal Server Error")
			}

			return appErr
		}
	}
}
