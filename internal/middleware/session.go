package middleware

import (
	"strconv"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

// SessionState is the slice of the account manager the guard needs.
type SessionState interface {
	Authenticated() bool
	SessionUserID() (int64, bool)
}

// RequireSession rejects requests while the account manager is in the
// Anonymous state. There are no tokens: the singleton session itself is
// the credential, per the mock-account design.
func RequireSession(state SessionState, logger *zap.Logger) func(fasthttp.RequestHandler) fasthttp.RequestHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next fasthttp.RequestHandler) fasthttp.RequestHandler {
		return func(ctx *fasthttp.RequestCtx) {
			if !state.Authenticated() {
				logger.Debug("rejected anonymous request",
					zap.String("path", string(ctx.Path())))
				ctx.Response.Header.SetContentType("application/json")
				ctx.SetStatusCode(fasthttp.StatusUnauthorized)
				ctx.SetBodyString(`{"status":"error","code":"UNAUTHORIZED","error":"no active session"}`)
				return
			}
			if id, ok := state.SessionUserID(); ok {
				ctx.Request.Header.Set("X-User-ID", strconv.FormatInt(id, 10))
			}
			next(ctx)
		}
	}
}
