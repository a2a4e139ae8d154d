package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/organilive/storefront/api/transport"
	"github.com/organilive/storefront/domain"
	"github.com/organilive/storefront/pkg/httpcontext"
	accountUC "github.com/organilive/storefront/usecase/account"
)

type AccountHandler struct {
	baseHandler
	accounts *accountUC.Manager
}

func NewAccountHandler(accounts *accountUC.Manager, adapter *httpcontext.Adapter, logger *zap.Logger) *AccountHandler {
	return &AccountHandler{
		baseHandler: newBaseHandler(adapter, logger),
		accounts:    accounts,
	}
}

// @Summary Register a new account
// @Tags account
// @Router /api/v1/account/register [post]
func (h *AccountHandler) Register(ctx *fasthttp.RequestCtx) {
	var req transport.RegisterRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "invalid payload")
		return
	}
	if fields := req.Validate(); len(fields) > 0 {
		h.respondJSON(ctx, http.StatusBadRequest,
			transport.NewFieldErrors(string(domain.ErrCodeInvalid), fields))
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	user, err := h.accounts.Register(stdCtx, accountUC.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Phone:     req.Phone,
	})
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	// The stored record carries the password; the response must not.
	user.Password = ""
	h.respondSuccess(ctx, http.StatusCreated, user)
}

// @Summary Authenticate and open the session
// @Tags account
// @Router /api/v1/account/login [post]
func (h *AccountHandler) Login(ctx *fasthttp.RequestCtx) {
	var req transport.LoginRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil || req.Email == "" || req.Password == "" {
		h.respondInvalid(ctx, "invalid payload")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	session, err := h.accounts.Login(stdCtx, req.Email, req.Password)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, session)
}

// @Summary Close the session
// @Tags account
// @Router /api/v1/account/logout [post]
func (h *AccountHandler) Logout(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	h.accounts.Logout(stdCtx)
	h.respondSuccess(ctx, http.StatusOK, nil)
}

// @Summary Current session user
// @Tags account
// @Router /api/v1/account/session [get]
func (h *AccountHandler) Session(ctx *fasthttp.RequestCtx) {
	session, ok := h.accounts.Session()
	if !ok {
		h.respondError(ctx, domain.ErrNoSession)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, session)
}
