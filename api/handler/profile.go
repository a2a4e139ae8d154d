package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/organilive/storefront/api/transport"
	"github.com/organilive/storefront/pkg/httpcontext"
	accountUC "github.com/organilive/storefront/usecase/account"
)

type ProfileHandler struct {
	baseHandler
	accounts *accountUC.Manager
}

func NewProfileHandler(accounts *accountUC.Manager, adapter *httpcontext.Adapter, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{
		baseHandler: newBaseHandler(adapter, logger),
		accounts:    accounts,
	}
}

// @Summary Update profile fields
// @Tags profile
// @Router /api/v1/account/profile [put]
func (h *ProfileHandler) UpdateProfile(ctx *fasthttp.RequestCtx) {
	var req transport.ProfileUpdateRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "invalid payload")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	session, err := h.accounts.UpdateUser(stdCtx, req.Patch())
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, session)
}

// @Summary Update preferences
// @Tags profile
// @Router /api/v1/account/preferences [put]
func (h *ProfileHandler) UpdatePreferences(ctx *fasthttp.RequestCtx) {
	var req transport.PreferencesUpdateRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "invalid payload")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	session, err := h.accounts.UpdatePreferences(stdCtx, req.Patch())
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, session)
}

// @Summary Append an activity entry
// @Tags profile
// @Router /api/v1/account/activity [post]
func (h *ProfileHandler) AddActivity(ctx *fasthttp.RequestCtx) {
	var req transport.ActivityRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil || req.Action == "" {
		h.respondInvalid(ctx, "invalid payload")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	entry, err := h.accounts.AddActivity(stdCtx, req.Type, req.Action, req.Description)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, entry)
}
