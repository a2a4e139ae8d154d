package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/organilive/storefront/api/transport"
	"github.com/organilive/storefront/domain"
	"github.com/organilive/storefront/pkg/httpcontext"
	contactUC "github.com/organilive/storefront/usecase/contact"
)

type ContactHandler struct {
	baseHandler
	contact *contactUC.Service
	info    domain.ContactInfo
}

func NewContactHandler(contact *contactUC.Service, info domain.ContactInfo, adapter *httpcontext.Adapter, logger *zap.Logger) *ContactHandler {
	return &ContactHandler{
		baseHandler: newBaseHandler(adapter, logger),
		contact:     contact,
		info:        info,
	}
}

// @Summary Submit the contact form
// @Tags contact
// @Router /api/v1/contact [post]
func (h *ContactHandler) Submit(ctx *fasthttp.RequestCtx) {
	var req transport.ContactRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "invalid payload")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	result, err := h.contact.Submit(stdCtx, domain.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	})
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, result)
}

// @Summary Display-only contact constants
// @Tags contact
// @Router /api/v1/contact/info [get]
func (h *ContactHandler) Info(ctx *fasthttp.RequestCtx) {
	h.respondSuccess(ctx, http.StatusOK, h.info)
}
