package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/organilive/storefront/api/transport"
	"github.com/organilive/storefront/pkg/httpcontext"
	cartUC "github.com/organilive/storefront/usecase/cart"
)

type CartHandler struct {
	baseHandler
	cart *cartUC.Manager
}

func NewCartHandler(cart *cartUC.Manager, adapter *httpcontext.Adapter, logger *zap.Logger) *CartHandler {
	return &CartHandler{
		baseHandler: newBaseHandler(adapter, logger),
		cart:        cart,
	}
}

// @Summary Current cart contents
// @Tags cart
// @Router /api/v1/cart [get]
func (h *CartHandler) Get(ctx *fasthttp.RequestCtx) {
	h.respondSuccess(ctx, http.StatusOK, map[string]interface{}{
		"items": h.cart.Items(),
		"count": h.cart.Count(),
	})
}

// @Summary Add to or decrement a cart line
// @Tags cart
// @Router /api/v1/cart/items [post]
func (h *CartHandler) AddItem(ctx *fasthttp.RequestCtx) {
	var req transport.CartAddRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil || req.ProductID == "" {
		h.respondInvalid(ctx, "invalid payload")
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	quantity, err := h.cart.Add(req.ProductID, req.Quantity)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, map[string]interface{}{
		"product_id": req.ProductID,
		"quantity":   quantity,
	})
}

// @Summary Empty the cart
// @Tags cart
// @Router /api/v1/cart [delete]
func (h *CartHandler) Clear(ctx *fasthttp.RequestCtx) {
	h.cart.Clear()
	h.respondSuccess(ctx, http.StatusOK, nil)
}
