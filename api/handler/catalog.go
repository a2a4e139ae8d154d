package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/organilive/storefront/pkg/httpcontext"
	catalogUC "github.com/organilive/storefront/usecase/catalog"
)

type CatalogHandler struct {
	baseHandler
	catalog *catalogUC.Loader
}

func NewCatalogHandler(catalog *catalogUC.Loader, adapter *httpcontext.Adapter, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		baseHandler: newBaseHandler(adapter, logger),
		catalog:     catalog,
	}
}

// @Summary Filtered, sorted product list
// @Tags catalog
// @Param q query string false "search term"
// @Param category query string false "category filter"
// @Param sort query string false "name | price-asc | price-desc | stock"
// @Router /api/v1/products [get]
func (h *CatalogHandler) List(ctx *fasthttp.RequestCtx) {
	args := ctx.QueryArgs()
	search := string(args.Peek("q"))
	category := string(args.Peek("category"))
	sortKey := catalogUC.ParseSortKey(string(args.Peek("sort")))

	products := h.catalog.Products()
	view := catalogUC.ApplyView(products, search, category, sortKey)

	payload := map[string]interface{}{
		"products":   view,
		"categories": catalogUC.Categories(products),
	}
	h.respondSuccess(ctx, http.StatusOK, payload)
}

// @Summary Stock level summary
// @Tags catalog
// @Router /api/v1/products/stats [get]
func (h *CatalogHandler) Stats(ctx *fasthttp.RequestCtx) {
	h.respondSuccess(ctx, http.StatusOK, catalogUC.Stats(h.catalog.Products()))
}

// @Summary Re-fetch the product feed
// @Tags catalog
// @Router /api/v1/products/reload [post]
func (h *CatalogHandler) Reload(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.catalog.Load(stdCtx); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, map[string]interface{}{
		"products": len(h.catalog.Products()),
	})
}
