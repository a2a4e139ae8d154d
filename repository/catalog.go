package repository

import (
	"context"

	"github.com/organilive/storefront/domain"
)

// ProductSource fetches the full product list from the external feed.
// Each fetch returns the complete catalog; there is no incremental API.
type ProductSource interface {
	Fetch(ctx context.Context) ([]domain.Product, error)
}

// CatalogCache keeps the last successfully fetched catalog so a feed
// outage can still serve a known-good snapshot. Get reports a miss with
// (nil, false, nil).
type CatalogCache interface {
	Get(ctx context.Context) ([]domain.Product, bool, error)
	Set(ctx context.Context, products []domain.Product) error
}
