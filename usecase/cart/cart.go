package cart

import (
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/organilive/storefront/domain"
)

// ProductLookup resolves a product id against the current catalog so the
// cart can check stock before accepting a line.
type ProductLookup interface {
	Product(id string) (domain.Product, bool)
}

// Manager holds the shopping cart: one line per product id, quantities
// always positive. The cart lives in memory only and is independent of
// the account session.
type Manager struct {
	catalog ProductLookup
	logger  *zap.Logger
	now     func() time.Time

	mu    sync.RWMutex
	lines map[string]*domain.CartLine
}

func New(catalog ProductLookup, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		catalog: catalog,
		logger:  logger,
		now:     time.Now,
		lines:   make(map[string]*domain.CartLine),
	}
}

// Add bumps the product's quantity by delta, creating the line on first
// add and dropping it when the quantity reaches zero. A product whose
// known stock is zero or below is refused as a no-op: the quantity comes
// back unchanged. Returns the resulting quantity.
func (m *Manager) Add(productID string, delta int) (int, error) {
	product, ok := m.catalog.Product(productID)
	if !ok {
		return 0, domain.ErrProductNotFound
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	line := m.lines[productID]
	if product.Stock <= 0 {
		if line == nil {
			return 0, nil
		}
		return line.Quantity, nil
	}

	if line == nil {
		if delta <= 0 {
			return 0, nil
		}
		m.lines[productID] = &domain.CartLine{
			ProductID: productID,
			Quantity:  delta,
			AddedAt:   m.now(),
		}
		return delta, nil
	}

	line.Quantity += delta
	if line.Quantity <= 0 {
		delete(m.lines, productID)
		return 0, nil
	}
	return line.Quantity, nil
}

// ItemQuantity returns the quantity for a product, zero when absent.
func (m *Manager) ItemQuantity(productID string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if line, ok := m.lines[productID]; ok {
		return line.Quantity
	}
	return 0
}

// Items returns a copy of the cart lines, oldest first.
func (m *Manager) Items() []domain.CartLine {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]domain.CartLine, 0, len(m.lines))
	for _, line := range m.lines {
		out = append(out, *line)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AddedAt.Before(out[j].AddedAt) })
	return out
}

// Count returns the total quantity across all lines.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	total := 0
	for _, line := range m.lines {
		total += line.Quantity
	}
	return total
}

// Clear empties the cart.
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lines = make(map[string]*domain.CartLine)
}
