package domain

// LowStockMax is the largest stock level still flagged as "low stock".
const LowStockMax = 5

// Product is one row of the external feed. Products are read-only: the
// catalog is replaced wholesale on every load.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Category    string  `json:"category,omitempty"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	Image       string  `json:"image,omitempty"`
}

func (p *Product) InStock() bool {
	return p != nil && p.Stock > 0
}

func (p *Product) IsLowStock() bool {
	return p != nil && p.Stock > 0 && p.Stock <= LowStockMax
}

// CatalogStats summarizes stock levels across the current catalog.
type CatalogStats struct {
	Total      int `json:"total"`
	Available  int `json:"available"`
	LowStock   int `json:"low_stock"`
	OutOfStock int `json:"out_of_stock"`
}
