package sheets

import (
	"bytes"
	"context"
	"encoding/csv"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/organilive/storefront/domain"
	"github.com/organilive/storefront/repository"
)

// Feed reads the product catalog from a published spreadsheet CSV
// export. Every fetch downloads the whole sheet; rows map 1:1 onto
// products.
type Feed struct {
	client  *fasthttp.Client
	url     string
	timeout time.Duration
	logger  *zap.Logger
}

// NewFeed builds a catalog feed client for the given CSV export URL.
func NewFeed(url string, timeout time.Duration, logger *zap.Logger) *Feed {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Feed{
		client: &fasthttp.Client{
			ReadTimeout:  timeout,
			WriteTimeout: timeout,
		},
		url:     url,
		timeout: timeout,
		logger:  logger,
	}
}

func (f *Feed) Fetch(ctx context.Context) ([]domain.Product, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(f.url)
	req.Header.SetMethod(fasthttp.MethodGet)

	deadline := time.Now().Add(f.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	if err := f.client.DoDeadline(req, resp, deadline); err != nil {
		return nil, domain.WrapError(domain.ErrCodeUnavailable, "product feed unavailable", err)
	}
	if resp.StatusCode() != fasthttp.StatusOK {
		f.logger.Warn("product feed returned unexpected status",
			zap.Int("status", resp.StatusCode()))
		return nil, domain.ErrFeedUnavailable
	}

	products, err := ParseCSV(bytes.NewReader(resp.Body()))
	if err != nil {
		return nil, domain.WrapError(domain.ErrCodeUnavailable, "product feed unreadable", err)
	}
	return products, nil
}

// ParseCSV decodes spreadsheet rows into products. The first row is the
// header; unknown columns are ignored and malformed rows are skipped
// rather than failing the whole fetch.
func ParseCSV(r io.Reader) ([]domain.Product, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, err
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}

	var products []domain.Product
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}

		p := domain.Product{
			ID:          field(row, cols, "id"),
			Name:        field(row, cols, "name"),
			Description: field(row, cols, "description"),
			Category:    field(row, cols, "category"),
			Image:       field(row, cols, "image"),
		}
		if p.ID == "" || p.Name == "" {
			continue
		}
		if v, err := strconv.ParseFloat(field(row, cols, "price"), 64); err == nil {
			p.Price = v
		}
		if v, err := strconv.Atoi(field(row, cols, "stock")); err == nil {
			p.Stock = v
		}
		products = append(products, p)
	}
	return products, nil
}

func field(row []string, cols map[string]int, name string) string {
	i, ok := cols[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

var _ repository.ProductSource = (*Feed)(nil)
