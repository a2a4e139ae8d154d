package sheets

import (
	"context"
	"encoding/json"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/organilive/storefront/domain"
	"github.com/organilive/storefront/repository"
)

// ContactClient posts contact-form submissions to the external endpoint
// (an Apps Script web hook in the reference deployment). With no URL
// configured it acknowledges locally, keeping the demo flow working.
type ContactClient struct {
	client  *fasthttp.Client
	url     string
	timeout time.Duration
	logger  *zap.Logger
}

func NewContactClient(url string, timeout time.Duration, logger *zap.Logger) *ContactClient {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ContactClient{
		client: &fasthttp.Client{
			ReadTimeout:  timeout,
			WriteTimeout: timeout,
		},
		url:     url,
		timeout: timeout,
		logger:  logger,
	}
}

func (c *ContactClient) Send(ctx context.Context, msg domain.ContactMessage) (domain.ContactResult, error) {
	if c.url == "" {
		c.logger.Info("contact endpoint not configured, acknowledging locally",
			zap.String("email", msg.Email))
		return domain.ContactResult{Success: true, Message: "message received"}, nil
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return domain.ContactResult{}, err
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.url)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.SetBody(payload)

	deadline := time.Now().Add(c.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	if err := c.client.DoDeadline(req, resp, deadline); err != nil {
		return domain.ContactResult{}, domain.WrapError(domain.ErrCodeUnavailable, "contact endpoint unreachable", err)
	}

	// The endpoint answers {success, message}; anything unparseable
	// falls back to the HTTP status.
	var result domain.ContactResult
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		result = domain.ContactResult{Success: resp.StatusCode() == fasthttp.StatusOK}
	}
	return result, nil
}

var _ repository.ContactSink = (*ContactClient)(nil)
