package repository

import (
	"context"

	"github.com/organilive/storefront/domain"
)

// ContactSink forwards a contact-form submission to the external
// endpoint. Failures are surfaced to the caller; there is no automatic
// retry.
type ContactSink interface {
	Send(ctx context.Context, msg domain.ContactMessage) (domain.ContactResult, error)
}
