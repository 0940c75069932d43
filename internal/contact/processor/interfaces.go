package processor

import (
	"context"

	"survey-dialer/internal/store"
)

// ContactStore defines the database operations required by ContactProcessor
type ContactStore interface {
	CreateContact(ctx context.Context, params store.CreateContactParams) (store.Contact, error)
	ListContacts(ctx context.Context) ([]store.Contact, error)
}
