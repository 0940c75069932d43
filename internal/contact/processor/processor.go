package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"survey-dialer/internal/observability"
	"survey-dialer/internal/store"

	"github.com/go-playground/validator/v10"
)

var (
	ErrPhoneNumberExists  = errors.New("phone number already exists")
	ErrInvalidPhoneNumber = errors.New("invalid phone number")
)

// phoneSeparators are stripped before validation
var phoneSeparators = strings.NewReplacer(" ", "", "-", "", ".", "", "(", "", ")", "")

type ContactProcessor struct {
	store    ContactStore
	validate *validator.Validate
	logger   *observability.Logger
}

func New(store ContactStore, logger *observability.Logger) ContactProcessor {
	return ContactProcessor{
		store:    store,
		validate: validator.New(),
		logger:   logger,
	}
}

// CreateContactParams represents parameters for creating a contact
type CreateContactParams struct {
	Name        string
	PhoneNumber string
}

// NormalizePhoneNumber strips common separators and checks the result is
// an E.164 number with its leading plus sign
func (p *ContactProcessor) NormalizePhoneNumber(raw string) (string, error) {
	phone := phoneSeparators.Replace(strings.TrimSpace(raw))
	if !strings.HasPrefix(phone, "+") {
		return "", fmt.Errorf("%w: %q has no country code", ErrInvalidPhoneNumber, raw)
	}
	if err := p.validate.Var(phone, "e164"); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidPhoneNumber, raw)
	}
	return phone, nil
}

// CreateContact stores a contact under its normalized phone number
func (p *ContactProcessor) CreateContact(ctx context.Context, params CreateContactParams) (store.Contact, error) {
	phone, err := p.NormalizePhoneNumber(params.PhoneNumber)
	if err != nil {
		return store.Contact{}, err
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "phone_number", Value: phone})

	contact, err := p.store.CreateContact(ctx, store.CreateContactParams{
		Name:        strings.TrimSpace(params.Name),
		PhoneNumber: phone,
	})
	if err != nil {
		if errors.Is(err, store.ErrPhoneNumberExists) {
			return store.Contact{}, ErrPhoneNumberExists
		}
		p.logger.Error(ctx, "failed to create contact", err)
		return store.Contact{}, fmt.Errorf("failed to create contact: %w", err)
	}

	p.logger.Info(ctx, "contact created")
	return contact, nil
}

// ListContacts returns all contacts, newest first
func (p *ContactProcessor) ListContacts(ctx context.Context) ([]store.Contact, error) {
	contacts, err := p.store.ListContacts(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to list contacts", err)
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	if contacts == nil {
		contacts = []store.Contact{}
	}
	return contacts, nil
}
