package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// CreateContactParams represents parameters for creating a contact
type CreateContactParams struct {
	Name        string
	PhoneNumber string
}

const sqlCreateContact = `
INSERT INTO contacts (name, phone_number, created_at)
VALUES (?, ?, ?)
RETURNING id
`

// CreateContact creates a new contact. Phone numbers are unique.
func (s *Store) CreateContact(ctx context.Context, params CreateContactParams) (Contact, error) {
	var id int64
	err := s.db.GetContext(ctx, &id, s.db.Rebind(sqlCreateContact),
		params.Name,
		params.PhoneNumber,
		s.now(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return Contact{}, ErrPhoneNumberExists
		}
		s.logger.Error(ctx, "failed to create contact", err)
		return Contact{}, fmt.Errorf("failed to create contact: %w", err)
	}

	var contact Contact
	err = s.db.GetContext(ctx, &contact, s.db.Rebind(sqlGetContactByID), id)
	if err != nil {
		s.logger.Error(ctx, "failed to get created contact", err)
		return Contact{}, fmt.Errorf("failed to get created contact: %w", err)
	}
	return contact, nil
}

const sqlGetContactByID = `
SELECT id, name, phone_number, created_at
FROM contacts
WHERE id = ?
`

const sqlListContacts = `
SELECT id, name, phone_number, created_at
FROM contacts
ORDER BY created_at DESC, id DESC
`

// ListContacts returns all contacts, newest first
func (s *Store) ListContacts(ctx context.Context) ([]Contact, error) {
	contacts := []Contact{}
	err := s.db.SelectContext(ctx, &contacts, sqlListContacts)
	if err != nil {
		s.logger.Error(ctx, "failed to list contacts", err)
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	return contacts, nil
}

const sqlCountContacts = `SELECT COUNT(*) FROM contacts`

// CountContacts returns the number of contacts
func (s *Store) CountContacts(ctx context.Context) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count, sqlCountContacts)
	if err != nil {
		s.logger.Error(ctx, "failed to count contacts", err)
		return 0, fmt.Errorf("failed to count contacts: %w", err)
	}
	return count, nil
}

// isUniqueViolation recognizes unique constraint errors from both drivers
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
