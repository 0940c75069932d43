package store

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

// Fixtures provides factory functions for creating test data.
type Fixtures struct {
	t      *testing.T
	testDB *TestDB
	ctx    context.Context
}

// NewFixtures creates a new Fixtures instance for test data generation.
func NewFixtures(t *testing.T, testDB *TestDB) *Fixtures {
	t.Helper()
	return &Fixtures{
		t:      t,
		testDB: testDB,
		ctx:    context.Background(),
	}
}

// --- Campaign Fixtures ---

// CampaignOpts customizes campaign creation.
type CampaignOpts struct {
	Name          string
	CandidateName string
	IsActive      bool
}

// CreateCampaign creates a test campaign with optional customization.
func (f *Fixtures) CreateCampaign(opts ...func(*CampaignOpts)) Campaign {
	f.t.Helper()
	o := CampaignOpts{Name: "Encuesta municipal", CandidateName: "Ana Pérez", IsActive: true}
	for _, fn := range opts {
		fn(&o)
	}

	campaign, err := f.testDB.Store.CreateCampaign(f.ctx, CreateCampaignParams{
		Name:          o.Name,
		CandidateName: o.CandidateName,
		IsActive:      o.IsActive,
	})
	require.NoError(f.t, err, "failed to create test campaign")
	return campaign
}

// --- Contact Fixtures ---

var phoneSeq atomic.Int64

// CreateContact creates a test contact with a unique phone number.
func (f *Fixtures) CreateContact(name string) Contact {
	f.t.Helper()
	contact, err := f.testDB.Store.CreateContact(f.ctx, CreateContactParams{
		Name:        name,
		PhoneNumber: fmt.Sprintf("+3460000%04d", phoneSeq.Add(1)),
	})
	require.NoError(f.t, err, "failed to create test contact")
	return contact
}

// --- Call Fixtures ---

// CreateCall creates a pending call, creating its campaign and contact.
func (f *Fixtures) CreateCall() (Call, Campaign, Contact) {
	f.t.Helper()
	campaign := f.CreateCampaign()
	contact := f.CreateContact("Luis")
	call, err := f.testDB.Store.CreateCall(f.ctx, campaign.ID, contact.ID)
	require.NoError(f.t, err, "failed to create test call")
	return call, campaign, contact
}
