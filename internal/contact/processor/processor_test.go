package processor

import (
	"context"
	"errors"
	"testing"

	"survey-dialer/internal/observability"
	"survey-dialer/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newTestProcessor(t *testing.T) (*ContactProcessor, *MockContactStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockStore := NewMockContactStore(ctrl)
	p := New(mockStore, observability.NewLoggerFromZap(zap.NewNop()))
	return &p, mockStore
}

func TestNormalizePhoneNumber(t *testing.T) {
	p, _ := newTestProcessor(t)

	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "+573001112233", want: "+573001112233"},
		{raw: " +57 300 111 2233 ", want: "+573001112233"},
		{raw: "+1 (415) 555-0100", want: "+14155550100"},
		{raw: "+34.600.111.222", want: "+34600111222"},
		{raw: "3001112233", wantErr: true},
		{raw: "+57300abc", wantErr: true},
		{raw: "+1234567890123456", wantErr: true},
		{raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := p.NormalizePhoneNumber(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPhoneNumber)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCreateContact(t *testing.T) {
	p, mockStore := newTestProcessor(t)

	mockStore.EXPECT().CreateContact(gomock.Any(), store.CreateContactParams{
		Name:        "Ana Gómez",
		PhoneNumber: "+573001112233",
	}).Return(store.Contact{ID: 1, Name: "Ana Gómez", PhoneNumber: "+573001112233"}, nil)

	contact, err := p.CreateContact(context.Background(), CreateContactParams{
		Name:        " Ana Gómez ",
		PhoneNumber: "+57 300 111 2233",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), contact.ID)
}

func TestCreateContact_InvalidPhoneSkipsStore(t *testing.T) {
	p, mockStore := newTestProcessor(t)
	mockStore.EXPECT().CreateContact(gomock.Any(), gomock.Any()).Times(0)

	_, err := p.CreateContact(context.Background(), CreateContactParams{PhoneNumber: "555-0100"})
	assert.ErrorIs(t, err, ErrInvalidPhoneNumber)
}

func TestCreateContact_DuplicatePhone(t *testing.T) {
	p, mockStore := newTestProcessor(t)
	mockStore.EXPECT().CreateContact(gomock.Any(), gomock.Any()).Return(store.Contact{}, store.ErrPhoneNumberExists)

	_, err := p.CreateContact(context.Background(), CreateContactParams{PhoneNumber: "+573001112233"})
	assert.ErrorIs(t, err, ErrPhoneNumberExists)
}

func TestListContacts(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		p, mockStore := newTestProcessor(t)
		mockStore.EXPECT().ListContacts(gomock.Any()).Return(nil, nil)

		contacts, err := p.ListContacts(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, contacts)
	})

	t.Run("store error", func(t *testing.T) {
		p, mockStore := newTestProcessor(t)
		boom := errors.New("timeout")
		mockStore.EXPECT().ListContacts(gomock.Any()).Return(nil, boom)

		_, err := p.ListContacts(context.Background())
		assert.ErrorIs(t, err, boom)
	})
}
