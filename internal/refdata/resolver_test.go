package refdata

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trucklink/orderfile/internal/model"
	"github.com/trucklink/orderfile/internal/parser"
)

type stubStore struct {
	records    []map[string]string
	err        error
	collection string
	field      string
	substring  string
}

func (s *stubStore) Query(_ context.Context, collection, field, substring string) ([]map[string]string, error) {
	s.collection = collection
	s.field = field
	s.substring = substring
	if s.err != nil {
		return nil, s.err
	}
	return s.records, nil
}

func TestResolveEmptyKey(t *testing.T) {
	store := &stubStore{err: errors.New("must not be called")}
	r := NewResolver(store, zerolog.Nop())

	entry, err := r.Resolve(context.Background(), model.ReferenceTerminal, "   ")
	require.NoError(t, err)
	assert.True(t, entry.IsZero())
	assert.Empty(t, store.collection)
}

func TestResolveUnknownKind(t *testing.T) {
	r := NewResolver(&stubStore{}, zerolog.Nop())

	_, err := r.Resolve(context.Background(), model.ReferenceKind("warehouse"), "Delta")
	assert.Error(t, err)
}

func TestResolveRoutesKindToCollection(t *testing.T) {
	store := &stubStore{}
	r := NewResolver(store, zerolog.Nop())

	_, err := r.Resolve(context.Background(), model.ReferenceCarrier, "MSC")
	require.NoError(t, err)
	assert.Equal(t, "rederijen", store.collection)
	assert.Equal(t, "alias", store.field)
	assert.Equal(t, "MSC", store.substring)
}

func TestResolveStoreFailureWrapsSentinel(t *testing.T) {
	store := &stubStore{err: errors.New("connection refused")}
	r := NewResolver(store, zerolog.Nop())

	_, err := r.Resolve(context.Background(), model.ReferenceTerminal, "ECT")
	assert.ErrorIs(t, err, parser.ErrStoreUnavailable)
}

func TestResolveNoMatch(t *testing.T) {
	r := NewResolver(&stubStore{}, zerolog.Nop())

	entry, err := r.Resolve(context.Background(), model.ReferenceTerminal, "onbekend")
	require.NoError(t, err)
	assert.True(t, entry.IsZero())
}

func TestResolveFirstRecordWins(t *testing.T) {
	store := &stubStore{records: []map[string]string{
		{
			"naam":          "ECT Delta Terminal",
			"adres":         "Europaweg 875",
			"postcode":      "3199 LD",
			"plaats":        "Maasvlakte Rotterdam",
			"land":          "NL",
			"voormelden":    "Waar",
			"tijd_van":      "06:00",
			"tijd_tot":      "22:00",
			"portbase_code": "ECTDELTA",
			"bics_code":     "BICS01",
		},
		{"naam": "ECT Euromax"},
	}}
	r := NewResolver(store, zerolog.Nop())

	entry, err := r.Resolve(context.Background(), model.ReferenceTerminal, "ECT")
	require.NoError(t, err)
	assert.Equal(t, "ECT Delta Terminal", entry.Name)
	assert.Equal(t, "Europaweg 875", entry.Address)
	assert.Equal(t, "3199 LD", entry.Postcode)
	assert.Equal(t, "Maasvlakte Rotterdam", entry.City)
	assert.Equal(t, "NL", entry.Country)
	assert.Equal(t, "Waar", entry.Prenotify)
	assert.Equal(t, "06:00", entry.TimeFrom)
	assert.Equal(t, "22:00", entry.TimeTo)
	assert.Equal(t, "ECTDELTA", entry.Portbase)
	assert.Equal(t, "BICS01", entry.BICS)
}
