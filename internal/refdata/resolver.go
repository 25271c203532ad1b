package refdata

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/trucklink/orderfile/internal/model"
	"github.com/trucklink/orderfile/internal/parser"
)

// Store is the query contract of the keyed reference store. Records are
// free-form column/value maps; the resolver projects them onto
// model.ReferenceEntry.
type Store interface {
	Query(ctx context.Context, collection, field, substring string) ([]map[string]string, error)
}

// collection and filter field per reference kind.
var kindQueries = map[model.ReferenceKind]struct {
	collection string
	field      string
}{
	model.ReferenceTerminal:      {collection: "terminals", field: "zoeknaam"},
	model.ReferenceCarrier:       {collection: "rederijen", field: "alias"},
	model.ReferenceContainerType: {collection: "containertypes", field: "label"},
}

// Resolver resolves raw carrier-supplied labels with a case-insensitive
// contains match against the reference store.
type Resolver struct {
	store Store
	log   zerolog.Logger
}

func NewResolver(store Store, log zerolog.Logger) *Resolver {
	return &Resolver{store: store, log: log}
}

// Resolve returns the first store match for rawKey, or a zero entry when
// there is none. Store failures wrap parser.ErrStoreUnavailable so extractors
// can degrade them to a no-match.
func (r *Resolver) Resolve(ctx context.Context, kind model.ReferenceKind, rawKey string) (model.ReferenceEntry, error) {
	rawKey = strings.TrimSpace(rawKey)
	if rawKey == "" {
		return model.ReferenceEntry{}, nil
	}

	q, ok := kindQueries[kind]
	if !ok {
		return model.ReferenceEntry{}, fmt.Errorf("unknown reference kind %q", kind)
	}

	records, err := r.store.Query(ctx, q.collection, q.field, rawKey)
	if err != nil {
		r.log.Warn().Err(err).Str("collection", q.collection).Str("key", rawKey).Msg("reference query failed")
		return model.ReferenceEntry{}, fmt.Errorf("%w: %s: %v", parser.ErrStoreUnavailable, q.collection, err)
	}
	if len(records) == 0 {
		return model.ReferenceEntry{}, nil
	}

	// Multiple matches: the store's own ordering decides, the first record
	// wins.
	return entryFromRecord(records[0]), nil
}

func entryFromRecord(record map[string]string) model.ReferenceEntry {
	return model.ReferenceEntry{
		Name:      record["naam"],
		Address:   record["adres"],
		Postcode:  record["postcode"],
		City:      record["plaats"],
		Country:   record["land"],
		Prenotify: record["voormelden"],
		TimeFrom:  record["tijd_van"],
		TimeTo:    record["tijd_tot"],
		Portbase:  record["portbase_code"],
		BICS:      record["bics_code"],
		Code:      record["code"],
	}
}
