package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Collections the reference store may be queried on, with their allowed
// filter fields. Collection and field names reach the SQL text, so anything
// outside this table is rejected.
var allowedQueries = map[string]map[string]bool{
	"terminals":      {"zoeknaam": true, "naam": true},
	"rederijen":      {"alias": true, "naam": true},
	"containertypes": {"label": true, "code": true},
}

type ReferenceRepository struct {
	db *gorm.DB
}

func NewReferenceRepository(db *gorm.DB) *ReferenceRepository {
	return &ReferenceRepository{db: db}
}

// Query performs a case-insensitive contains match on one collection and
// returns the matching records as column/value maps, ordered by the
// collection's key column.
func (r *ReferenceRepository) Query(ctx context.Context, collection, field, substring string) ([]map[string]string, error) {
	fields, ok := allowedQueries[collection]
	if !ok {
		return nil, fmt.Errorf("unknown reference collection %q", collection)
	}
	if !fields[field] {
		return nil, fmt.Errorf("field %q not queryable on collection %q", field, collection)
	}

	var rows []map[string]interface{}
	query := fmt.Sprintf(`SELECT * FROM %s WHERE %s ILIKE ? ORDER BY %s`, collection, field, field)
	if err := r.db.WithContext(ctx).Raw(query, "%"+substring+"%").Scan(&rows).Error; err != nil {
		return nil, err
	}

	records := make([]map[string]string, 0, len(rows))
	for _, row := range rows {
		record := make(map[string]string, len(row))
		for column, value := range row {
			if value == nil {
				record[column] = ""
				continue
			}
			record[column] = fmt.Sprintf("%v", value)
		}
		records = append(records, record)
	}
	return records, nil
}

type TerminalRow struct {
	Zoeknaam     string
	Naam         string
	Adres        string
	Postcode     string
	Plaats       string
	Land         string
	Voormelden   string
	TijdVan      string
	TijdTot      string
	PortbaseCode string
	BicsCode     string
}

type CarrierRow struct {
	Alias string
	Naam  string
	Code  string
}

type ContainerTypeRow struct {
	Label        string
	Code         string
	Omschrijving string
}

// ReferenceImport is one parsed reference workbook.
type ReferenceImport struct {
	Terminals      []TerminalRow
	Carriers       []CarrierRow
	ContainerTypes []ContainerTypeRow
}

func (r *ReferenceRepository) UpsertTerminals(ctx context.Context, rows []TerminalRow) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, row := range rows {
			err := tx.Exec(`
				INSERT INTO terminals (
					zoeknaam, naam, adres, postcode, plaats, land,
					voormelden, tijd_van, tijd_tot, portbase_code, bics_code
				) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
				ON CONFLICT (zoeknaam) DO UPDATE SET
					naam = EXCLUDED.naam,
					adres = EXCLUDED.adres,
					postcode = EXCLUDED.postcode,
					plaats = EXCLUDED.plaats,
					land = EXCLUDED.land,
					voormelden = EXCLUDED.voormelden,
					tijd_van = EXCLUDED.tijd_van,
					tijd_tot = EXCLUDED.tijd_tot,
					portbase_code = EXCLUDED.portbase_code,
					bics_code = EXCLUDED.bics_code
			`,
				row.Zoeknaam, row.Naam, row.Adres, row.Postcode, row.Plaats, row.Land,
				row.Voormelden, row.TijdVan, row.TijdTot, row.PortbaseCode, row.BicsCode,
			).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *ReferenceRepository) UpsertCarriers(ctx context.Context, rows []CarrierRow) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, row := range rows {
			err := tx.Exec(`
				INSERT INTO rederijen (alias, naam, code)
				VALUES (?, ?, ?)
				ON CONFLICT (alias) DO UPDATE SET
					naam = EXCLUDED.naam,
					code = EXCLUDED.code
			`, row.Alias, row.Naam, row.Code).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *ReferenceRepository) UpsertContainerTypes(ctx context.Context, rows []ContainerTypeRow) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, row := range rows {
			err := tx.Exec(`
				INSERT INTO containertypes (label, code, omschrijving)
				VALUES (?, ?, ?)
				ON CONFLICT (label) DO UPDATE SET
					code = EXCLUDED.code,
					omschrijving = EXCLUDED.omschrijving
			`, row.Label, row.Code, row.Omschrijving).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}
