package excel

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/trucklink/orderfile/internal/repository"
)

// Sheet names the importer looks for. Sheets may be absent; an empty
// workbook imports nothing.
const (
	sheetTerminals      = "Terminals"
	sheetCarriers       = "Rederijen"
	sheetContainerTypes = "Containertypes"
)

// Importer reads reference-data workbooks. Row 1 of each sheet is a header
// and is skipped; rows with a blank key cell are dropped.
type Importer struct{}

func NewImporter() *Importer {
	return &Importer{}
}

func (i *Importer) Read(r io.Reader) (*repository.ReferenceImport, error) {
	file, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer file.Close()

	imported := &repository.ReferenceImport{}

	terminalRows, err := sheetRows(file, sheetTerminals)
	if err != nil {
		return nil, err
	}
	for _, row := range terminalRows {
		terminal := repository.TerminalRow{
			Zoeknaam:     cell(row, 0),
			Naam:         cell(row, 1),
			Adres:        cell(row, 2),
			Postcode:     cell(row, 3),
			Plaats:       cell(row, 4),
			Land:         cell(row, 5),
			Voormelden:   cell(row, 6),
			TijdVan:      cell(row, 7),
			TijdTot:      cell(row, 8),
			PortbaseCode: cell(row, 9),
			BicsCode:     cell(row, 10),
		}
		if terminal.Zoeknaam == "" {
			continue
		}
		if terminal.Naam == "" {
			terminal.Naam = terminal.Zoeknaam
		}
		imported.Terminals = append(imported.Terminals, terminal)
	}

	carrierRows, err := sheetRows(file, sheetCarriers)
	if err != nil {
		return nil, err
	}
	for _, row := range carrierRows {
		carrier := repository.CarrierRow{
			Alias: cell(row, 0),
			Naam:  cell(row, 1),
			Code:  cell(row, 2),
		}
		if carrier.Alias == "" {
			continue
		}
		if carrier.Naam == "" {
			carrier.Naam = carrier.Alias
		}
		imported.Carriers = append(imported.Carriers, carrier)
	}

	typeRows, err := sheetRows(file, sheetContainerTypes)
	if err != nil {
		return nil, err
	}
	for _, row := range typeRows {
		ctype := repository.ContainerTypeRow{
			Label:        cell(row, 0),
			Code:         cell(row, 1),
			Omschrijving: cell(row, 2),
		}
		if ctype.Label == "" {
			continue
		}
		imported.ContainerTypes = append(imported.ContainerTypes, ctype)
	}

	return imported, nil
}

// sheetRows returns the data rows of a sheet, without the header. A missing
// sheet yields no rows.
func sheetRows(file *excelize.File, sheet string) ([][]string, error) {
	index, err := file.GetSheetIndex(sheet)
	if err != nil {
		return nil, err
	}
	if index < 0 {
		return nil, nil
	}
	rows, err := file.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheet, err)
	}
	if len(rows) <= 1 {
		return nil, nil
	}
	return rows[1:], nil
}

func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
