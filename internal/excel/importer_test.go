package excel

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	_, err := f.NewSheet("Terminals")
	require.NoError(t, err)
	require.NoError(t, f.SetSheetRow("Terminals", "A1", &[]interface{}{
		"Zoeknaam", "Naam", "Adres", "Postcode", "Plaats", "Land",
		"Voormelden", "TijdVan", "TijdTot", "PortbaseCode", "BicsCode",
	}))
	require.NoError(t, f.SetSheetRow("Terminals", "A2", &[]interface{}{
		"ECT", "ECT Delta Terminal", "Europaweg 875", "3199 LD", "Maasvlakte", "NL",
		"Waar", "06:00", "22:00", "ECTDELTA", "BICS01",
	}))
	require.NoError(t, f.SetSheetRow("Terminals", "A3", &[]interface{}{
		"", "Rij zonder zoeknaam",
	}))
	require.NoError(t, f.SetSheetRow("Terminals", "A4", &[]interface{}{
		"RST",
	}))

	_, err = f.NewSheet("Rederijen")
	require.NoError(t, err)
	require.NoError(t, f.SetSheetRow("Rederijen", "A1", &[]interface{}{"Alias", "Naam", "Code"}))
	require.NoError(t, f.SetSheetRow("Rederijen", "A2", &[]interface{}{"MSC", "Mediterranean Shipping Company", "MSC"}))
	require.NoError(t, f.SetSheetRow("Rederijen", "A3", &[]interface{}{"ONE"}))

	_, err = f.NewSheet("Containertypes")
	require.NoError(t, err)
	require.NoError(t, f.SetSheetRow("Containertypes", "A1", &[]interface{}{"Label", "Code", "Omschrijving"}))
	require.NoError(t, f.SetSheetRow("Containertypes", "A2", &[]interface{}{"40HC", "45G1", "40ft High Cube"}))

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestImporterRead(t *testing.T) {
	imported, err := NewImporter().Read(buildWorkbook(t))
	require.NoError(t, err)

	require.Len(t, imported.Terminals, 2)
	first := imported.Terminals[0]
	assert.Equal(t, "ECT", first.Zoeknaam)
	assert.Equal(t, "ECT Delta Terminal", first.Naam)
	assert.Equal(t, "Europaweg 875", first.Adres)
	assert.Equal(t, "3199 LD", first.Postcode)
	assert.Equal(t, "ECTDELTA", first.PortbaseCode)
	assert.Equal(t, "BICS01", first.BicsCode)

	// a row without a display name falls back to the lookup key
	assert.Equal(t, "RST", imported.Terminals[1].Zoeknaam)
	assert.Equal(t, "RST", imported.Terminals[1].Naam)

	require.Len(t, imported.Carriers, 2)
	assert.Equal(t, "Mediterranean Shipping Company", imported.Carriers[0].Naam)
	assert.Equal(t, "ONE", imported.Carriers[1].Naam)

	require.Len(t, imported.ContainerTypes, 1)
	assert.Equal(t, "40HC", imported.ContainerTypes[0].Label)
	assert.Equal(t, "45G1", imported.ContainerTypes[0].Code)
}

func TestImporterReadMissingSheets(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	imported, err := NewImporter().Read(buf)
	require.NoError(t, err)
	assert.Empty(t, imported.Terminals)
	assert.Empty(t, imported.Carriers)
	assert.Empty(t, imported.ContainerTypes)
}

func TestImporterReadGarbage(t *testing.T) {
	_, err := NewImporter().Read(bytes.NewBufferString("not a workbook"))
	assert.Error(t, err)
}
