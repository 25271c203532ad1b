package easyfile

import (
	"bytes"
	"strings"

	"github.com/trucklink/orderfile/internal/model"
)

// minLocations is the output-shape contract of the order file: the planning
// system expects at least three Locatie elements, padded with empty stops
// when the itinerary is shorter.
const minLocations = 3

// Writer serializes a canonical order into the fixed order-file dialect.
// Output is deterministic: the same order always yields byte-identical XML.
//
// Escaping is off by default because the downstream system consumes the raw
// values as-is; enable it only when the consumer is known to accept entity
// references.
type Writer struct {
	escape bool
}

func NewWriter(escape bool) *Writer {
	return &Writer{escape: escape}
}

// Serialize renders one order file for one order.
func (w *Writer) Serialize(order model.Order) []byte {
	var b bytes.Buffer
	b.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	b.WriteString("<Order>\n")
	b.WriteString("  <Dossiers>\n")
	b.WriteString("    <Dossier>\n")
	w.writeParty(&b, order.OrderingParty)
	w.writeContainer(&b, order)
	w.writeLocations(&b, order.Locations)
	w.writeFinancials(&b, order.Financials)
	b.WriteString("    </Dossier>\n")
	b.WriteString("  </Dossiers>\n")
	b.WriteString("</Order>\n")
	return b.Bytes()
}

func (w *Writer) writeParty(b *bytes.Buffer, party model.Party) {
	b.WriteString("      <Opdrachtgever>\n")
	w.tag(b, 8, "Naam", party.Name)
	w.tag(b, 8, "Adres", party.Address)
	w.tag(b, 8, "Postcode", party.Postcode)
	w.tag(b, 8, "Plaats", party.City)
	w.tag(b, 8, "Telefoon", party.Phone)
	w.tag(b, 8, "Email", party.Email)
	w.tag(b, 8, "BTWNummer", party.VATNumber)
	w.tag(b, 8, "KvKNummer", party.ChamberOfCommerce)
	b.WriteString("      </Opdrachtgever>\n")
}

func (w *Writer) writeContainer(b *bytes.Buffer, order model.Order) {
	c := order.Container
	b.WriteString("      <Container>\n")
	w.tag(b, 8, "Ritnummer", orZero(order.TripReference))
	w.tag(b, 8, "Containernummer", c.Number)
	w.tag(b, 8, "Containertype", c.TypeCode)
	w.tag(b, 8, "ContainertypeOmschrijving", c.TypeLabel)
	w.tag(b, 8, "Zegelnummer", c.SealNumber)
	w.tag(b, 8, "Tarra", orZero(c.TareWeight))
	w.tag(b, 8, "Brutogewicht", orZero(c.GrossWeight))
	w.tag(b, 8, "Lading", c.Cargo)
	w.tag(b, 8, "ADR", orOnwaar(c.Hazardous))
	w.tag(b, 8, "UNNummer", c.UNNumber)
	w.tag(b, 8, "Temperatuur", c.Temperature)
	w.tag(b, 8, "CBM", orZero(c.VolumeCBM))
	w.tag(b, 8, "Colli", orZero(c.Colli))
	w.tag(b, 8, "Laadreferentie", order.LoadReference)
	w.tag(b, 8, "Inleverreferentie", order.ReturnReference)
	w.tag(b, 8, "Documentatie", order.Documentation)
	w.tag(b, 8, "Zeeschip", order.VesselName)
	w.tag(b, 8, "Rederij", order.Carrier)
	w.tag(b, 8, "RederijNaam", order.CarrierRaw)
	w.tag(b, 8, "Datum", order.Date)
	w.tag(b, 8, "TijdVan", order.TimeFrom)
	w.tag(b, 8, "TijdTot", order.TimeTo)
	w.tag(b, 8, "Instructies", order.Instructions)
	w.tag(b, 8, "Douanedocument", "")
	w.tag(b, 8, "GasmetingVereist", "Onwaar")
	w.tag(b, 8, "Kraanlevering", "Onwaar")
	b.WriteString("      </Container>\n")
}

func (w *Writer) writeLocations(b *bytes.Buffer, locations []model.Location) {
	b.WriteString("      <Locaties>\n")
	count := len(locations)
	if count < minLocations {
		count = minLocations
	}
	for i := 0; i < count; i++ {
		var loc model.Location
		if i < len(locations) {
			loc = locations[i]
		}
		w.writeLocation(b, loc)
	}
	b.WriteString("      </Locaties>\n")
}

func (w *Writer) writeLocation(b *bytes.Buffer, loc model.Location) {
	b.WriteString("        <Locatie>\n")
	// Volgorde is a fixed "0" for every stop; the planning system follows
	// document order.
	w.tag(b, 10, "Volgorde", "0")
	w.tag(b, 10, "Actie", string(loc.Action))
	w.tag(b, 10, "Naam", loc.Name)
	w.tag(b, 10, "Adres", loc.Address)
	w.tag(b, 10, "Postcode", loc.Postcode)
	w.tag(b, 10, "Plaats", loc.City)
	w.tag(b, 10, "Land", loc.Country)
	w.tag(b, 10, "Voormelden", loc.Prenotify)
	w.tag(b, 10, "AankomstVerwacht", loc.ExpectedArrival)
	w.tag(b, 10, "TijdVan", loc.TimeFrom)
	w.tag(b, 10, "TijdTot", loc.TimeTo)
	w.tag(b, 10, "PortbaseCode", loc.Portbase)
	w.tag(b, 10, "BicsCode", loc.BICS)
	b.WriteString("        </Locatie>\n")
}

func (w *Writer) writeFinancials(b *bytes.Buffer, f model.Financials) {
	b.WriteString("      <Financieel>\n")
	w.tag(b, 8, "Vracht", orZero(f.Freight))
	w.tag(b, 8, "Brandstoftoeslag", orZero(f.FuelSurcharge))
	w.tag(b, 8, "Tol", orZero(f.Toll))
	w.tag(b, 8, "Wachturen", orZero(f.WaitingHours))
	w.tag(b, 8, "Overnachting", orZero(f.Overnight))
	w.tag(b, 8, "Reiniging", orZero(f.Cleaning))
	w.tag(b, 8, "Keuring", orZero(f.Inspection))
	w.tag(b, 8, "Weging", orZero(f.Weighing))
	w.tag(b, 8, "Douane", orZero(f.Customs))
	w.tag(b, 8, "T1Document", orZero(f.T1Document))
	w.tag(b, 8, "Scan", orZero(f.Scan))
	w.tag(b, 8, "Demurrage", orZero(f.Demurrage))
	w.tag(b, 8, "Detention", orZero(f.Detention))
	w.tag(b, 8, "Chassishuur", orZero(f.ChassisRental))
	w.tag(b, 8, "Genset", orZero(f.Genset))
	w.tag(b, 8, "Gasmeting", orZero(f.GasMeasurement))
	w.tag(b, 8, "Voorvervoer", orZero(f.PreCarriage))
	w.tag(b, 8, "ExtraStop", orZero(f.ExtraStop))
	w.tag(b, 8, "Handling", orZero(f.Handling))
	w.tag(b, 8, "Kraan", orZero(f.Crane))
	w.tag(b, 8, "ADRToeslag", orZero(f.ADRSurcharge))
	w.tag(b, 8, "Koeltoeslag", orZero(f.ReeferSurcharge))
	w.tag(b, 8, "Terminalkosten", orZero(f.TerminalCosts))
	w.tag(b, 8, "Diversen", orZero(f.Miscellaneous))
	b.WriteString("      </Financieel>\n")
}

func (w *Writer) tag(b *bytes.Buffer, indent int, name, value string) {
	for i := 0; i < indent; i++ {
		b.WriteByte(' ')
	}
	b.WriteByte('<')
	b.WriteString(name)
	b.WriteByte('>')
	if w.escape {
		b.WriteString(escapeXML(value))
	} else {
		b.WriteString(value)
	}
	b.WriteString("</")
	b.WriteString(name)
	b.WriteString(">\n")
}

func orZero(value string) string {
	if strings.TrimSpace(value) == "" {
		return "0"
	}
	return value
}

func orOnwaar(value string) string {
	if strings.TrimSpace(value) == "" {
		return "Onwaar"
	}
	return value
}

func escapeXML(value string) string {
	var b strings.Builder
	for _, r := range value {
		switch r {
		case '&':
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '"':
			b.WriteString("&quot;")
		case '\'':
			b.WriteString("&apos;")
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
