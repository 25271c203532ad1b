package parser

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trucklink/orderfile/internal/model"
)

type stubResolver struct {
	entries map[string]model.ReferenceEntry
	errs    map[string]error
}

func refKey(kind model.ReferenceKind, raw string) string {
	return string(kind) + "|" + raw
}

func (s *stubResolver) Resolve(_ context.Context, kind model.ReferenceKind, rawKey string) (model.ReferenceEntry, error) {
	if rawKey == "" {
		return model.ReferenceEntry{}, nil
	}
	k := refKey(kind, rawKey)
	if err, ok := s.errs[k]; ok {
		return model.ReferenceEntry{}, err
	}
	return s.entries[k], nil
}

func testParty() model.Party {
	return model.Party{
		Name:     "Trucklink BV",
		Address:  "Havenkade 1",
		Postcode: "3199 LD",
		City:     "Maasvlakte",
	}
}

func newTestDispatcher(resolver Resolver) *Dispatcher {
	return NewDispatcher(resolver, testParty(), zerolog.Nop())
}

const dfdsDoc = `Transportopdracht DFDS
Trip SFIM1234567

Container: ABCU 1234567
Type: 40HC
Vessel: MSC ANNA
Carrier: MSC
Pick-up terminal: ECT DELTA
Delivery address: Bakkerij Jansen, Broodstraat 2, 3011 AB Rotterdam, NL
Drop-off terminal: RST ZUID
Weight: 21.500,5 kg
Tare: 3800
Seal: NL123456
Cargo: Bakery goods
Date: 12-10-2025
Time: 08:00 - 12:00
Reference: LR-9001
Colli: 20

Container: DEFU 7654321
Type: 20DV
Vessel: MSC ANNA
Carrier: MSC
Pick-up terminal: ECT DELTA
Delivery address: Slagerij Peters, Vleesweg 4, 3012 CD Rotterdam, NL
Drop-off terminal: RST ZUID
Weight: 9000 kg
Seal: NL654321
Date: 12-10-2025
Reference: LR-9002
`

func dfdsEntries() map[string]model.ReferenceEntry {
	return map[string]model.ReferenceEntry{
		refKey(model.ReferenceTerminal, "ECT DELTA"): {
			Name:      "ECT Delta Terminal",
			Address:   "Europaweg 875",
			Postcode:  "3199 LD",
			City:      "Maasvlakte Rotterdam",
			Country:   "NL",
			Prenotify: "Waar",
			Portbase:  "ECTDELTA",
		},
		refKey(model.ReferenceTerminal, "RST ZUID"): {
			Name: "RST Zuid",
			City: "Rotterdam",
		},
		refKey(model.ReferenceCarrier, "MSC"): {
			Name: "Mediterranean Shipping Company",
			Code: "MSC",
		},
		refKey(model.ReferenceContainerType, "40HC"): {
			Name: "40ft High Cube",
			Code: "45G1",
		},
	}
}

func TestDetect(t *testing.T) {
	d := newTestDispatcher(&stubResolver{})

	format, ok := d.Detect(dfdsDoc)
	require.True(t, ok)
	assert.Equal(t, FormatDFDS, format)

	_, ok = d.Detect("completely unrelated text")
	assert.False(t, ok)
}

func TestDetectAllFormats(t *testing.T) {
	d := newTestDispatcher(&stubResolver{})

	cases := map[string]Format{
		"Transportopdracht DFDS":       FormatDFDS,
		"Jordex Shipping & Forwarding": FormatJordex,
		"Kintetsu World Express":       FormatKWE,
		"NEELE-VAT LOGISTICS":          FormatNeelevat,
		"Ritra Cargo BV":               FormatRitra,
		"EASYFRESH LOGISTICS":          FormatEasyfresh,
		"B2L Transportopdracht":        FormatB2L,
	}
	for text, want := range cases {
		format, ok := d.Detect(text)
		require.True(t, ok, text)
		assert.Equal(t, want, format, text)
	}
}

func TestExtractUnknownFormat(t *testing.T) {
	d := newTestDispatcher(&stubResolver{})

	_, err := d.Extract(context.Background(), Document{Text: "weekly newsletter, nothing to haul"})
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestExtractEmptyDocument(t *testing.T) {
	d := newTestDispatcher(&stubResolver{})

	_, err := d.Extract(context.Background(), Document{Text: "   \n\t"})
	assert.ErrorIs(t, err, ErrEmptyDocument)
}

func TestExtractDFDSMultiContainer(t *testing.T) {
	d := newTestDispatcher(&stubResolver{entries: dfdsEntries()})

	res, err := d.Extract(context.Background(), Document{Text: dfdsDoc})
	require.NoError(t, err)
	require.Len(t, res.Orders, 2)
	assert.Empty(t, res.Failures)
	assert.Equal(t, FormatDFDS, res.Format)

	first := res.Orders[0]
	assert.Equal(t, "SFIM1234567", first.TripReference)
	assert.Equal(t, "Trucklink BV", first.OrderingParty.Name)
	assert.Equal(t, "ABCU1234567", first.Container.Number)
	assert.Equal(t, "40HC", first.Container.TypeLabel)
	assert.Equal(t, "45G1", first.Container.TypeCode)
	assert.Equal(t, "21500.5", first.Container.GrossWeight)
	assert.Equal(t, "3800", first.Container.TareWeight)
	assert.Equal(t, "NL123456", first.Container.SealNumber)
	assert.Equal(t, "Bakery goods", first.Container.Cargo)
	assert.Equal(t, "Onwaar", first.Container.Hazardous)
	assert.Equal(t, "20", first.Container.Colli)
	assert.Equal(t, "MSC ANNA", first.VesselName)
	assert.Equal(t, "MSC", first.CarrierRaw)
	assert.Equal(t, "Mediterranean Shipping Company", first.Carrier)
	assert.Equal(t, "12-10-2025", first.Date)
	assert.Equal(t, "08:00", first.TimeFrom)
	assert.Equal(t, "12:00", first.TimeTo)
	assert.Equal(t, "LR-9001", first.LoadReference)

	require.Len(t, first.Locations, 3)
	pickup := first.Locations[0]
	assert.Equal(t, model.ActionPickup, pickup.Action)
	assert.Equal(t, "ECT Delta Terminal", pickup.Name)
	assert.Equal(t, "ECTDELTA", pickup.Portbase)

	customer := first.Locations[1]
	assert.Equal(t, model.ActionUnload, customer.Action)
	assert.Equal(t, "Bakkerij Jansen", customer.Name)
	assert.Equal(t, "Broodstraat 2", customer.Address)
	assert.Equal(t, "3011 AB", customer.Postcode)
	assert.Equal(t, "Rotterdam", customer.City)
	assert.Equal(t, "NL", customer.Country)
	assert.Equal(t, "08:00", customer.TimeFrom)

	dropoff := first.Locations[2]
	assert.Equal(t, model.ActionDropoff, dropoff.Action)
	assert.Equal(t, "RST Zuid", dropoff.Name)

	second := res.Orders[1]
	assert.Equal(t, "SFIM1234567", second.TripReference)
	assert.Equal(t, "DEFU7654321", second.Container.Number)
	assert.Equal(t, "20DV", second.Container.TypeLabel)
	assert.Equal(t, "9000", second.Container.GrossWeight)
	assert.Equal(t, "0", second.Container.Colli)
	assert.Equal(t, "LR-9002", second.LoadReference)
}

func TestExtractMultiContainerWithoutContainers(t *testing.T) {
	d := newTestDispatcher(&stubResolver{})

	doc := "Transportopdracht DFDS\nTrip SFIM1234567\nNo equipment listed yet\n"
	res, err := d.Extract(context.Background(), Document{Text: doc})
	require.NoError(t, err)
	assert.Empty(t, res.Orders)
	assert.Empty(t, res.Failures)

	var warned bool
	for _, diag := range res.Diagnostics {
		if diag.Field == "container" && diag.Level == DiagnosticWarning {
			warned = true
		}
	}
	assert.True(t, warned, "expected a no-containers warning")
}

func TestExtractKWE(t *testing.T) {
	d := newTestDispatcher(&stubResolver{})

	doc := `Kintetsu World Express
Order KWE1234567
Container: TCKU 1234567
Ocean vessel: ONE HARMONY
Line: ONE
Pick-up at: ECT Delta
Delivery address: Groothandel Smit, Marktplein 8, 5611 EM Eindhoven, NL
Empty return at: Depot West
Ctr type: 40HC
Gross weight: 12.345,6 kg
Tare: 3750
Seal no. K123
Goods: Electronics
Delivery date: 15/10/2025
Time slot: 09:00 - 13:00
KWE ref: K-REF-1
Pieces: 12
`
	res, err := d.Extract(context.Background(), Document{Text: doc})
	require.NoError(t, err)
	require.Len(t, res.Orders, 1)

	order := res.Orders[0]
	assert.Equal(t, "KWE1234567", order.TripReference)
	assert.Equal(t, "TCKU1234567", order.Container.Number)
	assert.Equal(t, "40HC", order.Container.TypeLabel)
	assert.Equal(t, "12345.6", order.Container.GrossWeight)
	assert.Equal(t, "3750", order.Container.TareWeight)
	assert.Equal(t, "K123", order.Container.SealNumber)
	assert.Equal(t, "Electronics", order.Container.Cargo)
	assert.Equal(t, "12", order.Container.Colli)
	assert.Equal(t, "ONE HARMONY", order.VesselName)
	assert.Equal(t, "ONE", order.CarrierRaw)
	assert.Equal(t, "15-10-2025", order.Date)
	assert.Equal(t, "09:00", order.TimeFrom)
	assert.Equal(t, "13:00", order.TimeTo)
	assert.Equal(t, "K-REF-1", order.LoadReference)

	require.Len(t, order.Locations, 3)
	assert.Equal(t, "ECT Delta", order.Locations[0].Name)
	assert.Equal(t, model.ActionUnload, order.Locations[1].Action)
	assert.Equal(t, "Groothandel Smit", order.Locations[1].Name)
	assert.Equal(t, "Depot West", order.Locations[2].Name)
}

func TestExtractNeelevat(t *testing.T) {
	d := newTestDispatcher(&stubResolver{})

	doc := `NEELE-VAT LOGISTICS
Rit NV1234567
Container: NVLU 1234567
Zeeschip: MAERSK DETROIT
Rederij: Maersk
Ophalen terminal: APM MVII
Losadres: Kwekerij Groen, Tuinlaan 5, 2671 AB Naaldwijk, NL
Inleveren depot: Depot Botlek
Containertype: 45R1
Brutogewicht: 19.876,5
Tarra: 4300
Zegelnummer: NV-Z-1
Lading: Bloemen
Temperatuur: 4
Losdatum: 18-10-2025
Lostijd: 06:00 - 10:00
Laadreferentie: NVREF1
Colli: 30
`
	res, err := d.Extract(context.Background(), Document{Text: doc})
	require.NoError(t, err)
	require.Len(t, res.Orders, 1)

	order := res.Orders[0]
	assert.Equal(t, "NV1234567", order.TripReference)
	assert.Equal(t, "NVLU1234567", order.Container.Number)
	assert.Equal(t, "45R1", order.Container.TypeLabel)
	assert.Equal(t, "19876.5", order.Container.GrossWeight)
	assert.Equal(t, "4300", order.Container.TareWeight)
	assert.Equal(t, "NV-Z-1", order.Container.SealNumber)
	assert.Equal(t, "Bloemen", order.Container.Cargo)
	assert.Equal(t, "4", order.Container.Temperature)
	assert.Equal(t, "30", order.Container.Colli)
	assert.Equal(t, "MAERSK DETROIT", order.VesselName)
	assert.Equal(t, "Maersk", order.CarrierRaw)
	assert.Equal(t, "18-10-2025", order.Date)
	assert.Equal(t, "06:00", order.TimeFrom)
	assert.Equal(t, "NVREF1", order.LoadReference)

	require.Len(t, order.Locations, 3)
	assert.Equal(t, "APM MVII", order.Locations[0].Name)
	assert.Equal(t, "Kwekerij Groen", order.Locations[1].Name)
	assert.Equal(t, "2671 AB", order.Locations[1].Postcode)
	assert.Equal(t, "Depot Botlek", order.Locations[2].Name)
}

func TestExtractRitra(t *testing.T) {
	d := newTestDispatcher(&stubResolver{})

	doc := `Ritra Cargo
Order RIT123456
Container: RCLU 1234567
Vessel name: CMA CGM JULES VERNE
Shipping line: CMA CGM
Terminal: RWG
Delivery: Magazijn Oost, Industrieweg 7, 4538 AX Terneuzen, NL
Empty depot: MTR Depot
Unit type: 20DV
Gross weight: 8.765,4
Tare: 2300
Seal: R-555
Commodity: Steel coils
File ref: RTR-88
Packages: 10
Delivery date: 20-10-2025
Delivery time: 08:00 - 12:00
`
	res, err := d.Extract(context.Background(), Document{Text: doc})
	require.NoError(t, err)
	require.Len(t, res.Orders, 1)

	order := res.Orders[0]
	assert.Equal(t, "RIT123456", order.TripReference)
	assert.Equal(t, "RCLU1234567", order.Container.Number)
	assert.Equal(t, "20DV", order.Container.TypeLabel)
	assert.Equal(t, "8765.4", order.Container.GrossWeight)
	assert.Equal(t, "2300", order.Container.TareWeight)
	assert.Equal(t, "R-555", order.Container.SealNumber)
	assert.Equal(t, "Steel coils", order.Container.Cargo)
	assert.Equal(t, "10", order.Container.Colli)
	assert.Equal(t, "CMA CGM JULES VERNE", order.VesselName)
	assert.Equal(t, "CMA CGM", order.CarrierRaw)
	assert.Equal(t, "20-10-2025", order.Date)
	assert.Equal(t, "08:00", order.TimeFrom)
	assert.Equal(t, "RTR-88", order.LoadReference)

	require.Len(t, order.Locations, 3)
	assert.Equal(t, "RWG", order.Locations[0].Name)
	assert.Equal(t, "Magazijn Oost", order.Locations[1].Name)
	assert.Equal(t, "MTR Depot", order.Locations[2].Name)
}

func TestExtractJordexMissingTripIsFatal(t *testing.T) {
	d := newTestDispatcher(&stubResolver{})

	doc := "Jordex Shipping & Forwarding\nContainer: TRLU 9876543\nLoading address: Kaasboerderij De Molen\n"
	res, err := d.Extract(context.Background(), Document{Text: doc})
	assert.ErrorIs(t, err, ErrNoTripReference)
	assert.Nil(t, res)
}

func TestExtractJordexSingleContainer(t *testing.T) {
	d := newTestDispatcher(&stubResolver{})

	doc := `Jordex Shipping & Forwarding
Booking reference: JBK-100
Trip JSF1234567
Container: TRLU 9876543
Vessel / Voyage: EVER GIVEN 123W
Shipping line: Evergreen
Empty depot: Depot Maasvlakte
Loading address: Kaasboerderij De Molen, Polderweg 3, 2661 KA Bergschenhoek, NL
Delivery terminal: APM Terminal
Equipment: 40RF
Cargo weight: 18000 kg
Seal: J999
Commodity: Cheese
Set temperature: 4
Loading date: 20-11-2025
Loading time: 07:30 - 11:00
`
	res, err := d.Extract(context.Background(), Document{Text: doc})
	require.NoError(t, err)
	require.Len(t, res.Orders, 1)

	order := res.Orders[0]
	assert.Equal(t, "JSF1234567", order.TripReference)
	assert.Equal(t, "TRLU9876543", order.Container.Number)
	assert.Equal(t, "40RF", order.Container.TypeLabel)
	assert.Equal(t, "4", order.Container.Temperature)
	assert.Equal(t, "18000", order.Container.GrossWeight)
	assert.Equal(t, "JBK-100", order.LoadReference)
	assert.Equal(t, "20-11-2025", order.Date)

	require.Len(t, order.Locations, 3)
	assert.Equal(t, model.ActionPickup, order.Locations[0].Action)
	assert.Equal(t, "Depot Maasvlakte", order.Locations[0].Name)
	assert.Equal(t, model.ActionLoad, order.Locations[1].Action)
	assert.Equal(t, "Kaasboerderij De Molen", order.Locations[1].Name)
	assert.Equal(t, model.ActionDropoff, order.Locations[2].Action)
	assert.Equal(t, "APM Terminal", order.Locations[2].Name)
}

func TestExtractB2LDefaultsTripReference(t *testing.T) {
	d := newTestDispatcher(&stubResolver{})

	doc := `B2L Transportopdracht
Container: ABCU 1234567
Rederij: MSC
Losadres: Groothandel Smit, Marktplein 8, 5611 EM Eindhoven, NL
Referentie: REF-77
`
	res, err := d.Extract(context.Background(), Document{Text: doc})
	require.NoError(t, err)
	require.Len(t, res.Orders, 1)
	assert.Equal(t, "0", res.Orders[0].TripReference)

	var warned bool
	for _, diag := range res.Diagnostics {
		if diag.Field == "tripReference" && diag.Level == DiagnosticWarning {
			warned = true
		}
	}
	assert.True(t, warned, "expected a trip-reference warning")
}

func TestExtractStoreUnavailableKeepsRawValues(t *testing.T) {
	resolver := &stubResolver{
		errs: map[string]error{
			refKey(model.ReferenceCarrier, "MSC"): fmt.Errorf("%w: rederijen: connection refused", ErrStoreUnavailable),
			refKey(model.ReferenceTerminal, "Terminal Noordkade"): fmt.Errorf("%w: terminals: connection refused", ErrStoreUnavailable),
		},
	}
	d := newTestDispatcher(resolver)

	doc := `B2L Transportopdracht
Container: ABCU 1234567
Rederij: MSC
Ophaalterminal: Terminal Noordkade
Losadres: Groothandel Smit, Marktplein 8, 5611 EM Eindhoven, NL
`
	res, err := d.Extract(context.Background(), Document{Text: doc})
	require.NoError(t, err)
	require.Len(t, res.Orders, 1)
	assert.Empty(t, res.Failures)

	order := res.Orders[0]
	assert.Equal(t, "MSC", order.Carrier)
	require.NotEmpty(t, order.Locations)
	assert.Equal(t, "Terminal Noordkade", order.Locations[0].Name)

	var degraded bool
	for _, diag := range res.Diagnostics {
		if diag.Field == "carrier" && diag.Level == DiagnosticWarning {
			degraded = true
		}
	}
	assert.True(t, degraded, "expected a store-unavailable warning")
}

func TestExtractFailureIsolatedPerContainer(t *testing.T) {
	resolver := &stubResolver{
		entries: dfdsEntries(),
		errs: map[string]error{
			refKey(model.ReferenceTerminal, "Kapotte Kade"): errors.New("lookup rejected"),
		},
	}
	d := newTestDispatcher(resolver)

	doc := `Transportopdracht DFDS
Trip SFIM1234567

Container: ABCU 1234567
Pick-up terminal: ECT DELTA
Delivery address: Bakkerij Jansen, Broodstraat 2, 3011 AB Rotterdam, NL

Container: DEFU 7654321
Pick-up terminal: Kapotte Kade
Delivery address: Slagerij Peters, Vleesweg 4, 3012 CD Rotterdam, NL
`
	res, err := d.Extract(context.Background(), Document{Text: doc})
	require.NoError(t, err)

	require.Len(t, res.Orders, 1)
	assert.Equal(t, "ABCU1234567", res.Orders[0].Container.Number)

	require.Len(t, res.Failures, 1)
	assert.Equal(t, "DEFU7654321", res.Failures[0].ContainerNumber)
	assert.Contains(t, res.Failures[0].Reason, "lookup rejected")
}

func TestExtractEasyfreshDefaults(t *testing.T) {
	restore := now
	now = func() time.Time { return time.Date(2025, 3, 5, 10, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { now = restore })

	d := newTestDispatcher(&stubResolver{})

	doc := `EASYFRESH LOGISTICS
Trip EF1234567
Container: FRSU 1234567
Commodity: Citrus
Delivery address: Fruithandel Berg, Veilingweg 12, 2675 BR Honselersdijk, NL
`
	res, err := d.Extract(context.Background(), Document{Text: doc})
	require.NoError(t, err)
	require.Len(t, res.Orders, 1)

	order := res.Orders[0]
	assert.Equal(t, "EF1234567", order.TripReference)
	assert.Equal(t, "2", order.Container.Temperature)
	assert.Equal(t, "05-03-2025", order.Date)
}
