package model

// Order is one shipment-level unit, rendered downstream as a single order file.
// All business values are strings: the downstream dialect has no native numbers
// or booleans. Boolean-like fields carry "Waar"/"Onwaar", numeric fields use a
// period as decimal separator and default to "0".
type Order struct {
	TripReference string
	OrderingParty Party
	Container     Container

	VesselName string
	CarrierRaw string
	Carrier    string

	LoadReference   string
	ReturnReference string
	Documentation   string

	Date     string // dd-mm-yyyy
	TimeFrom string
	TimeTo   string

	Instructions string

	Locations  []Location
	Financials Financials
}

// Party is the ordering party (Opdrachtgever) of an order.
type Party struct {
	Name              string
	Address           string
	Postcode          string
	City              string
	Phone             string
	Email             string
	VATNumber         string
	ChamberOfCommerce string
}

// Container carries one physical container's business data.
type Container struct {
	Number      string
	TypeCode    string
	TypeLabel   string
	SealNumber  string
	TareWeight  string
	GrossWeight string
	Cargo       string
	Hazardous   string // "Waar"/"Onwaar"
	UNNumber    string
	Temperature string
	VolumeCBM   string
	Colli       string
}

// Financials is the fixed charge set of the order file. Blank values render as
// "0"; the parser never computes charges, the fields exist for the downstream
// planning system to fill in.
type Financials struct {
	Freight         string
	FuelSurcharge   string
	Toll            string
	WaitingHours    string
	Overnight       string
	Cleaning        string
	Inspection      string
	Weighing        string
	Customs         string
	T1Document      string
	Scan            string
	Demurrage       string
	Detention       string
	ChassisRental   string
	Genset          string
	GasMeasurement  string
	PreCarriage     string
	ExtraStop       string
	Handling        string
	Crane           string
	ADRSurcharge    string
	ReeferSurcharge string
	TerminalCosts   string
	Miscellaneous   string
}
