package model

type LocationAction string

const (
	ActionPickup  LocationAction = "Opzetten"
	ActionLoad    LocationAction = "Laden"
	ActionUnload  LocationAction = "Lossen"
	ActionDropoff LocationAction = "Afzetten"
)

// Location is one stop in a container's itinerary. Sequence is rendered as a
// literal "0" for every stop; the downstream system relies on document order,
// not on the sequence value.
type Location struct {
	Action          LocationAction
	Name            string
	Address         string
	Postcode        string
	City            string
	Country         string
	Prenotify       string // "Waar"/"Onwaar"
	ExpectedArrival string
	TimeFrom        string
	TimeTo          string
	Portbase        string
	BICS            string
}
