package model

type ReferenceKind string

const (
	ReferenceTerminal      ReferenceKind = "terminal"
	ReferenceCarrier       ReferenceKind = "carrier"
	ReferenceContainerType ReferenceKind = "containertype"
)

// ReferenceEntry is the result of resolving a raw carrier-supplied label
// against the reference store. A zero entry means no match; callers then fall
// back to the raw label as display name and leave the structured fields blank.
type ReferenceEntry struct {
	Name      string
	Address   string
	Postcode  string
	City      string
	Country   string
	Prenotify string
	TimeFrom  string
	TimeTo    string
	Portbase  string
	BICS      string
	Code      string
}

func (e ReferenceEntry) IsZero() bool {
	return e == ReferenceEntry{}
}
