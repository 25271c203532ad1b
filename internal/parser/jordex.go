package parser

import (
	"regexp"

	"github.com/trucklink/orderfile/internal/model"
)

// Jordex bookings describe exactly one container. Export flow: pick up the
// empty box at a depot, load at the customer, deliver at the terminal. A
// booking without a JSF reference cannot be filed downstream, so a missing
// trip reference fails the whole document.
func jordexSpec() *carrierSpec {
	return &carrierSpec{
		format:         FormatJordex,
		signatures:     []string{"Jordex Shipping & Forwarding", "Jordex"},
		tripRequired:   true,
		customerAction: model.ActionLoad,
		patterns: fieldPatterns{
			trip:        regexp.MustCompile(`\bJSF\d{6,8}\b`),
			vessel:      regexp.MustCompile(`(?im)^Vessel(?:\s*/\s*Voyage)?\s*:?\s*(.+)$`),
			carrier:     regexp.MustCompile(`(?im)^(?:Shipping line|Carrier)\s*:?\s*(.+)$`),
			pickup:      regexp.MustCompile(`(?im)^(?:Empty\s+)?depot\s*:?\s*(.+)$`),
			dropoff:     regexp.MustCompile(`(?im)^(?:Delivery\s+)?terminal\s*:?\s*(.+)$`),
			customer:    regexp.MustCompile(`(?im)^Loading address\s*:?\s*(.+)$`),
			typeLabel:   regexp.MustCompile(`(?im)^(?:Equipment|Container type)\s*:?\s*(.+)$`),
			gross:       regexp.MustCompile(`(?im)^(?:Cargo|Gross)\s+weight\s*:?\s*([\d.,]+)`),
			tare:        regexp.MustCompile(`(?im)^Tare(?:\s+weight)?\s*:?\s*([\d.,]+)`),
			seal:        regexp.MustCompile(`(?im)^Seal\s*:?\s*(\S+)`),
			cargo:       regexp.MustCompile(`(?im)^(?:Commodity|Description of goods)\s*:?\s*(.+)$`),
			temperature: regexp.MustCompile(`(?im)^(?:Set\s+)?temperature\s*:?\s*(-?\d+(?:[.,]\d+)?)`),
			date:        regexp.MustCompile(`(?im)^Loading date\s*:?\s*([\d/. -]+)$`),
			timeWindow:  regexp.MustCompile(`(?im)^Loading time\s*:?\s*(\d{1,2}:\d{2})\s*[-–]\s*(\d{1,2}:\d{2})`),
			loadRef:     regexp.MustCompile(`(?im)^(?:Our|Booking)\s+reference\s*:?\s*(\S+)`),
			returnRef:   regexp.MustCompile(`(?im)^Return reference\s*:?\s*(\S+)`),
			docRef:      regexp.MustCompile(`(?im)^B/?L\s*(?:no|number)?\.?\s*:?\s*(\S+)`),
			colli:       regexp.MustCompile(`(?im)^(?:Colli|Packages)\s*:?\s*(\d+)`),
			volume:      regexp.MustCompile(`(?im)^(?:Volume|CBM)\s*:?\s*([\d.,]+)`),
		},
	}
}
