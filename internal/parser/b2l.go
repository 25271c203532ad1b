package parser

import (
	"regexp"

	"github.com/trucklink/orderfile/internal/model"
)

// B2L is the generic fallback flavor used by smaller forwarders that file
// through the B2L portal. One container per document; a missing trip number
// is tolerated and substituted with "0".
func b2lSpec() *carrierSpec {
	return &carrierSpec{
		format:         FormatB2L,
		signatures:     []string{"B2L Transportopdracht", "B2L"},
		customerAction: model.ActionUnload,
		patterns: fieldPatterns{
			trip:        regexp.MustCompile(`\bB2L-?\d{6,8}\b`),
			vessel:      regexp.MustCompile(`(?im)^(?:Zeeschip|Vessel)\s*:?\s*(.+)$`),
			carrier:     regexp.MustCompile(`(?im)^(?:Rederij|Carrier)\s*:?\s*(.+)$`),
			pickup:      regexp.MustCompile(`(?im)^(?:Ophaalterminal|Pickup)\s*:?\s*(.+)$`),
			dropoff:     regexp.MustCompile(`(?im)^(?:Inleverterminal|Drop-?off)\s*:?\s*(.+)$`),
			customer:    regexp.MustCompile(`(?im)^(?:Losadres|Delivery address)\s*:?\s*(.+)$`),
			typeLabel:   regexp.MustCompile(`(?im)^(?:Containertype|Type)\s*:?\s*(.+)$`),
			gross:       regexp.MustCompile(`(?im)^(?:Brutogewicht|Gross weight)\s*:?\s*([\d.,]+)`),
			tare:        regexp.MustCompile(`(?im)^(?:Tarra|Tare)\s*:?\s*([\d.,]+)`),
			seal:        regexp.MustCompile(`(?im)^(?:Zegel|Seal)\s*:?\s*(\S+)`),
			cargo:       regexp.MustCompile(`(?im)^(?:Lading|Cargo)\s*:?\s*(.+)$`),
			temperature: regexp.MustCompile(`(?im)^(?:Temperatuur|Temperature)\s*:?\s*(-?\d+(?:[.,]\d+)?)`),
			date:        regexp.MustCompile(`(?im)^(?:Losdatum|Date)\s*:?\s*([\d/. -]+)$`),
			timeWindow:  regexp.MustCompile(`(?im)^(?:Lostijd|Time)\s*:?\s*(\d{1,2}:\d{2})\s*[-–]\s*(\d{1,2}:\d{2})`),
			loadRef:     regexp.MustCompile(`(?im)^(?:Referentie|Reference)\s*:?\s*(\S+)`),
			returnRef:   regexp.MustCompile(`(?im)^(?:Inleverreferentie|Return reference)\s*:?\s*(\S+)`),
			docRef:      regexp.MustCompile(`(?im)^(?:Documentatie|Documentation)\s*:?\s*(\S+)`),
			colli:       regexp.MustCompile(`(?im)^Colli\s*:?\s*(\d+)`),
			volume:      regexp.MustCompile(`(?im)^(?:CBM|Volume|Inhoud)\s*:?\s*([\d.,]+)`),
		},
	}
}
