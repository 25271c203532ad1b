package parser

import (
	"regexp"

	"github.com/trucklink/orderfile/internal/model"
)

// Neele-Vat transport orders use Dutch labels and commas as decimal
// separators throughout.
func neelevatSpec() *carrierSpec {
	return &carrierSpec{
		format:         FormatNeelevat,
		signatures:     []string{"Neele-Vat", "NEELE-VAT LOGISTICS"},
		multiContainer: true,
		customerAction: model.ActionUnload,
		patterns: fieldPatterns{
			trip:        regexp.MustCompile(`\bNV\d{7,8}\b`),
			vessel:      regexp.MustCompile(`(?im)^(?:Zeeschip|Schip)\s*:?\s*(.+)$`),
			carrier:     regexp.MustCompile(`(?im)^Rederij\s*:?\s*(.+)$`),
			pickup:      regexp.MustCompile(`(?im)^(?:Ophalen|Pickup)(?:\s+terminal)?\s*:?\s*(.+)$`),
			dropoff:     regexp.MustCompile(`(?im)^Inleveren(?:\s+depot)?\s*:?\s*(.+)$`),
			customer:    regexp.MustCompile(`(?im)^Losadres\s*:?\s*(.+)$`),
			typeLabel:   regexp.MustCompile(`(?im)^(?:Container)?type\s*:?\s*(.+)$`),
			gross:       regexp.MustCompile(`(?im)^(?:Bruto)?gewicht\s*:?\s*([\d.,]+)`),
			tare:        regexp.MustCompile(`(?im)^Tarra\s*:?\s*([\d.,]+)`),
			seal:        regexp.MustCompile(`(?im)^Zegel(?:nummer)?\s*:?\s*(\S+)`),
			cargo:       regexp.MustCompile(`(?im)^(?:Lading|Goederen)\s*:?\s*(.+)$`),
			temperature: regexp.MustCompile(`(?im)^Temperatuur\s*:?\s*(-?\d+(?:[.,]\d+)?)`),
			date:        regexp.MustCompile(`(?im)^Losdatum\s*:?\s*([\d/. -]+)$`),
			timeWindow:  regexp.MustCompile(`(?im)^Lostijd\s*:?\s*(\d{1,2}:\d{2})\s*[-–]\s*(\d{1,2}:\d{2})`),
			loadRef:     regexp.MustCompile(`(?im)^(?:Laad)?referentie\s*:?\s*(\S+)`),
			returnRef:   regexp.MustCompile(`(?im)^Inleverreferentie\s*:?\s*(\S+)`),
			docRef:      regexp.MustCompile(`(?im)^Documentatie\s*:?\s*(\S+)`),
			colli:       regexp.MustCompile(`(?im)^Colli\s*:?\s*(\d+)`),
			volume:      regexp.MustCompile(`(?im)^(?:CBM|Inhoud)\s*:?\s*([\d.,]+)`),
		},
	}
}
