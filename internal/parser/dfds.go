package parser

import (
	"regexp"

	"github.com/trucklink/orderfile/internal/model"
)

// DFDS order confirmations list several containers under one SFIM trip
// number. Field labels sit at the start of a line with the value behind a
// colon.
func dfdsSpec() *carrierSpec {
	return &carrierSpec{
		format:          FormatDFDS,
		signatures:      []string{"DFDS", "Transportopdracht DFDS"},
		multiContainer:  true,
		dateFallbackNow: true,
		customerAction:  model.ActionUnload,
		patterns: fieldPatterns{
			trip:        regexp.MustCompile(`\bSFIM\d{7}\b`),
			vessel:      regexp.MustCompile(`(?im)^Vessel\s*:?\s*(.+)$`),
			carrier:     regexp.MustCompile(`(?im)^(?:Carrier|Shipping line)\s*:?\s*(.+)$`),
			pickup:      regexp.MustCompile(`(?im)^Pick-?up(?:\s+terminal)?\s*:?\s*(.+)$`),
			dropoff:     regexp.MustCompile(`(?im)^Drop-?off(?:\s+terminal)?\s*:?\s*(.+)$`),
			customer:    regexp.MustCompile(`(?im)^Delivery address\s*:?\s*(.+)$`),
			typeLabel:   regexp.MustCompile(`(?im)^(?:Container\s+)?type\s*:?\s*(.+)$`),
			gross:       regexp.MustCompile(`(?im)^(?:Gross\s+)?weight\s*:?\s*([\d.,]+)`),
			tare:        regexp.MustCompile(`(?im)^Tare\s*:?\s*([\d.,]+)`),
			seal:        regexp.MustCompile(`(?im)^Seal\s*(?:no|nr|number)?\.?\s*:?\s*(\S+)`),
			cargo:       regexp.MustCompile(`(?im)^(?:Cargo|Commodity|Goods)\s*:?\s*(.+)$`),
			temperature: regexp.MustCompile(`(?im)^Temp(?:erature)?\s*:?\s*(-?\d+(?:[.,]\d+)?)`),
			date:        regexp.MustCompile(`(?im)^(?:Delivery\s+)?date\s*:?\s*([\d/. -]+)$`),
			timeWindow:  regexp.MustCompile(`(?im)^Time\s*:?\s*(\d{1,2}:\d{2})\s*[-–]\s*(\d{1,2}:\d{2})`),
			loadRef:     regexp.MustCompile(`(?im)^(?:Load(?:ing)?\s+)?reference\s*:?\s*(\S+)`),
			returnRef:   regexp.MustCompile(`(?im)^Return\s+reference\s*:?\s*(\S+)`),
			docRef:      regexp.MustCompile(`(?im)^Documentation\s*:?\s*(\S+)`),
			colli:       regexp.MustCompile(`(?im)^Colli\s*:?\s*(\d+)`),
			volume:      regexp.MustCompile(`(?im)^(?:CBM|Volume)\s*:?\s*([\d.,]+)`),
		},
	}
}
