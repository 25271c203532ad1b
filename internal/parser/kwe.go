package parser

import (
	"regexp"

	"github.com/trucklink/orderfile/internal/model"
)

// Kintetsu World Express transport orders: import flow with several
// containers per order, tab-separated label/value pairs flattened to lines by
// the text extraction.
func kweSpec() *carrierSpec {
	return &carrierSpec{
		format:         FormatKWE,
		signatures:     []string{"Kintetsu World Express", "KWE Transport Order"},
		multiContainer: true,
		customerAction: model.ActionUnload,
		patterns: fieldPatterns{
			trip:        regexp.MustCompile(`\bKWE\d{6,8}\b`),
			vessel:      regexp.MustCompile(`(?im)^(?:Ocean\s+)?vessel\s*:?\s*(.+)$`),
			carrier:     regexp.MustCompile(`(?im)^(?:Carrier|Line)\s*:?\s*(.+)$`),
			pickup:      regexp.MustCompile(`(?im)^Pick-?up\s*(?:at|terminal)?\s*:?\s*(.+)$`),
			dropoff:     regexp.MustCompile(`(?im)^(?:Empty\s+)?return\s*(?:at|depot)?\s*:?\s*(.+)$`),
			customer:    regexp.MustCompile(`(?im)^(?:Delivery|Unloading) address\s*:?\s*(.+)$`),
			typeLabel:   regexp.MustCompile(`(?im)^(?:Ctr\s+)?type\s*:?\s*(.+)$`),
			gross:       regexp.MustCompile(`(?im)^(?:Gross\s+weight|Weight)\s*:?\s*([\d.,]+)`),
			tare:        regexp.MustCompile(`(?im)^Tare\s*:?\s*([\d.,]+)`),
			seal:        regexp.MustCompile(`(?im)^Seal\s*(?:no|nr)?\.?\s*:?\s*(\S+)`),
			cargo:       regexp.MustCompile(`(?im)^(?:Goods|Description)\s*:?\s*(.+)$`),
			temperature: regexp.MustCompile(`(?im)^Temperature\s*:?\s*(-?\d+(?:[.,]\d+)?)`),
			date:        regexp.MustCompile(`(?im)^Delivery date\s*:?\s*([\d/. -]+)$`),
			timeWindow:  regexp.MustCompile(`(?im)^(?:Time\s*(?:slot|window)?)\s*:?\s*(\d{1,2}:\d{2})\s*[-–]\s*(\d{1,2}:\d{2})`),
			loadRef:     regexp.MustCompile(`(?im)^(?:KWE|Our)\s+ref(?:erence)?\.?\s*:?\s*(\S+)`),
			returnRef:   regexp.MustCompile(`(?im)^Return ref(?:erence)?\.?\s*:?\s*(\S+)`),
			docRef:      regexp.MustCompile(`(?im)^(?:HBL|B/L)\s*:?\s*(\S+)`),
			colli:       regexp.MustCompile(`(?im)^(?:Colli|Pieces)\s*:?\s*(\d+)`),
			volume:      regexp.MustCompile(`(?im)^(?:CBM|Measurement)\s*:?\s*([\d.,]+)`),
		},
	}
}
