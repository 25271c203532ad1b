package parser

import (
	"regexp"

	"github.com/trucklink/orderfile/internal/model"
)

// Ritra Cargo order confirmations: multi-container, English labels with the
// value on the same line behind a colon.
func ritraSpec() *carrierSpec {
	return &carrierSpec{
		format:         FormatRitra,
		signatures:     []string{"Ritra Cargo", "RITRA"},
		multiContainer: true,
		customerAction: model.ActionUnload,
		patterns: fieldPatterns{
			trip:        regexp.MustCompile(`\bRIT\d{6,8}\b`),
			vessel:      regexp.MustCompile(`(?im)^Vessel(?:\s+name)?\s*:?\s*(.+)$`),
			carrier:     regexp.MustCompile(`(?im)^(?:Shipping\s+line|Carrier)\s*:?\s*(.+)$`),
			pickup:      regexp.MustCompile(`(?im)^Terminal\s*:?\s*(.+)$`),
			dropoff:     regexp.MustCompile(`(?im)^(?:Empty\s+)?depot\s*:?\s*(.+)$`),
			customer:    regexp.MustCompile(`(?im)^Delivery\s*:?\s*(.+)$`),
			typeLabel:   regexp.MustCompile(`(?im)^(?:Unit|Container)\s+type\s*:?\s*(.+)$`),
			gross:       regexp.MustCompile(`(?im)^(?:Gross|Cargo)\s+weight\s*:?\s*([\d.,]+)`),
			tare:        regexp.MustCompile(`(?im)^Tare\s*:?\s*([\d.,]+)`),
			seal:        regexp.MustCompile(`(?im)^Seal\s*:?\s*(\S+)`),
			cargo:       regexp.MustCompile(`(?im)^(?:Commodity|Goods)\s*:?\s*(.+)$`),
			temperature: regexp.MustCompile(`(?im)^Temperature\s*:?\s*(-?\d+(?:[.,]\d+)?)`),
			date:        regexp.MustCompile(`(?im)^(?:Delivery\s+)?date\s*:?\s*([\d/. -]+)$`),
			timeWindow:  regexp.MustCompile(`(?im)^(?:Delivery\s+)?time\s*:?\s*(\d{1,2}:\d{2})\s*[-–]\s*(\d{1,2}:\d{2})`),
			loadRef:     regexp.MustCompile(`(?im)^(?:File|Our)\s+ref(?:erence)?\.?\s*:?\s*(\S+)`),
			returnRef:   regexp.MustCompile(`(?im)^Return\s+ref(?:erence)?\.?\s*:?\s*(\S+)`),
			docRef:      regexp.MustCompile(`(?im)^B/?L\s*:?\s*(\S+)`),
			colli:       regexp.MustCompile(`(?im)^(?:Colli|Packages)\s*:?\s*(\d+)`),
			volume:      regexp.MustCompile(`(?im)^(?:CBM|Volume)\s*:?\s*([\d.,]+)`),
		},
	}
}
