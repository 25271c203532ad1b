package parser

import (
	"regexp"

	"github.com/trucklink/orderfile/internal/model"
)

// Easyfresh handles reefer cargo: every container carries a set temperature.
// When the confirmation omits it the box still has to run cooled, so the post
// hook pins a conservative default instead of leaving the field blank.
func easyfreshSpec() *carrierSpec {
	return &carrierSpec{
		format:          FormatEasyfresh,
		signatures:      []string{"Easyfresh", "EASYFRESH LOGISTICS"},
		multiContainer:  true,
		dateFallbackNow: true,
		customerAction:  model.ActionUnload,
		patterns: fieldPatterns{
			trip:        regexp.MustCompile(`\bEF\d{7}\b`),
			vessel:      regexp.MustCompile(`(?im)^Vessel\s*:?\s*(.+)$`),
			carrier:     regexp.MustCompile(`(?im)^(?:Ocean\s+carrier|Carrier)\s*:?\s*(.+)$`),
			pickup:      regexp.MustCompile(`(?im)^Pick-?up\s+terminal\s*:?\s*(.+)$`),
			dropoff:     regexp.MustCompile(`(?im)^Return\s+depot\s*:?\s*(.+)$`),
			customer:    regexp.MustCompile(`(?im)^(?:Delivery|Discharge)\s+address\s*:?\s*(.+)$`),
			typeLabel:   regexp.MustCompile(`(?im)^(?:Reefer|Container)\s+type\s*:?\s*(.+)$`),
			gross:       regexp.MustCompile(`(?im)^Gross\s+weight\s*:?\s*([\d.,]+)`),
			tare:        regexp.MustCompile(`(?im)^Tare\s*:?\s*([\d.,]+)`),
			seal:        regexp.MustCompile(`(?im)^Seal\s*:?\s*(\S+)`),
			cargo:       regexp.MustCompile(`(?im)^(?:Commodity|Produce)\s*:?\s*(.+)$`),
			temperature: regexp.MustCompile(`(?im)^(?:Set\s+)?temp(?:erature)?\.?\s*:?\s*(-?\d+(?:[.,]\d+)?)`),
			date:        regexp.MustCompile(`(?im)^Delivery\s+date\s*:?\s*([\d/. -]+)$`),
			timeWindow:  regexp.MustCompile(`(?im)^Window\s*:?\s*(\d{1,2}:\d{2})\s*[-–]\s*(\d{1,2}:\d{2})`),
			loadRef:     regexp.MustCompile(`(?im)^Reference\s*:?\s*(\S+)`),
			returnRef:   regexp.MustCompile(`(?im)^Return\s+reference\s*:?\s*(\S+)`),
			docRef:      regexp.MustCompile(`(?im)^B/?L\s*:?\s*(\S+)`),
			colli:       regexp.MustCompile(`(?im)^(?:Colli|Pallets)\s*:?\s*(\d+)`),
			volume:      regexp.MustCompile(`(?im)^(?:CBM|Volume)\s*:?\s*([\d.,]+)`),
		},
		post: func(order *model.Order, _ string) {
			if order.Container.Temperature == "" {
				order.Container.Temperature = "2"
			}
		},
	}
}
