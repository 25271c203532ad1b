package parser

import (
	"regexp"

	"github.com/trucklink/orderfile/internal/model"
)

// fieldPatterns is the per-carrier regexp table. A nil pattern means the
// format never carries that field; the field then takes its declared default.
type fieldPatterns struct {
	trip        *regexp.Regexp
	vessel      *regexp.Regexp
	carrier     *regexp.Regexp
	pickup      *regexp.Regexp
	dropoff     *regexp.Regexp
	customer    *regexp.Regexp
	typeLabel   *regexp.Regexp
	gross       *regexp.Regexp
	tare        *regexp.Regexp
	seal        *regexp.Regexp
	cargo       *regexp.Regexp
	temperature *regexp.Regexp
	date        *regexp.Regexp
	timeWindow  *regexp.Regexp // two capture groups: window start, window end
	loadRef     *regexp.Regexp
	returnRef   *regexp.Regexp
	docRef      *regexp.Regexp
	colli       *regexp.Regexp
	volume      *regexp.Regexp
}

// carrierSpec declares one carrier format: how to recognize it, whether it
// carries one or many containers per document, its field patterns and its
// defaulting policies. The extraction engine in extract.go is shared by all
// formats.
type carrierSpec struct {
	format     Format
	signatures []string

	// multiContainer routes the document through the container splitter.
	multiContainer bool

	// tripRequired makes a missing trip reference fatal for the whole
	// document instead of falling back to "0".
	tripRequired bool

	// dateFallbackNow substitutes the current date when the schedule date
	// cannot be parsed. Formats without this policy leave the date blank.
	dateFallbackNow bool

	// customerAction is the action of the customer stop between pickup and
	// drop-off.
	customerAction model.LocationAction

	patterns fieldPatterns

	// post runs after the shared engine filled the order, for per-carrier
	// quirks that do not fit the pattern table.
	post func(order *model.Order, blockText string)
}
