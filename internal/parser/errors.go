package parser

import "errors"

var (
	ErrUnknownFormat   = errors.New("unrecognized document format")
	ErrNoTripReference = errors.New("no valid trip reference found")
	ErrEmptyDocument   = errors.New("document text is empty")

	// ErrStoreUnavailable marks resolver failures caused by an unreachable
	// reference store. Resolver implementations wrap it so extractors can
	// degrade the lookup to a no-match; any other resolver error fails the
	// container it belongs to.
	ErrStoreUnavailable = errors.New("reference store unavailable")
)
