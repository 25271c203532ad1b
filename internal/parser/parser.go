package parser

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/trucklink/orderfile/internal/model"
)

type Format string

const (
	FormatDFDS      Format = "dfds"
	FormatJordex    Format = "jordex"
	FormatKWE       Format = "kwe"
	FormatNeelevat  Format = "neelevat"
	FormatRitra     Format = "ritra"
	FormatEasyfresh Format = "easyfresh"
	FormatB2L       Format = "b2l"
)

// Document is one raw input: the text layer extracted from a carrier PDF.
type Document struct {
	Text string
}

type DiagnosticLevel string

const (
	DiagnosticInfo    DiagnosticLevel = "info"
	DiagnosticWarning DiagnosticLevel = "warning"
)

// Diagnostic is one per-field extraction note. Diagnostics travel with the
// result instead of a shared log buffer so concurrent extractions cannot
// interleave each other's traces.
type Diagnostic struct {
	Level   DiagnosticLevel
	Field   string
	Message string
}

// ContainerFailure records one container block that could not be extracted.
// Sibling containers in the same document are unaffected.
type ContainerFailure struct {
	ContainerNumber string
	Reason          string
}

// Result is the outcome of extracting one document. A document with zero
// orders and zero failures carries the reason in Diagnostics.
type Result struct {
	Format      Format
	Orders      []model.Order
	Failures    []ContainerFailure
	Diagnostics []Diagnostic
}

// Resolver resolves raw carrier-supplied labels against the reference store.
type Resolver interface {
	Resolve(ctx context.Context, kind model.ReferenceKind, rawKey string) (model.ReferenceEntry, error)
}

// Dispatcher recognizes the carrier format of a document and runs the matching
// extractor. Registration order is fixed; when signatures ever overlap the
// first registered format wins.
type Dispatcher struct {
	resolver   Resolver
	log        zerolog.Logger
	orderParty model.Party
	specs      []*carrierSpec
}

func NewDispatcher(resolver Resolver, orderParty model.Party, log zerolog.Logger) *Dispatcher {
	return &Dispatcher{
		resolver:   resolver,
		log:        log,
		orderParty: orderParty,
		specs: []*carrierSpec{
			dfdsSpec(),
			jordexSpec(),
			kweSpec(),
			neelevatSpec(),
			ritraSpec(),
			easyfreshSpec(),
			b2lSpec(),
		},
	}
}

// Detect returns the format matching the document text, or false when no
// signature matches.
func (d *Dispatcher) Detect(text string) (Format, bool) {
	for _, spec := range d.specs {
		if spec.matches(text) {
			return spec.format, true
		}
	}
	return "", false
}

// Extract runs the full pipeline for one document: detect the format, split
// into container blocks where the format carries multiple containers, and
// extract one order per block. Returns ErrUnknownFormat when no signature
// matches and ErrNoTripReference when a format that requires a trip reference
// cannot find one.
func (d *Dispatcher) Extract(ctx context.Context, doc Document) (*Result, error) {
	if strings.TrimSpace(doc.Text) == "" {
		return nil, ErrEmptyDocument
	}

	for _, spec := range d.specs {
		if !spec.matches(doc.Text) {
			continue
		}
		d.log.Debug().Str("format", string(spec.format)).Msg("document format detected")
		return d.extract(ctx, spec, doc)
	}
	return nil, ErrUnknownFormat
}

func (s *carrierSpec) matches(text string) bool {
	for _, sig := range s.signatures {
		if strings.Contains(text, sig) {
			return true
		}
	}
	return false
}
