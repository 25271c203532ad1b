package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/trucklink/orderfile/internal/easyfile"
	"github.com/trucklink/orderfile/internal/model"
	"github.com/trucklink/orderfile/internal/parser"
)

// SummaryGenerator renders the human-readable one-pager that travels with an
// order file.
type SummaryGenerator interface {
	Generate(order model.Order) ([]byte, error)
}

// Deliverer hands a finished order file to the delivery collaborator
// (filesystem drop, mail-out, object storage).
type Deliverer interface {
	Deliver(ctx context.Context, file OrderFile) error
}

// DocumentStore persists and lists the per-run audit records.
type DocumentStore interface {
	RecordDocument(ctx context.Context, doc model.ProcessedDocument) error
	ListDocuments(ctx context.Context, limit int) ([]model.ProcessedDocument, error)
}

// OrderFile is the handoff triple for one order: the base64 order-file
// payload, the resolved reference and the load-location name, plus the
// summary sheet when one could be rendered.
type OrderFile struct {
	FileName     string
	Reference    string
	LoadLocation string
	Payload      string
	Summary      []byte
}

type ProcessInput struct {
	Text    string
	Deliver bool
}

type ProcessResult struct {
	Format      parser.Format
	Orders      []model.Order
	Files       []OrderFile
	Failures    []parser.ContainerFailure
	Diagnostics []parser.Diagnostic
}

type OrderService struct {
	dispatcher *parser.Dispatcher
	writer     *easyfile.Writer
	summary    SummaryGenerator
	delivery   Deliverer
	docs       DocumentStore
	log        zerolog.Logger
}

func NewOrderService(
	dispatcher *parser.Dispatcher,
	writer *easyfile.Writer,
	summary SummaryGenerator,
	delivery Deliverer,
	docs DocumentStore,
	log zerolog.Logger,
) *OrderService {
	return &OrderService{
		dispatcher: dispatcher,
		writer:     writer,
		summary:    summary,
		delivery:   delivery,
		docs:       docs,
		log:        log,
	}
}

// ProcessDocument runs the full pipeline for one raw document: format
// detection, per-container extraction, serialization and, when requested,
// delivery. Unrecognized formats and a missing mandatory trip reference come
// back as parser sentinels; everything else degrades per container.
func (s *OrderService) ProcessDocument(ctx context.Context, input ProcessInput) (*ProcessResult, error) {
	if strings.TrimSpace(input.Text) == "" {
		return nil, fmt.Errorf("%w: document text is required", ErrInvalidInput)
	}

	extracted, err := s.dispatcher.Extract(ctx, parser.Document{Text: input.Text})
	if err != nil {
		s.record(ctx, model.ProcessedDocument{
			Format: formatOrUnknown(s.dispatcher, input.Text),
			Status: statusForError(err),
			Reason: err.Error(),
		})
		return nil, err
	}

	result := &ProcessResult{
		Format:      extracted.Format,
		Orders:      extracted.Orders,
		Failures:    extracted.Failures,
		Diagnostics: extracted.Diagnostics,
	}

	for _, order := range extracted.Orders {
		file := s.buildFile(order)
		result.Files = append(result.Files, file)

		if input.Deliver && s.delivery != nil {
			if err := s.delivery.Deliver(ctx, file); err != nil {
				return result, fmt.Errorf("deliver %s: %w", file.FileName, err)
			}
		}
	}

	s.record(ctx, model.ProcessedDocument{
		Format:        string(extracted.Format),
		TripReference: tripReference(extracted.Orders),
		Containers:    len(extracted.Orders),
		Status:        documentStatus(extracted),
		Reason:        failureReason(extracted),
	})

	s.log.Info().
		Str("format", string(extracted.Format)).
		Int("orders", len(extracted.Orders)).
		Int("failures", len(extracted.Failures)).
		Msg("document processed")
	return result, nil
}

func (s *OrderService) buildFile(order model.Order) OrderFile {
	payload := s.writer.Serialize(order)

	file := OrderFile{
		FileName:     buildFileName(order),
		Reference:    order.TripReference,
		LoadLocation: loadLocation(order),
		Payload:      base64.StdEncoding.EncodeToString(payload),
	}

	if s.summary != nil {
		summary, err := s.summary.Generate(order)
		if err != nil {
			s.log.Warn().Err(err).Str("file", file.FileName).Msg("summary sheet failed, delivering without")
		} else {
			file.Summary = summary
		}
	}
	return file
}

// loadLocation returns the laadplaats of the handoff triple: the customer
// stop when there is one, otherwise the first stop.
func loadLocation(order model.Order) string {
	for _, loc := range order.Locations {
		if loc.Action == model.ActionLoad || loc.Action == model.ActionUnload {
			return loc.Name
		}
	}
	if len(order.Locations) > 0 {
		return order.Locations[0].Name
	}
	return ""
}

func buildFileName(order model.Order) string {
	trip := sanitizeFileName(order.TripReference)
	if trip == "" {
		trip = "0"
	}
	container := sanitizeFileName(order.Container.Number)
	if container == "" {
		return trip + ".xml"
	}
	return trip + "_" + container + ".xml"
}

func sanitizeFileName(input string) string {
	result := make([]rune, 0, len(input))
	for _, r := range input {
		switch {
		case r >= 'a' && r <= 'z':
			result = append(result, r)
		case r >= 'A' && r <= 'Z':
			result = append(result, r)
		case r >= '0' && r <= '9':
			result = append(result, r)
		case r == '-', r == '_':
			result = append(result, r)
		default:
			result = append(result, '-')
		}
	}
	return strings.Trim(string(result), "-")
}

// RecentDocuments returns the newest audit records.
func (s *OrderService) RecentDocuments(ctx context.Context, limit int) ([]model.ProcessedDocument, error) {
	if s.docs == nil {
		return nil, nil
	}
	return s.docs.ListDocuments(ctx, limit)
}

func (s *OrderService) record(ctx context.Context, doc model.ProcessedDocument) {
	if s.docs == nil {
		return
	}
	if err := s.docs.RecordDocument(ctx, doc); err != nil {
		s.log.Warn().Err(err).Msg("audit record failed")
	}
}

func formatOrUnknown(d *parser.Dispatcher, text string) string {
	if format, ok := d.Detect(text); ok {
		return string(format)
	}
	return "unknown"
}

func statusForError(err error) model.DocumentStatus {
	if errors.Is(err, parser.ErrUnknownFormat) {
		return model.DocumentStatusUnrecognized
	}
	return model.DocumentStatusFailed
}

func documentStatus(res *parser.Result) model.DocumentStatus {
	switch {
	case len(res.Failures) == 0 && len(res.Orders) > 0:
		return model.DocumentStatusProcessed
	case len(res.Orders) > 0:
		return model.DocumentStatusPartial
	case len(res.Failures) > 0:
		return model.DocumentStatusFailed
	default:
		// zero orders and zero failures: the document yielded nothing
		return model.DocumentStatusFailed
	}
}

func failureReason(res *parser.Result) string {
	if len(res.Failures) > 0 {
		parts := make([]string, 0, len(res.Failures))
		for _, f := range res.Failures {
			parts = append(parts, f.ContainerNumber+": "+f.Reason)
		}
		return strings.Join(parts, "; ")
	}
	if len(res.Orders) == 0 {
		for _, d := range res.Diagnostics {
			if d.Level == parser.DiagnosticWarning {
				return d.Message
			}
		}
	}
	return ""
}

func tripReference(orders []model.Order) string {
	if len(orders) == 0 {
		return "0"
	}
	return orders[0].TripReference
}
