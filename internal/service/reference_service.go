package service

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/trucklink/orderfile/internal/repository"
)

// WorkbookReader parses an uploaded reference workbook into store rows.
type WorkbookReader interface {
	Read(r io.Reader) (*repository.ReferenceImport, error)
}

type ReferenceService struct {
	repo   *repository.ReferenceRepository
	reader WorkbookReader
	log    zerolog.Logger
}

func NewReferenceService(repo *repository.ReferenceRepository, reader WorkbookReader, log zerolog.Logger) *ReferenceService {
	return &ReferenceService{repo: repo, reader: reader, log: log}
}

type ImportResult struct {
	Terminals      int
	Carriers       int
	ContainerTypes int
}

// ImportWorkbook loads terminal, carrier and container-type rows from an
// xlsx workbook into the reference store.
func (s *ReferenceService) ImportWorkbook(ctx context.Context, r io.Reader) (*ImportResult, error) {
	imported, err := s.reader.Read(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if len(imported.Terminals) > 0 {
		if err := s.repo.UpsertTerminals(ctx, imported.Terminals); err != nil {
			return nil, err
		}
	}
	if len(imported.Carriers) > 0 {
		if err := s.repo.UpsertCarriers(ctx, imported.Carriers); err != nil {
			return nil, err
		}
	}
	if len(imported.ContainerTypes) > 0 {
		if err := s.repo.UpsertContainerTypes(ctx, imported.ContainerTypes); err != nil {
			return nil, err
		}
	}

	result := &ImportResult{
		Terminals:      len(imported.Terminals),
		Carriers:       len(imported.Carriers),
		ContainerTypes: len(imported.ContainerTypes),
	}
	s.log.Info().
		Int("terminals", result.Terminals).
		Int("carriers", result.Carriers).
		Int("containertypes", result.ContainerTypes).
		Msg("reference data imported")
	return result, nil
}
