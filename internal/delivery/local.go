package delivery

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/trucklink/orderfile/internal/service"
)

// LocalDeliverer drops finished order files in a directory watched by the
// transport-planning import. The summary sheet lands next to the order file
// under the same base name.
type LocalDeliverer struct {
	dir string
	log zerolog.Logger
}

func NewLocalDeliverer(dir string, log zerolog.Logger) (*LocalDeliverer, error) {
	if dir == "" {
		return nil, fmt.Errorf("output directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}
	return &LocalDeliverer{dir: dir, log: log}, nil
}

func (d *LocalDeliverer) Deliver(ctx context.Context, file service.OrderFile) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	payload, err := base64.StdEncoding.DecodeString(file.Payload)
	if err != nil {
		return fmt.Errorf("decode payload for %s: %w", file.FileName, err)
	}

	path := filepath.Join(d.dir, file.FileName)
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return fmt.Errorf("write order file: %w", err)
	}

	if len(file.Summary) > 0 {
		summaryPath := strings.TrimSuffix(path, filepath.Ext(path)) + ".pdf"
		if err := os.WriteFile(summaryPath, file.Summary, 0o644); err != nil {
			return fmt.Errorf("write summary sheet: %w", err)
		}
	}

	d.log.Info().
		Str("file", file.FileName).
		Str("reference", file.Reference).
		Str("laadplaats", file.LoadLocation).
		Msg("order file delivered")
	return nil
}
