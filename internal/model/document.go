package model

import (
	"time"

	"github.com/google/uuid"
)

type DocumentStatus string

const (
	DocumentStatusProcessed    DocumentStatus = "PROCESSED"
	DocumentStatusPartial      DocumentStatus = "PARTIAL"
	DocumentStatusUnrecognized DocumentStatus = "UNRECOGNIZED"
	DocumentStatusFailed       DocumentStatus = "FAILED"
)

// ProcessedDocument is the audit record written after each pipeline run.
type ProcessedDocument struct {
	ID            uuid.UUID
	Format        string
	TripReference string
	Containers    int
	Status        DocumentStatus
	Reason        string
	CreatedAt     time.Time
}
