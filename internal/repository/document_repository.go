package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/trucklink/orderfile/internal/model"
)

type DocumentRepository struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

// RecordDocument writes one pipeline-run audit record. ID and CreatedAt come
// from the database.
func (r *DocumentRepository) RecordDocument(ctx context.Context, doc model.ProcessedDocument) error {
	return r.db.WithContext(ctx).Exec(`
		INSERT INTO processed_documents (format, trip_reference, containers, status, reason)
		VALUES (?, ?, ?, ?, ?)
	`, doc.Format, doc.TripReference, doc.Containers, doc.Status, doc.Reason).Error
}

// ListDocuments returns the most recent audit records, newest first.
func (r *DocumentRepository) ListDocuments(ctx context.Context, limit int) ([]model.ProcessedDocument, error) {
	if limit <= 0 {
		limit = 50
	}

	var docs []model.ProcessedDocument
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, format, trip_reference, containers, status, reason, created_at
		FROM processed_documents
		ORDER BY created_at DESC
		LIMIT ?
	`, limit).Scan(&docs).Error
	if err != nil {
		return nil, err
	}
	return docs, nil
}
