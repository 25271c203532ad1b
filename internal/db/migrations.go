package db

import (
	"fmt"

	"gorm.io/gorm"
)

var migrationStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS "pgcrypto";`,
	`CREATE TABLE IF NOT EXISTS terminals (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		zoeknaam VARCHAR(128) NOT NULL,
		naam VARCHAR(256) NOT NULL,
		adres VARCHAR(256) NOT NULL DEFAULT '',
		postcode VARCHAR(16) NOT NULL DEFAULT '',
		plaats VARCHAR(128) NOT NULL DEFAULT '',
		land VARCHAR(8) NOT NULL DEFAULT '',
		voormelden VARCHAR(8) NOT NULL DEFAULT 'Onwaar',
		tijd_van VARCHAR(8) NOT NULL DEFAULT '',
		tijd_tot VARCHAR(8) NOT NULL DEFAULT '',
		portbase_code VARCHAR(32) NOT NULL DEFAULT '',
		bics_code VARCHAR(32) NOT NULL DEFAULT ''
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_terminals_zoeknaam ON terminals (zoeknaam);`,
	`CREATE TABLE IF NOT EXISTS rederijen (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		alias VARCHAR(128) NOT NULL,
		naam VARCHAR(256) NOT NULL,
		code VARCHAR(32) NOT NULL DEFAULT ''
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_rederijen_alias ON rederijen (alias);`,
	`CREATE TABLE IF NOT EXISTS containertypes (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		label VARCHAR(128) NOT NULL,
		code VARCHAR(32) NOT NULL DEFAULT '',
		omschrijving VARCHAR(256) NOT NULL DEFAULT ''
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_containertypes_label ON containertypes (label);`,
	`CREATE TABLE IF NOT EXISTS processed_documents (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		format VARCHAR(32) NOT NULL,
		trip_reference VARCHAR(64) NOT NULL DEFAULT '0',
		containers INT NOT NULL DEFAULT 0,
		status VARCHAR(16) NOT NULL,
		reason TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_processed_documents_created_at ON processed_documents (created_at DESC);`,
	`CREATE INDEX IF NOT EXISTS idx_processed_documents_trip ON processed_documents (trip_reference);`,
}

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
