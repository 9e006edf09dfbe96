package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

// schema se aplica en orden; cada sentencia es idempotente.
// pet_id no es FK: borrar una mascota deja sus solicitudes e historia
// clínica intactas (la existencia se valida en los servicios).
var schema = []string{
	`CREATE EXTENSION IF NOT EXISTS pgcrypto`,

	`CREATE TABLE IF NOT EXISTS pets (
		id          UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name        VARCHAR(255) NOT NULL,
		type        TEXT NOT NULL
			CHECK (type IN ('dog', 'cat', 'bird', 'rabbit', 'hamster', 'other')),
		breed       TEXT,
		age         INTEGER CHECK (age >= 0),
		gender      TEXT,
		size        TEXT,
		color       TEXT,
		description TEXT,
		image_url   TEXT,
		status      TEXT NOT NULL DEFAULT 'available'
			CHECK (status IN ('available', 'pending', 'adopted', 'not_available')),
		created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS applications (
		id                UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		pet_id            UUID NOT NULL,
		applicant_name    VARCHAR(255) NOT NULL,
		applicant_email   VARCHAR(255) NOT NULL,
		applicant_phone   VARCHAR(50),
		applicant_address TEXT,
		application_text  TEXT,
		status            TEXT NOT NULL DEFAULT 'pending'
			CHECK (status IN ('pending', 'approved', 'rejected', 'withdrawn')),
		created_at        TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at        TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS medical_records (
		id         UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		pet_id     UUID NOT NULL,
		date       TEXT NOT NULL,
		procedure  TEXT NOT NULL,
		vet_name   TEXT NOT NULL,
		notes      TEXT,
		cost       TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE INDEX IF NOT EXISTS idx_pets_status ON pets(status)`,
	`CREATE INDEX IF NOT EXISTS idx_applications_pet_id ON applications(pet_id)`,
	`CREATE INDEX IF NOT EXISTS idx_applications_status ON applications(status)`,
	`CREATE INDEX IF NOT EXISTS idx_medical_records_pet_id ON medical_records(pet_id)`,

	`CREATE OR REPLACE FUNCTION set_updated_at() RETURNS TRIGGER AS $$
	BEGIN
		NEW.updated_at = now();
		RETURN NEW;
	END;
	$$ LANGUAGE plpgsql`,

	`DROP TRIGGER IF EXISTS pets_set_updated_at ON pets`,
	`CREATE TRIGGER pets_set_updated_at BEFORE UPDATE ON pets
		FOR EACH ROW EXECUTE FUNCTION set_updated_at()`,
	`DROP TRIGGER IF EXISTS applications_set_updated_at ON applications`,
	`CREATE TRIGGER applications_set_updated_at BEFORE UPDATE ON applications
		FOR EACH ROW EXECUTE FUNCTION set_updated_at()`,
	`DROP TRIGGER IF EXISTS medical_records_set_updated_at ON medical_records`,
	`CREATE TRIGGER medical_records_set_updated_at BEFORE UPDATE ON medical_records
		FOR EACH ROW EXECUTE FUNCTION set_updated_at()`,
}

// Migrate crea el esquema dentro de una sola transacción.
func Migrate(ctx context.Context, db *sql.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("migrate: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for i, stmt := range schema {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: statement %d: %w", i+1, storeErr(err))
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("migrate: commit: %w", err)
	}
	return nil
}
