package db

import (
	"fmt"

	"gorm.io/gorm"
)

var migrationStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	`CREATE TABLE IF NOT EXISTS owners (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		identity_number VARCHAR(10) NOT NULL UNIQUE,
		full_name VARCHAR(128) NOT NULL,
		phone VARCHAR(32),
		email VARCHAR(128),
		address TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS vehicles (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		owner_id UUID NOT NULL REFERENCES owners(id) ON DELETE RESTRICT,
		plate_number VARCHAR(16) NOT NULL UNIQUE,
		make VARCHAR(64),
		model_year INTEGER,
		vehicle_type VARCHAR(32),
		displacement_cc INTEGER,
		soat_status VARCHAR(32),
		soat_expires_on DATE,
		inspection_status VARCHAR(32),
		inspection_expires_on DATE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM information_schema.columns
			WHERE table_name = 'vehicles' AND column_name = 'tax_status') THEN
			ALTER TABLE vehicles ADD COLUMN tax_status VARCHAR(32);
		END IF;
		IF NOT EXISTS (SELECT 1 FROM information_schema.columns
			WHERE table_name = 'vehicles' AND column_name = 'tax_expires_on') THEN
			ALTER TABLE vehicles ADD COLUMN tax_expires_on DATE;
		END IF;
	END
	$$;`,
	`CREATE INDEX IF NOT EXISTS idx_vehicles_owner_id ON vehicles (owner_id);`,
	`CREATE TABLE IF NOT EXISTS fines (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		vehicle_id UUID NOT NULL REFERENCES vehicles(id) ON DELETE CASCADE,
		issued_on DATE NOT NULL,
		violation_type VARCHAR(128) NOT NULL,
		amount NUMERIC(12,2) NOT NULL CHECK (amount >= 0),
		status VARCHAR(32) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_fines_vehicle_id ON fines (vehicle_id);`,
	`CREATE INDEX IF NOT EXISTS idx_fines_issued_on ON fines (issued_on);`,
	`CREATE TABLE IF NOT EXISTS ownership_records (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		vehicle_id UUID NOT NULL REFERENCES vehicles(id) ON DELETE CASCADE,
		identity_number VARCHAR(10) NOT NULL,
		full_name VARCHAR(128),
		owned_from DATE NOT NULL,
		owned_to DATE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CHECK (owned_to IS NULL OR owned_to >= owned_from)
	);`,
	`CREATE INDEX IF NOT EXISTS idx_ownership_records_vehicle_id ON ownership_records (vehicle_id);`,
	`CREATE OR REPLACE FUNCTION set_updated_at()
	RETURNS TRIGGER AS $$
	BEGIN
		NEW.updated_at = NOW();
		RETURN NEW;
	END;
	$$ LANGUAGE plpgsql;`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_trigger WHERE tgname = 'trg_owners_updated_at') THEN
			CREATE TRIGGER trg_owners_updated_at
				BEFORE UPDATE ON owners
				FOR EACH ROW
				EXECUTE PROCEDURE set_updated_at();
		END IF;
	END
	$$;`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_trigger WHERE tgname = 'trg_vehicles_updated_at') THEN
			CREATE TRIGGER trg_vehicles_updated_at
				BEFORE UPDATE ON vehicles
				FOR EACH ROW
				EXECUTE PROCEDURE set_updated_at();
		END IF;
	END
	$$;`,
}

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
