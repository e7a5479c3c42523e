package db

import (
	"fmt"

	"gorm.io/gorm"
)

// seedStatements load one demo vehicle (ABC123 owned by 123456789). They are
// idempotent so the seed can run on every start.
var seedStatements = []string{
	`INSERT INTO owners (identity_number, full_name, phone, email, address)
	VALUES ('123456789', 'Juan Pérez', '3001234567', 'juan@email.com', 'Calle 123 #45-67, Bogotá')
	ON CONFLICT (identity_number) DO NOTHING;`,
	`INSERT INTO vehicles (owner_id, plate_number, make, model_year, vehicle_type, displacement_cc,
		soat_status, soat_expires_on, inspection_status, inspection_expires_on)
	SELECT id, 'ABC123', 'Chevrolet', 2019, 'Automóvil', 1400,
		'Activo', DATE '2025-11-30', 'Activo', DATE '2025-10-15'
	FROM owners WHERE identity_number = '123456789'
	ON CONFLICT (plate_number) DO NOTHING;`,
	`INSERT INTO fines (vehicle_id, issued_on, violation_type, amount, status)
	SELECT v.id, f.issued_on, f.violation_type, f.amount, f.status
	FROM vehicles v
	CROSS JOIN (VALUES
		(DATE '2025-06-01', 'Exceso de velocidad', 380000.00, 'Pendiente'),
		(DATE '2025-04-10', 'Estacionamiento prohibido', 220000.00, 'Pagado')
	) AS f(issued_on, violation_type, amount, status)
	WHERE v.plate_number = 'ABC123'
		AND NOT EXISTS (SELECT 1 FROM fines WHERE vehicle_id = v.id);`,
	`INSERT INTO ownership_records (vehicle_id, identity_number, full_name, owned_from, owned_to)
	SELECT v.id, o.identity_number, o.full_name, o.owned_from, o.owned_to
	FROM vehicles v
	CROSS JOIN (VALUES
		('123456789', 'Juan Pérez', DATE '2023-01-15', NULL::DATE),
		('987654321', NULL, DATE '2020-03-02', DATE '2022-12-20')
	) AS o(identity_number, full_name, owned_from, owned_to)
	WHERE v.plate_number = 'ABC123'
		AND NOT EXISTS (SELECT 1 FROM ownership_records WHERE vehicle_id = v.id);`,
}

func seed(db *gorm.DB) error {
	for i, stmt := range seedStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("seed %d failed: %w", i+1, err)
		}
	}
	return nil
}
