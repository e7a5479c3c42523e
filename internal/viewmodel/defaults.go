package viewmodel

import "vehicle-query-service/internal/model"

// The backend has no source for these two profile fields.
const (
	DefaultLicenses        = "A2, B1"
	DefaultRegisteredSince = "2023-01-15"
)

type documentSpec struct {
	kind        DocumentKind
	label       string
	backendType string
	// fallback is shown when the payload has no entry for this kind.
	fallback fallbackDocument
	details  func() map[string]string
	example  exampleDocument
}

type fallbackDocument struct {
	expiry string
	amount float64
	status string
}

type exampleDocument struct {
	expiry string
	amount float64
	status string
}

// documentSpecs lists the known document kinds in display order.
var documentSpecs = []documentSpec{
	{
		kind:        KindSOAT,
		label:       "SOAT",
		backendType: model.DocumentTypeSOAT,
		fallback:    fallbackDocument{expiry: NotAvailable, amount: 150000, status: NotAvailable},
		details: func() map[string]string {
			return map[string]string{
				"numero":      "SOAT-2024-001",
				"aseguradora": "Seguros Bolívar",
				"cobertura":   "Responsabilidad Civil",
			}
		},
		example: exampleDocument{expiry: "2025-11-30", amount: 150000, status: "Activo"},
	},
	{
		kind:        KindInspection,
		label:       "Tecnomecánica",
		backendType: model.DocumentTypeInspection,
		fallback:    fallbackDocument{expiry: NotAvailable, amount: 180000, status: NotAvailable},
		details: func() map[string]string {
			return map[string]string{
				"numero":    "TM-2024-002",
				"centro":    "Centro de Diagnóstico Automotor",
				"resultado": "Aprobado",
			}
		},
		example: exampleDocument{expiry: "2025-10-15", amount: 180000, status: "Activo"},
	},
	{
		kind:        KindTax,
		label:       "Impuesto Vehicular",
		backendType: model.DocumentTypeTax,
		// The tax tab has no per-field default; its fixed record is used whole.
		fallback:    fallbackDocument{expiry: "2025-12-31", amount: 320000, status: "Pendiente"},
		details: func() map[string]string {
			return map[string]string{
				"año":       "2024",
				"periodo":   "Enero - Diciembre",
				"descuento": "5% por pago anticipado",
			}
		},
		example: exampleDocument{expiry: "2025-12-31", amount: 320000, status: "Pendiente"},
	},
}

func defaultOwnership() []OwnershipRecord {
	return []OwnershipRecord{
		{Name: "Juan Pérez", From: "2023", To: model.OwnershipOpenEnd, IdentityNumber: "123456789"},
		{Name: "Andrea Gómez", From: "2020", To: "2022", IdentityNumber: "987654321"},
		{Name: "Carlos López", From: "2018", To: "2019", IdentityNumber: "456789123"},
	}
}

func exampleProfile() ProfileTab {
	return ProfileTab{
		IdentityNumber:  "123456789",
		FullName:        "Juan Pérez",
		Phone:           "3001234567",
		Email:           "juan@email.com",
		Licenses:        DefaultLicenses,
		Address:         "Calle 123 #45-67, Bogotá",
		RegisteredSince: DefaultRegisteredSince,
	}
}

type exampleFine struct {
	label   string
	date    string
	dueDate string
	amount  float64
	status  string
}

var exampleFines = []exampleFine{
	{label: "Exceso de velocidad", date: "2025-06-01", dueDate: "2025-07-01", amount: 380000, status: "Pendiente"},
	{label: "Estacionamiento prohibido", date: "2025-04-10", dueDate: "2025-05-10", amount: 220000, status: "Pagado"},
}
