package model

// Document type labels as the backend emits them. Matching is exact.
const (
	DocumentTypeSOAT       = "SOAT"
	DocumentTypeInspection = "Tecnomecánica"
	DocumentTypeTax        = "Impuesto Vehicular"
)

// OwnershipOpenEnd marks the current owner in the history "hasta" column.
const OwnershipOpenEnd = "Actual"

// QueryResponse is the envelope of GET /api/consulta/{placa}/{cedula}.
// Data is only set when Success is true.
type QueryResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Data    *QueryPayload `json:"data,omitempty"`
}

// QueryPayload is the raw vehicle lookup result. Every field may be missing
// or null on the wire; the view model layer fills the gaps.
type QueryPayload struct {
	Plate            string             `json:"placa"`
	Make             *string            `json:"marca"`
	ModelYear        *int               `json:"modelo"`
	VehicleType      *string            `json:"tipo"`
	DisplacementCC   *int               `json:"cilindraje"`
	Owner            *OwnerPayload      `json:"propietario"`
	Documents        []DocumentPayload  `json:"documentos"`
	Fines            []FinePayload      `json:"multas"`
	OwnershipHistory []OwnershipPayload `json:"historial"`
}

type OwnerPayload struct {
	IdentityNumber string  `json:"cedula"`
	FullName       string  `json:"nombre"`
	Phone          *string `json:"telefono"`
	Email          *string `json:"email"`
	Address        *string `json:"direccion"`
}

type DocumentPayload struct {
	Type   string  `json:"tipo"`
	Status string  `json:"estado"`
	Expiry string  `json:"vencimiento"`
	Value  *string `json:"valor"`
}

type FinePayload struct {
	ID            string   `json:"id_multa"`
	Date          string   `json:"fecha"`
	ViolationType string   `json:"tipo_infraccion"`
	Amount        *float64 `json:"monto"`
	Status        string   `json:"estado"`
}

type OwnershipPayload struct {
	IdentityNumber string `json:"cedula"`
	FullName       string `json:"nombre"`
	From           string `json:"desde"`
	To             string `json:"hasta"`
}
