// Package viewmodel turns a raw vehicle query payload into the display-ready
// records the presentation layer renders: the owner profile, one tab per
// regulatory document, fine rows and ownership rows.
//
// Every field of a ViewModel is populated. Data missing from the payload is
// replaced by a named default so renderers never branch on absence.
package viewmodel

// NotAvailable replaces any text field the payload did not supply.
const NotAvailable = "N/A"

type DocumentKind string

const (
	KindSOAT       DocumentKind = "soat"
	KindInspection DocumentKind = "tecnomecanica"
	KindTax        DocumentKind = "impuesto"
)

type ProfileTab struct {
	IdentityNumber  string `json:"identityNumber"`
	FullName        string `json:"fullName"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	Licenses        string `json:"licenses"`
	Address         string `json:"address"`
	RegisteredSince string `json:"registeredSince"`
}

type DocumentTab struct {
	Kind    DocumentKind      `json:"kind"`
	Label   string            `json:"label"`
	Expiry  string            `json:"expiry"`
	Value   string            `json:"value"`
	Status  string            `json:"status"`
	Details map[string]string `json:"details"`
}

type FineRecord struct {
	Label           string `json:"label"`
	Date            string `json:"date"`
	DueDate         string `json:"dueDate"`
	AmountFormatted string `json:"amountFormatted"`
	Status          string `json:"status"`
}

type OwnershipRecord struct {
	Name           string `json:"name"`
	From           string `json:"from"`
	To             string `json:"to"`
	IdentityNumber string `json:"identityNumber"`
}

// ViewModel is the normalized result of one vehicle query. Documents holds
// exactly one tab per known document kind, in display order.
type ViewModel struct {
	Profile   ProfileTab        `json:"profile"`
	Documents []DocumentTab     `json:"documents"`
	Fines     []FineRecord      `json:"fines"`
	Ownership []OwnershipRecord `json:"ownership"`
}

// Document returns the tab for kind.
func (v ViewModel) Document(kind DocumentKind) (DocumentTab, bool) {
	for _, doc := range v.Documents {
		if doc.Kind == kind {
			return doc, true
		}
	}
	return DocumentTab{}, false
}
