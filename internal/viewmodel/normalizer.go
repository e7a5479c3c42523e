package viewmodel

import (
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	"vehicle-query-service/internal/model"
)

// Options configures amount rendering. AmountFormat uses go-humanize
// FormatInteger directives; "#.###," groups thousands with a dot.
type Options struct {
	CurrencySymbol string
	AmountFormat   string
}

func DefaultOptions() Options {
	return Options{
		CurrencySymbol: "$",
		AmountFormat:   "#.###,",
	}
}

// Normalizer holds only immutable options and is safe for concurrent use.
type Normalizer struct {
	opts Options
}

// New panics when opts.AmountFormat is not a valid humanize format.
func New(opts Options) *Normalizer {
	defaults := DefaultOptions()
	if opts.CurrencySymbol == "" {
		opts.CurrencySymbol = defaults.CurrencySymbol
	}
	if opts.AmountFormat == "" {
		opts.AmountFormat = defaults.AmountFormat
	}
	humanize.FormatInteger(opts.AmountFormat, 0)
	return &Normalizer{opts: opts}
}

// Normalize maps raw into a fully populated ViewModel. A nil raw yields the
// example view shown before any query has run.
func (n *Normalizer) Normalize(raw *model.QueryPayload) ViewModel {
	if raw == nil {
		return n.Placeholder()
	}

	return ViewModel{
		Profile:   normalizeProfile(raw.Owner),
		Documents: n.normalizeDocuments(raw.Documents),
		Fines:     n.normalizeFines(raw.Fines),
		Ownership: normalizeOwnership(raw.OwnershipHistory),
	}
}

// Placeholder builds the example view from static data.
func (n *Normalizer) Placeholder() ViewModel {
	docs := make([]DocumentTab, 0, len(documentSpecs))
	for _, spec := range documentSpecs {
		docs = append(docs, DocumentTab{
			Kind:    spec.kind,
			Label:   spec.label,
			Expiry:  spec.example.expiry,
			Value:   n.FormatAmount(spec.example.amount),
			Status:  spec.example.status,
			Details: spec.details(),
		})
	}

	fines := make([]FineRecord, 0, len(exampleFines))
	for _, f := range exampleFines {
		fines = append(fines, FineRecord{
			Label:           f.label,
			Date:            f.date,
			DueDate:         f.dueDate,
			AmountFormatted: n.FormatAmount(f.amount),
			Status:          f.status,
		})
	}

	return ViewModel{
		Profile:   exampleProfile(),
		Documents: docs,
		Fines:     fines,
		Ownership: defaultOwnership(),
	}
}

// FormatAmount renders a peso amount rounded to whole units, e.g. "$380.000".
func (n *Normalizer) FormatAmount(amount float64) string {
	whole := decimal.NewFromFloat(amount).Round(0).IntPart()
	return n.opts.CurrencySymbol + humanize.FormatInteger(n.opts.AmountFormat, int(whole))
}

// AmountPlaceholder is shown for a fine without an amount.
func (n *Normalizer) AmountPlaceholder() string {
	return n.opts.CurrencySymbol + "0"
}

func normalizeProfile(owner *model.OwnerPayload) ProfileTab {
	profile := ProfileTab{
		IdentityNumber:  NotAvailable,
		FullName:        NotAvailable,
		Phone:           NotAvailable,
		Email:           NotAvailable,
		Licenses:        DefaultLicenses,
		Address:         NotAvailable,
		RegisteredSince: DefaultRegisteredSince,
	}
	if owner == nil {
		return profile
	}

	profile.IdentityNumber = orNotAvailable(owner.IdentityNumber)
	profile.FullName = orNotAvailable(owner.FullName)
	profile.Phone = derefOrNotAvailable(owner.Phone)
	profile.Email = derefOrNotAvailable(owner.Email)
	profile.Address = derefOrNotAvailable(owner.Address)
	return profile
}

func (n *Normalizer) normalizeDocuments(docs []model.DocumentPayload) []DocumentTab {
	tabs := make([]DocumentTab, 0, len(documentSpecs))
	for _, spec := range documentSpecs {
		tabs = append(tabs, n.documentTab(spec, ResolveDocument(docs, spec.backendType)))
	}
	return tabs
}

// documentTab decides per document, never per field: a found entry is used
// as-is, a missing one is replaced by the whole fallback record.
func (n *Normalizer) documentTab(spec documentSpec, match DocumentMatch) DocumentTab {
	tab := DocumentTab{
		Kind:    spec.kind,
		Label:   spec.label,
		Details: spec.details(),
	}

	switch match.Resolution {
	case Found:
		tab.Expiry = orNotAvailable(match.Document.Expiry)
		tab.Value = derefOrNotAvailable(match.Document.Value)
		tab.Status = orNotAvailable(match.Document.Status)
	default:
		tab.Expiry = spec.fallback.expiry
		tab.Value = n.FormatAmount(spec.fallback.amount)
		tab.Status = spec.fallback.status
	}
	return tab
}

func (n *Normalizer) normalizeFines(fines []model.FinePayload) []FineRecord {
	records := make([]FineRecord, 0, len(fines))
	for _, f := range fines {
		date := orNotAvailable(f.Date)
		amount := n.AmountPlaceholder()
		if f.Amount != nil {
			amount = n.FormatAmount(*f.Amount)
		}
		records = append(records, FineRecord{
			Label: orNotAvailable(f.ViolationType),
			Date:  date,
			// Fines carry no separate due date.
			DueDate:         date,
			AmountFormatted: amount,
			Status:          orNotAvailable(f.Status),
		})
	}
	return records
}

// normalizeOwnership keeps the payload order. An empty history is replaced
// by the example rows so the panel is never blank.
func normalizeOwnership(history []model.OwnershipPayload) []OwnershipRecord {
	if len(history) == 0 {
		return defaultOwnership()
	}

	records := make([]OwnershipRecord, 0, len(history))
	for _, h := range history {
		records = append(records, OwnershipRecord{
			Name:           orNotAvailable(h.FullName),
			From:           orNotAvailable(h.From),
			To:             orNotAvailable(h.To),
			IdentityNumber: orNotAvailable(h.IdentityNumber),
		})
	}
	return records
}

func orNotAvailable(s string) string {
	if strings.TrimSpace(s) == "" {
		return NotAvailable
	}
	return s
}

func derefOrNotAvailable(s *string) string {
	if s == nil {
		return NotAvailable
	}
	return orNotAvailable(*s)
}
