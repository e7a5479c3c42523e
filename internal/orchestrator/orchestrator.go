// Package orchestrator drives one vehicle query from raw form input to a
// normalized view: blank check, field validation, fetch, normalize.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"vehicle-query-service/internal/model"
	"vehicle-query-service/internal/service"
	"vehicle-query-service/internal/validation"
	"vehicle-query-service/internal/viewmodel"
)

// ErrIncompleteInput is returned by Run when either field is blank.
var ErrIncompleteInput = errors.New("both plate and identity number are required")

// Fetcher loads the raw payload for a plate and identity number. Both the
// in-process service and the HTTP client satisfy it.
type Fetcher interface {
	Lookup(ctx context.Context, plate, identityNumber string) (*model.QueryPayload, error)
}

type Input struct {
	Plate          string `json:"placa"`
	IdentityNumber string `json:"cedula"`
}

// FieldErrors maps a field name to the reason it was rejected.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	fields := make([]string, 0, len(fe))
	for field := range fe {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+fe[field])
	}
	return strings.Join(parts, "; ")
}

type Orchestrator struct {
	fetcher    Fetcher
	normalizer *viewmodel.Normalizer
	timeout    time.Duration
}

// New builds an orchestrator. A zero timeout leaves the caller's deadline
// untouched.
func New(fetcher Fetcher, normalizer *viewmodel.Normalizer, timeout time.Duration) *Orchestrator {
	return &Orchestrator{
		fetcher:    fetcher,
		normalizer: normalizer,
		timeout:    timeout,
	}
}

// Validate checks the fields the way a form does while the user types: a
// blank field reports nothing yet. The result is nil when nothing failed.
func Validate(in Input) FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(in.Plate) != "" {
		if res := validation.ValidatePlate(in.Plate); !res.Valid {
			errs[service.FieldPlate] = res.Reason
		}
	}
	if strings.TrimSpace(in.IdentityNumber) != "" {
		if res := validation.ValidateIdentityNumber(in.IdentityNumber); !res.Valid {
			errs[service.FieldIdentityNumber] = res.Reason
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Run validates in, fetches the payload and normalizes it. Fetch failures,
// including upstream messages, are returned wrapped and unchanged; the
// normalizer only ever sees a successful payload.
func (o *Orchestrator) Run(ctx context.Context, in Input) (viewmodel.ViewModel, error) {
	if strings.TrimSpace(in.Plate) == "" || strings.TrimSpace(in.IdentityNumber) == "" {
		return viewmodel.ViewModel{}, ErrIncompleteInput
	}
	if errs := Validate(in); errs != nil {
		return viewmodel.ViewModel{}, errs
	}

	if o.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.timeout)
		defer cancel()
	}

	raw, err := o.fetcher.Lookup(ctx, in.Plate, in.IdentityNumber)
	if err != nil {
		return viewmodel.ViewModel{}, fmt.Errorf("fetch vehicle %s: %w", in.Plate, err)
	}

	return o.normalizer.Normalize(raw), nil
}

// Placeholder is the view shown before any query has run.
func (o *Orchestrator) Placeholder() viewmodel.ViewModel {
	return o.normalizer.Placeholder()
}
