package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"vehicle-query-service/internal/metrics"
	"vehicle-query-service/internal/model"
	"vehicle-query-service/internal/utils"
	"vehicle-query-service/internal/validation"
)

// Document values shown for the documents stored as vehicle columns. The
// registry does not keep the amounts, so they are fixed.
const (
	soatValue       = "$150.000"
	inspectionValue = "$180.000"
	taxValue        = "$320.000"
)

const dateLayout = "2006-01-02"

type VehicleStore interface {
	GetByPlateAndOwner(ctx context.Context, plate, identityNumber string) (*model.Vehicle, error)
}

type FineStore interface {
	ListByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]model.Fine, error)
}

type OwnershipStore interface {
	ListByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]model.OwnershipRecord, error)
}

// PayloadCache stores assembled payloads. Get returns nil, nil on a miss.
type PayloadCache interface {
	Get(ctx context.Context, plate, identityNumber string) (*model.QueryPayload, error)
	Set(ctx context.Context, plate, identityNumber string, payload *model.QueryPayload) error
}

type QueryService struct {
	vehicles   VehicleStore
	fines      FineStore
	ownerships OwnershipStore
	cache      PayloadCache
	metrics    *metrics.Metrics
	log        zerolog.Logger
}

// NewQueryService wires the lookup. cache and m may be nil.
func NewQueryService(
	vehicles VehicleStore,
	fines FineStore,
	ownerships OwnershipStore,
	cache PayloadCache,
	m *metrics.Metrics,
	log zerolog.Logger,
) *QueryService {
	return &QueryService{
		vehicles:   vehicles,
		fines:      fines,
		ownerships: ownerships,
		cache:      cache,
		metrics:    m,
		log:        log,
	}
}

// Lookup validates the inputs and assembles the vehicle payload for plate
// and identityNumber. It returns a *FieldError for malformed input and
// ErrNotFound when no vehicle of that owner carries the plate.
func (s *QueryService) Lookup(ctx context.Context, plate, identityNumber string) (*model.QueryPayload, error) {
	start := time.Now()
	defer func() { s.metrics.ObserveLookup(time.Since(start)) }()

	if result := validation.ValidatePlate(plate); !result.Valid {
		s.metrics.IncrementLookup(metrics.OutcomeInvalid)
		return nil, &FieldError{Field: FieldPlate, Reason: result.Reason}
	}
	if result := validation.ValidateIdentityNumber(identityNumber); !result.Valid {
		s.metrics.IncrementLookup(metrics.OutcomeInvalid)
		return nil, &FieldError{Field: FieldIdentityNumber, Reason: result.Reason}
	}

	plate = utils.NormalizePlate(plate)
	identityNumber = utils.NormalizeIdentityNumber(identityNumber)

	if cached := s.fromCache(ctx, plate, identityNumber); cached != nil {
		s.metrics.IncrementLookup(metrics.OutcomeFound)
		return cached, nil
	}

	vehicle, err := s.vehicles.GetByPlateAndOwner(ctx, plate, identityNumber)
	if err != nil {
		s.metrics.IncrementLookup(metrics.OutcomeError)
		return nil, err
	}
	if vehicle == nil {
		s.metrics.IncrementLookup(metrics.OutcomeNotFound)
		return nil, ErrNotFound
	}

	var (
		fines   []model.Fine
		history []model.OwnershipRecord
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		fines, err = s.fines.ListByVehicle(gctx, vehicle.ID)
		return err
	})
	g.Go(func() error {
		var err error
		history, err = s.ownerships.ListByVehicle(gctx, vehicle.ID)
		return err
	})
	if err := g.Wait(); err != nil {
		s.metrics.IncrementLookup(metrics.OutcomeError)
		return nil, err
	}

	payload := BuildPayload(vehicle, fines, history)
	s.toCache(ctx, plate, identityNumber, payload)
	s.metrics.IncrementLookup(metrics.OutcomeFound)
	return payload, nil
}

func (s *QueryService) fromCache(ctx context.Context, plate, identityNumber string) *model.QueryPayload {
	if s.cache == nil {
		return nil
	}
	payload, err := s.cache.Get(ctx, plate, identityNumber)
	if err != nil {
		s.log.Warn().Err(err).Str("plate", plate).Msg("query cache read failed")
		return nil
	}
	if payload == nil {
		s.metrics.RecordCacheMiss()
		return nil
	}
	s.metrics.RecordCacheHit()
	return payload
}

func (s *QueryService) toCache(ctx context.Context, plate, identityNumber string, payload *model.QueryPayload) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, plate, identityNumber, payload); err != nil {
		s.log.Warn().Err(err).Str("plate", plate).Msg("query cache write failed")
	}
}
