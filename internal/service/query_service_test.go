package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vehicle-query-service/internal/metrics"
	"vehicle-query-service/internal/model"
	"vehicle-query-service/internal/validation"
)

type fakeVehicles struct {
	vehicle *model.Vehicle
	err     error
	calls   []string
}

func (f *fakeVehicles) GetByPlateAndOwner(_ context.Context, plate, identityNumber string) (*model.Vehicle, error) {
	f.calls = append(f.calls, plate+"/"+identityNumber)
	if f.err != nil {
		return nil, f.err
	}
	if f.vehicle == nil || f.vehicle.PlateNumber != plate || f.vehicle.Owner.IdentityNumber != identityNumber {
		return nil, nil
	}
	return f.vehicle, nil
}

type fakeFines struct {
	fines []model.Fine
	err   error
}

func (f *fakeFines) ListByVehicle(context.Context, uuid.UUID) ([]model.Fine, error) {
	return f.fines, f.err
}

type fakeOwnerships struct {
	records []model.OwnershipRecord
	err     error
}

func (f *fakeOwnerships) ListByVehicle(context.Context, uuid.UUID) ([]model.OwnershipRecord, error) {
	return f.records, f.err
}

type memoryCache struct {
	mu      sync.Mutex
	entries map[string]*model.QueryPayload
	getErr  error
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string]*model.QueryPayload{}}
}

func (c *memoryCache) Get(_ context.Context, plate, identityNumber string) (*model.QueryPayload, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.entries[plate+"/"+identityNumber], nil
}

func (c *memoryCache) Set(_ context.Context, plate, identityNumber string, payload *model.QueryPayload) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[plate+"/"+identityNumber] = payload
	return nil
}

func date(s string) time.Time {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func ptr[T any](v T) *T { return &v }

func testVehicle() *model.Vehicle {
	return &model.Vehicle{
		ID:                  uuid.New(),
		PlateNumber:         "ABC123",
		Make:                ptr("Chevrolet"),
		ModelYear:           ptr(2019),
		SoatStatus:          ptr("Activo"),
		SoatExpiresOn:       ptr(date("2025-11-30")),
		InspectionStatus:    ptr("Activo"),
		InspectionExpiresOn: ptr(date("2025-10-15")),
		Owner: &model.Owner{
			IdentityNumber: "123456789",
			FullName:       "Juan Pérez",
			Phone:          ptr("3001234567"),
		},
	}
}

func newTestService(vehicles *fakeVehicles, fines *fakeFines, ownerships *fakeOwnerships, cache PayloadCache, m *metrics.Metrics) *QueryService {
	return NewQueryService(vehicles, fines, ownerships, cache, m, zerolog.Nop())
}

func TestLookupBuildsPayload(t *testing.T) {
	vehicles := &fakeVehicles{vehicle: testVehicle()}
	fines := &fakeFines{fines: []model.Fine{
		{ID: uuid.New(), IssuedOn: date("2025-06-01"), ViolationType: "Exceso de velocidad", Amount: decimal.NewFromInt(380000), Status: model.FineStatusPending},
	}}
	ownerships := &fakeOwnerships{records: []model.OwnershipRecord{
		{IdentityNumber: "123456789", FullName: ptr("Juan Pérez"), OwnedFrom: date("2023-01-15")},
		{IdentityNumber: "987654321", OwnedFrom: date("2020-03-02"), OwnedTo: ptr(date("2022-12-20"))},
	}}
	svc := newTestService(vehicles, fines, ownerships, nil, nil)

	payload, err := svc.Lookup(context.Background(), "abc-123", "123 456 789")
	require.NoError(t, err)

	assert.Equal(t, []string{"ABC123/123456789"}, vehicles.calls)
	assert.Equal(t, "ABC123", payload.Plate)
	require.NotNil(t, payload.Owner)
	assert.Equal(t, "Juan Pérez", payload.Owner.FullName)

	require.Len(t, payload.Documents, 2)
	assert.Equal(t, model.DocumentTypeSOAT, payload.Documents[0].Type)
	assert.Equal(t, "2025-11-30", payload.Documents[0].Expiry)
	assert.Equal(t, "$150.000", *payload.Documents[0].Value)
	assert.Equal(t, model.DocumentTypeInspection, payload.Documents[1].Type)
	assert.Equal(t, "$180.000", *payload.Documents[1].Value)

	require.Len(t, payload.Fines, 1)
	assert.Equal(t, "2025-06-01", payload.Fines[0].Date)
	assert.Equal(t, 380000.0, *payload.Fines[0].Amount)
	assert.Equal(t, "Pendiente", payload.Fines[0].Status)

	require.Len(t, payload.OwnershipHistory, 2)
	assert.Equal(t, model.OwnershipPayload{IdentityNumber: "123456789", FullName: "Juan Pérez", From: "2023", To: "Actual"}, payload.OwnershipHistory[0])
	assert.Equal(t, model.OwnershipPayload{IdentityNumber: "987654321", FullName: "Propietario 321", From: "2020", To: "2022"}, payload.OwnershipHistory[1])
}

func TestLookupIncludesTaxDocumentWhenRecorded(t *testing.T) {
	vehicle := testVehicle()
	vehicle.TaxStatus = ptr("Pendiente")
	vehicle.TaxExpiresOn = ptr(date("2025-12-31"))
	svc := newTestService(&fakeVehicles{vehicle: vehicle}, &fakeFines{}, &fakeOwnerships{}, nil, nil)

	payload, err := svc.Lookup(context.Background(), "ABC123", "123456789")
	require.NoError(t, err)

	require.Len(t, payload.Documents, 3)
	assert.Equal(t, model.DocumentTypeTax, payload.Documents[2].Type)
	assert.Equal(t, "2025-12-31", payload.Documents[2].Expiry)
	assert.NotNil(t, payload.Fines)
	assert.NotNil(t, payload.OwnershipHistory)
}

func TestLookupRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name     string
		plate    string
		identity string
		field    string
		reason   string
	}{
		{name: "bad plate", plate: "AB-123", identity: "123456789", field: FieldPlate, reason: validation.ReasonPlateFormat},
		{name: "identical letters", plate: "AAA123", identity: "123456789", field: FieldPlate, reason: validation.ReasonPlateIdenticalLetters},
		{name: "bad identity", plate: "ABC123", identity: "12AB", field: FieldIdentityNumber, reason: validation.ReasonIdentityDigitsOnly},
		{name: "repeated identity", plate: "ABC123", identity: "1111111", field: FieldIdentityNumber, reason: validation.ReasonIdentityRepeated},
		{name: "plate checked first", plate: "", identity: "", field: FieldPlate, reason: validation.ReasonPlateFormat},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			vehicles := &fakeVehicles{vehicle: testVehicle()}
			svc := newTestService(vehicles, &fakeFines{}, &fakeOwnerships{}, nil, nil)

			_, err := svc.Lookup(context.Background(), tc.plate, tc.identity)
			require.ErrorIs(t, err, ErrInvalidInput)

			var fieldErr *FieldError
			require.ErrorAs(t, err, &fieldErr)
			assert.Equal(t, tc.field, fieldErr.Field)
			assert.Equal(t, tc.reason, fieldErr.Reason)
			assert.Empty(t, vehicles.calls)
		})
	}
}

func TestLookupNotFound(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	svc := newTestService(&fakeVehicles{vehicle: testVehicle()}, &fakeFines{}, &fakeOwnerships{}, nil, m)

	_, err := svc.Lookup(context.Background(), "XYZ987", "123456789")
	require.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Lookups.WithLabelValues(metrics.OutcomeNotFound)))
}

func TestLookupPropagatesStoreErrors(t *testing.T) {
	boom := errors.New("connection reset")

	t.Run("vehicle", func(t *testing.T) {
		svc := newTestService(&fakeVehicles{err: boom}, &fakeFines{}, &fakeOwnerships{}, nil, nil)
		_, err := svc.Lookup(context.Background(), "ABC123", "123456789")
		require.ErrorIs(t, err, boom)
	})

	t.Run("fines", func(t *testing.T) {
		svc := newTestService(&fakeVehicles{vehicle: testVehicle()}, &fakeFines{err: boom}, &fakeOwnerships{}, nil, nil)
		_, err := svc.Lookup(context.Background(), "ABC123", "123456789")
		require.ErrorIs(t, err, boom)
	})

	t.Run("ownership", func(t *testing.T) {
		svc := newTestService(&fakeVehicles{vehicle: testVehicle()}, &fakeFines{}, &fakeOwnerships{err: boom}, nil, nil)
		_, err := svc.Lookup(context.Background(), "ABC123", "123456789")
		require.ErrorIs(t, err, boom)
	})
}

func TestLookupUsesCache(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	vehicles := &fakeVehicles{vehicle: testVehicle()}
	cache := newMemoryCache()
	svc := newTestService(vehicles, &fakeFines{}, &fakeOwnerships{}, cache, m)

	first, err := svc.Lookup(context.Background(), "ABC-123", "123456789")
	require.NoError(t, err)
	second, err := svc.Lookup(context.Background(), "abc123", "123456789")
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Len(t, vehicles.calls, 1)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheResults.WithLabelValues("hit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheResults.WithLabelValues("miss")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Lookups.WithLabelValues(metrics.OutcomeFound)))
}

func TestLookupIgnoresCacheFailures(t *testing.T) {
	vehicles := &fakeVehicles{vehicle: testVehicle()}
	cache := newMemoryCache()
	cache.getErr = errors.New("redis down")
	svc := newTestService(vehicles, &fakeFines{}, &fakeOwnerships{}, cache, nil)

	payload, err := svc.Lookup(context.Background(), "ABC123", "123456789")
	require.NoError(t, err)
	assert.Equal(t, "ABC123", payload.Plate)
	assert.Len(t, vehicles.calls, 1)
}

func TestOwnerNameFallback(t *testing.T) {
	assert.Equal(t, "Propietario 789", ownerName(model.OwnershipRecord{IdentityNumber: "123456789"}))
	assert.Equal(t, "Propietario 789", ownerName(model.OwnershipRecord{IdentityNumber: "123456789", FullName: ptr("")}))
	assert.Equal(t, "Ana", ownerName(model.OwnershipRecord{IdentityNumber: "123456789", FullName: ptr("Ana")}))
}

func TestFieldErrorMessage(t *testing.T) {
	err := &FieldError{Field: FieldPlate, Reason: "bad"}
	assert.Equal(t, "placa: bad", err.Error())
}
