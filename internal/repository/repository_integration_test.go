//go:build integration

package repository_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"vehicle-query-service/internal/repository"
	"vehicle-query-service/internal/testutil/containers"
)

type RepositorySuite struct {
	suite.Suite
	db         *gorm.DB
	vehicles   *repository.VehicleRepository
	fines      *repository.FineRepository
	ownerships *repository.OwnershipRepository
}

func TestRepositorySuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RepositorySuite))
}

func (s *RepositorySuite) SetupSuite() {
	s.db = containers.NewSeededDatabase(s.T())
	s.vehicles = repository.NewVehicleRepository(s.db)
	s.fines = repository.NewFineRepository(s.db)
	s.ownerships = repository.NewOwnershipRepository(s.db)
}

func (s *RepositorySuite) TestGetByPlateAndOwner() {
	ctx := context.Background()

	vehicle, err := s.vehicles.GetByPlateAndOwner(ctx, "ABC123", "123456789")
	s.Require().NoError(err)
	s.Require().NotNil(vehicle)
	s.Require().NotNil(vehicle.Owner)
	s.Equal("Juan Pérez", vehicle.Owner.FullName)
	s.Require().NotNil(vehicle.SoatStatus)
	s.Equal("Activo", *vehicle.SoatStatus)
	s.False(vehicle.HasTaxRecord())
}

func (s *RepositorySuite) TestGetByPlateAndOwnerWrongOwner() {
	vehicle, err := s.vehicles.GetByPlateAndOwner(context.Background(), "ABC123", "987654321")
	s.Require().NoError(err)
	s.Nil(vehicle)
}

func (s *RepositorySuite) TestGetByPlateAndOwnerEmptyInput() {
	vehicle, err := s.vehicles.GetByPlateAndOwner(context.Background(), "", "123456789")
	s.Require().NoError(err)
	s.Nil(vehicle)
}

func (s *RepositorySuite) TestFinesNewestFirst() {
	ctx := context.Background()
	vehicle, err := s.vehicles.GetByPlateAndOwner(ctx, "ABC123", "123456789")
	s.Require().NoError(err)
	s.Require().NotNil(vehicle)

	fines, err := s.fines.ListByVehicle(ctx, vehicle.ID)
	s.Require().NoError(err)
	s.Require().Len(fines, 2)
	s.Equal("Exceso de velocidad", fines[0].ViolationType)
	s.True(fines[0].Amount.Equal(decimal.NewFromInt(380000)))
	s.True(fines[0].IssuedOn.After(fines[1].IssuedOn))
}

func (s *RepositorySuite) TestOwnershipMostRecentFirst() {
	ctx := context.Background()
	vehicle, err := s.vehicles.GetByPlateAndOwner(ctx, "ABC123", "123456789")
	s.Require().NoError(err)
	s.Require().NotNil(vehicle)

	records, err := s.ownerships.ListByVehicle(ctx, vehicle.ID)
	s.Require().NoError(err)
	s.Require().Len(records, 2)
	s.Nil(records[0].OwnedTo)
	s.Nil(records[1].FullName)
}

func (s *RepositorySuite) TestListForUnknownVehicleIsEmpty() {
	fines, err := s.fines.ListByVehicle(context.Background(), uuid.New())
	s.Require().NoError(err)
	s.Empty(fines)
}

func (s *RepositorySuite) TestPing() {
	s.NoError(s.vehicles.Ping(context.Background()))
}
