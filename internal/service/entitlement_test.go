package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kingrain94/pitchcraft-api/internal/domain"
	"github.com/kingrain94/pitchcraft-api/internal/mocks"
)

type EntitlementServiceTestSuite struct {
	suite.Suite
	mockRepo        *mocks.Repository
	mockPitch       *mocks.PitchRepository
	mockEntitlement *mocks.EntitlementRepository
	service         *EntitlementService
}

func (s *EntitlementServiceTestSuite) SetupTest() {
	s.mockRepo = new(mocks.Repository)
	s.mockPitch = new(mocks.PitchRepository)
	s.mockEntitlement = new(mocks.EntitlementRepository)

	s.mockRepo.On("Pitch").Return(s.mockPitch)
	s.mockRepo.On("Entitlement").Return(s.mockEntitlement)

	s.service = NewEntitlementService(s.mockRepo)
}

func TestEntitlementService(t *testing.T) {
	suite.Run(t, new(EntitlementServiceTestSuite))
}

func (s *EntitlementServiceTestSuite) TestResolve_NoHistoryIsFree() {
	s.mockEntitlement.On("GetByOwner", mock.Anything, "user1").Return(nil, nil)
	s.mockPitch.On("LatestByOwner", mock.Anything, "user1").Return(nil, nil)

	ent, err := s.service.Resolve(context.Background(), "user1")

	s.Require().NoError(err)
	s.False(ent.IsPro)
	s.Nil(ent.BillingReference)
	s.Equal(domain.PlanFree, ent.Plan())
}

func (s *EntitlementServiceTestSuite) TestResolve_RecordWins() {
	ref := "cs_new"
	s.mockEntitlement.On("GetByOwner", mock.Anything, "user1").Return(&domain.EntitlementRecord{
		OwnerID:          "user1",
		IsPro:            true,
		BillingReference: &ref,
	}, nil)

	ent, err := s.service.Resolve(context.Background(), "user1")

	s.Require().NoError(err)
	s.True(ent.IsPro)
	s.Equal("cs_new", *ent.BillingReference)
	s.mockPitch.AssertNotCalled(s.T(), "LatestByOwner", mock.Anything, mock.Anything)
}

func (s *EntitlementServiceTestSuite) TestResolve_LatestLedgerRow() {
	ref := "cs_abc"
	s.mockEntitlement.On("GetByOwner", mock.Anything, "user1").Return(nil, nil)
	s.mockPitch.On("LatestByOwner", mock.Anything, "user1").Return(&domain.Pitch{
		OwnerID:          "user1",
		IsPro:            true,
		BillingReference: &ref,
	}, nil)

	ent, err := s.service.Resolve(context.Background(), "user1")

	s.Require().NoError(err)
	s.True(ent.IsPro)
	s.Equal("cs_abc", *ent.BillingReference)
}

func (s *EntitlementServiceTestSuite) TestResolve_FreeLedgerRowDropsReference() {
	ref := "stale"
	s.mockEntitlement.On("GetByOwner", mock.Anything, "user1").Return(nil, nil)
	s.mockPitch.On("LatestByOwner", mock.Anything, "user1").Return(&domain.Pitch{IsPro: false, BillingReference: &ref}, nil)

	ent, err := s.service.Resolve(context.Background(), "user1")

	s.Require().NoError(err)
	s.False(ent.IsPro)
	s.Nil(ent.BillingReference)
}

func (s *EntitlementServiceTestSuite) TestResolve_StorageFaultIsNotFree() {
	s.mockEntitlement.On("GetByOwner", mock.Anything, "user1").Return(nil, nil)
	s.mockPitch.On("LatestByOwner", mock.Anything, "user1").Return(nil, errors.New("connection reset"))

	_, err := s.service.Resolve(context.Background(), "user1")

	s.ErrorIs(err, ErrStorageUnavailable)
}

func (s *EntitlementServiceTestSuite) TestResolve_RequiresOwner() {
	_, err := s.service.Resolve(context.Background(), " ")
	s.ErrorIs(err, ErrAuthenticationRequired)
}
