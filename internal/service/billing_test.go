package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kingrain94/pitchcraft-api/internal/domain"
	"github.com/kingrain94/pitchcraft-api/internal/mocks"
	"github.com/kingrain94/pitchcraft-api/pkg/logger"
)

type BillingServiceTestSuite struct {
	suite.Suite
	mockRepo     *mocks.Repository
	mockBilling  *mocks.BillingEventRepository
	mockPayments *mocks.PaymentProvider
	mockSQS      *mocks.SQSService
	service      *BillingService
}

func (s *BillingServiceTestSuite) SetupTest() {
	s.mockRepo = new(mocks.Repository)
	s.mockBilling = new(mocks.BillingEventRepository)
	s.mockPayments = new(mocks.PaymentProvider)
	s.mockSQS = new(mocks.SQSService)

	s.mockRepo.On("BillingEvent").Return(s.mockBilling)

	s.service = NewBillingService(s.mockRepo, s.mockPayments, s.mockSQS, logger.NewNopLogger(), false)
}

func TestBillingService(t *testing.T) {
	suite.Run(t, new(BillingServiceTestSuite))
}

func (s *BillingServiceTestSuite) TestOnCheckoutCompleted_UpgradesEveryRecord() {
	ctx := context.Background()
	s.mockBilling.On("IsProcessed", ctx, "").Return(false, nil)
	s.mockBilling.On("ApplyCheckout", ctx, domain.BillingEvent{
		Type:             domain.BillingEventCheckoutCompleted,
		OwnerID:          "user1",
		BillingReference: "cs_abc",
	}).Return(int64(3), nil)

	result, err := s.service.OnCheckoutCompleted(ctx, "user1", "cs_abc")

	s.Require().NoError(err)
	s.True(result.Acknowledged)
	s.Equal(int64(3), result.UpdatedRecords)
	s.mockBilling.AssertExpectations(s.T())
}

func (s *BillingServiceTestSuite) TestOnCheckoutCompleted_AppliedTwiceSameResult() {
	ctx := context.Background()
	event := domain.BillingEvent{
		Type:             domain.BillingEventCheckoutCompleted,
		OwnerID:          "user1",
		BillingReference: "sub_123",
	}
	s.mockBilling.On("IsProcessed", ctx, "").Return(false, nil).Twice()
	s.mockBilling.On("ApplyCheckout", ctx, event).Return(int64(2), nil).Twice()

	first, err := s.service.OnCheckoutCompleted(ctx, "user1", "sub_123")
	s.Require().NoError(err)
	second, err := s.service.OnCheckoutCompleted(ctx, "user1", "sub_123")
	s.Require().NoError(err)

	s.Equal(first, second)
	s.False(second.Duplicate)
	s.mockBilling.AssertNumberOfCalls(s.T(), "ApplyCheckout", 2)
}

func (s *BillingServiceTestSuite) TestOnCheckoutCompleted_OwnerWithoutRecords() {
	ctx := context.Background()
	s.mockBilling.On("IsProcessed", ctx, "").Return(false, nil)
	s.mockBilling.On("ApplyCheckout", ctx, mock.Anything).Return(int64(0), nil)

	result, err := s.service.OnCheckoutCompleted(ctx, "new-user", "cs_new")

	s.Require().NoError(err)
	s.True(result.Acknowledged)
	s.Zero(result.UpdatedRecords)
}

func (s *BillingServiceTestSuite) TestOnCheckoutCompleted_MissingFields() {
	_, err := s.service.OnCheckoutCompleted(context.Background(), "", "cs_abc")
	s.ErrorIs(err, ErrUnrecognizedBillingEvent)

	_, err = s.service.OnCheckoutCompleted(context.Background(), "user1", "  ")
	s.ErrorIs(err, ErrUnrecognizedBillingEvent)

	s.mockBilling.AssertNotCalled(s.T(), "ApplyCheckout", mock.Anything, mock.Anything)
}

func (s *BillingServiceTestSuite) TestOnCheckoutCompleted_StorageFault() {
	ctx := context.Background()
	s.mockBilling.On("IsProcessed", ctx, "").Return(false, nil)
	s.mockBilling.On("ApplyCheckout", ctx, mock.Anything).Return(int64(0), errors.New("deadlock"))

	result, err := s.service.OnCheckoutCompleted(ctx, "user1", "cs_abc")

	s.Nil(result)
	s.ErrorIs(err, ErrStorageUnavailable)
}

func (s *BillingServiceTestSuite) TestOnSubscriptionCanceled_KeepsTier() {
	ctx := context.Background()
	s.mockBilling.On("IsProcessed", ctx, "").Return(false, nil)
	s.mockBilling.On("ApplyCancellation", ctx, mock.MatchedBy(func(e domain.BillingEvent) bool {
		return e.OwnerID == "user1" && e.Type == domain.BillingEventSubscriptionCanceled
	})).Return(nil)

	result, err := s.service.OnSubscriptionCanceled(ctx, "user1")

	s.Require().NoError(err)
	s.True(result.Acknowledged)
	s.Zero(result.UpdatedRecords)
	s.mockBilling.AssertNotCalled(s.T(), "ApplyCheckout", mock.Anything, mock.Anything)
}

func (s *BillingServiceTestSuite) TestHandleEvent_ReplayIsAcknowledged() {
	ctx := context.Background()
	event := domain.BillingEvent{
		ID:               "evt_1",
		Type:             domain.BillingEventCheckoutCompleted,
		OwnerID:          "user1",
		BillingReference: "cs_abc",
	}
	s.mockBilling.On("IsProcessed", ctx, "evt_1").Return(false, nil).Once()
	s.mockBilling.On("ApplyCheckout", ctx, event).Return(int64(2), nil).Once()
	s.mockBilling.On("IsProcessed", ctx, "evt_1").Return(true, nil).Once()

	first, err := s.service.HandleEvent(ctx, event)
	s.Require().NoError(err)
	s.False(first.Duplicate)

	second, err := s.service.HandleEvent(ctx, event)
	s.Require().NoError(err)
	s.True(second.Acknowledged)
	s.True(second.Duplicate)

	s.mockBilling.AssertNumberOfCalls(s.T(), "ApplyCheckout", 1)
}

func (s *BillingServiceTestSuite) TestHandleEvent_UnknownType() {
	_, err := s.service.HandleEvent(context.Background(), domain.BillingEvent{Type: "invoice.paid", OwnerID: "user1"})
	s.ErrorIs(err, ErrUnrecognizedBillingEvent)
}

func (s *BillingServiceTestSuite) TestReceive_AppliesInline() {
	ctx := context.Background()
	payload := []byte(`{"id":"evt_2"}`)
	event := &domain.BillingEvent{
		ID:               "evt_2",
		Type:             domain.BillingEventCheckoutCompleted,
		OwnerID:          "user1",
		BillingReference: "cs_abc",
	}
	s.mockPayments.On("ParseEvent", payload, "t=1,v1=abc").Return(event, nil)
	s.mockBilling.On("IsProcessed", ctx, "evt_2").Return(false, nil)
	s.mockBilling.On("ApplyCheckout", ctx, *event).Return(int64(1), nil)

	result, err := s.service.Receive(ctx, payload, "t=1,v1=abc")

	s.Require().NoError(err)
	s.Equal(int64(1), result.UpdatedRecords)
	s.mockSQS.AssertNotCalled(s.T(), "SendBillingMessage", mock.Anything, mock.Anything)
}

func (s *BillingServiceTestSuite) TestReceive_BadSignature() {
	s.mockPayments.On("ParseEvent", mock.Anything, "forged").Return(nil, errors.New("signature mismatch"))

	result, err := s.service.Receive(context.Background(), []byte(`{}`), "forged")

	s.Nil(result)
	s.ErrorIs(err, ErrUnrecognizedBillingEvent)
	s.mockBilling.AssertNotCalled(s.T(), "IsProcessed", mock.Anything, mock.Anything)
}

func (s *BillingServiceTestSuite) TestReceive_QueuesInAsyncMode() {
	ctx := context.Background()
	svc := NewBillingService(s.mockRepo, s.mockPayments, s.mockSQS, logger.NewNopLogger(), true)
	event := &domain.BillingEvent{ID: "evt_3", Type: domain.BillingEventSubscriptionCanceled, OwnerID: "user1"}
	s.mockPayments.On("ParseEvent", mock.Anything, "sig").Return(event, nil)
	s.mockSQS.On("SendBillingMessage", ctx, *event).Return(nil)

	result, err := svc.Receive(ctx, []byte(`{}`), "sig")

	s.Require().NoError(err)
	s.True(result.Acknowledged)
	s.True(result.Queued)
	s.mockSQS.AssertExpectations(s.T())
	s.mockBilling.AssertNotCalled(s.T(), "ApplyCancellation", mock.Anything, mock.Anything)
}

func (s *BillingServiceTestSuite) TestReceive_AsyncRejectsInvalidEvent() {
	svc := NewBillingService(s.mockRepo, s.mockPayments, s.mockSQS, logger.NewNopLogger(), true)
	s.mockPayments.On("ParseEvent", mock.Anything, "sig").Return(&domain.BillingEvent{
		ID:   "evt_4",
		Type: domain.BillingEventCheckoutCompleted,
	}, nil)

	_, err := svc.Receive(context.Background(), []byte(`{}`), "sig")

	s.ErrorIs(err, ErrUnrecognizedBillingEvent)
	s.mockSQS.AssertNotCalled(s.T(), "SendBillingMessage", mock.Anything, mock.Anything)
}

func (s *BillingServiceTestSuite) TestCreateCheckout() {
	ctx := context.Background()
	s.mockPayments.On("CreateCheckoutSession", ctx, "user1").
		Return(&domain.CheckoutSession{ID: "cs_1", URL: "https://checkout.stripe.com/c/pay/cs_1"}, nil)

	session, err := s.service.CreateCheckout(ctx, "user1")
	s.Require().NoError(err)
	s.Equal("cs_1", session.ID)

	_, err = s.service.CreateCheckout(ctx, "")
	s.ErrorIs(err, ErrAuthenticationRequired)
}

func (s *BillingServiceTestSuite) TestCreateCheckout_ProviderFailure() {
	s.mockPayments.On("CreateCheckoutSession", mock.Anything, "user1").Return(nil, errors.New("stripe not configured"))

	_, err := s.service.CreateCheckout(context.Background(), "user1")

	s.ErrorIs(err, ErrCheckoutUnavailable)
}
