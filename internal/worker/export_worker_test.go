package worker

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kingrain94/pitchcraft-api/internal/domain"
	"github.com/kingrain94/pitchcraft-api/internal/service/queue"
	"github.com/kingrain94/pitchcraft-api/pkg/logger"
)

type MockPitchLister struct {
	mock.Mock
}

func (m *MockPitchLister) All(ctx context.Context, filter domain.PitchFilter) ([]domain.Pitch, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Pitch), args.Error(1)
}

type MockObjectStore struct {
	mock.Mock
	body []byte
}

func (m *MockObjectStore) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if params.Body != nil {
		m.body, _ = io.ReadAll(params.Body)
	}
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.PutObjectOutput), args.Error(1)
}

type ExportWorkerTestSuite struct {
	suite.Suite
	history *MockPitchLister
	store   *MockObjectStore
	handler *ExportHandler
}

func (s *ExportWorkerTestSuite) SetupTest() {
	s.history = new(MockPitchLister)
	s.store = new(MockObjectStore)
	s.handler = NewExportHandler(s.history, s.store, "pitchcraft-exports", logger.NewNopLogger())
}

func TestExportWorker(t *testing.T) {
	suite.Run(t, new(ExportWorkerTestSuite))
}

func (s *ExportWorkerTestSuite) TestHandle_UploadsOwnerHistory() {
	ref := "cus_123"
	pitches := []domain.Pitch{{
		ID:               2,
		OwnerID:          "user1",
		ProspectName:     "Dana Whitfield",
		ProspectCompany:  "Acme Logistics",
		GeneratedText:    "Subject: Quick question about Acme Logistics\n\nHi Dana",
		IsPro:            true,
		BillingReference: &ref,
		CreatedAt:        time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}}
	s.history.On("All", mock.Anything, domain.PitchFilter{OwnerID: "user1"}).Return(pitches, nil).Once()
	s.store.On("PutObject", mock.Anything, mock.MatchedBy(func(in *s3.PutObjectInput) bool {
		return aws.ToString(in.Bucket) == "pitchcraft-exports" &&
			aws.ToString(in.Key) == "exports/user1/exp-1.json" &&
			aws.ToString(in.ContentType) == "application/json" &&
			in.Metadata["pitch-count"] == "1"
	})).Return(&s3.PutObjectOutput{}, nil).Once()

	err := s.handler.Handle(context.Background(), queue.Message{
		Type:     queue.MessageTypeExport,
		OwnerID:  "user1",
		ExportID: "exp-1",
		Format:   "json",
	})

	s.NoError(err)
	s.store.AssertExpectations(s.T())

	var exported []map[string]any
	s.Require().NoError(json.Unmarshal(s.store.body, &exported))
	s.Len(exported, 1)
	s.Equal("Acme Logistics", exported[0]["prospect_company"])
	s.NotContains(string(s.store.body), "cus_123")
}

func (s *ExportWorkerTestSuite) TestHandle_InvalidMessagesArePermanent() {
	for _, msg := range []queue.Message{
		{Type: queue.MessageTypeIndex, OwnerID: "user1", ExportID: "exp-1"},
		{Type: queue.MessageTypeExport, ExportID: "exp-1"},
		{Type: queue.MessageTypeExport, OwnerID: "user1", ExportID: "exp-1", Format: "xml"},
	} {
		err := s.handler.Handle(context.Background(), msg)
		s.ErrorIs(err, ErrPermanent)
	}
	s.history.AssertNotCalled(s.T(), "All", mock.Anything, mock.Anything)
}

func (s *ExportWorkerTestSuite) TestHandle_UploadFailureIsRetried() {
	s.history.On("All", mock.Anything, mock.Anything).Return([]domain.Pitch{}, nil).Once()
	s.store.On("PutObject", mock.Anything, mock.Anything).Return(nil, errors.New("slow down")).Once()

	err := s.handler.Handle(context.Background(), queue.Message{
		Type:     queue.MessageTypeExport,
		OwnerID:  "user1",
		ExportID: "exp-2",
		Format:   "csv",
	})

	s.Error(err)
	s.NotErrorIs(err, ErrPermanent)
}
