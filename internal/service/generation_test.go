package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kingrain94/pitchcraft-api/internal/domain"
	"github.com/kingrain94/pitchcraft-api/internal/metrics"
	"github.com/kingrain94/pitchcraft-api/internal/mocks"
	"github.com/kingrain94/pitchcraft-api/internal/repository"
	"github.com/kingrain94/pitchcraft-api/internal/service/generator"
	"github.com/kingrain94/pitchcraft-api/internal/utils"
	"github.com/kingrain94/pitchcraft-api/pkg/logger"
)

const completionText = "Hello Dana, quick question about your routes."

type GenerationServiceTestSuite struct {
	suite.Suite
	mockRepo        *mocks.Repository
	mockPitch       *mocks.PitchRepository
	mockEntitlement *mocks.EntitlementRepository
	mockGenerator   *mocks.Generator
	mockSQS         *mocks.SQSService
	mockPublisher   *mocks.ChunkPublisher
	metrics         *metrics.Metrics
	service         *GenerationService

	mu     sync.Mutex
	chunks []domain.PitchChunk
}

func (s *GenerationServiceTestSuite) SetupTest() {
	s.mockRepo = new(mocks.Repository)
	s.mockPitch = new(mocks.PitchRepository)
	s.mockEntitlement = new(mocks.EntitlementRepository)
	s.mockGenerator = new(mocks.Generator)
	s.mockSQS = new(mocks.SQSService)
	s.mockPublisher = new(mocks.ChunkPublisher)
	s.metrics = metrics.New(prometheus.NewRegistry())
	s.chunks = nil

	s.mockRepo.On("Pitch").Return(s.mockPitch)
	s.mockRepo.On("Entitlement").Return(s.mockEntitlement)
	s.mockPublisher.On("PublishChunk", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.chunks = append(s.chunks, args.Get(1).(domain.PitchChunk))
	}).Return(nil).Maybe()

	s.service = s.newService(false)
}

func (s *GenerationServiceTestSuite) newService(strict bool) *GenerationService {
	svc := NewGenerationService(s.mockRepo, s.mockGenerator, s.mockSQS, logger.NewNopLogger(), GenerationOptions{
		FreeLimit:   FreeLimit,
		StrictQuota: strict,
		Timeout:     time.Second,
	})
	svc.SetChunkPublisher(s.mockPublisher)
	svc.SetMetrics(s.metrics)
	return svc
}

func TestGenerationService(t *testing.T) {
	suite.Run(t, new(GenerationServiceTestSuite))
}

func streamOf(chunks ...generator.Chunk) <-chan generator.Chunk {
	ch := make(chan generator.Chunk, len(chunks))
	for _, c := range chunks {
		ch <- c
	}
	close(ch)
	return ch
}

func validRequest(owner string) GenerateRequest {
	return GenerateRequest{OwnerID: owner, Fields: testFields}
}

func (s *GenerationServiceTestSuite) expectFreeOwner(owner string, usage int64) {
	s.mockEntitlement.On("GetByOwner", mock.Anything, owner).Return(nil, nil)
	s.mockPitch.On("LatestByOwner", mock.Anything, owner).Return(nil, nil)
	s.mockPitch.On("CountByOwner", mock.Anything, owner).Return(usage, nil)
}

func (s *GenerationServiceTestSuite) expectCompletion() {
	s.mockGenerator.On("Stream", mock.Anything, mock.AnythingOfType("string")).Return(streamOf(
		generator.Chunk{Text: "Hello Dana, "},
		generator.Chunk{Text: "quick question "},
		generator.Chunk{Text: "about your routes."},
	), nil)
}

func (s *GenerationServiceTestSuite) expectInsert() {
	s.mockPitch.On("Create", mock.Anything, mock.AnythingOfType("*domain.Pitch")).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Pitch).ID = 1
	}).Return(nil).Once()
}

func (s *GenerationServiceTestSuite) TestGenerate_FirstFreePitch() {
	ctx := context.Background()
	s.expectFreeOwner("user1", 0)
	s.expectCompletion()
	s.expectInsert()
	s.mockSQS.On("SendIndexMessage", mock.Anything, mock.AnythingOfType("*domain.Pitch")).Return(nil)

	result, err := s.service.Generate(ctx, validRequest("user1"))

	s.Require().NoError(err)
	s.Equal(GenerationSuccess, result.Status)
	s.True(result.Persisted)
	s.False(result.IsPro)
	s.Equal(int64(1), result.UsageCount)
	s.Equal(FreeLimit, result.Limit)
	s.NotEmpty(result.RequestID)

	s.Require().NotNil(result.Pitch)
	s.Equal("user1", result.Pitch.OwnerID)
	s.False(result.Pitch.IsPro)
	s.Nil(result.Pitch.BillingReference)
	s.Equal("Subject: Quick question about Acme Logistics\n\n"+completionText, result.Pitch.GeneratedText)
	s.Equal("Dana Whitfield", result.Pitch.ProspectName)

	s.mockPitch.AssertExpectations(s.T())
	s.mockSQS.AssertExpectations(s.T())
	s.Equal(float64(1), testutil.ToFloat64(s.metrics.GenerationsTotal.WithLabelValues("free", "success")))
}

func (s *GenerationServiceTestSuite) TestGenerate_FreeLimitReached() {
	s.expectFreeOwner("user1", 5)

	result, err := s.service.Generate(context.Background(), validRequest("user1"))

	s.Require().NoError(err)
	s.Equal(GenerationDenied, result.Status)
	s.Equal(QuotaReasonLimitReached, result.Message)
	s.Equal(int64(5), result.UsageCount)
	s.Equal(FreeLimit, result.Limit)
	s.Nil(result.Pitch)

	s.mockGenerator.AssertNotCalled(s.T(), "Stream", mock.Anything, mock.Anything)
	s.mockPitch.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
	s.Equal(float64(1), testutil.ToFloat64(s.metrics.QuotaDenialsTotal))
}

func (s *GenerationServiceTestSuite) TestGenerate_ProCustomTemplate() {
	ref := "cs_abc"
	s.mockEntitlement.On("GetByOwner", mock.Anything, "pro1").Return(&domain.EntitlementRecord{
		OwnerID:          "pro1",
		IsPro:            true,
		BillingReference: &ref,
	}, nil)
	s.mockGenerator.On("Stream", mock.Anything, "Hi Dana Whitfield, about Acme Logistics").
		Return(streamOf(generator.Chunk{Text: completionText}), nil)
	s.expectInsert()
	s.mockSQS.On("SendIndexMessage", mock.Anything, mock.Anything).Return(nil)

	req := validRequest("pro1")
	req.CustomTemplate = "Hi {{prospect_name}}, about {{company}}"
	result, err := s.service.Generate(context.Background(), req)

	s.Require().NoError(err)
	s.Equal(GenerationSuccess, result.Status)
	s.True(result.IsPro)
	s.Equal(int64(0), result.UsageCount)
	s.True(result.Pitch.IsPro)
	s.Require().NotNil(result.Pitch.BillingReference)
	s.Equal("cs_abc", *result.Pitch.BillingReference)

	s.mockGenerator.AssertExpectations(s.T())
	s.mockPitch.AssertNotCalled(s.T(), "CountByOwner", mock.Anything, mock.Anything)
}

func (s *GenerationServiceTestSuite) TestGenerate_ProBeyondFreeLimitFromLedger() {
	ref := "cs_old"
	s.mockEntitlement.On("GetByOwner", mock.Anything, "pro2").Return(nil, nil)
	s.mockPitch.On("LatestByOwner", mock.Anything, "pro2").Return(&domain.Pitch{OwnerID: "pro2", IsPro: true, BillingReference: &ref}, nil)
	s.expectCompletion()
	s.expectInsert()
	s.mockSQS.On("SendIndexMessage", mock.Anything, mock.Anything).Return(nil)

	result, err := s.service.Generate(context.Background(), validRequest("pro2"))

	s.Require().NoError(err)
	s.Equal(GenerationSuccess, result.Status)
	s.True(result.Pitch.IsPro)
	s.Equal("cs_old", *result.Pitch.BillingReference)
}

func (s *GenerationServiceTestSuite) TestGenerate_CustomTemplateIgnoredForFree() {
	s.expectFreeOwner("user1", 0)
	s.mockGenerator.On("Stream", mock.Anything, ComposePrompt(testFields, false, "")).
		Return(streamOf(generator.Chunk{Text: completionText}), nil)
	s.expectInsert()
	s.mockSQS.On("SendIndexMessage", mock.Anything, mock.Anything).Return(nil)

	req := validRequest("user1")
	req.CustomTemplate = "Hi {{prospect_name}}"
	result, err := s.service.Generate(context.Background(), req)

	s.Require().NoError(err)
	s.Equal(GenerationSuccess, result.Status)
	s.mockGenerator.AssertExpectations(s.T())
}

func (s *GenerationServiceTestSuite) TestGenerate_MissingProspectName() {
	s.expectFreeOwner("user1", 0)

	req := validRequest("user1")
	req.Fields.ProspectName = "   "
	result, err := s.service.Generate(context.Background(), req)

	s.Require().NoError(err)
	s.Equal(GenerationValidationFailed, result.Status)
	s.Equal([]string{"Prospect name is required."}, result.Violations)
	s.Contains(strings.ToLower(result.Message), "prospect name")

	s.mockGenerator.AssertNotCalled(s.T(), "Stream", mock.Anything, mock.Anything)
	s.mockPitch.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *GenerationServiceTestSuite) TestGenerate_ReportsEveryViolation() {
	s.expectFreeOwner("user1", 0)

	req := GenerateRequest{
		OwnerID: "user1",
		Fields: domain.PitchFields{
			ProspectName: "",
			JobTitle:     "CTO",
			Company:      strings.Repeat("a", domain.MaxShortFieldLength+1),
			PainPoint:    strings.Repeat("b", domain.MaxLongFieldLength),
			Description:  "",
		},
	}
	result, err := s.service.Generate(context.Background(), req)

	s.Require().NoError(err)
	s.Equal(GenerationValidationFailed, result.Status)
	s.Equal([]string{
		"Prospect name is required.",
		"Company name must be at most 100 characters.",
		"Description of what you provide is required.",
	}, result.Violations)
}

func (s *GenerationServiceTestSuite) TestGenerate_TrimsFieldsBeforeStoring() {
	s.expectFreeOwner("user1", 0)
	s.expectCompletion()
	s.expectInsert()
	s.mockSQS.On("SendIndexMessage", mock.Anything, mock.Anything).Return(nil)

	req := validRequest("user1")
	req.Fields.Company = "  Acme Logistics  "
	result, err := s.service.Generate(context.Background(), req)

	s.Require().NoError(err)
	s.Equal("Acme Logistics", result.Pitch.ProspectCompany)
	s.True(strings.HasPrefix(result.Pitch.GeneratedText, "Subject: Quick question about Acme Logistics\n\n"))
}

func (s *GenerationServiceTestSuite) TestGenerate_Unauthenticated() {
	result, err := s.service.Generate(context.Background(), validRequest("  "))

	s.Require().NoError(err)
	s.Equal(GenerationFailure, result.Status)
	s.ErrorIs(result.Err, ErrAuthenticationRequired)
	s.mockEntitlement.AssertNotCalled(s.T(), "GetByOwner", mock.Anything, mock.Anything)
}

func (s *GenerationServiceTestSuite) TestGenerate_EntitlementStorageFault() {
	s.mockEntitlement.On("GetByOwner", mock.Anything, "user1").Return(nil, errors.New("connection refused"))

	result, err := s.service.Generate(context.Background(), validRequest("user1"))

	s.Nil(result)
	s.ErrorIs(err, ErrStorageUnavailable)
	s.mockPitch.AssertNotCalled(s.T(), "CountByOwner", mock.Anything, mock.Anything)
}

func (s *GenerationServiceTestSuite) TestGenerate_UsageStorageFault() {
	s.mockEntitlement.On("GetByOwner", mock.Anything, "user1").Return(nil, nil)
	s.mockPitch.On("LatestByOwner", mock.Anything, "user1").Return(nil, nil)
	s.mockPitch.On("CountByOwner", mock.Anything, "user1").Return(int64(0), errors.New("timeout"))

	result, err := s.service.Generate(context.Background(), validRequest("user1"))

	s.Nil(result)
	s.ErrorIs(err, ErrStorageUnavailable)
	s.mockGenerator.AssertNotCalled(s.T(), "Stream", mock.Anything, mock.Anything)
}

func (s *GenerationServiceTestSuite) TestGenerate_ModelFailure() {
	s.expectFreeOwner("user1", 0)
	s.mockGenerator.On("Stream", mock.Anything, mock.Anything).
		Return(streamOf(generator.Chunk{Text: "partial "}, generator.Chunk{Err: errors.New("quota exhausted")}), nil)

	result, err := s.service.Generate(context.Background(), validRequest("user1"))

	s.Require().NoError(err)
	s.Equal(GenerationFailure, result.Status)
	s.ErrorIs(result.Err, ErrGenerationFailed)
	s.Equal("generation failed, try again", result.Message)
	s.Nil(result.Pitch)
	s.mockPitch.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *GenerationServiceTestSuite) TestGenerate_StreamNotStarted() {
	s.expectFreeOwner("user1", 0)
	s.mockGenerator.On("Stream", mock.Anything, mock.Anything).Return(nil, errors.New("invalid api key"))

	result, err := s.service.Generate(context.Background(), validRequest("user1"))

	s.Require().NoError(err)
	s.Equal(GenerationFailure, result.Status)
	s.mockPitch.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *GenerationServiceTestSuite) TestGenerate_BlankCompletion() {
	s.expectFreeOwner("user1", 0)
	s.mockGenerator.On("Stream", mock.Anything, mock.Anything).Return(streamOf(generator.Chunk{Text: "  \n "}), nil)

	result, err := s.service.Generate(context.Background(), validRequest("user1"))

	s.Require().NoError(err)
	s.Equal(GenerationFailure, result.Status)
	s.mockPitch.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *GenerationServiceTestSuite) TestGenerate_InsertFailureKeepsArtifact() {
	s.expectFreeOwner("user1", 2)
	s.expectCompletion()
	s.mockPitch.On("Create", mock.Anything, mock.Anything).Return(errors.New("disk full"))

	result, err := s.service.Generate(context.Background(), validRequest("user1"))

	s.Require().NoError(err)
	s.Equal(GenerationFailure, result.Status)
	s.False(result.Persisted)
	s.Require().NotNil(result.Pitch)
	s.Equal("Subject: Quick question about Acme Logistics\n\n"+completionText, result.Pitch.GeneratedText)
	s.NotEmpty(result.RequestID)
	s.mockSQS.AssertNotCalled(s.T(), "SendIndexMessage", mock.Anything, mock.Anything)
}

func (s *GenerationServiceTestSuite) TestGenerate_IndexFailureDoesNotFailRequest() {
	s.expectFreeOwner("user1", 0)
	s.expectCompletion()
	s.expectInsert()
	s.mockSQS.On("SendIndexMessage", mock.Anything, mock.Anything).Return(errors.New("sqs down"))

	result, err := s.service.Generate(context.Background(), validRequest("user1"))

	s.Require().NoError(err)
	s.Equal(GenerationSuccess, result.Status)
}

func (s *GenerationServiceTestSuite) TestGenerate_CallerGoneWritesNothing() {
	s.expectFreeOwner("user1", 0)
	var never <-chan generator.Chunk = make(chan generator.Chunk)
	s.mockGenerator.On("Stream", mock.Anything, mock.Anything).Return(never, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	result, err := s.service.Generate(ctx, validRequest("user1"))

	s.Require().NoError(err)
	s.Equal(GenerationFailure, result.Status)
	s.mockPitch.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *GenerationServiceTestSuite) TestGenerate_PublishesChunksInOrder() {
	s.expectFreeOwner("user1", 0)
	s.expectCompletion()
	s.expectInsert()
	s.mockSQS.On("SendIndexMessage", mock.Anything, mock.Anything).Return(nil)

	ctx := context.WithValue(context.Background(), utils.RequestIDKey, "req-42")
	result, err := s.service.Generate(ctx, validRequest("user1"))
	s.Require().NoError(err)
	s.Equal("req-42", result.RequestID)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.Require().Len(s.chunks, 4)
	var text strings.Builder
	for i, chunk := range s.chunks[:3] {
		s.Equal(i+1, chunk.Seq)
		s.Equal("user1", chunk.OwnerID)
		s.Equal("req-42", chunk.RequestID)
		text.WriteString(chunk.Text)
	}
	s.Equal(completionText, text.String())
	s.True(s.chunks[3].Done)
	s.False(s.chunks[3].Failed)
}

func (s *GenerationServiceTestSuite) TestGenerate_StrictQuotaDeniesRaceLoser() {
	svc := s.newService(true)
	s.expectFreeOwner("user1", 4)
	s.expectCompletion()
	s.mockPitch.On("CreateWithinLimit", mock.Anything, mock.Anything, FreeLimit).
		Return(int64(5), repository.ErrQuotaExceeded)

	result, err := svc.Generate(context.Background(), validRequest("user1"))

	s.Require().NoError(err)
	s.Equal(GenerationDenied, result.Status)
	s.Equal(int64(5), result.UsageCount)
	s.mockPitch.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
	s.mockSQS.AssertNotCalled(s.T(), "SendIndexMessage", mock.Anything, mock.Anything)
}

func (s *GenerationServiceTestSuite) TestGenerate_StrictQuotaInsert() {
	svc := s.newService(true)
	s.expectFreeOwner("user1", 2)
	s.expectCompletion()
	s.mockPitch.On("CreateWithinLimit", mock.Anything, mock.Anything, FreeLimit).Return(int64(2), nil)
	s.mockSQS.On("SendIndexMessage", mock.Anything, mock.Anything).Return(nil)

	result, err := svc.Generate(context.Background(), validRequest("user1"))

	s.Require().NoError(err)
	s.Equal(GenerationSuccess, result.Status)
	s.Equal(int64(3), result.UsageCount)
}

func (s *GenerationServiceTestSuite) TestGenerate_StubGenerator() {
	stub := &generator.StubGenerator{Completion: "one two three"}
	svc := NewGenerationService(s.mockRepo, stub, nil, logger.NewNopLogger(), GenerationOptions{})
	s.expectFreeOwner("user1", 0)
	s.expectInsert()

	result, err := svc.Generate(context.Background(), validRequest("user1"))

	s.Require().NoError(err)
	s.Equal(GenerationSuccess, result.Status)
	s.Equal(SubjectLine("Acme Logistics")+"one two three", result.Pitch.GeneratedText)
}
