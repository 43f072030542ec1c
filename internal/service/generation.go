package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kingrain94/pitchcraft-api/internal/domain"
	"github.com/kingrain94/pitchcraft-api/internal/metrics"
	"github.com/kingrain94/pitchcraft-api/internal/repository"
	"github.com/kingrain94/pitchcraft-api/internal/service/generator"
	"github.com/kingrain94/pitchcraft-api/internal/utils"
	"github.com/kingrain94/pitchcraft-api/pkg/logger"
)

//go:generate mockery --name SQSService --output ../mocks
type SQSService interface {
	SendIndexMessage(ctx context.Context, pitch *domain.Pitch) error
	SendBillingMessage(ctx context.Context, event domain.BillingEvent) error
	SendExportMessage(ctx context.Context, ownerID, format string) (string, error)
}

//go:generate mockery --name ChunkPublisher --output ../mocks
type ChunkPublisher interface {
	PublishChunk(ctx context.Context, chunk domain.PitchChunk) error
}

type GenerationStatus string

const (
	GenerationSuccess          GenerationStatus = "success"
	GenerationDenied           GenerationStatus = "denied"
	GenerationValidationFailed GenerationStatus = "validation_failed"
	GenerationFailure          GenerationStatus = "failure"
)

type GenerateRequest struct {
	OwnerID        string
	Fields         domain.PitchFields
	CustomTemplate string
}

// GenerationResult is the outcome of one generation request.
//
// On success Pitch is the persisted record. On a failure after the model
// returned, Pitch holds the unsaved artifact and Persisted is false.
type GenerationResult struct {
	Status     GenerationStatus
	RequestID  string
	Pitch      *domain.Pitch
	Persisted  bool
	IsPro      bool
	UsageCount int64
	Limit      int64
	Message    string
	Violations []string
	// Err is the taxonomy error behind a failure result.
	Err error
}

type GenerationOptions struct {
	FreeLimit   int64
	StrictQuota bool
	Timeout     time.Duration
}

type GenerationService struct {
	repo         repository.Repository
	entitlements *EntitlementService
	quota        QuotaPolicy
	generator    generator.Generator
	sqsSvc       SQSService
	publisher    ChunkPublisher
	metrics      metrics.Recorder
	logger       *logger.Logger
	validate     *validator.Validate
	strictQuota  bool
	timeout      time.Duration
}

func NewGenerationService(repo repository.Repository, gen generator.Generator, sqsSvc SQSService, logger *logger.Logger, opts GenerationOptions) *GenerationService {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &GenerationService{
		repo:         repo,
		entitlements: NewEntitlementService(repo),
		quota:        NewQuotaPolicy(opts.FreeLimit),
		generator:    gen,
		sqsSvc:       sqsSvc,
		metrics:      metrics.Nop{},
		logger:       logger,
		validate:     validator.New(validator.WithRequiredStructEnabled()),
		strictQuota:  opts.StrictQuota,
		timeout:      timeout,
	}
}

// SetChunkPublisher enables live delivery of streamed fragments.
func (s *GenerationService) SetChunkPublisher(publisher ChunkPublisher) {
	s.publisher = publisher
}

func (s *GenerationService) SetMetrics(recorder metrics.Recorder) {
	s.metrics = recorder
}

func (s *GenerationService) Limit() int64 {
	return s.quota.Limit()
}

// Generate runs one generation request. Expected outcomes, including
// failures of the model, come back as a GenerationResult. An error is
// returned only when the entitlement or usage read fails.
func (s *GenerationService) Generate(ctx context.Context, req GenerateRequest) (*GenerationResult, error) {
	start := time.Now()
	requestID := utils.GetRequestIDFromContext(ctx)
	if requestID == "" {
		requestID = uuid.New().String()
	}

	ownerID := strings.TrimSpace(req.OwnerID)
	if ownerID == "" {
		return s.fail(requestID, ErrAuthenticationRequired, nil), nil
	}
	log := s.logger.ForRequest(ownerID, requestID)

	ent, err := s.entitlements.Resolve(ctx, ownerID)
	if err != nil {
		log.Error("Failed to resolve entitlement", err)
		return nil, err
	}
	tier := string(ent.Plan())

	var usage int64
	if !ent.IsPro {
		usage, err = s.repo.Pitch().CountByOwner(ctx, ownerID)
		if err != nil {
			log.Error("Failed to count pitches", err)
			return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
		}
		if decision := s.quota.Check(false, usage); !decision.Allowed {
			log.Info("Quota denied", zap.Int64("usage", usage))
			s.metrics.IncQuotaDenial()
			s.metrics.ObserveGeneration(tier, string(GenerationDenied), time.Since(start))
			return s.denied(requestID, usage), nil
		}
	}

	fields := trimFields(req.Fields)
	if violations := s.validateFields(fields); len(violations) > 0 {
		s.metrics.ObserveGeneration(tier, string(GenerationValidationFailed), time.Since(start))
		return &GenerationResult{
			Status:     GenerationValidationFailed,
			RequestID:  requestID,
			IsPro:      ent.IsPro,
			Message:    strings.Join(violations, ", "),
			Violations: violations,
		}, nil
	}

	prompt := ComposePrompt(fields, ent.IsPro, req.CustomTemplate)

	completion, err := s.complete(ctx, ownerID, requestID, prompt)
	if err != nil {
		if ctx.Err() != nil {
			log.Info("Generation abandoned by caller", zap.Error(ctx.Err()))
		} else {
			log.Error("Generation call failed", err)
		}
		s.metrics.ObserveGeneration(tier, string(GenerationFailure), time.Since(start))
		return s.fail(requestID, ErrGenerationFailed, nil), nil
	}

	pitch := domain.NewPitch(ownerID, fields, SubjectLine(fields.Company)+completion, ent)

	// Nothing is written for a caller that went away during generation.
	if err := ctx.Err(); err != nil {
		log.Info("Caller gone before insert", zap.Error(err))
		s.metrics.ObserveGeneration(tier, string(GenerationFailure), time.Since(start))
		return s.fail(requestID, ErrGenerationFailed, nil), nil
	}

	usageAfter, result := s.insert(ctx, log, pitch, ent, usage)
	if result != nil {
		result.RequestID = requestID
		s.metrics.ObserveGeneration(tier, string(result.Status), time.Since(start))
		return result, nil
	}

	if s.sqsSvc != nil {
		if err := s.sqsSvc.SendIndexMessage(ctx, pitch); err != nil {
			log.Warn("Failed to enqueue pitch for indexing", zap.Error(err))
		}
	}

	log.Info("Pitch generated", zap.Int64("pitch_id", pitch.ID), zap.String("tier", tier))
	s.metrics.ObserveGeneration(tier, string(GenerationSuccess), time.Since(start))

	return &GenerationResult{
		Status:     GenerationSuccess,
		RequestID:  requestID,
		Pitch:      pitch,
		Persisted:  true,
		IsPro:      ent.IsPro,
		UsageCount: usageAfter,
		Limit:      s.quota.Limit(),
	}, nil
}

// insert writes the pitch. It returns a non-nil result when the request ends
// without a persisted record.
func (s *GenerationService) insert(ctx context.Context, log *logger.Logger, pitch *domain.Pitch, ent domain.Entitlement, usage int64) (int64, *GenerationResult) {
	if s.strictQuota && !ent.IsPro {
		count, err := s.repo.Pitch().CreateWithinLimit(ctx, pitch, s.quota.Limit())
		if errors.Is(err, repository.ErrQuotaExceeded) {
			log.Info("Quota denied at insert", zap.Int64("usage", count))
			s.metrics.IncQuotaDenial()
			return 0, s.denied("", count)
		}
		if err != nil {
			log.Error("Failed to store pitch", err)
			return 0, s.fail("", ErrGenerationFailed, pitch)
		}
		return count + 1, nil
	}

	if err := s.repo.Pitch().Create(ctx, pitch); err != nil {
		log.Error("Failed to store pitch", err)
		return 0, s.fail("", ErrGenerationFailed, pitch)
	}
	if ent.IsPro {
		return 0, nil
	}
	return usage + 1, nil
}

// complete streams the completion under the generation timeout, fanning out
// fragments to the chunk publisher as they arrive.
func (s *GenerationService) complete(ctx context.Context, ownerID, requestID, prompt string) (string, error) {
	genCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	chunks, err := s.generator.Stream(genCtx, prompt)
	if err != nil {
		return "", err
	}

	seq := 0
	text, err := generator.Collect(genCtx, chunks, func(fragment string) {
		seq++
		s.publish(ctx, domain.PitchChunk{OwnerID: ownerID, RequestID: requestID, Seq: seq, Text: fragment})
	})
	s.publish(ctx, domain.PitchChunk{OwnerID: ownerID, RequestID: requestID, Seq: seq + 1, Done: true, Failed: err != nil})
	return text, err
}

func (s *GenerationService) publish(ctx context.Context, chunk domain.PitchChunk) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishChunk(context.WithoutCancel(ctx), chunk); err != nil {
		s.logger.Debug("Failed to publish pitch chunk", zap.String("request_id", chunk.RequestID), zap.Error(err))
	}
}

func (s *GenerationService) denied(requestID string, usage int64) *GenerationResult {
	return &GenerationResult{
		Status:     GenerationDenied,
		RequestID:  requestID,
		IsPro:      false,
		UsageCount: usage,
		Limit:      s.quota.Limit(),
		Message:    QuotaReasonLimitReached,
	}
}

func (s *GenerationService) fail(requestID string, err error, unsaved *domain.Pitch) *GenerationResult {
	result := &GenerationResult{
		Status:    GenerationFailure,
		RequestID: requestID,
		Message:   err.Error(),
		Err:       err,
	}
	if unsaved != nil {
		result.Pitch = unsaved
		result.IsPro = unsaved.IsPro
	}
	return result
}

func trimFields(f domain.PitchFields) domain.PitchFields {
	return domain.PitchFields{
		ProspectName: strings.TrimSpace(f.ProspectName),
		JobTitle:     strings.TrimSpace(f.JobTitle),
		Company:      strings.TrimSpace(f.Company),
		PainPoint:    strings.TrimSpace(f.PainPoint),
		Description:  strings.TrimSpace(f.Description),
	}
}

var fieldLabels = map[string]string{
	"ProspectName": "Prospect name",
	"JobTitle":     "Job title",
	"Company":      "Company name",
	"PainPoint":    "Pain point",
	"Description":  "Description of what you provide",
}

// validateFields reports every violated constraint, in field order.
func (s *GenerationService) validateFields(fields domain.PitchFields) []string {
	err := s.validate.Struct(fields)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return []string{"Invalid request."}
	}

	messages := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		label := fieldLabels[fe.StructField()]
		switch fe.Tag() {
		case "required":
			messages = append(messages, label+" is required.")
		case "max":
			messages = append(messages, fmt.Sprintf("%s must be at most %s characters.", label, fe.Param()))
		default:
			messages = append(messages, label+" is invalid.")
		}
	}
	return messages
}
