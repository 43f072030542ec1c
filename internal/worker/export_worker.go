package worker

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"

	"github.com/kingrain94/pitchcraft-api/internal/domain"
	"github.com/kingrain94/pitchcraft-api/internal/service"
	"github.com/kingrain94/pitchcraft-api/internal/service/queue"
	"github.com/kingrain94/pitchcraft-api/pkg/logger"
)

type PitchLister interface {
	All(ctx context.Context, filter domain.PitchFilter) ([]domain.Pitch, error)
}

// ObjectStore is the part of the S3 client used for uploads.
type ObjectStore interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// ExportHandler writes an owner's whole pitch history to object storage.
type ExportHandler struct {
	history PitchLister
	store   ObjectStore
	bucket  string
	logger  *logger.Logger
}

func NewExportHandler(history PitchLister, store ObjectStore, bucket string, logger *logger.Logger) *ExportHandler {
	return &ExportHandler{
		history: history,
		store:   store,
		bucket:  bucket,
		logger:  logger,
	}
}

func (h *ExportHandler) Name() string { return "export" }

func ExportKey(ownerID, exportID, format string) string {
	return fmt.Sprintf("exports/%s/%s.%s", ownerID, exportID, format)
}

func (h *ExportHandler) Handle(ctx context.Context, msg queue.Message) error {
	if msg.Type != queue.MessageTypeExport {
		return permanent("unexpected message type %q on export queue", msg.Type)
	}
	if msg.OwnerID == "" || msg.ExportID == "" {
		return permanent("export message is missing owner or export id")
	}
	format, err := service.ParseExportFormat(msg.Format)
	if err != nil {
		return errors.Join(ErrPermanent, err)
	}

	pitches, err := h.history.All(ctx, domain.PitchFilter{OwnerID: msg.OwnerID})
	if err != nil {
		return fmt.Errorf("failed to load pitches for export %s: %w", msg.ExportID, err)
	}

	var buf bytes.Buffer
	if err := service.WriteExport(&buf, format, pitches); err != nil {
		return errors.Join(ErrPermanent, err)
	}

	key := ExportKey(msg.OwnerID, msg.ExportID, format)
	_, err = h.store.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(h.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String(service.ExportContentType(format)),
		Metadata: map[string]string{
			"owner-id":    msg.OwnerID,
			"export-id":   msg.ExportID,
			"exported-at": time.Now().UTC().Format(time.RFC3339),
			"pitch-count": strconv.Itoa(len(pitches)),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to upload export to S3: %w", err)
	}

	h.logger.Info("Export uploaded",
		zap.String("owner", msg.OwnerID),
		zap.String("export_id", msg.ExportID),
		zap.String("location", fmt.Sprintf("s3://%s/%s", h.bucket, key)),
		zap.Int("pitch_count", len(pitches)),
	)
	return nil
}
