package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/google/uuid"

	"github.com/kingrain94/pitchcraft-api/internal/config"
	"github.com/kingrain94/pitchcraft-api/internal/domain"
)

type MessageType string

const (
	MessageTypeIndex        MessageType = "INDEX"
	MessageTypeBillingEvent MessageType = "BILLING_EVENT"
	MessageTypeExport       MessageType = "EXPORT"
)

type Message struct {
	Type      MessageType    `json:"type"`
	OwnerID   string         `json:"owner_id"`
	Pitches   []domain.Pitch `json:"pitches,omitempty"`
	Timestamp time.Time      `json:"timestamp"`

	BillingEvent *domain.BillingEvent `json:"billing_event,omitempty"`

	// Fields for export jobs
	ExportID string `json:"export_id,omitempty"`
	Format   string `json:"format,omitempty"`
}

type ReceivedMessage struct {
	Message       Message
	ReceiptHandle *string
	// DecodeErr is set when the body is not a Message.
	DecodeErr error
}

// API is the subset of the SQS client used here.
//
//go:generate mockery --name API --output ../../mocks --structname SQSAPI
type API interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
	ReceiveMessage(ctx context.Context, params *sqs.ReceiveMessageInput, optFns ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error)
	DeleteMessage(ctx context.Context, params *sqs.DeleteMessageInput, optFns ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error)
}

type SQSService struct {
	client          API
	indexQueueURL   string
	billingQueueURL string
	exportQueueURL  string
}

func NewSQSService(client API, config *config.SQSConfig) *SQSService {
	return &SQSService{
		client:          client,
		indexQueueURL:   config.IndexQueueURL,
		billingQueueURL: config.BillingQueueURL,
		exportQueueURL:  config.ExportQueueURL,
	}
}

func (s *SQSService) IndexQueueURL() string   { return s.indexQueueURL }
func (s *SQSService) BillingQueueURL() string { return s.billingQueueURL }
func (s *SQSService) ExportQueueURL() string  { return s.exportQueueURL }

func (s *SQSService) SendIndexMessage(ctx context.Context, pitch *domain.Pitch) error {
	msg := Message{
		Type:      MessageTypeIndex,
		OwnerID:   pitch.OwnerID,
		Pitches:   []domain.Pitch{*pitch},
		Timestamp: pitch.CreatedAt,
	}

	return s.sendMessage(ctx, msg, s.indexQueueURL)
}

func (s *SQSService) SendBillingMessage(ctx context.Context, event domain.BillingEvent) error {
	if event.ReceivedAt.IsZero() {
		event.ReceivedAt = time.Now().UTC()
	}
	msg := Message{
		Type:         MessageTypeBillingEvent,
		OwnerID:      event.OwnerID,
		BillingEvent: &event,
		Timestamp:    event.ReceivedAt,
	}

	return s.sendMessage(ctx, msg, s.billingQueueURL)
}

// SendExportMessage queues an export job and returns its id.
func (s *SQSService) SendExportMessage(ctx context.Context, ownerID, format string) (string, error) {
	exportID := uuid.New().String()
	msg := Message{
		Type:      MessageTypeExport,
		OwnerID:   ownerID,
		ExportID:  exportID,
		Format:    format,
		Timestamp: time.Now().UTC(),
	}

	if err := s.sendMessage(ctx, msg, s.exportQueueURL); err != nil {
		return "", err
	}
	return exportID, nil
}

func (s *SQSService) sendMessage(ctx context.Context, msg Message, queueURL string) error {
	msgBody, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	input := &sqs.SendMessageInput{
		MessageBody: aws.String(string(msgBody)),
		QueueUrl:    aws.String(queueURL),
	}

	_, err = s.client.SendMessage(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	return nil
}

func (s *SQSService) ReceiveMessages(ctx context.Context, queueURL string, maxMessages int32, waitTimeSeconds int32) ([]ReceivedMessage, error) {
	input := &sqs.ReceiveMessageInput{
		QueueUrl:            aws.String(queueURL),
		MaxNumberOfMessages: maxMessages,
		WaitTimeSeconds:     waitTimeSeconds,
	}

	output, err := s.client.ReceiveMessage(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to receive messages: %w", err)
	}

	var messages []ReceivedMessage
	for _, msg := range output.Messages {
		received := ReceivedMessage{ReceiptHandle: msg.ReceiptHandle}
		if err := json.Unmarshal([]byte(aws.ToString(msg.Body)), &received.Message); err != nil {
			received.DecodeErr = fmt.Errorf("failed to unmarshal message: %w", err)
		}
		messages = append(messages, received)
	}

	return messages, nil
}

func (s *SQSService) DeleteMessage(ctx context.Context, queueURL string, receiptHandle *string) error {
	input := &sqs.DeleteMessageInput{
		QueueUrl:      aws.String(queueURL),
		ReceiptHandle: receiptHandle,
	}

	_, err := s.client.DeleteMessage(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}

	return nil
}
