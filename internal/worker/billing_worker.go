package worker

import (
	"context"
	"errors"

	"github.com/kingrain94/pitchcraft-api/internal/domain"
	"github.com/kingrain94/pitchcraft-api/internal/service"
	"github.com/kingrain94/pitchcraft-api/internal/service/queue"
)

type BillingEventApplier interface {
	HandleEvent(ctx context.Context, event domain.BillingEvent) (*service.BillingResult, error)
}

// BillingHandler applies billing events the webhook queued instead of
// applying inline. Replays are absorbed by the applier's processed-event
// check, so redelivery after a crash is safe.
type BillingHandler struct {
	billing BillingEventApplier
}

func NewBillingHandler(billing BillingEventApplier) *BillingHandler {
	return &BillingHandler{billing: billing}
}

func (h *BillingHandler) Name() string { return "billing" }

func (h *BillingHandler) Handle(ctx context.Context, msg queue.Message) error {
	if msg.Type != queue.MessageTypeBillingEvent || msg.BillingEvent == nil {
		return permanent("unexpected message type %q on billing queue", msg.Type)
	}

	_, err := h.billing.HandleEvent(ctx, *msg.BillingEvent)
	if errors.Is(err, service.ErrUnrecognizedBillingEvent) {
		return errors.Join(ErrPermanent, err)
	}
	return err
}
