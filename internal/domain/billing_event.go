package domain

import "time"

type BillingEventType string

const (
	BillingEventCheckoutCompleted    BillingEventType = "checkout.session.completed"
	BillingEventSubscriptionCanceled BillingEventType = "customer.subscription.deleted"
)

// BillingEvent is a verified payment provider event reduced to what the
// entitlement logic needs.
type BillingEvent struct {
	ID               string           `json:"id"`
	Type             BillingEventType `json:"type"`
	OwnerID          string           `json:"owner_id"`
	BillingReference string           `json:"billing_reference,omitempty"`
	ReceivedAt       time.Time        `json:"received_at"`
}

// ProcessedBillingEvent records a provider event id that has been applied.
type ProcessedBillingEvent struct {
	EventID     string           `gorm:"column:event_id;primaryKey;type:text" json:"event_id"`
	Type        BillingEventType `gorm:"column:type;type:text;not null" json:"type"`
	OwnerID     string           `gorm:"column:owner;type:text;not null;index" json:"owner_id"`
	ProcessedAt time.Time        `gorm:"column:processed_at;type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"processed_at"`
}

func (ProcessedBillingEvent) TableName() string {
	return "processed_billing_events"
}
