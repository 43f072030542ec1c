package domain

import (
	"strings"
	"time"
)

type Plan string

const (
	PlanFree Plan = "free"
	PlanPro  Plan = "pro"
)

// Entitlement is an owner's plan tier and the billing reference that paid for it.
// BillingReference is nil whenever IsPro is false.
type Entitlement struct {
	IsPro            bool    `json:"is_pro"`
	BillingReference *string `json:"billing_reference,omitempty"`
}

func NewEntitlement(isPro bool, billingReference *string) Entitlement {
	if !isPro || billingReference == nil || strings.TrimSpace(*billingReference) == "" {
		return Entitlement{IsPro: isPro}
	}
	ref := *billingReference
	return Entitlement{IsPro: true, BillingReference: &ref}
}

func FreeEntitlement() Entitlement {
	return Entitlement{}
}

func (e Entitlement) Plan() Plan {
	if e.IsPro {
		return PlanPro
	}
	return PlanFree
}

// EntitlementRecord is the owner keyed entitlement written by billing events.
// It is read before the ledger so that an owner who pays before their first
// pitch resolves to pro.
type EntitlementRecord struct {
	OwnerID          string     `gorm:"column:owner;primaryKey;type:text" json:"owner_id"`
	IsPro            bool       `gorm:"column:is_pro;not null;default:false" json:"is_pro"`
	BillingReference *string    `gorm:"column:billing_reference;type:text" json:"billing_reference,omitempty"`
	CanceledAt       *time.Time `gorm:"column:canceled_at;type:timestamp with time zone" json:"canceled_at,omitempty"`
	CreatedAt        time.Time  `gorm:"column:created_at;type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt        time.Time  `gorm:"column:updated_at;type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (EntitlementRecord) TableName() string {
	return "entitlements"
}

func (r *EntitlementRecord) Entitlement() Entitlement {
	return NewEntitlement(r.IsPro, r.BillingReference)
}
