package domain

import (
	"time"
)

// Field length bounds for the prospect and offer fields.
const (
	MaxShortFieldLength = 100
	MaxLongFieldLength  = 500
)

// Pitch is one generated cold email plus the request fields it was generated from.
// Only IsPro and BillingReference change after insert.
type Pitch struct {
	ID               int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	OwnerID          string    `gorm:"column:owner;type:text;not null;index:idx_pitches_owner_created,priority:1" json:"owner_id"`
	ProspectName     string    `gorm:"column:prospect_name;type:varchar(100);not null" json:"prospect_name"`
	ProspectTitle    string    `gorm:"column:prospect_title;type:varchar(100);not null" json:"prospect_title"`
	ProspectCompany  string    `gorm:"column:prospect_company;type:varchar(100);not null" json:"prospect_company"`
	PainPoint        string    `gorm:"column:pain_point;type:varchar(500);not null" json:"pain_point"`
	OfferDescription string    `gorm:"column:offer_description;type:varchar(500);not null" json:"offer_description"`
	GeneratedText    string    `gorm:"column:generated_text;type:text;not null" json:"generated_text"`
	IsPro            bool      `gorm:"column:is_pro;not null;default:false" json:"is_pro"`
	BillingReference *string   `gorm:"column:billing_reference;type:text" json:"billing_reference,omitempty"`
	CreatedAt        time.Time `gorm:"column:created_at;type:timestamp with time zone;not null;default:CURRENT_TIMESTAMP;index:idx_pitches_owner_created,priority:2,sort:desc" json:"created_at"`
}

func (Pitch) TableName() string {
	return "pitches"
}

// Entitlement returns the entitlement snapshot stored on the record.
func (p *Pitch) Entitlement() Entitlement {
	return NewEntitlement(p.IsPro, p.BillingReference)
}

// PitchFields are the user supplied inputs for a generation request.
type PitchFields struct {
	ProspectName string `json:"prospect_name" validate:"required,max=100"`
	JobTitle     string `json:"job_title" validate:"required,max=100"`
	Company      string `json:"company" validate:"required,max=100"`
	PainPoint    string `json:"pain_point" validate:"required,max=500"`
	Description  string `json:"description" validate:"required,max=500"`
}

// NewPitch builds the ledger row for a completed generation. The billing
// reference is only kept for pro entitlements.
func NewPitch(ownerID string, fields PitchFields, generatedText string, ent Entitlement) *Pitch {
	p := &Pitch{
		OwnerID:          ownerID,
		ProspectName:     fields.ProspectName,
		ProspectTitle:    fields.JobTitle,
		ProspectCompany:  fields.Company,
		PainPoint:        fields.PainPoint,
		OfferDescription: fields.Description,
		GeneratedText:    generatedText,
		IsPro:            ent.IsPro,
	}
	if ent.IsPro && ent.BillingReference != nil {
		ref := *ent.BillingReference
		p.BillingReference = &ref
	}
	return p
}

type PitchFilter struct {
	OwnerID   string    `json:"owner_id"`
	Query     string    `json:"query"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Page      int       `json:"page"`
	PageSize  int       `json:"page_size"`
	Limit     int       `json:"limit"`
	Offset    int       `json:"offset"`
}

// PitchChunk is one streamed fragment of an in-flight generation. The last
// message of a request has Done set and carries no text.
type PitchChunk struct {
	OwnerID   string `json:"owner_id"`
	RequestID string `json:"request_id"`
	Seq       int    `json:"seq"`
	Text      string `json:"text,omitempty"`
	Done      bool   `json:"done"`
	Failed    bool   `json:"failed,omitempty"`
}
