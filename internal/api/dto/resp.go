package dto

import "time"

// PitchResponse represents a single generated pitch
type PitchResponse struct {
	ID               int64     `json:"id" example:"42"`
	OwnerID          string    `json:"owner_id" example:"user_2abc"`
	ProspectName     string    `json:"prospect_name" example:"Dana Whitfield"`
	JobTitle         string    `json:"job_title" example:"VP Operations"`
	Company          string    `json:"company" example:"Acme Logistics"`
	PainPoint        string    `json:"pain_point" example:"Manual route planning"`
	Description      string    `json:"description" example:"Route optimization software"`
	GeneratedText    string    `json:"generated_text" example:"Subject: Quick question about Acme Logistics\n\nHi Dana, ..."`
	IsPro            bool      `json:"is_pro" example:"false"`
	BillingReference *string   `json:"billing_reference,omitempty" example:"cs_test_a1b2c3"`
	CreatedAt        time.Time `json:"created_at" example:"2025-07-17T21:20:48Z"`
}

// GeneratePitchResponse is returned on a successful generation
type GeneratePitchResponse struct {
	RequestID  string         `json:"request_id" example:"2f1c8a4e-9a77-4c1b-bb53-7f0b1f7c0e11"`
	Pitch      *PitchResponse `json:"pitch"`
	IsPro      bool           `json:"is_pro" example:"false"`
	UsageCount int64          `json:"usage_count" example:"3"`
	Limit      int64          `json:"limit" example:"5"`
}

// QuotaDeniedResponse is returned when a free owner has used up the limit
type QuotaDeniedResponse struct {
	Error      string `json:"error" example:"limit reached"`
	UsageCount int64  `json:"usage_count" example:"5"`
	Limit      int64  `json:"limit" example:"5"`
}

// GenerationFailedResponse may carry the generated text when it could not be saved
type GenerationFailedResponse struct {
	Error     string         `json:"error" example:"generation failed, try again"`
	RequestID string         `json:"request_id" example:"2f1c8a4e-9a77-4c1b-bb53-7f0b1f7c0e11"`
	Unsaved   *PitchResponse `json:"unsaved_pitch,omitempty"`
}

type PitchListResponse struct {
	Pitches  []PitchResponse `json:"pitches"`
	Page     int             `json:"page" example:"1"`
	PageSize int             `json:"page_size" example:"10"`
}

type PitchCountResponse struct {
	Count int64 `json:"count" example:"3"`
}

type AccountStatusResponse struct {
	OwnerID          string  `json:"owner_id" example:"user_2abc"`
	Plan             string  `json:"plan" example:"free"`
	IsPro            bool    `json:"is_pro" example:"false"`
	BillingReference *string `json:"billing_reference,omitempty"`
	UsageCount       int64   `json:"usage_count" example:"3"`
	Limit            int64   `json:"limit" example:"5"`
	Remaining        *int64  `json:"remaining,omitempty" example:"2"`
}

type CheckoutResponse struct {
	SessionID string `json:"session_id" example:"cs_test_a1b2c3"`
	URL       string `json:"url" example:"https://checkout.stripe.com/c/pay/cs_test_a1b2c3"`
}

type BillingAckResponse struct {
	Received       bool  `json:"received" example:"true"`
	Queued         bool  `json:"queued,omitempty"`
	Duplicate      bool  `json:"duplicate,omitempty"`
	UpdatedRecords int64 `json:"updated_records" example:"3"`
}

type ArchiveResponse struct {
	Message string `json:"message" example:"Export scheduled"`
	JobID   string `json:"job_id" example:"9b2d7c1e-3f4a-4b5c-8d6e-7f8091a2b3c4"`
	Format  string `json:"format" example:"csv"`
}
