package domain

// AccountStatus is what the dashboard shows for an owner: tier, usage and,
// for free owners, how many generations remain.
type AccountStatus struct {
	OwnerID          string  `json:"owner_id"`
	Plan             Plan    `json:"plan"`
	IsPro            bool    `json:"is_pro"`
	BillingReference *string `json:"billing_reference,omitempty"`
	UsageCount       int64   `json:"usage_count"`
	Limit            int64   `json:"limit"`
	Remaining        *int64  `json:"remaining,omitempty"`
}

type CheckoutSession struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}
