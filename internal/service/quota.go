package service

// FreeLimit is the number of pitches a free owner may generate.
const FreeLimit int64 = 5

const QuotaReasonLimitReached = "limit reached"

type QuotaDecision struct {
	Allowed    bool
	Reason     string
	UsageCount int64
	// Remaining is only meaningful for free owners.
	Remaining int64
}

type QuotaPolicy struct {
	limit int64
}

// NewQuotaPolicy returns a policy with the given free limit. Non-positive
// limits fall back to FreeLimit.
func NewQuotaPolicy(limit int64) QuotaPolicy {
	if limit <= 0 {
		limit = FreeLimit
	}
	return QuotaPolicy{limit: limit}
}

func (p QuotaPolicy) Limit() int64 {
	if p.limit <= 0 {
		return FreeLimit
	}
	return p.limit
}

// Check is pure. Pro owners are always allowed; free owners are denied once
// usageCount reaches the limit. Negative counts are treated as zero usage.
func (p QuotaPolicy) Check(isPro bool, usageCount int64) QuotaDecision {
	if isPro {
		return QuotaDecision{Allowed: true, UsageCount: usageCount}
	}

	limit := p.Limit()
	if usageCount >= limit {
		return QuotaDecision{
			Allowed:    false,
			Reason:     QuotaReasonLimitReached,
			UsageCount: usageCount,
		}
	}

	remaining := limit - usageCount
	if remaining > limit {
		remaining = limit
	}
	return QuotaDecision{Allowed: true, UsageCount: usageCount, Remaining: remaining}
}

// CheckQuota applies the default policy.
func CheckQuota(isPro bool, usageCount int64) QuotaDecision {
	return NewQuotaPolicy(FreeLimit).Check(isPro, usageCount)
}
