package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckQuota(t *testing.T) {
	tests := []struct {
		name          string
		isPro         bool
		usage         int64
		wantAllowed   bool
		wantRemaining int64
	}{
		{name: "new free owner", usage: 0, wantAllowed: true, wantRemaining: 5},
		{name: "free owner below limit", usage: 4, wantAllowed: true, wantRemaining: 1},
		{name: "free owner at limit", usage: 5, wantAllowed: false},
		{name: "free owner above limit", usage: 12, wantAllowed: false},
		{name: "pro owner at limit", isPro: true, usage: 5, wantAllowed: true},
		{name: "pro owner far above limit", isPro: true, usage: 500, wantAllowed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := CheckQuota(tt.isPro, tt.usage)

			assert.Equal(t, tt.wantAllowed, decision.Allowed)
			assert.Equal(t, tt.usage, decision.UsageCount)
			if tt.wantAllowed {
				assert.Empty(t, decision.Reason)
			} else {
				assert.Equal(t, QuotaReasonLimitReached, decision.Reason)
			}
			if !tt.isPro && tt.wantAllowed {
				assert.Equal(t, tt.wantRemaining, decision.Remaining)
			}
		})
	}
}

func TestCheckQuota_ProNeverDenied(t *testing.T) {
	for usage := int64(0); usage < 50; usage++ {
		assert.True(t, CheckQuota(true, usage).Allowed, "usage %d", usage)
	}
}

func TestCheckQuota_FreeAllowedIffBelowLimit(t *testing.T) {
	for usage := int64(0); usage < 20; usage++ {
		assert.Equal(t, usage < FreeLimit, CheckQuota(false, usage).Allowed, "usage %d", usage)
	}
}

func TestQuotaPolicy_Limit(t *testing.T) {
	assert.Equal(t, FreeLimit, NewQuotaPolicy(0).Limit())
	assert.Equal(t, FreeLimit, NewQuotaPolicy(-3).Limit())
	assert.Equal(t, int64(10), NewQuotaPolicy(10).Limit())

	policy := NewQuotaPolicy(2)
	assert.True(t, policy.Check(false, 1).Allowed)
	assert.False(t, policy.Check(false, 2).Allowed)
}

func TestQuotaPolicy_NegativeUsageTreatedAsZero(t *testing.T) {
	decision := CheckQuota(false, -1)
	assert.True(t, decision.Allowed)
	assert.Equal(t, FreeLimit, decision.Remaining)
}
