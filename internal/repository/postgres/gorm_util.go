package postgres

import (
	"context"

	"github.com/kingrain94/pitchcraft-api/internal/utils"
	"gorm.io/gorm"
)

// getOwnerScope returns a database instance restricted to the caller's rows
func getOwnerScope(db *gorm.DB, ctx context.Context) (*gorm.DB, error) {
	ownerID, err := utils.GetOwnerIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	return db.WithContext(ctx).Where("owner = ?", ownerID), nil
}

// entitlementColumns is the only column set a billing event may rewrite on
// the ledger.
func entitlementColumns(isPro bool, billingReference *string) map[string]any {
	return map[string]any{
		"is_pro":            isPro,
		"billing_reference": billingReference,
	}
}
