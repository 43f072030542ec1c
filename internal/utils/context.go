package utils

import (
	"context"
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

type ContextKey string

const (
	ClaimsKey    ContextKey = "claims"
	OwnerIDKey   ContextKey = "owner_id"
	RequestIDKey ContextKey = "request_id"
)

var (
	ErrNoClaimsInContext  = errors.New("no claims found in context")
	ErrNoOwnerInClaims    = errors.New("no subject found in claims")
	ErrInvalidOwnerIDType = errors.New("subject must be a non-empty string")
)

// WithOwnerID stores the authenticated owner on ctx.
func WithOwnerID(ctx context.Context, ownerID string) context.Context {
	return context.WithValue(ctx, OwnerIDKey, ownerID)
}

// GetOwnerIDFromContext returns the owner placed on the context by the auth
// middleware, falling back to the "sub" claim of the verified token.
func GetOwnerIDFromContext(c context.Context) (string, error) {
	if ownerID, ok := c.Value(OwnerIDKey).(string); ok && ownerID != "" {
		return ownerID, nil
	}

	claims, exists := c.Value(ClaimsKey).(jwt.MapClaims)
	if !exists {
		return "", ErrNoClaimsInContext
	}

	sub, exists := claims["sub"]
	if !exists {
		return "", ErrNoOwnerInClaims
	}

	ownerID, ok := sub.(string)
	if !ok || ownerID == "" {
		return "", ErrInvalidOwnerIDType
	}

	return ownerID, nil
}

func GetRequestIDFromContext(c context.Context) string {
	requestID, _ := c.Value(RequestIDKey).(string)
	return requestID
}
