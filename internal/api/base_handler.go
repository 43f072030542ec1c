package api

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/kingrain94/pitchcraft-api/internal/utils"
)

type BaseHandler struct{}

// RequestCtx lifts the values set by middleware (owner, claims, request id)
// out of gin's key map into the request context the services receive.
func (h *BaseHandler) RequestCtx(ginCtx *gin.Context) context.Context {
	ctx := ginCtx.Request.Context()
	for k, v := range ginCtx.Keys {
		ctx = context.WithValue(ctx, utils.ContextKey(k), v)
	}
	return ctx
}

// OwnerID returns the authenticated subject, or "" on unauthenticated routes.
func (h *BaseHandler) OwnerID(ginCtx *gin.Context) string {
	return ginCtx.GetString(string(utils.OwnerIDKey))
}
