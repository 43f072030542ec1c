package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kingrain94/pitchcraft-api/internal/api/dto"
	"github.com/kingrain94/pitchcraft-api/internal/domain"
	"github.com/kingrain94/pitchcraft-api/internal/service"
)

//go:generate mockery --name AccountStatusService --output ../mocks
type AccountStatusService interface {
	GetStatus(ctx context.Context, ownerID string) (*domain.AccountStatus, error)
}

type AccountHandler struct {
	*BaseHandler
	service AccountStatusService
}

func NewAccountHandler(service AccountStatusService) *AccountHandler {
	return &AccountHandler{service: service}
}

// GetAccount Get the caller's plan and usage
// @Summary Account status
// @Description Plan, usage count and, for free accounts, the remaining pitches
// @Tags    account
// @Produce json
// @Success 200 {object} dto.AccountStatusResponse
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Security ApiKeyAuth
// @Router  /account [get]
func (h *AccountHandler) GetAccount(c *gin.Context) {
	status, err := h.service.GetStatus(h.RequestCtx(c), h.OwnerID(c))
	if errors.Is(err, service.ErrAuthenticationRequired) {
		c.JSON(http.StatusUnauthorized, dto.Error{Error: err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Error{Error: "Something went wrong, please try again"})
		return
	}

	c.JSON(http.StatusOK, dto.FromAccountStatus(status))
}
