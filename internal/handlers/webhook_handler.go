package handlers

import (
	"net/http"

	"upipay_backend/internal/logger"
	"upipay_backend/internal/models"
	"upipay_backend/internal/services"
	"upipay_backend/internal/services/dto"
	"upipay_backend/internal/webhook"
	"upipay_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type WebhookHandler struct {
	*BaseHandler
	transactionService services.TransactionService
	secret             string
}

func NewWebhookHandler(base *BaseHandler, transactionService services.TransactionService, secret string) *WebhookHandler {
	return &WebhookHandler{
		BaseHandler:        base,
		transactionService: transactionService,
		secret:             secret,
	}
}

func (h *WebhookHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/webhook/payment-status", h.PaymentStatus)
}

// PaymentStatus applies an external confirmation signal. The signature is
// verified before any state change; webhooks deliver at-least-once, and
// the transition's idempotent-terminal policy absorbs replays.
func (h *WebhookHandler) PaymentStatus(c *gin.Context) {
	var req dto.WebhookRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if h.secret == "" || !webhook.Verify(h.secret, req.Reference, req.Status, req.Signature) {
		logger.Warn("webhook signature rejected", "reference", req.Reference, "ip", c.ClientIP())
		apperrors.HandleError(c, apperrors.ErrInvalidWebhookSignature)
		return
	}

	tx, err := h.transactionService.Transition(
		req.Reference,
		models.TransactionStatus(req.Status),
		"",
	)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, tx)
}
