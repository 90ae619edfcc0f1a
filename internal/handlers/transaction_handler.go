package handlers

import (
	"net/http"

	"upipay_backend/internal/logger"
	"upipay_backend/internal/middleware"
	"upipay_backend/internal/models"
	"upipay_backend/internal/services"
	"upipay_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type TransactionHandler struct {
	*BaseHandler
	transactionService services.TransactionService
}

func NewTransactionHandler(base *BaseHandler, transactionService services.TransactionService) *TransactionHandler {
	return &TransactionHandler{
		BaseHandler:        base,
		transactionService: transactionService,
	}
}

func (h *TransactionHandler) RegisterRoutes(r *gin.RouterGroup) {
	tx := r.Group("/transactions")
	{
		tx.POST("", h.Create)
		tx.GET("/:reference", h.Get)
		// Client-triggered durable expiry of its own payment window.
		tx.POST("/:reference/expire", h.Expire)
	}

	admin := r.Group("/admin/transactions")
	admin.Use(middleware.AuthMiddleware())
	{
		admin.GET("", h.List)
		admin.POST("/:reference/verify", h.Verify)
	}
}

func (h *TransactionHandler) Create(c *gin.Context) {
	var req dto.CreateTransactionRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	tx, err := h.transactionService.Create(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tx)
}

// Get is the polling fallback: whichever of push and poll fires first
// wins, both converge on this read.
func (h *TransactionHandler) Get(c *gin.Context) {
	tx, err := h.transactionService.Get(c.Param("reference"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, tx)
}

func (h *TransactionHandler) Expire(c *gin.Context) {
	tx, err := h.transactionService.Expire(c.Param("reference"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, tx)
}

func (h *TransactionHandler) List(c *gin.Context) {
	txs, err := h.transactionService.List()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"transactions": txs, "total": len(txs)})
}

// Verify is the manual admin decision path; the verifier's identity lands
// on the transaction record.
func (h *TransactionHandler) Verify(c *gin.Context) {
	var req dto.TransitionRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	tx, err := h.transactionService.Transition(
		c.Param("reference"),
		models.TransactionStatus(req.Status),
		h.ActorEmail(c),
	)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	logger.Info("transaction manually verified",
		"reference", tx.Reference, "status", tx.Status,
		"admin_id", middleware.GetAdminID(c))
	c.JSON(http.StatusOK, tx)
}
