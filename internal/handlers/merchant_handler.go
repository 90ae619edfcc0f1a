package handlers

import (
	"net/http"

	"upipay_backend/internal/middleware"
	"upipay_backend/internal/services"
	"upipay_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type MerchantHandler struct {
	*BaseHandler
	merchantService services.MerchantService
}

func NewMerchantHandler(base *BaseHandler, merchantService services.MerchantService) *MerchantHandler {
	return &MerchantHandler{
		BaseHandler:     base,
		merchantService: merchantService,
	}
}

func (h *MerchantHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Public payer-facing listing and lookup.
	r.GET("/upi", h.ListPublic)
	r.GET("/upi/:address", h.Lookup)

	admin := r.Group("/admin/upi")
	admin.Use(middleware.AuthMiddleware())
	{
		admin.GET("", h.List)
		admin.POST("", h.Register)
		admin.PATCH("/:id/active", h.SetActive)
		admin.POST("/:id/block", h.Block)
		admin.POST("/:id/unblock", h.Unblock)
		admin.DELETE("/:id", h.SoftDelete)
		admin.GET("/:id/audit", h.AuditTrail)
	}
}

func (h *MerchantHandler) ListPublic(c *gin.Context) {
	merchants, err := h.merchantService.ListPublic()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, merchants)
}

// Lookup lets the payer page confirm an address before opening the
// payment dialog.
func (h *MerchantHandler) Lookup(c *gin.Context) {
	merchant, err := h.merchantService.Lookup(c.Param("address"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, merchant)
}

func (h *MerchantHandler) List(c *gin.Context) {
	includeDeleted := c.Query("include_deleted") == "true"

	merchants, err := h.merchantService.List(includeDeleted)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, merchants)
}

func (h *MerchantHandler) Register(c *gin.Context) {
	var req dto.RegisterUpiRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	merchant, err := h.merchantService.Register(&req, h.ActorEmail(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, merchant)
}

func (h *MerchantHandler) SetActive(c *gin.Context) {
	var req dto.SetActiveRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	merchant, err := h.merchantService.SetActive(c.Param("id"), *req.Active, h.ActorEmail(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, merchant)
}

func (h *MerchantHandler) Block(c *gin.Context) {
	merchant, err := h.merchantService.Block(c.Param("id"), h.ActorEmail(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, merchant)
}

func (h *MerchantHandler) Unblock(c *gin.Context) {
	merchant, err := h.merchantService.Unblock(c.Param("id"), h.ActorEmail(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, merchant)
}

func (h *MerchantHandler) SoftDelete(c *gin.Context) {
	merchant, err := h.merchantService.SoftDelete(c.Param("id"), h.ActorEmail(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, merchant)
}

func (h *MerchantHandler) AuditTrail(c *gin.Context) {
	entries, err := h.merchantService.AuditTrail(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"audit_log": entries})
}
