package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/swiftshop/swiftshop-api/internal/dto"
	"github.com/swiftshop/swiftshop-api/internal/middleware"
	"github.com/swiftshop/swiftshop-api/internal/model"
	"github.com/swiftshop/swiftshop-api/internal/service"
)

type PaymentHandler struct {
	paymentService *service.PaymentService
	log            *slog.Logger
}

func NewPaymentHandler(paymentService *service.PaymentService, log *slog.Logger) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService, log: log}
}

// CreateIntent requests a payment intent for the submitted price and returns
// the client confirmation secret.
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	var req dto.CreateIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	secret, err := h.paymentService.CreateIntent(c.Request.Context(), req.Price)
	if err != nil {
		if errors.Is(err, service.ErrInvalidPrice) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "price must be positive"})
			return
		}
		h.log.Error("create payment intent", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "payment creation failed"})
		return
	}

	c.JSON(http.StatusOK, dto.CreateIntentResponse{ClientSecret: secret})
}

func (h *PaymentHandler) Record(c *gin.Context) {
	var req dto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	payment, err := h.paymentService.Record(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, payment)
}

// ListSucceeded returns the caller's succeeded payments.
func (h *PaymentHandler) ListSucceeded(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		email = middleware.GetUserEmail(c)
	}

	payments, err := h.paymentService.ListSucceeded(c.Request.Context(), email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, payments)
}

// ListPaged is the admin payment listing: size/pages pagination, optional
// orderStatus filter, formattedDate sort.
func (h *PaymentHandler) ListPaged(c *gin.Context) {
	var q dto.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	payments, err := h.paymentService.ListPaged(c.Request.Context(), q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, payments)
}

func (h *PaymentHandler) ListDelivered(c *gin.Context) {
	h.listByOrderStatus(c, model.OrderStatusDelivered)
}

func (h *PaymentHandler) ListPending(c *gin.Context) {
	h.listByOrderStatus(c, model.OrderStatusPending)
}

func (h *PaymentHandler) listByOrderStatus(c *gin.Context, status model.OrderStatus) {
	payments, err := h.paymentService.ListByOrderStatus(c.Request.Context(), status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, payments)
}

func (h *PaymentHandler) Update(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payment ID"})
		return
	}

	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.paymentService.Update(c.Request.Context(), id, fields); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "payment updated"})
}
