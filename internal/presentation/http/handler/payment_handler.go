package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/petros-hq/petros-api/internal/application/service"
	"github.com/petros-hq/petros-api/internal/domain/enum"
	"github.com/petros-hq/petros-api/internal/presentation/http/dto/response"
)

// PaymentHandler handles payment endpoints
type PaymentHandler struct {
	paymentService *service.PaymentService
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentService *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

type createPaymentRequest struct {
	CustomerID uuid.UUID `json:"customerId" binding:"required"`
	Amount     float64   `json:"amount" binding:"required,gt=0"`
	Method     string    `json:"method" binding:"required"`
	Note       *string   `json:"note"`
}

// Create handles POST /payments
func (h *PaymentHandler) Create(c *gin.Context) {
	var req createPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	method := enum.PaymentMethod(req.Method)
	if !method.Valid() {
		response.BadRequest(c, "Invalid payment method")
		return
	}

	payment, err := h.paymentService.CreatePayment(c.Request.Context(), &service.CreatePaymentInput{
		UserID:     *userID,
		CustomerID: req.CustomerID,
		Amount:     req.Amount,
		Note:       req.Note,
		Method:     method,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Payment recorded", payment)
}

// ListByCustomer handles GET /payments/customer/:id
func (h *PaymentHandler) ListByCustomer(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	payments, err := h.paymentService.ListPaymentsByCustomer(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payments retrieved", payments)
}

// Get handles GET /payments/:id
func (h *PaymentHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid payment ID")
		return
	}

	payment, err := h.paymentService.GetPayment(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment retrieved", payment)
}

// Delete handles DELETE /payments/:id, re-adding the amount to the
// customer's balance.
func (h *PaymentHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid payment ID")
		return
	}

	if err := h.paymentService.DeletePayment(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment deleted", nil)
}
