package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yuanzhi/finledger/internal/core/domain"
	portssvc "github.com/yuanzhi/finledger/internal/core/ports/services"
	"github.com/yuanzhi/finledger/internal/dto"
	"github.com/yuanzhi/finledger/internal/middleware"
)

// paymentHandler handles HTTP requests related to payments.
type paymentHandler struct {
	paymentService portssvc.PaymentSvcFacade
}

func newPaymentHandler(ps portssvc.PaymentSvcFacade) *paymentHandler {
	return &paymentHandler{
		paymentService: ps,
	}
}

// registerPaymentRoutes registers routes related to payments.
func registerPaymentRoutes(rg *gin.RouterGroup, paymentService portssvc.PaymentSvcFacade) {
	h := newPaymentHandler(paymentService)

	payments := rg.Group("/payments")
	{
		payments.POST("", h.createPayment)
		payments.GET("", h.listPayments)
		payments.GET("/pending", h.listPendingPayments)
		payments.GET("/transaction/:transactionId", h.listPaymentsByTransaction)
		payments.GET("/:id", h.getPayment)
		payments.PUT("/:id/approve", h.approvePayment)
		payments.PUT("/:id/reject", h.rejectPayment)
		payments.PUT("/:id/complete", h.completePayment)
		payments.DELETE("/:id", h.deletePayment)
	}
}

// createPayment godoc
// @Summary Record a payment
// @Description Records a payment in PENDING status against a transaction
// @Tags payments
// @Accept  json
// @Produce  json
// @Param   payment body dto.CreatePaymentRequest true "Payment details"
// @Success 201 {object} dto.PaymentResponse
// @Failure 400 {object} ErrorResponse "Invalid input format"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Role may not record payments"
// @Failure 500 {object} ErrorResponse "Failed to create payment"
// @Security BearerAuth
// @Router /payments [post]
func (h *paymentHandler) createPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createPayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		logger.Error("Actor not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	payment, err := h.paymentService.CreatePayment(c.Request.Context(), actor, req)
	if err != nil {
		respondServiceError(c, err, "Failed to create payment")
		return
	}

	logger.Info("Payment created", slog.String("payment_id", payment.PaymentID), slog.String("transaction_id", payment.TransactionID))
	c.JSON(http.StatusCreated, dto.ToPaymentResponse(payment))
}

// getPayment godoc
// @Summary Get a payment by ID
// @Tags payments
// @Produce  json
// @Param   id path string true "Payment ID"
// @Success 200 {object} dto.PaymentResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Payment not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve payment"
// @Security BearerAuth
// @Router /payments/{id} [get]
func (h *paymentHandler) getPayment(c *gin.Context) {
	paymentID := c.Param("id")

	payment, err := h.paymentService.GetPaymentByID(c.Request.Context(), paymentID)
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve payment")
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}

// listPayments godoc
// @Summary List all payments
// @Tags payments
// @Produce  json
// @Success 200 {array} dto.PaymentResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to list payments"
// @Security BearerAuth
// @Router /payments [get]
func (h *paymentHandler) listPayments(c *gin.Context) {
	payments, err := h.paymentService.ListPayments(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to list payments")
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentResponses(payments))
}

// listPendingPayments godoc
// @Summary List payments awaiting review
// @Tags payments
// @Produce  json
// @Success 200 {array} dto.PaymentResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to list payments"
// @Security BearerAuth
// @Router /payments/pending [get]
func (h *paymentHandler) listPendingPayments(c *gin.Context) {
	payments, err := h.paymentService.ListPendingPayments(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to list payments")
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentResponses(payments))
}

// listPaymentsByTransaction godoc
// @Summary List payments recorded against a transaction
// @Tags payments
// @Produce  json
// @Param   transactionId path string true "Transaction ID"
// @Success 200 {array} dto.PaymentResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to list payments"
// @Security BearerAuth
// @Router /payments/transaction/{transactionId} [get]
func (h *paymentHandler) listPaymentsByTransaction(c *gin.Context) {
	transactionID := c.Param("transactionId")

	payments, err := h.paymentService.ListPaymentsByTransaction(c.Request.Context(), transactionID)
	if err != nil {
		respondServiceError(c, err, "Failed to list payments")
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentResponses(payments))
}

// approvePayment godoc
// @Summary Approve a pending payment
// @Description Approves the payment and records the caller as approver
// @Tags payments
// @Produce  json
// @Param   id path string true "Payment ID"
// @Success 200 {object} dto.PaymentResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Role may not approve payments"
// @Failure 404 {object} ErrorResponse "Payment not found"
// @Failure 409 {object} ErrorResponse "Payment is not pending"
// @Failure 500 {object} ErrorResponse "Failed to approve payment"
// @Security BearerAuth
// @Router /payments/{id}/approve [put]
func (h *paymentHandler) approvePayment(c *gin.Context) {
	h.reviewPayment(c, "approve")
}

// rejectPayment godoc
// @Summary Reject a pending payment
// @Description Rejects the payment and records the caller as reviewer
// @Tags payments
// @Produce  json
// @Param   id path string true "Payment ID"
// @Success 200 {object} dto.PaymentResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Role may not reject payments"
// @Failure 404 {object} ErrorResponse "Payment not found"
// @Failure 409 {object} ErrorResponse "Payment is not pending"
// @Failure 500 {object} ErrorResponse "Failed to reject payment"
// @Security BearerAuth
// @Router /payments/{id}/reject [put]
func (h *paymentHandler) rejectPayment(c *gin.Context) {
	h.reviewPayment(c, "reject")
}

// completePayment godoc
// @Summary Complete an approved payment
// @Description Marks an approved payment as paid and stamps the payment date
// @Tags payments
// @Produce  json
// @Param   id path string true "Payment ID"
// @Success 200 {object} dto.PaymentResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Role may not complete payments"
// @Failure 404 {object} ErrorResponse "Payment not found"
// @Failure 409 {object} ErrorResponse "Payment is not approved"
// @Failure 500 {object} ErrorResponse "Failed to complete payment"
// @Security BearerAuth
// @Router /payments/{id}/complete [put]
func (h *paymentHandler) completePayment(c *gin.Context) {
	h.reviewPayment(c, "complete")
}

func (h *paymentHandler) reviewPayment(c *gin.Context, action string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	paymentID := c.Param("id")

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		logger.Error("Actor not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var (
		payment *domain.Payment
		err     error
	)
	switch action {
	case "approve":
		payment, err = h.paymentService.ApprovePayment(c.Request.Context(), actor, paymentID)
	case "reject":
		payment, err = h.paymentService.RejectPayment(c.Request.Context(), actor, paymentID)
	default:
		payment, err = h.paymentService.CompletePayment(c.Request.Context(), actor, paymentID)
	}
	if err != nil {
		respondServiceError(c, err, "Failed to "+action+" payment")
		return
	}

	logger.Info("Payment reviewed", slog.String("payment_id", paymentID), slog.String("action", action), slog.String("status", string(payment.Status)))
	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}

// deletePayment godoc
// @Summary Delete a payment
// @Tags payments
// @Produce  json
// @Param   id path string true "Payment ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Role may not delete payments"
// @Failure 404 {object} ErrorResponse "Payment not found"
// @Failure 500 {object} ErrorResponse "Failed to delete payment"
// @Security BearerAuth
// @Router /payments/{id} [delete]
func (h *paymentHandler) deletePayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	paymentID := c.Param("id")

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		logger.Error("Actor not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.paymentService.DeletePayment(c.Request.Context(), actor, paymentID); err != nil {
		respondServiceError(c, err, "Failed to delete payment")
		return
	}

	logger.Info("Payment deleted", slog.String("payment_id", paymentID))
	c.Status(http.StatusNoContent)
}
