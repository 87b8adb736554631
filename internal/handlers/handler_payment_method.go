package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clubdesk/club_desk_app/internal/apperrors"
	portssvc "github.com/clubdesk/club_desk_app/internal/core/ports/services"
	"github.com/clubdesk/club_desk_app/internal/dto"
	"github.com/clubdesk/club_desk_app/internal/middleware"
)

// paymentMethodHandler handles HTTP requests related to tender types.
type paymentMethodHandler struct {
	methodService portssvc.PaymentMethodSvcFacade
}

func newPaymentMethodHandler(ms portssvc.PaymentMethodSvcFacade) *paymentMethodHandler {
	return &paymentMethodHandler{methodService: ms}
}

// registerPaymentMethodRoutes registers routes related to payment methods.
func registerPaymentMethodRoutes(rg *gin.RouterGroup, methodService portssvc.PaymentMethodSvcFacade) {
	h := newPaymentMethodHandler(methodService)

	methods := rg.Group("/payment-methods")
	{
		methods.POST("", h.createPaymentMethod)
		methods.GET("", h.listPaymentMethods)
		methods.GET("/:methodID", h.getPaymentMethod)
		methods.DELETE("/:methodID", h.deactivatePaymentMethod)
	}
}

// createPaymentMethod godoc
// @Summary Create a payment method
// @Description Registers a new tender type
// @Tags payment-methods
// @Accept json
// @Produce json
// @Param method body dto.CreatePaymentMethodRequest true "Method details"
// @Success 201 {object} dto.PaymentMethodResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 409 {object} ErrorResponse "Method name already exists"
// @Failure 500 {object} ErrorResponse "Failed to create payment method"
// @Security BearerAuth
// @Router /payment-methods [post]
func (h *paymentMethodHandler) createPaymentMethod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreatePaymentMethod", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	operatorID, ok := middleware.GetOperatorIDFromContext(c)
	if !ok {
		logger.Error("Operator ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	logger.Info("Received request to create payment method", slog.String("name", req.Name))

	method, err := h.methodService.CreatePaymentMethod(c.Request.Context(), req, operatorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Payment method name already exists", slog.String("name", req.Name))
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Payment method name already exists"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating payment method", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to create payment method in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create payment method"})
		}
		return
	}

	logger.Info("Payment method created", slog.String("method_id", method.MethodID))
	c.JSON(http.StatusCreated, dto.ToPaymentMethodResponse(method))
}

// listPaymentMethods godoc
// @Summary List payment methods
// @Description Retrieves all tender types, active and inactive
// @Tags payment-methods
// @Produce json
// @Success 200 {array} dto.PaymentMethodResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to list payment methods"
// @Security BearerAuth
// @Router /payment-methods [get]
func (h *paymentMethodHandler) listPaymentMethods(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	methods, err := h.methodService.ListPaymentMethods(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list payment methods from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list payment methods"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentMethodResponses(methods))
}

// getPaymentMethod godoc
// @Summary Get a payment method by ID
// @Description Retrieves details for a specific tender type
// @Tags payment-methods
// @Produce json
// @Param methodID path string true "Method ID"
// @Success 200 {object} dto.PaymentMethodResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Payment method not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve payment method"
// @Security BearerAuth
// @Router /payment-methods/{methodID} [get]
func (h *paymentMethodHandler) getPaymentMethod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	methodID := c.Param("methodID")

	method, err := h.methodService.GetMethodByID(c.Request.Context(), methodID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Payment method not found", slog.String("method_id", methodID))
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Payment method not found"})
		} else {
			logger.Error("Failed to get payment method from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve payment method"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentMethodResponse(method))
}

// deactivatePaymentMethod godoc
// @Summary Deactivate a payment method
// @Description Marks a tender type inactive so it stops accepting new payments
// @Tags payment-methods
// @Produce json
// @Param methodID path string true "Method ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Payment method not found"
// @Failure 500 {object} ErrorResponse "Failed to deactivate payment method"
// @Security BearerAuth
// @Router /payment-methods/{methodID} [delete]
func (h *paymentMethodHandler) deactivatePaymentMethod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	methodID := c.Param("methodID")

	operatorID, ok := middleware.GetOperatorIDFromContext(c)
	if !ok {
		logger.Error("Operator ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	logger.Info("Received request to deactivate payment method", slog.String("method_id", methodID))

	if err := h.methodService.DeactivatePaymentMethod(c.Request.Context(), methodID, operatorID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Payment method not found for deactivation", slog.String("method_id", methodID))
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Payment method not found"})
		} else {
			logger.Error("Failed to deactivate payment method in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to deactivate payment method"})
		}
		return
	}

	logger.Info("Payment method deactivated", slog.String("method_id", methodID))
	c.Status(http.StatusNoContent)
}
