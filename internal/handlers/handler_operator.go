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

// operatorHandler handles HTTP requests related to back-office operators.
type operatorHandler struct {
	operatorService portssvc.OperatorSvcFacade
}

func newOperatorHandler(os portssvc.OperatorSvcFacade) *operatorHandler {
	return &operatorHandler{operatorService: os}
}

// registerOperatorRoutes registers routes related to operators.
func registerOperatorRoutes(rg *gin.RouterGroup, operatorService portssvc.OperatorSvcFacade) {
	h := newOperatorHandler(operatorService)

	operators := rg.Group("/operators")
	{
		operators.POST("", h.createOperator)
		operators.GET("", h.listOperators)
		operators.GET("/:operatorID", h.getOperator)
	}
}

// createOperator godoc
// @Summary Create a new operator
// @Description Registers a new back-office operator with a hashed password
// @Tags operators
// @Accept json
// @Produce json
// @Param operator body dto.CreateOperatorRequest true "Operator details"
// @Success 201 {object} dto.OperatorResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 409 {object} ErrorResponse "Username already taken"
// @Failure 500 {object} ErrorResponse "Failed to create operator"
// @Security BearerAuth
// @Router /operators [post]
func (h *operatorHandler) createOperator(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateOperatorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateOperator", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorID, ok := middleware.GetOperatorIDFromContext(c)
	if !ok {
		logger.Error("Creator operator ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	logger.Info("Received request to create operator", slog.String("username", req.Username))

	operator, err := h.operatorService.CreateOperator(c.Request.Context(), req, creatorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Username already taken", slog.String("username", req.Username))
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Username already taken"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating operator", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to create operator in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create operator"})
		}
		return
	}

	logger.Info("Operator created successfully", slog.String("operator_id", operator.OperatorID))
	c.JSON(http.StatusCreated, dto.ToOperatorResponse(operator))
}

// listOperators godoc
// @Summary List operators
// @Description Retrieves all back-office operators
// @Tags operators
// @Produce json
// @Success 200 {array} dto.OperatorResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to list operators"
// @Security BearerAuth
// @Router /operators [get]
func (h *operatorHandler) listOperators(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	operators, err := h.operatorService.ListOperators(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list operators from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list operators"})
		return
	}

	c.JSON(http.StatusOK, dto.ToOperatorResponses(operators))
}

// getOperator godoc
// @Summary Get an operator by ID
// @Description Retrieves details for a specific operator
// @Tags operators
// @Produce json
// @Param operatorID path string true "Operator ID"
// @Success 200 {object} dto.OperatorResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Operator not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve operator"
// @Security BearerAuth
// @Router /operators/{operatorID} [get]
func (h *operatorHandler) getOperator(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	operatorID := c.Param("operatorID")

	operator, err := h.operatorService.GetOperatorByID(c.Request.Context(), operatorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Operator not found", slog.String("target_operator_id", operatorID))
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Operator not found"})
		} else {
			logger.Error("Failed to get operator from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve operator"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToOperatorResponse(operator))
}
