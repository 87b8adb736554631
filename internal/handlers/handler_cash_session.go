package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/clubdesk/club_desk_app/internal/apperrors"
	portssvc "github.com/clubdesk/club_desk_app/internal/core/ports/services"
	"github.com/clubdesk/club_desk_app/internal/dto"
	"github.com/clubdesk/club_desk_app/internal/middleware"
)

const defaultSessionPageSize = 20

// cashSessionHandler handles HTTP requests for the cash drawer session lifecycle
// and its reconciliation snapshots.
type cashSessionHandler struct {
	sessionService portssvc.CashSessionSvcFacade
}

func newCashSessionHandler(cs portssvc.CashSessionSvcFacade) *cashSessionHandler {
	return &cashSessionHandler{sessionService: cs}
}

// registerCashSessionRoutes registers routes related to cash sessions.
func registerCashSessionRoutes(rg *gin.RouterGroup, sessionService portssvc.CashSessionSvcFacade) {
	h := newCashSessionHandler(sessionService)

	sessions := rg.Group("/cash-sessions")
	{
		sessions.POST("", h.openSession)
		sessions.GET("", h.listSessions)
		sessions.GET("/open", h.getOpenSnapshot)
		sessions.GET("/:sessionID", h.getSnapshot)
		sessions.POST("/:sessionID/movements", h.addMovement)
		sessions.GET("/:sessionID/movements", h.listMovements)
		sessions.POST("/:sessionID/close", h.closeSession)
	}
}

// openSession godoc
// @Summary Open a cash session
// @Description Opens a new drawer session with the given opening float. Fails when another session is already open.
// @Tags cash-sessions
// @Accept json
// @Produce json
// @Param session body dto.OpenCashSessionRequest true "Opening details"
// @Success 201 {object} dto.CashSessionResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 409 {object} ErrorResponse "Another session is already open"
// @Failure 500 {object} ErrorResponse "Failed to open session"
// @Security BearerAuth
// @Router /cash-sessions [post]
func (h *cashSessionHandler) openSession(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.OpenCashSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for OpenSession", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	operatorID, ok := middleware.GetOperatorIDFromContext(c)
	if !ok {
		logger.Error("Operator ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	logger.Info("Received request to open cash session", slog.String("opening_amount", req.OpeningAmount.String()))

	session, err := h.sessionService.OpenSession(c.Request.Context(), req, operatorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			logger.Warn("Another session is already open")
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Another cash session is already open"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error opening session", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to open session in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to open session"})
		}
		return
	}

	logger.Info("Cash session opened", slog.String("session_id", session.SessionID))
	c.JSON(http.StatusCreated, dto.ToCashSessionResponse(session))
}

// getOpenSnapshot godoc
// @Summary Get the open session snapshot
// @Description Returns the live reconciliation snapshot of the currently open session
// @Tags cash-sessions
// @Produce json
// @Success 200 {object} dto.BalanceSnapshotResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "No session is open"
// @Failure 500 {object} ErrorResponse "Failed to build snapshot"
// @Security BearerAuth
// @Router /cash-sessions/open [get]
func (h *cashSessionHandler) getOpenSnapshot(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	snapshot, err := h.sessionService.GetOpenSnapshot(c.Request.Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("No open session")
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "No cash session is open"})
		} else {
			logger.Error("Failed to build open session snapshot", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build snapshot"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToBalanceSnapshotResponse(snapshot))
}

// getSnapshot godoc
// @Summary Get a session snapshot
// @Description Returns the reconciliation snapshot of any session, open or closed
// @Tags cash-sessions
// @Produce json
// @Param sessionID path string true "Session ID"
// @Success 200 {object} dto.BalanceSnapshotResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Session not found"
// @Failure 500 {object} ErrorResponse "Failed to build snapshot"
// @Security BearerAuth
// @Router /cash-sessions/{sessionID} [get]
func (h *cashSessionHandler) getSnapshot(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	sessionID := c.Param("sessionID")

	snapshot, err := h.sessionService.GetSnapshot(c.Request.Context(), sessionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Session not found", slog.String("session_id", sessionID))
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Session not found"})
		} else {
			logger.Error("Failed to build session snapshot", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build snapshot"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToBalanceSnapshotResponse(snapshot))
}

// listSessions godoc
// @Summary List cash sessions
// @Description Retrieves session history newest-first with token pagination
// @Tags cash-sessions
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Continuation token"
// @Success 200 {object} dto.ListSessionsResponse
// @Failure 400 {object} ErrorResponse "Invalid pagination token"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to list sessions"
// @Security BearerAuth
// @Router /cash-sessions [get]
func (h *cashSessionHandler) listSessions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	limit := defaultSessionPageSize
	if limitStr := c.Query("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid limit parameter"})
			return
		}
		limit = parsed
	}
	var nextToken *string
	if token := c.Query("nextToken"); token != "" {
		nextToken = &token
	}

	sessions, newToken, err := h.sessionService.ListSessions(c.Request.Context(), limit, nextToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Invalid pagination token for ListSessions")
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid pagination token"})
		} else {
			logger.Error("Failed to list sessions from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list sessions"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ListSessionsResponse{
		Sessions:  dto.ToCashSessionResponses(sessions),
		NextToken: newToken,
	})
}

// addMovement godoc
// @Summary Record a cash movement
// @Description Records a manual drawer adjustment (cash in or out) against an open session
// @Tags cash-sessions
// @Accept json
// @Produce json
// @Param sessionID path string true "Session ID"
// @Param movement body dto.AddMovementRequest true "Movement details"
// @Success 201 {object} dto.CashMovementResponse
// @Failure 400 {object} ErrorResponse "Invalid input or session not open"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Session not found"
// @Failure 500 {object} ErrorResponse "Failed to record movement"
// @Security BearerAuth
// @Router /cash-sessions/{sessionID}/movements [post]
func (h *cashSessionHandler) addMovement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	sessionID := c.Param("sessionID")

	var req dto.AddMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddMovement", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	operatorID, ok := middleware.GetOperatorIDFromContext(c)
	if !ok {
		logger.Error("Operator ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("session_id", sessionID))
	logger.Info("Received request to add movement", slog.String("kind", req.Kind), slog.String("amount", req.Amount.String()))

	movement, err := h.sessionService.AddMovement(c.Request.Context(), sessionID, req, operatorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Session not found for movement")
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Session not found"})
		} else if errors.Is(err, apperrors.ErrInvalidState) {
			logger.Warn("Session is not open")
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Session is not open"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error adding movement", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to add movement in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to record movement"})
		}
		return
	}

	logger.Info("Movement recorded", slog.String("movement_id", movement.MovementID))
	c.JSON(http.StatusCreated, dto.ToCashMovementResponse(movement))
}

// listMovements godoc
// @Summary List movements for a session
// @Description Retrieves all manual drawer adjustments recorded against a session
// @Tags cash-sessions
// @Produce json
// @Param sessionID path string true "Session ID"
// @Success 200 {array} dto.CashMovementResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Session not found"
// @Failure 500 {object} ErrorResponse "Failed to list movements"
// @Security BearerAuth
// @Router /cash-sessions/{sessionID}/movements [get]
func (h *cashSessionHandler) listMovements(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	sessionID := c.Param("sessionID")

	movements, err := h.sessionService.ListMovements(c.Request.Context(), sessionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Session not found for movement list", slog.String("session_id", sessionID))
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Session not found"})
		} else {
			logger.Error("Failed to list movements from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list movements"})
		}
		return
	}

	responses := make([]dto.CashMovementResponse, len(movements))
	for i, m := range movements {
		responses[i] = dto.ToCashMovementResponse(&m)
	}
	c.JSON(http.StatusOK, responses)
}

// closeSession godoc
// @Summary Close a cash session
// @Description Closes an open session with the operator's counted totals and returns the final reconciliation snapshot. Variances are recorded, never rejected.
// @Tags cash-sessions
// @Accept json
// @Produce json
// @Param sessionID path string true "Session ID"
// @Param totals body dto.CloseCashSessionRequest true "Counted totals per tender bucket"
// @Success 200 {object} dto.BalanceSnapshotResponse
// @Failure 400 {object} ErrorResponse "Invalid input or session already closed"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Session not found"
// @Failure 500 {object} ErrorResponse "Failed to close session"
// @Security BearerAuth
// @Router /cash-sessions/{sessionID}/close [post]
func (h *cashSessionHandler) closeSession(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	sessionID := c.Param("sessionID")

	var req dto.CloseCashSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CloseSession", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	operatorID, ok := middleware.GetOperatorIDFromContext(c)
	if !ok {
		logger.Error("Operator ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("session_id", sessionID))
	logger.Info("Received request to close cash session")

	snapshot, err := h.sessionService.CloseSession(c.Request.Context(), sessionID, req, operatorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Session not found for close")
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Session not found"})
		} else if errors.Is(err, apperrors.ErrInvalidState) {
			logger.Warn("Session is already closed")
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Session is already closed"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error closing session", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to close session in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to close session"})
		}
		return
	}

	logger.Info("Cash session closed",
		slog.String("expected_cash", snapshot.ExpectedCash.String()))
	c.JSON(http.StatusOK, dto.ToBalanceSnapshotResponse(snapshot))
}
