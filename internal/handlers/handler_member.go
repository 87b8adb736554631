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

const defaultMemberPageSize = 20

// memberHandler handles HTTP requests related to club members.
type memberHandler struct {
	memberService portssvc.MemberSvcFacade
}

func newMemberHandler(ms portssvc.MemberSvcFacade) *memberHandler {
	return &memberHandler{memberService: ms}
}

// registerMemberRoutes registers routes related to members.
func registerMemberRoutes(rg *gin.RouterGroup, memberService portssvc.MemberSvcFacade) {
	h := newMemberHandler(memberService)

	members := rg.Group("/members")
	{
		members.POST("", h.createMember)
		members.GET("", h.listMembers)
		members.GET("/:memberID", h.getMember)
		members.PUT("/:memberID", h.updateMember)
		members.DELETE("/:memberID", h.deactivateMember)
	}
}

// createMember godoc
// @Summary Create a new member
// @Description Registers a new club member
// @Tags members
// @Accept json
// @Produce json
// @Param member body dto.CreateMemberRequest true "Member details"
// @Success 201 {object} dto.MemberResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to create member"
// @Security BearerAuth
// @Router /members [post]
func (h *memberHandler) createMember(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateMember", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	operatorID, ok := middleware.GetOperatorIDFromContext(c)
	if !ok {
		logger.Error("Operator ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	logger.Info("Received request to create member", slog.String("full_name", req.FullName))

	member, err := h.memberService.CreateMember(c.Request.Context(), req, operatorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating member", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to create member in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create member"})
		}
		return
	}

	logger.Info("Member created", slog.String("member_id", member.MemberID))
	c.JSON(http.StatusCreated, dto.ToMemberResponse(member))
}

// getMember godoc
// @Summary Get a member by ID
// @Description Retrieves details for a specific member
// @Tags members
// @Produce json
// @Param memberID path string true "Member ID"
// @Success 200 {object} dto.MemberResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Member not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve member"
// @Security BearerAuth
// @Router /members/{memberID} [get]
func (h *memberHandler) getMember(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	memberID := c.Param("memberID")

	member, err := h.memberService.GetMemberByID(c.Request.Context(), memberID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Member not found", slog.String("member_id", memberID))
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Member not found"})
		} else {
			logger.Error("Failed to get member from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve member"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToMemberResponse(member))
}

// listMembers godoc
// @Summary List members
// @Description Retrieves members newest-first with token pagination
// @Tags members
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Continuation token"
// @Success 200 {object} dto.ListMembersResponse
// @Failure 400 {object} ErrorResponse "Invalid pagination token"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to list members"
// @Security BearerAuth
// @Router /members [get]
func (h *memberHandler) listMembers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	limit := defaultMemberPageSize
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

	members, newToken, err := h.memberService.ListMembers(c.Request.Context(), limit, nextToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Invalid pagination token for ListMembers")
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid pagination token"})
		} else {
			logger.Error("Failed to list members from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list members"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ListMembersResponse{
		Members:   dto.ToMemberResponses(members),
		NextToken: newToken,
	})
}

// updateMember godoc
// @Summary Update a member
// @Description Updates a member's contact details
// @Tags members
// @Accept json
// @Produce json
// @Param memberID path string true "Member ID"
// @Param member body dto.UpdateMemberRequest true "Fields to update"
// @Success 200 {object} dto.MemberResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Member not found"
// @Failure 500 {object} ErrorResponse "Failed to update member"
// @Security BearerAuth
// @Router /members/{memberID} [put]
func (h *memberHandler) updateMember(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	memberID := c.Param("memberID")

	var req dto.UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateMember", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	operatorID, ok := middleware.GetOperatorIDFromContext(c)
	if !ok {
		logger.Error("Operator ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("member_id", memberID))
	logger.Info("Received request to update member")

	member, err := h.memberService.UpdateMember(c.Request.Context(), memberID, req, operatorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Member not found for update")
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Member not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error updating member", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to update member in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update member"})
		}
		return
	}

	logger.Info("Member updated")
	c.JSON(http.StatusOK, dto.ToMemberResponse(member))
}

// deactivateMember godoc
// @Summary Deactivate a member
// @Description Marks a member inactive (soft delete)
// @Tags members
// @Produce json
// @Param memberID path string true "Member ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Member not found"
// @Failure 500 {object} ErrorResponse "Failed to deactivate member"
// @Security BearerAuth
// @Router /members/{memberID} [delete]
func (h *memberHandler) deactivateMember(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	memberID := c.Param("memberID")

	operatorID, ok := middleware.GetOperatorIDFromContext(c)
	if !ok {
		logger.Error("Operator ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	logger.Info("Received request to deactivate member", slog.String("member_id", memberID))

	if err := h.memberService.DeactivateMember(c.Request.Context(), memberID, operatorID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Member not found for deactivation", slog.String("member_id", memberID))
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Member not found"})
		} else {
			logger.Error("Failed to deactivate member in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to deactivate member"})
		}
		return
	}

	logger.Info("Member deactivated", slog.String("member_id", memberID))
	c.Status(http.StatusNoContent)
}
