package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/clubdesk/club_desk_app/internal/apperrors"
	"github.com/clubdesk/club_desk_app/internal/core/domain"
	portssvc "github.com/clubdesk/club_desk_app/internal/core/ports/services"
	"github.com/clubdesk/club_desk_app/internal/dto"
	"github.com/clubdesk/club_desk_app/internal/middleware"
)

// --- Mock CashSessionService ---
type MockCashSessionService struct {
	mock.Mock
}

func (m *MockCashSessionService) OpenSession(ctx context.Context, req dto.OpenCashSessionRequest, operatorID string) (*domain.CashSession, error) {
	args := m.Called(ctx, req, operatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashSession), args.Error(1)
}

func (m *MockCashSessionService) AddMovement(ctx context.Context, sessionID string, req dto.AddMovementRequest, operatorID string) (*domain.CashMovement, error) {
	args := m.Called(ctx, sessionID, req, operatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashMovement), args.Error(1)
}

func (m *MockCashSessionService) CloseSession(ctx context.Context, sessionID string, req dto.CloseCashSessionRequest, operatorID string) (*domain.BalanceSnapshot, error) {
	args := m.Called(ctx, sessionID, req, operatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceSnapshot), args.Error(1)
}

func (m *MockCashSessionService) GetOpenSnapshot(ctx context.Context) (*domain.BalanceSnapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceSnapshot), args.Error(1)
}

func (m *MockCashSessionService) GetSnapshot(ctx context.Context, sessionID string) (*domain.BalanceSnapshot, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceSnapshot), args.Error(1)
}

func (m *MockCashSessionService) ListSessions(ctx context.Context, limit int, nextToken *string) ([]domain.CashSession, *string, error) {
	args := m.Called(ctx, limit, nextToken)
	var sessions []domain.CashSession
	if args.Get(0) != nil {
		sessions = args.Get(0).([]domain.CashSession)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return sessions, token, args.Error(2)
}

func (m *MockCashSessionService) ListMovements(ctx context.Context, sessionID string) ([]domain.CashMovement, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CashMovement), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.CashSessionSvcFacade = (*MockCashSessionService)(nil)

// --- Test Suite ---
type CashSessionHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockCashSessionService
	jwtSecret   string
}

// generateTestToken creates a signed JWT for testing.
func (suite *CashSessionHandlerTestSuite) generateTestToken(operatorID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "clubdesk-test",
		Subject:   operatorID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *CashSessionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockService = new(MockCashSessionService)

	v1 := suite.router.Group("/api/v1")
	registerCashSessionRoutes(v1, suite.mockService)
}

func (suite *CashSessionHandlerTestSuite) doJSON(method, url string, body any, operatorID string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req, _ := http.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(operatorID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *CashSessionHandlerTestSuite) TestOpenSession_Success() {
	operatorID := uuid.NewString()
	now := time.Now().UTC()
	session := &domain.CashSession{
		SessionID:     uuid.NewString(),
		OpenedBy:      operatorID,
		OpenedAt:      now,
		OpeningAmount: decimal.RequireFromString("100.00"),
		Status:        domain.SessionOpen,
	}

	suite.mockService.On("OpenSession",
		mock.Anything,
		mock.MatchedBy(func(req dto.OpenCashSessionRequest) bool {
			return req.OpeningAmount.Equal(decimal.RequireFromString("100.00"))
		}),
		operatorID,
	).Return(session, nil).Once()

	w := suite.doJSON(http.MethodPost, "/api/v1/cash-sessions", gin.H{"openingAmount": "100.00"}, operatorID)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.CashSessionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(session.SessionID, resp.SessionID)
	suite.Equal(string(domain.SessionOpen), resp.Status)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *CashSessionHandlerTestSuite) TestOpenSession_ConflictReturns409() {
	operatorID := uuid.NewString()

	suite.mockService.On("OpenSession", mock.Anything, mock.Anything, operatorID).
		Return(nil, apperrors.ErrConflict).Once()

	w := suite.doJSON(http.MethodPost, "/api/v1/cash-sessions", gin.H{"openingAmount": "50.00"}, operatorID)

	suite.Equal(http.StatusConflict, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *CashSessionHandlerTestSuite) TestOpenSession_Unauthenticated() {
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/cash-sessions", bytes.NewBufferString(`{"openingAmount":"10.00"}`))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "OpenSession")
}

func (suite *CashSessionHandlerTestSuite) TestGetOpenSnapshot_NoneOpenReturns404() {
	operatorID := uuid.NewString()

	suite.mockService.On("GetOpenSnapshot", mock.Anything).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doJSON(http.MethodGet, "/api/v1/cash-sessions/open", nil, operatorID)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *CashSessionHandlerTestSuite) TestAddMovement_Success() {
	operatorID := uuid.NewString()
	sessionID := uuid.NewString()
	movement := &domain.CashMovement{
		MovementID: uuid.NewString(),
		SessionID:  sessionID,
		Kind:       domain.MovementOut,
		Amount:     decimal.RequireFromString("20.00"),
		Notes:      "bank drop",
		CreatedAt:  time.Now().UTC(),
		CreatedBy:  operatorID,
	}

	suite.mockService.On("AddMovement",
		mock.Anything,
		sessionID,
		mock.MatchedBy(func(req dto.AddMovementRequest) bool {
			return req.Kind == "OUT" && req.Amount.Equal(decimal.RequireFromString("20.00"))
		}),
		operatorID,
	).Return(movement, nil).Once()

	url := fmt.Sprintf("/api/v1/cash-sessions/%s/movements", sessionID)
	w := suite.doJSON(http.MethodPost, url, gin.H{"kind": "OUT", "amount": "20.00", "notes": "bank drop"}, operatorID)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.CashMovementResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(movement.MovementID, resp.MovementID)
	suite.Equal("OUT", resp.Kind)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *CashSessionHandlerTestSuite) TestAddMovement_ClosedSessionReturns400() {
	operatorID := uuid.NewString()
	sessionID := uuid.NewString()

	suite.mockService.On("AddMovement", mock.Anything, sessionID, mock.Anything, operatorID).
		Return(nil, apperrors.ErrInvalidState).Once()

	url := fmt.Sprintf("/api/v1/cash-sessions/%s/movements", sessionID)
	w := suite.doJSON(http.MethodPost, url, gin.H{"kind": "IN", "amount": "5.00"}, operatorID)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *CashSessionHandlerTestSuite) TestAddMovement_BadKindRejectedByBinding() {
	operatorID := uuid.NewString()
	sessionID := uuid.NewString()

	url := fmt.Sprintf("/api/v1/cash-sessions/%s/movements", sessionID)
	w := suite.doJSON(http.MethodPost, url, gin.H{"kind": "SIDEWAYS", "amount": "5.00"}, operatorID)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "AddMovement")
}

func (suite *CashSessionHandlerTestSuite) TestCloseSession_Success() {
	operatorID := uuid.NewString()
	sessionID := uuid.NewString()
	now := time.Now().UTC()

	expected := decimal.RequireFromString("300.00")
	counted := decimal.RequireFromString("295.00")
	variance := decimal.RequireFromString("-5.00")
	snapshot := &domain.BalanceSnapshot{
		Session: domain.CashSession{
			SessionID:     sessionID,
			OpenedAt:      now.Add(-8 * time.Hour),
			OpeningAmount: decimal.RequireFromString("100.00"),
			Status:        domain.SessionClosed,
			ClosedBy:      &operatorID,
			ClosedAt:      &now,
			CountedCash:   &counted,
			ExpectedCash:  &expected,
			CashVariance:  &variance,
		},
		PaymentTotals:  map[string]decimal.Decimal{},
		MethodBalances: map[string]decimal.Decimal{},
		ExpectedCash:   expected,
	}

	suite.mockService.On("CloseSession",
		mock.Anything,
		sessionID,
		mock.MatchedBy(func(req dto.CloseCashSessionRequest) bool {
			return req.CountedCash.Equal(counted)
		}),
		operatorID,
	).Return(snapshot, nil).Once()

	url := fmt.Sprintf("/api/v1/cash-sessions/%s/close", sessionID)
	w := suite.doJSON(http.MethodPost, url, gin.H{
		"countedCash":     "295.00",
		"countedCard":     "120.00",
		"countedTransfer": "0",
		"countedOther":    "0",
	}, operatorID)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.BalanceSnapshotResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(sessionID, resp.Session.SessionID)
	suite.Equal(string(domain.SessionClosed), resp.Session.Status)
	suite.Require().NotNil(resp.Session.CashVariance)
	suite.True(resp.Session.CashVariance.Equal(variance))
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *CashSessionHandlerTestSuite) TestCloseSession_AlreadyClosedReturns400() {
	operatorID := uuid.NewString()
	sessionID := uuid.NewString()

	suite.mockService.On("CloseSession", mock.Anything, sessionID, mock.Anything, operatorID).
		Return(nil, apperrors.ErrInvalidState).Once()

	url := fmt.Sprintf("/api/v1/cash-sessions/%s/close", sessionID)
	w := suite.doJSON(http.MethodPost, url, gin.H{"countedCash": "0"}, operatorID)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *CashSessionHandlerTestSuite) TestListSessions_PassesPaginationParams() {
	operatorID := uuid.NewString()
	next := "b3BhcXVl"
	sessions := []domain.CashSession{{
		SessionID:     uuid.NewString(),
		OpenedAt:      time.Now().UTC(),
		OpeningAmount: decimal.RequireFromString("50.00"),
		Status:        domain.SessionClosed,
	}}

	suite.mockService.On("ListSessions", mock.Anything, 5, (*string)(nil)).
		Return(sessions, &next, nil).Once()

	w := suite.doJSON(http.MethodGet, "/api/v1/cash-sessions?limit=5", nil, operatorID)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ListSessionsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Sessions, 1)
	suite.Require().NotNil(resp.NextToken)
	suite.Equal(next, *resp.NextToken)
	suite.mockService.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestCashSessionHandler(t *testing.T) {
	suite.Run(t, new(CashSessionHandlerTestSuite))
}
