package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/clubdesk/club_desk_app/internal/core/domain"
	"github.com/clubdesk/club_desk_app/internal/core/services"
)

// MockAuditLogRepository records writes and signals a channel so tests can wait
// for the background goroutine without sleeping.
type MockAuditLogRepository struct {
	mock.Mock
	saved chan domain.AuditLog
}

func NewMockAuditLogRepository() *MockAuditLogRepository {
	return &MockAuditLogRepository{saved: make(chan domain.AuditLog, 1)}
}

func (m *MockAuditLogRepository) SaveAuditLog(ctx context.Context, log domain.AuditLog) error {
	args := m.Called(ctx, log)
	m.saved <- log
	return args.Error(0)
}

func (m *MockAuditLogRepository) awaitWrite(t *testing.T) domain.AuditLog {
	t.Helper()
	select {
	case log := <-m.saved:
		return log
	case <-time.After(2 * time.Second):
		t.Fatal("audit write never reached the repository")
		return domain.AuditLog{}
	}
}

func TestAuditService_LogAsyncPersistsRecord(t *testing.T) {
	mockRepo := NewMockAuditLogRepository()
	service := services.NewAuditService(mockRepo)

	operatorID := uuid.NewString()
	sessionID := uuid.NewString()
	payload := map[string]string{"sessionID": sessionID}

	mockRepo.On("SaveAuditLog", mock.Anything, mock.MatchedBy(func(log domain.AuditLog) bool {
		return log.Action == domain.CashSessionOpened &&
			log.EntityName == "cash_session" &&
			log.EntityID == sessionID &&
			log.OperatorID == operatorID &&
			log.AuditID != ""
	})).Return(nil).Once()

	service.LogAsync(context.Background(), domain.CashSessionOpened, "cash_session", sessionID, operatorID, payload)

	saved := mockRepo.awaitWrite(t)
	assert.JSONEq(t, `{"sessionID":"`+sessionID+`"}`, string(saved.Payload))
	assert.WithinDuration(t, time.Now().UTC(), saved.CreatedAt, 5*time.Second)
	mockRepo.AssertExpectations(t)
}

func TestAuditService_NilPayloadAllowed(t *testing.T) {
	mockRepo := NewMockAuditLogRepository()
	service := services.NewAuditService(mockRepo)

	mockRepo.On("SaveAuditLog", mock.Anything, mock.AnythingOfType("domain.AuditLog")).Return(nil).Once()

	service.LogAsync(context.Background(), domain.MemberDeactivated, "member", uuid.NewString(), uuid.NewString(), nil)

	saved := mockRepo.awaitWrite(t)
	assert.Nil(t, saved.Payload)
	mockRepo.AssertExpectations(t)
}

// A repository failure must stay inside the audit service. The caller already
// returned by the time the write runs, so there is nothing to propagate to.
func TestAuditService_WriteFailureSwallowed(t *testing.T) {
	mockRepo := NewMockAuditLogRepository()
	service := services.NewAuditService(mockRepo)

	mockRepo.On("SaveAuditLog", mock.Anything, mock.AnythingOfType("domain.AuditLog")).
		Return(assert.AnError).Once()

	require.NotPanics(t, func() {
		service.LogAsync(context.Background(), domain.CashSessionClosed, "cash_session", uuid.NewString(), uuid.NewString(), nil)
		mockRepo.awaitWrite(t)
	})
	mockRepo.AssertExpectations(t)
}

// Cancelling the request context must not cancel the audit write, which runs on
// a detached context.
func TestAuditService_SurvivesCallerContextCancellation(t *testing.T) {
	mockRepo := NewMockAuditLogRepository()
	service := services.NewAuditService(mockRepo)

	mockRepo.On("SaveAuditLog", mock.MatchedBy(func(ctx context.Context) bool {
		return ctx.Err() == nil
	}), mock.AnythingOfType("domain.AuditLog")).Return(nil).Once()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	service.LogAsync(ctx, domain.PaymentCreated, "payment", uuid.NewString(), uuid.NewString(), nil)

	mockRepo.awaitWrite(t)
	mockRepo.AssertExpectations(t)
}
