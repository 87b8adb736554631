package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/clubdesk/club_desk_app/internal/apperrors"
	"github.com/clubdesk/club_desk_app/internal/core/domain"
	portssvc "github.com/clubdesk/club_desk_app/internal/core/ports/services"
	"github.com/clubdesk/club_desk_app/internal/core/services"
	"github.com/clubdesk/club_desk_app/internal/dto"
)

// --- Mock PaymentRepository ---
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) ListPaymentsByMember(ctx context.Context, memberID string) ([]domain.Payment, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

// --- Mock MemberRepository ---
type MockMemberRepository struct {
	mock.Mock
}

func (m *MockMemberRepository) FindMemberByID(ctx context.Context, memberID string) (*domain.Member, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

func (m *MockMemberRepository) ListMembers(ctx context.Context, limit int, nextToken *string) ([]domain.Member, *string, error) {
	args := m.Called(ctx, limit, nextToken)
	var members []domain.Member
	if args.Get(0) != nil {
		members = args.Get(0).([]domain.Member)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return members, token, args.Error(2)
}

func (m *MockMemberRepository) SaveMember(ctx context.Context, member domain.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockMemberRepository) UpdateMember(ctx context.Context, member domain.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockMemberRepository) DeactivateMember(ctx context.Context, memberID string, updatedBy string) error {
	args := m.Called(ctx, memberID, updatedBy)
	return args.Error(0)
}

// --- Test Suite ---
type PaymentServiceTestSuite struct {
	suite.Suite
	mockPaymentRepo *MockPaymentRepository
	mockMemberRepo  *MockMemberRepository
	mockMethodRepo  *MockPaymentMethodRepository
	mockAudit       *MockAuditService
	service         portssvc.PaymentSvcFacade
}

func (suite *PaymentServiceTestSuite) SetupTest() {
	suite.mockPaymentRepo = new(MockPaymentRepository)
	suite.mockMemberRepo = new(MockMemberRepository)
	suite.mockMethodRepo = new(MockPaymentMethodRepository)
	suite.mockAudit = new(MockAuditService)
	suite.mockAudit.On("LogAsync", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Maybe()
	suite.service = services.NewPaymentService(suite.mockPaymentRepo, suite.mockMemberRepo, suite.mockMethodRepo, suite.mockAudit)
}

func activeMember() *domain.Member {
	return &domain.Member{MemberID: uuid.NewString(), FullName: "Ada Lovelace", IsActive: true}
}

func (suite *PaymentServiceTestSuite) TestCreatePayment_Success() {
	ctx := context.Background()
	operatorID := uuid.NewString()
	member := activeMember()
	method := cashMethod()
	req := dto.CreatePaymentRequest{
		MemberID: member.MemberID,
		MethodID: method.MethodID,
		Amount:   decimal.RequireFromString("45.00"),
		Notes:    "monthly dues",
	}

	suite.mockMemberRepo.On("FindMemberByID", ctx, member.MemberID).Return(member, nil).Once()
	suite.mockMethodRepo.On("FindMethodByID", ctx, method.MethodID).Return(&method, nil).Once()
	suite.mockPaymentRepo.On("SavePayment", ctx, mock.MatchedBy(func(p domain.Payment) bool {
		return p.MemberID == member.MemberID &&
			p.MethodID == method.MethodID &&
			p.Amount.Equal(req.Amount) &&
			p.CreatedBy == operatorID &&
			p.PaymentID != ""
	})).Return(nil).Once()

	payment, err := suite.service.CreatePayment(ctx, req, operatorID)

	suite.Require().NoError(err)
	suite.Require().NotNil(payment)
	suite.Equal(req.Notes, payment.Notes)
	suite.mockPaymentRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestCreatePayment_NonPositiveAmountRejected() {
	ctx := context.Background()
	req := dto.CreatePaymentRequest{
		MemberID: uuid.NewString(),
		MethodID: uuid.NewString(),
		Amount:   decimal.Zero,
	}

	payment, err := suite.service.CreatePayment(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(payment)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockMemberRepo.AssertNotCalled(suite.T(), "FindMemberByID")
}

func (suite *PaymentServiceTestSuite) TestCreatePayment_UnknownMember() {
	ctx := context.Background()
	req := dto.CreatePaymentRequest{
		MemberID: uuid.NewString(),
		MethodID: uuid.NewString(),
		Amount:   decimal.RequireFromString("10.00"),
	}

	suite.mockMemberRepo.On("FindMemberByID", ctx, req.MemberID).Return(nil, apperrors.ErrNotFound).Once()

	payment, err := suite.service.CreatePayment(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(payment)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "SavePayment")
}

func (suite *PaymentServiceTestSuite) TestCreatePayment_InactiveMemberRejected() {
	ctx := context.Background()
	member := activeMember()
	member.IsActive = false
	req := dto.CreatePaymentRequest{
		MemberID: member.MemberID,
		MethodID: uuid.NewString(),
		Amount:   decimal.RequireFromString("10.00"),
	}

	suite.mockMemberRepo.On("FindMemberByID", ctx, member.MemberID).Return(member, nil).Once()

	payment, err := suite.service.CreatePayment(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(payment)
	suite.ErrorIs(err, apperrors.ErrInvalidState)
	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "SavePayment")
}

func (suite *PaymentServiceTestSuite) TestCreatePayment_InactiveMethodRejected() {
	ctx := context.Background()
	member := activeMember()
	method := cashMethod()
	method.IsActive = false
	req := dto.CreatePaymentRequest{
		MemberID: member.MemberID,
		MethodID: method.MethodID,
		Amount:   decimal.RequireFromString("10.00"),
	}

	suite.mockMemberRepo.On("FindMemberByID", ctx, member.MemberID).Return(member, nil).Once()
	suite.mockMethodRepo.On("FindMethodByID", ctx, method.MethodID).Return(&method, nil).Once()

	payment, err := suite.service.CreatePayment(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(payment)
	suite.ErrorIs(err, apperrors.ErrInvalidState)
	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "SavePayment")
}

func (suite *PaymentServiceTestSuite) TestListPaymentsByMember_UnknownMember() {
	ctx := context.Background()
	memberID := uuid.NewString()

	suite.mockMemberRepo.On("FindMemberByID", ctx, memberID).Return(nil, apperrors.ErrNotFound).Once()

	payments, err := suite.service.ListPaymentsByMember(ctx, memberID)

	suite.Require().Error(err)
	suite.Nil(payments)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "ListPaymentsByMember")
}

// --- Run Suite ---
func TestPaymentService(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}
