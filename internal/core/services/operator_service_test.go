package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/clubdesk/club_desk_app/internal/apperrors"
	"github.com/clubdesk/club_desk_app/internal/core/domain"
	portssvc "github.com/clubdesk/club_desk_app/internal/core/ports/services"
	"github.com/clubdesk/club_desk_app/internal/core/services"
	"github.com/clubdesk/club_desk_app/internal/dto"
	"github.com/clubdesk/club_desk_app/internal/utils"
)

// --- Mock OperatorRepository ---
type MockOperatorRepository struct {
	mock.Mock
}

func (m *MockOperatorRepository) SaveOperator(ctx context.Context, operator domain.Operator) error {
	args := m.Called(ctx, operator)
	return args.Error(0)
}

func (m *MockOperatorRepository) FindOperatorByID(ctx context.Context, operatorID string) (*domain.Operator, error) {
	args := m.Called(ctx, operatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Operator), args.Error(1)
}

func (m *MockOperatorRepository) FindOperatorByUsername(ctx context.Context, username string) (*domain.Operator, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Operator), args.Error(1)
}

func (m *MockOperatorRepository) ListOperators(ctx context.Context) ([]domain.Operator, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Operator), args.Error(1)
}

// --- Test Suite ---
type OperatorServiceTestSuite struct {
	suite.Suite
	mockRepo *MockOperatorRepository
	service  portssvc.OperatorSvcFacade
}

func (suite *OperatorServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockOperatorRepository)
	suite.service = services.NewOperatorService(suite.mockRepo)
}

func (suite *OperatorServiceTestSuite) TestCreateOperator_Success() {
	ctx := context.Background()
	creatorID := uuid.NewString()
	req := dto.CreateOperatorRequest{Name: "Front Desk", Username: "  FrontDesk  ", Password: "s3cret-pass"}

	suite.mockRepo.On("SaveOperator", ctx, mock.MatchedBy(func(o domain.Operator) bool {
		return o.Username == "frontdesk" &&
			o.Name == req.Name &&
			o.OperatorID != "" &&
			o.PasswordHash != "" &&
			o.PasswordHash != req.Password
	})).Return(nil).Once()

	operator, err := suite.service.CreateOperator(ctx, req, creatorID)

	suite.Require().NoError(err)
	suite.Require().NotNil(operator)
	suite.Equal("frontdesk", operator.Username)
	suite.True(utils.CheckPasswordHash(req.Password, operator.PasswordHash))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *OperatorServiceTestSuite) TestCreateOperator_BlankUsernameRejected() {
	ctx := context.Background()
	req := dto.CreateOperatorRequest{Name: "Nobody", Username: "   ", Password: "s3cret-pass"}

	operator, err := suite.service.CreateOperator(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(operator)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveOperator")
}

func (suite *OperatorServiceTestSuite) TestCreateOperator_DuplicateUsername() {
	ctx := context.Background()
	req := dto.CreateOperatorRequest{Name: "Front Desk", Username: "frontdesk", Password: "s3cret-pass"}

	suite.mockRepo.On("SaveOperator", ctx, mock.AnythingOfType("domain.Operator")).
		Return(apperrors.ErrDuplicate).Once()

	operator, err := suite.service.CreateOperator(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(operator)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *OperatorServiceTestSuite) TestAuthenticate_Success() {
	ctx := context.Background()
	hash, err := utils.HashPassword("s3cret-pass")
	suite.Require().NoError(err)

	stored := &domain.Operator{OperatorID: uuid.NewString(), Username: "frontdesk", PasswordHash: hash}
	suite.mockRepo.On("FindOperatorByUsername", ctx, "frontdesk").Return(stored, nil).Once()

	operator, err := suite.service.Authenticate(ctx, " FrontDesk ", "s3cret-pass")

	suite.Require().NoError(err)
	suite.Equal(stored.OperatorID, operator.OperatorID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *OperatorServiceTestSuite) TestAuthenticate_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("s3cret-pass")
	suite.Require().NoError(err)

	stored := &domain.Operator{OperatorID: uuid.NewString(), Username: "frontdesk", PasswordHash: hash}
	suite.mockRepo.On("FindOperatorByUsername", ctx, "frontdesk").Return(stored, nil).Once()

	operator, err := suite.service.Authenticate(ctx, "frontdesk", "wrong-pass")

	suite.Require().Error(err)
	suite.Nil(operator)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

// Unknown usernames come back as the same error as a wrong password, so a
// caller cannot probe which usernames exist.
func (suite *OperatorServiceTestSuite) TestAuthenticate_UnknownUsername() {
	ctx := context.Background()

	suite.mockRepo.On("FindOperatorByUsername", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	operator, err := suite.service.Authenticate(ctx, "ghost", "whatever")

	suite.Require().Error(err)
	suite.Nil(operator)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.NotErrorIs(err, apperrors.ErrNotFound)
}

// --- Run Suite ---
func TestOperatorService(t *testing.T) {
	suite.Run(t, new(OperatorServiceTestSuite))
}
