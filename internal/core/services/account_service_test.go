package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/yuanzhi/finledger/internal/apperrors"
	"github.com/yuanzhi/finledger/internal/core/domain"
	portsrepo "github.com/yuanzhi/finledger/internal/core/ports/repositories"
	portssvc "github.com/yuanzhi/finledger/internal/core/ports/services"
	"github.com/yuanzhi/finledger/internal/core/services"
	"github.com/yuanzhi/finledger/internal/dto"
)

// --- Mock AccountRepository ---
type MockAccountRepository struct {
	mock.Mock
}

var _ portsrepo.AccountRepository = (*MockAccountRepository)(nil)

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccountsByCategory(ctx context.Context, category domain.AccountCategory) ([]domain.Account, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListRootAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListChildAccounts(ctx context.Context, parentAccountID string) ([]domain.Account, error) {
	args := m.Called(ctx, parentAccountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) DeleteAccount(ctx context.Context, accountID string) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

// --- Test Suite Setup ---
type AccountServiceTestSuite struct {
	suite.Suite
	mockRepo   *MockAccountRepository
	service    portssvc.AccountSvcFacade
	manager    domain.Actor
	accountant domain.Actor
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAccountRepository)
	suite.service = services.NewAccountService(suite.mockRepo)
	suite.manager = domain.Actor{UserID: uuid.NewString(), Username: "wei", Role: domain.RoleManager}
	suite.accountant = domain.Actor{UserID: uuid.NewString(), Username: "liang", Role: domain.RoleAccountant}
}

func (suite *AccountServiceTestSuite) TestCreateAccount_DefaultCurrency() {
	req := dto.CreateAccountRequest{Code: "1001", Name: "Cash", Category: domain.Asset}

	suite.mockRepo.On("ExistsByCode", mock.Anything, "1001").Return(false, nil).Once()
	suite.mockRepo.On("SaveAccount", mock.Anything, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	account, err := suite.service.CreateAccount(context.Background(), suite.manager, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(account)
	suite.Equal("CNY", account.Currency)
	suite.Equal(domain.Asset, account.Category)
	suite.NotEmpty(account.AccountID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_ExplicitCurrency() {
	req := dto.CreateAccountRequest{Code: "1002", Name: "USD Cash", Category: domain.Asset, Currency: "USD"}

	suite.mockRepo.On("ExistsByCode", mock.Anything, "1002").Return(false, nil).Once()
	suite.mockRepo.On("SaveAccount", mock.Anything, mock.Anything).Return(nil).Once()

	account, err := suite.service.CreateAccount(context.Background(), suite.manager, req)

	suite.Require().NoError(err)
	suite.Equal("USD", account.Currency)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_DuplicateCode() {
	req := dto.CreateAccountRequest{Code: "1001", Name: "Cash", Category: domain.Asset}

	suite.mockRepo.On("ExistsByCode", mock.Anything, "1001").Return(true, nil).Once()

	account, err := suite.service.CreateAccount(context.Background(), suite.manager, req)

	suite.Require().Error(err)
	suite.Nil(account)
	suite.True(errors.Is(err, apperrors.ErrDuplicate))

	var dupErr *apperrors.DuplicateCodeError
	suite.Require().True(errors.As(err, &dupErr))
	suite.Equal("1001", dupErr.Code)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_ForbiddenForAccountant() {
	req := dto.CreateAccountRequest{Code: "1001", Name: "Cash", Category: domain.Asset}

	account, err := suite.service.CreateAccount(context.Background(), suite.accountant, req)

	suite.Require().Error(err)
	suite.Nil(account)
	suite.True(errors.Is(err, apperrors.ErrForbidden))
	suite.mockRepo.AssertNotCalled(suite.T(), "ExistsByCode", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_WithParent() {
	parentID := uuid.NewString()
	req := dto.CreateAccountRequest{Code: "1001.1", Name: "Petty Cash", Category: domain.Asset, ParentAccountID: &parentID}

	suite.mockRepo.On("ExistsByCode", mock.Anything, "1001.1").Return(false, nil).Once()
	suite.mockRepo.On("SaveAccount", mock.Anything, mock.Anything).Return(nil).Once()

	account, err := suite.service.CreateAccount(context.Background(), suite.manager, req)

	suite.Require().NoError(err)
	suite.Equal(parentID, account.ParentAccountID)
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_PartialMerge() {
	accountID := uuid.NewString()
	stored := &domain.Account{AccountID: accountID, Code: "1001", Name: "Cash", Category: domain.Asset, Currency: "CNY"}
	newName := "Cash on Hand"

	suite.mockRepo.On("FindAccountByID", mock.Anything, accountID).Return(stored, nil).Once()
	suite.mockRepo.On("UpdateAccount", mock.Anything, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	account, err := suite.service.UpdateAccount(context.Background(), suite.manager, accountID, dto.UpdateAccountRequest{Name: &newName})

	suite.Require().NoError(err)
	suite.Equal("Cash on Hand", account.Name)
	suite.Equal("1001", account.Code)
	suite.Equal("CNY", account.Currency)
}

func (suite *AccountServiceTestSuite) TestDeleteAccount_Childless() {
	accountID := uuid.NewString()
	stored := &domain.Account{AccountID: accountID, Code: "1001", Category: domain.Asset}

	suite.mockRepo.On("FindAccountByID", mock.Anything, accountID).Return(stored, nil).Once()
	suite.mockRepo.On("ListChildAccounts", mock.Anything, accountID).Return([]domain.Account{}, nil).Once()
	suite.mockRepo.On("DeleteAccount", mock.Anything, accountID).Return(nil).Once()

	err := suite.service.DeleteAccount(context.Background(), suite.manager, accountID)

	suite.NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestDeleteAccount_BlockedByChildren() {
	accountID := uuid.NewString()
	stored := &domain.Account{AccountID: accountID, Code: "1001", Category: domain.Asset}
	children := []domain.Account{{AccountID: uuid.NewString(), ParentAccountID: accountID}}

	suite.mockRepo.On("FindAccountByID", mock.Anything, accountID).Return(stored, nil).Once()
	suite.mockRepo.On("ListChildAccounts", mock.Anything, accountID).Return(children, nil).Once()

	err := suite.service.DeleteAccount(context.Background(), suite.manager, accountID)

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrConflict))

	var hasChildrenErr *apperrors.HasChildrenError
	suite.Require().True(errors.As(err, &hasChildrenErr))
	suite.Equal(accountID, hasChildrenErr.AccountID)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestListAccountsByCategory_InvalidCategory() {
	accounts, err := suite.service.ListAccountsByCategory(context.Background(), domain.AccountCategory("GOODWILL"))

	suite.Require().Error(err)
	suite.Nil(accounts)
	suite.True(errors.Is(err, apperrors.ErrValidation))
	suite.mockRepo.AssertNotCalled(suite.T(), "ListAccountsByCategory", mock.Anything, mock.Anything)
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
