package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/yuanzhi/finledger/internal/apperrors"
	"github.com/yuanzhi/finledger/internal/core/domain"
	portsrepo "github.com/yuanzhi/finledger/internal/core/ports/repositories"
	portssvc "github.com/yuanzhi/finledger/internal/core/ports/services"
	"github.com/yuanzhi/finledger/internal/core/services"
	"github.com/yuanzhi/finledger/internal/dto"
)

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

var _ portsrepo.TransactionRepository = (*MockTransactionRepository)(nil)

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListPendingTransactions(ctx context.Context) ([]domain.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactionsByUser(ctx context.Context, userID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	args := m.Called(ctx, transactionID)
	return args.Error(0)
}

// --- Test Suite Setup ---
type TransactionServiceTestSuite struct {
	suite.Suite
	mockRepo   *MockTransactionRepository
	service    portssvc.TransactionSvcFacade
	accountant domain.Actor
	manager    domain.Actor
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockTransactionRepository)
	suite.service = services.NewTransactionService(suite.mockRepo)
	suite.accountant = domain.Actor{UserID: uuid.NewString(), Username: "liang", Role: domain.RoleAccountant}
	suite.manager = domain.Actor{UserID: uuid.NewString(), Username: "wei", Role: domain.RoleManager}
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_Defaults() {
	req := dto.CreateTransactionRequest{
		Counterparty: "Acme Supplies",
		TotalAmount:  decimal.NewFromInt(500),
	}

	suite.mockRepo.On("SaveTransaction", mock.Anything, mock.AnythingOfType("domain.Transaction")).Return(nil).Once()

	before := time.Now().UTC()
	txn, err := suite.service.CreateTransaction(context.Background(), suite.accountant, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.Equal(domain.TransactionPending, txn.Status)
	suite.Equal(suite.accountant.UserID, txn.UserID)
	suite.NotEmpty(txn.TransactionID)
	suite.False(txn.Date.Before(before))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_ExplicitDate() {
	date := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	req := dto.CreateTransactionRequest{
		Counterparty: "Acme Supplies",
		Date:         &date,
		TotalAmount:  decimal.NewFromInt(500),
	}

	suite.mockRepo.On("SaveTransaction", mock.Anything, mock.Anything).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(context.Background(), suite.accountant, req)

	suite.Require().NoError(err)
	suite.True(date.Equal(txn.Date))
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_ForbiddenForManager() {
	req := dto.CreateTransactionRequest{Counterparty: "Acme Supplies", TotalAmount: decimal.NewFromInt(500)}

	txn, err := suite.service.CreateTransaction(context.Background(), suite.manager, req)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.True(errors.Is(err, apperrors.ErrForbidden))
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_PartialMerge() {
	transactionID := uuid.NewString()
	stored := &domain.Transaction{
		TransactionID: transactionID,
		Counterparty:  "Acme Supplies",
		Project:       "warehouse",
		TotalAmount:   decimal.NewFromInt(500),
		Status:        domain.TransactionPending,
	}
	newCounterparty := "Beta Logistics"

	suite.mockRepo.On("FindTransactionByID", mock.Anything, transactionID).Return(stored, nil).Once()
	suite.mockRepo.On("UpdateTransaction", mock.Anything, mock.AnythingOfType("domain.Transaction")).Return(nil).Once()

	txn, err := suite.service.UpdateTransaction(context.Background(), suite.accountant, transactionID, dto.UpdateTransactionRequest{
		Counterparty: &newCounterparty,
	})

	suite.Require().NoError(err)
	suite.Equal("Beta Logistics", txn.Counterparty)
	// untouched fields keep their stored values
	suite.Equal("warehouse", txn.Project)
	suite.Equal(domain.TransactionPending, txn.Status)
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_LegalStatusTransition() {
	transactionID := uuid.NewString()
	stored := &domain.Transaction{TransactionID: transactionID, Status: domain.TransactionPosted}
	paid := domain.TransactionPaid

	suite.mockRepo.On("FindTransactionByID", mock.Anything, transactionID).Return(stored, nil).Once()
	suite.mockRepo.On("UpdateTransaction", mock.Anything, mock.Anything).Return(nil).Once()

	txn, err := suite.service.UpdateTransaction(context.Background(), suite.accountant, transactionID, dto.UpdateTransactionRequest{
		Status: &paid,
	})

	suite.Require().NoError(err)
	suite.Equal(domain.TransactionPaid, txn.Status)
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_SkippingStatusRejected() {
	transactionID := uuid.NewString()
	stored := &domain.Transaction{TransactionID: transactionID, Status: domain.TransactionPending}
	paid := domain.TransactionPaid

	suite.mockRepo.On("FindTransactionByID", mock.Anything, transactionID).Return(stored, nil).Once()

	txn, err := suite.service.UpdateTransaction(context.Background(), suite.accountant, transactionID, dto.UpdateTransactionRequest{
		Status: &paid,
	})

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.True(errors.Is(err, apperrors.ErrConflict))
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_NotFound() {
	transactionID := uuid.NewString()

	suite.mockRepo.On("FindTransactionByID", mock.Anything, transactionID).
		Return(nil, apperrors.NewNotFoundError("transaction", transactionID)).Once()

	txn, err := suite.service.UpdateTransaction(context.Background(), suite.accountant, transactionID, dto.UpdateTransactionRequest{})

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.True(errors.Is(err, apperrors.ErrNotFound))
}

func (suite *TransactionServiceTestSuite) TestDeleteTransaction() {
	transactionID := uuid.NewString()
	stored := &domain.Transaction{TransactionID: transactionID, Status: domain.TransactionPending}

	suite.mockRepo.On("FindTransactionByID", mock.Anything, transactionID).Return(stored, nil).Once()
	suite.mockRepo.On("DeleteTransaction", mock.Anything, transactionID).Return(nil).Once()

	err := suite.service.DeleteTransaction(context.Background(), suite.accountant, transactionID)

	suite.NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestDeleteTransaction_ForbiddenForManager() {
	err := suite.service.DeleteTransaction(context.Background(), suite.manager, uuid.NewString())

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrForbidden))
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestListPendingTransactions() {
	pending := []domain.Transaction{
		{TransactionID: uuid.NewString(), Status: domain.TransactionPending},
	}

	suite.mockRepo.On("ListPendingTransactions", mock.Anything).Return(pending, nil).Once()

	got, err := suite.service.ListPendingTransactions(context.Background())

	suite.Require().NoError(err)
	suite.Len(got, 1)
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
