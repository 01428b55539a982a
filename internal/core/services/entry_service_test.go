package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/yuanzhi/finledger/internal/apperrors"
	"github.com/yuanzhi/finledger/internal/core/domain"
	portsrepo "github.com/yuanzhi/finledger/internal/core/ports/repositories"
	portssvc "github.com/yuanzhi/finledger/internal/core/ports/services"
	"github.com/yuanzhi/finledger/internal/core/services"
	"github.com/yuanzhi/finledger/internal/dto"
)

// --- Mock EntryRepository ---
type MockEntryRepository struct {
	mock.Mock
}

var _ portsrepo.EntryRepository = (*MockEntryRepository)(nil)

func (m *MockEntryRepository) SaveEntry(ctx context.Context, entry domain.Entry, splits []domain.Split) error {
	args := m.Called(ctx, entry, splits)
	return args.Error(0)
}

func (m *MockEntryRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.Entry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Entry), args.Error(1)
}

func (m *MockEntryRepository) ListEntries(ctx context.Context) ([]domain.Entry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Entry), args.Error(1)
}

func (m *MockEntryRepository) ListSubmittedEntries(ctx context.Context) ([]domain.Entry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Entry), args.Error(1)
}

func (m *MockEntryRepository) ListEntriesByTransaction(ctx context.Context, transactionID string) ([]domain.Entry, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Entry), args.Error(1)
}

func (m *MockEntryRepository) FindSplitsByEntryID(ctx context.Context, entryID string) ([]domain.Split, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Split), args.Error(1)
}

func (m *MockEntryRepository) UpdateEntryStatus(ctx context.Context, entryID string, status domain.EntryStatus) error {
	args := m.Called(ctx, entryID, status)
	return args.Error(0)
}

func (m *MockEntryRepository) DeleteEntry(ctx context.Context, entryID string) error {
	args := m.Called(ctx, entryID)
	return args.Error(0)
}

// --- Test Suite Setup ---
type EntryServiceTestSuite struct {
	suite.Suite
	mockEntryRepo *MockEntryRepository
	mockTxnRepo   *MockTransactionRepository
	service       portssvc.EntrySvcFacade
	accountant    domain.Actor
	manager       domain.Actor
	transaction   domain.Transaction
}

func (suite *EntryServiceTestSuite) SetupTest() {
	suite.mockEntryRepo = new(MockEntryRepository)
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.service = services.NewEntryService(suite.mockEntryRepo, suite.mockTxnRepo)

	suite.accountant = domain.Actor{UserID: uuid.NewString(), Username: "liang", Role: domain.RoleAccountant}
	suite.manager = domain.Actor{UserID: uuid.NewString(), Username: "wei", Role: domain.RoleManager}

	suite.transaction = domain.Transaction{
		TransactionID: uuid.NewString(),
		Counterparty:  "Acme Supplies",
		TotalAmount:   decimal.NewFromInt(100),
		Status:        domain.TransactionPending,
	}
}

func balancedRequest(transactionID string) dto.CreateEntryRequest {
	return dto.CreateEntryRequest{
		Summary:       "office supplies",
		TotalAmount:   decimal.NewFromInt(100),
		TransactionID: transactionID,
		Splits: []dto.CreateSplitRequest{
			{AccountID: uuid.NewString(), DebitAmount: decimal.NewFromInt(100)},
			{AccountID: uuid.NewString(), CreditAmount: decimal.NewFromInt(100)},
		},
	}
}

func (suite *EntryServiceTestSuite) TestCreateEntry_Balanced() {
	req := balancedRequest(suite.transaction.TransactionID)

	suite.mockTxnRepo.On("FindTransactionByID", mock.Anything, suite.transaction.TransactionID).Return(&suite.transaction, nil).Once()
	suite.mockEntryRepo.On("SaveEntry", mock.Anything, mock.AnythingOfType("domain.Entry"), mock.AnythingOfType("[]domain.Split")).Return(nil).Once()

	entry, err := suite.service.CreateEntry(context.Background(), suite.accountant, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(entry)
	suite.Equal(domain.EntryDraft, entry.Status)
	suite.Equal(suite.transaction.TransactionID, entry.TransactionID)
	suite.Equal(suite.accountant.UserID, entry.UserID)
	suite.NotEmpty(entry.EntryID)

	// every split must be stamped with the new entry id
	savedSplits := suite.mockEntryRepo.Calls[0].Arguments.Get(2).([]domain.Split)
	suite.Len(savedSplits, 2)
	for _, s := range savedSplits {
		suite.Equal(entry.EntryID, s.EntryID)
		suite.NotEmpty(s.SplitID)
	}
	suite.mockEntryRepo.AssertExpectations(suite.T())
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *EntryServiceTestSuite) TestCreateEntry_Unbalanced_NothingPersisted() {
	req := dto.CreateEntryRequest{
		Summary:       "bad entry",
		TransactionID: suite.transaction.TransactionID,
		Splits: []dto.CreateSplitRequest{
			{AccountID: uuid.NewString(), DebitAmount: decimal.NewFromInt(100)},
			{AccountID: uuid.NewString(), CreditAmount: decimal.RequireFromString("99.99")},
		},
	}

	entry, err := suite.service.CreateEntry(context.Background(), suite.accountant, req)

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.True(errors.Is(err, apperrors.ErrUnbalanced))

	var unbalancedErr *apperrors.UnbalancedEntryError
	suite.Require().True(errors.As(err, &unbalancedErr))
	suite.True(unbalancedErr.TotalDebit.Equal(decimal.NewFromInt(100)))
	suite.True(unbalancedErr.TotalCredit.Equal(decimal.RequireFromString("99.99")))

	// nothing may be written when the invariant fails
	suite.mockEntryRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything, mock.Anything)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "UpdateTransaction", mock.Anything, mock.Anything)
}

func (suite *EntryServiceTestSuite) TestCreateEntry_EqualDecimalRepresentations() {
	// 100 and 100.00 are the same quantity; comparison is by value
	req := dto.CreateEntryRequest{
		Summary:       "representation check",
		TransactionID: suite.transaction.TransactionID,
		Splits: []dto.CreateSplitRequest{
			{AccountID: uuid.NewString(), DebitAmount: decimal.NewFromInt(100)},
			{AccountID: uuid.NewString(), CreditAmount: decimal.RequireFromString("100.00")},
		},
	}

	suite.mockTxnRepo.On("FindTransactionByID", mock.Anything, suite.transaction.TransactionID).Return(&suite.transaction, nil).Once()
	suite.mockEntryRepo.On("SaveEntry", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

	_, err := suite.service.CreateEntry(context.Background(), suite.accountant, req)
	suite.NoError(err)
}

func (suite *EntryServiceTestSuite) TestCreateEntry_NegativeAmountRejected() {
	req := dto.CreateEntryRequest{
		Summary:       "negative",
		TransactionID: suite.transaction.TransactionID,
		Splits: []dto.CreateSplitRequest{
			{AccountID: uuid.NewString(), DebitAmount: decimal.NewFromInt(-50)},
			{AccountID: uuid.NewString(), CreditAmount: decimal.NewFromInt(-50)},
		},
	}

	_, err := suite.service.CreateEntry(context.Background(), suite.accountant, req)

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrValidation))
	suite.mockEntryRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *EntryServiceTestSuite) TestCreateEntry_MissingTransaction() {
	req := balancedRequest("no-such-transaction")

	suite.mockTxnRepo.On("FindTransactionByID", mock.Anything, "no-such-transaction").
		Return(nil, apperrors.NewNotFoundError("transaction", "no-such-transaction")).Once()

	entry, err := suite.service.CreateEntry(context.Background(), suite.accountant, req)

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.True(errors.Is(err, apperrors.ErrNotFound))
	suite.mockEntryRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *EntryServiceTestSuite) TestCreateEntry_ForbiddenForManager() {
	req := balancedRequest(suite.transaction.TransactionID)

	entry, err := suite.service.CreateEntry(context.Background(), suite.manager, req)

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.True(errors.Is(err, apperrors.ErrForbidden))
	suite.mockEntryRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything, mock.Anything)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "FindTransactionByID", mock.Anything, mock.Anything)
}

func (suite *EntryServiceTestSuite) TestCreateEntry_ExplicitStatus() {
	req := balancedRequest(suite.transaction.TransactionID)
	submitted := domain.EntrySubmitted
	req.Status = &submitted

	suite.mockTxnRepo.On("FindTransactionByID", mock.Anything, suite.transaction.TransactionID).Return(&suite.transaction, nil).Once()
	suite.mockEntryRepo.On("SaveEntry", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

	entry, err := suite.service.CreateEntry(context.Background(), suite.accountant, req)

	suite.Require().NoError(err)
	suite.Equal(domain.EntrySubmitted, entry.Status)
}

func (suite *EntryServiceTestSuite) TestUpdateEntryStatus_SubmitByAccountant() {
	entryID := uuid.NewString()
	stored := &domain.Entry{EntryID: entryID, Status: domain.EntryDraft}

	suite.mockEntryRepo.On("FindEntryByID", mock.Anything, entryID).Return(stored, nil).Once()
	suite.mockEntryRepo.On("UpdateEntryStatus", mock.Anything, entryID, domain.EntrySubmitted).Return(nil).Once()

	entry, err := suite.service.UpdateEntryStatus(context.Background(), suite.accountant, entryID, domain.EntrySubmitted)

	suite.Require().NoError(err)
	suite.Equal(domain.EntrySubmitted, entry.Status)
	suite.mockEntryRepo.AssertExpectations(suite.T())
}

func (suite *EntryServiceTestSuite) TestUpdateEntryStatus_ApproveByManager() {
	entryID := uuid.NewString()
	stored := &domain.Entry{EntryID: entryID, Status: domain.EntrySubmitted}

	suite.mockEntryRepo.On("FindEntryByID", mock.Anything, entryID).Return(stored, nil).Once()
	suite.mockEntryRepo.On("UpdateEntryStatus", mock.Anything, entryID, domain.EntryApproved).Return(nil).Once()

	entry, err := suite.service.UpdateEntryStatus(context.Background(), suite.manager, entryID, domain.EntryApproved)

	suite.Require().NoError(err)
	suite.Equal(domain.EntryApproved, entry.Status)
}

func (suite *EntryServiceTestSuite) TestUpdateEntryStatus_ApproveByAccountantForbidden() {
	entryID := uuid.NewString()

	entry, err := suite.service.UpdateEntryStatus(context.Background(), suite.accountant, entryID, domain.EntryApproved)

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.True(errors.Is(err, apperrors.ErrForbidden))
	suite.mockEntryRepo.AssertNotCalled(suite.T(), "UpdateEntryStatus", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *EntryServiceTestSuite) TestUpdateEntryStatus_IllegalTransition() {
	entryID := uuid.NewString()
	stored := &domain.Entry{EntryID: entryID, Status: domain.EntryApproved}

	suite.mockEntryRepo.On("FindEntryByID", mock.Anything, entryID).Return(stored, nil).Once()

	entry, err := suite.service.UpdateEntryStatus(context.Background(), suite.manager, entryID, domain.EntryRejected)

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.True(errors.Is(err, apperrors.ErrConflict))
	suite.mockEntryRepo.AssertNotCalled(suite.T(), "UpdateEntryStatus", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *EntryServiceTestSuite) TestUpdateEntryStatus_ResubmitAfterRejection() {
	entryID := uuid.NewString()
	stored := &domain.Entry{EntryID: entryID, Status: domain.EntryRejected}

	suite.mockEntryRepo.On("FindEntryByID", mock.Anything, entryID).Return(stored, nil).Once()
	suite.mockEntryRepo.On("UpdateEntryStatus", mock.Anything, entryID, domain.EntrySubmitted).Return(nil).Once()

	entry, err := suite.service.UpdateEntryStatus(context.Background(), suite.accountant, entryID, domain.EntrySubmitted)

	suite.Require().NoError(err)
	suite.Equal(domain.EntrySubmitted, entry.Status)
}

func (suite *EntryServiceTestSuite) TestDeleteEntry() {
	entryID := uuid.NewString()
	stored := &domain.Entry{EntryID: entryID, Status: domain.EntryDraft}

	suite.mockEntryRepo.On("FindEntryByID", mock.Anything, entryID).Return(stored, nil).Once()
	suite.mockEntryRepo.On("DeleteEntry", mock.Anything, entryID).Return(nil).Once()

	err := suite.service.DeleteEntry(context.Background(), suite.accountant, entryID)

	suite.NoError(err)
	suite.mockEntryRepo.AssertExpectations(suite.T())
}

func (suite *EntryServiceTestSuite) TestGetSplitsByEntry() {
	entryID := uuid.NewString()
	splits := []domain.Split{
		{SplitID: uuid.NewString(), EntryID: entryID, DebitAmount: decimal.NewFromInt(40)},
		{SplitID: uuid.NewString(), EntryID: entryID, CreditAmount: decimal.NewFromInt(40)},
	}

	suite.mockEntryRepo.On("FindSplitsByEntryID", mock.Anything, entryID).Return(splits, nil).Once()

	got, err := suite.service.GetSplitsByEntry(context.Background(), entryID)

	suite.Require().NoError(err)
	suite.Len(got, 2)
}

func TestEntryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EntryServiceTestSuite))
}

func TestCreateEntry_NoSplits(t *testing.T) {
	service := services.NewEntryService(new(MockEntryRepository), new(MockTransactionRepository))
	actor := domain.Actor{UserID: uuid.NewString(), Role: domain.RoleAccountant}

	_, err := service.CreateEntry(context.Background(), actor, dto.CreateEntryRequest{
		Summary:       "empty",
		TransactionID: uuid.NewString(),
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
}
