package services_test

import (
	"context"
	"testing"

	"github.com/torxlabs/go-treasury/internal/common"
	"github.com/torxlabs/go-treasury/internal/models"
	"github.com/torxlabs/go-treasury/internal/repositories"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSweepService_Consolidate_DryRun(t *testing.T) {
	testHelper := serviceTestHelper(t)

	testHelper.mockBankConnector.
		EXPECT().
		ListAccounts(gomock.Any(), "Revolut").
		Return([]models.Account{
			{BankName: "Revolut", AccountID: "rev-main", Name: models.MainAccountName, Currency: "USD", Balance: decimal.NewFromInt(5000)},
			{BankName: "Revolut", AccountID: "rev-ts", Name: "Topstep Payouts", Currency: "USD", Balance: decimal.NewFromInt(750)},
			{BankName: "Revolut", AccountID: "rev-empty", Name: "Reserve", Currency: "USD", Balance: decimal.Zero},
			{BankName: "Revolut", AccountID: "rev-eur", Name: "EUR Float", Currency: "EUR", Balance: decimal.NewFromInt(900)},
		}, nil)
	testHelper.mockBankConnector.
		EXPECT().
		ListAccounts(gomock.Any(), "Mercury").
		Return([]models.Account{
			{BankName: "Mercury", AccountID: "mer-main", Name: models.MainAccountName, Currency: "USD", Balance: decimal.NewFromInt(500)},
		}, nil)
	testHelper.mockBankConnector.
		EXPECT().
		ListAccounts(gomock.Any(), "Airwallex").
		Return([]models.Account{}, nil)

	// the funded sub-account balance is still offered to the matcher
	testHelper.mockPayoutRepository.
		EXPECT().
		ListUnreceived(gomock.Any(), models.PayoutFilterOptions{}).
		Return(nil, nil)

	testHelper.mockIDGenerator.
		EXPECT().
		Generate("CONS").
		Return("CONS-dry-1")

	result, err := testHelper.srv.Sweep.Consolidate(context.TODO(), true)
	require.NoError(t, err)

	require.Len(t, result.Sweeps, 1)
	assert.Equal(t, "Revolut", result.Sweeps[0].BankName)
	assert.Equal(t, "Topstep Payouts", result.Sweeps[0].FromAccount)
	assert.Equal(t, models.TransferStatusPlanned, result.Sweeps[0].Result.Status)
	assert.True(t, result.MovedTotal.IsZero())
	assert.Empty(t, result.Errors)
}

func TestSweepService_Consolidate_Execute(t *testing.T) {
	testHelper := serviceTestHelper(t)

	singleFundedBank := func(balance decimal.Decimal) {
		testHelper.mockBankConnector.
			EXPECT().
			ListAccounts(gomock.Any(), "Revolut").
			Return([]models.Account{
				{BankName: "Revolut", AccountID: "rev-sub", Name: "Payout Inbox", Currency: "USD", Balance: balance},
			}, nil)
		testHelper.mockBankConnector.
			EXPECT().
			ListAccounts(gomock.Any(), "Mercury").
			Return([]models.Account{}, nil)
		testHelper.mockBankConnector.
			EXPECT().
			ListAccounts(gomock.Any(), "Airwallex").
			Return([]models.Account{}, nil)
	}

	noMatch := func() {
		testHelper.mockPayoutRepository.
			EXPECT().
			ListUnreceived(gomock.Any(), models.PayoutFilterOptions{}).
			Return(nil, nil)
	}

	t.Run("completed transfer moves the balance, no pending entry", func(t *testing.T) {
		singleFundedBank(decimal.NewFromInt(750))
		noMatch()
		testHelper.mockIDGenerator.EXPECT().Generate("CONS").Return("CONS-1")
		testHelper.mockBankConnector.
			EXPECT().
			Transfer(gomock.Any(), models.TransferInstruction{
				TransactionID: "CONS-1",
				FromBank:      "Revolut",
				FromAccount:   "rev-sub",
				ToBank:        "Revolut",
				ToAccount:     models.MainAccountName,
				Amount:        decimal.NewFromInt(750),
				Reference:     "CONS-1",
			}).
			Return(models.TransferResult{TransactionID: "CONS-1", Status: models.TransferStatusCompleted}, nil)

		result, err := testHelper.srv.Sweep.Consolidate(context.TODO(), false)
		require.NoError(t, err)
		assert.True(t, result.MovedTotal.Equal(decimal.NewFromInt(750)))
		assert.Empty(t, result.Errors)
	})

	t.Run("async transfer recorded as pending", func(t *testing.T) {
		singleFundedBank(decimal.NewFromInt(750))
		noMatch()
		testHelper.mockIDGenerator.EXPECT().Generate("CONS").Return("CONS-2")
		testHelper.mockBankConnector.
			EXPECT().
			Transfer(gomock.Any(), gomock.Any()).
			Return(models.TransferResult{TransactionID: "CONS-2", Status: models.TransferStatusProcessing}, nil)
		testHelper.mockPropertyRepository.
			EXPECT().
			Get(gomock.Any(), models.PropertyKeyPendingTransfers).
			Return("", common.ErrDataNotFound)
		testHelper.mockPropertyRepository.
			EXPECT().
			Set(gomock.Any(), models.PropertyKeyPendingTransfers, gomock.Any()).
			Return(nil)

		result, err := testHelper.srv.Sweep.Consolidate(context.TODO(), false)
		require.NoError(t, err)
		assert.True(t, result.MovedTotal.Equal(decimal.NewFromInt(750)))
	})

	t.Run("manual transfer surfaces as error, nothing counted as moved", func(t *testing.T) {
		singleFundedBank(decimal.NewFromInt(750))
		noMatch()
		testHelper.mockIDGenerator.EXPECT().Generate("CONS").Return("CONS-3")
		testHelper.mockBankConnector.
			EXPECT().
			Transfer(gomock.Any(), gomock.Any()).
			Return(models.TransferResult{}, common.ErrManualTransferRequired)

		result, err := testHelper.srv.Sweep.Consolidate(context.TODO(), false)
		require.NoError(t, err)
		assert.True(t, result.MovedTotal.IsZero())
		require.Len(t, result.Errors, 1)
		assert.Contains(t, result.Errors[0], "manual transfer required")
		assert.Equal(t, models.TransferStatusManualRequired, result.Sweeps[0].Result.Status)
	})

	t.Run("unreachable bank recorded as error, other banks continue", func(t *testing.T) {
		testHelper.mockBankConnector.
			EXPECT().
			ListAccounts(gomock.Any(), "Revolut").
			Return(nil, assert.AnError).
			Times(2)
		testHelper.mockBankConnector.
			EXPECT().
			ListAccounts(gomock.Any(), "Mercury").
			Return([]models.Account{}, nil)
		testHelper.mockBankConnector.
			EXPECT().
			ListAccounts(gomock.Any(), "Airwallex").
			Return([]models.Account{}, nil)

		result, err := testHelper.srv.Sweep.Consolidate(context.TODO(), false)
		require.NoError(t, err)
		require.Len(t, result.Errors, 1)
		assert.Contains(t, result.Errors[0], "Revolut: list accounts")
	})

	t.Run("swept balance reconciled against expected payout before the sweep", func(t *testing.T) {
		pendingPayout := models.ExpectedPayout{
			ID:             7,
			TraderRef:      "TRD-7",
			Platform:       models.PlatformTopstep,
			BaseAmount:     decimal.NewFromInt(1000),
			ExpectedAmount: decimal.NewFromInt(880),
			Status:         models.PayoutStatusPending,
		}
		received := pendingPayout
		received.Status = models.PayoutStatusReceived

		singleFundedBank(decimal.NewFromInt(900))
		testHelper.mockPayoutRepository.
			EXPECT().
			ListUnreceived(gomock.Any(), models.PayoutFilterOptions{}).
			Return([]models.ExpectedPayout{pendingPayout}, nil)
		testHelper.mockSQLRepository.
			EXPECT().
			Atomic(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, steps func(context.Context, repositories.SQLRepository) error) error {
				return steps(ctx, testHelper.mockSQLRepository)
			})
		testHelper.mockPayoutRepository.
			EXPECT().
			MarkReceived(gomock.Any(), int64(7), decimal.NewFromInt(900), "Revolut").
			Return(&received, nil)
		testHelper.mockPayoutPublisher.
			EXPECT().
			Publish(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		testHelper.mockIDGenerator.EXPECT().Generate("CONS").Return("CONS-4")
		testHelper.mockBankConnector.
			EXPECT().
			Transfer(gomock.Any(), gomock.Any()).
			Return(models.TransferResult{TransactionID: "CONS-4", Status: models.TransferStatusCompleted}, nil)

		result, err := testHelper.srv.Sweep.Consolidate(context.TODO(), false)
		require.NoError(t, err)
		assert.True(t, result.MovedTotal.Equal(decimal.NewFromInt(900)))
	})
}
