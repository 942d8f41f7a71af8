package repositories

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/torxlabs/go-treasury/internal/common"
	"github.com/torxlabs/go-treasury/internal/config"
	"github.com/torxlabs/go-treasury/internal/models"
)

func TestPayoutRepositoryTestSuite(t *testing.T) {
	t.Helper()
	suite.Run(t, new(payoutTestSuite))
}

type payoutTestSuite struct {
	suite.Suite
	writeDB *sql.DB
	readDB  *sql.DB
	mock    sqlmock.Sqlmock
	repo    PayoutRepository
}

func (suite *payoutTestSuite) SetupTest() {
	var err error
	var cfg config.Config

	suite.writeDB, suite.mock, err = sqlmock.New()
	require.NoError(suite.T(), err)

	suite.readDB = suite.writeDB

	suite.repo = NewSQLRepository(suite.writeDB, suite.readDB, cfg).GetPayoutRepository()
}

func (suite *payoutTestSuite) TearDownTest() {
	defer suite.writeDB.Close()
}

func (suite *payoutTestSuite) TestRepository_Create() {
	now := time.Now()

	testCases := []struct {
		name       string
		in         *models.CreateExpectedPayoutIn
		setupMocks func(in *models.CreateExpectedPayoutIn)
		wantErr    error
	}{
		{
			name: "test success",
			in: &models.CreateExpectedPayoutIn{
				TraderRef:      "trader-77",
				Platform:       models.PlatformTopstep,
				BaseAmount:     decimal.NewFromInt(1000),
				ExpectedAmount: decimal.NewFromInt(880),
			},
			setupMocks: func(in *models.CreateExpectedPayoutIn) {
				rows := sqlmock.NewRows([]string{"id", "traderRef", "platform", "baseAmount", "expectedAmount", "status", "createdAt"}).
					AddRow(1, in.TraderRef, string(in.Platform), in.BaseAmount, in.ExpectedAmount, models.PayoutStatusPending, now)
				suite.mock.ExpectQuery(regexp.QuoteMeta(queryPayoutCreate)).
					WithArgs(in.TraderRef, string(in.Platform), in.BaseAmount, in.ExpectedAmount, models.PayoutStatusPending).
					WillReturnRows(rows)
			},
		},
		{
			name: "test db error",
			in: &models.CreateExpectedPayoutIn{
				TraderRef:      "trader-78",
				Platform:       models.PlatformMFFU,
				BaseAmount:     decimal.NewFromInt(500),
				ExpectedAmount: decimal.NewFromInt(415),
			},
			setupMocks: func(in *models.CreateExpectedPayoutIn) {
				suite.mock.ExpectQuery(regexp.QuoteMeta(queryPayoutCreate)).
					WithArgs(in.TraderRef, string(in.Platform), in.BaseAmount, in.ExpectedAmount, models.PayoutStatusPending).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: common.ErrUnableToCreate,
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			tc.setupMocks(tc.in)

			created, err := suite.repo.Create(context.Background(), tc.in)
			if tc.wantErr != nil {
				assert.ErrorIs(suite.T(), err, tc.wantErr)
				return
			}

			require.NoError(suite.T(), err)
			assert.Equal(suite.T(), tc.in.TraderRef, created.TraderRef)
			assert.Equal(suite.T(), models.PayoutStatusPending, created.Status)
			assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
		})
	}
}

func (suite *payoutTestSuite) TestRepository_GetByID() {
	now := time.Now()

	suite.Run("test success", func() {
		rows := sqlmock.NewRows([]string{"id", "traderRef", "platform", "baseAmount", "expectedAmount", "status", "observedAmount", "receivedBank", "createdAt", "receivedAt"}).
			AddRow(7, "trader-77", "TOPSTEP", decimal.NewFromInt(1000), decimal.NewFromInt(880), models.PayoutStatusReceived, decimal.NewFromInt(900), "Revolut", now, now)
		suite.mock.ExpectQuery(regexp.QuoteMeta(queryPayoutGetByID)).
			WithArgs(int64(7)).
			WillReturnRows(rows)

		payout, err := suite.repo.GetByID(context.Background(), 7)
		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), models.PlatformTopstep, payout.Platform)
		assert.True(suite.T(), payout.Received())
		assert.True(suite.T(), payout.ObservedAmount.Valid)
	})

	suite.Run("test not found", func() {
		suite.mock.ExpectQuery(regexp.QuoteMeta(queryPayoutGetByID)).
			WithArgs(int64(8)).
			WillReturnError(sql.ErrNoRows)

		_, err := suite.repo.GetByID(context.Background(), 8)
		assert.ErrorIs(suite.T(), err, common.ErrDataNotFound)
	})
}

func (suite *payoutTestSuite) TestRepository_ListUnreceived() {
	now := time.Now()

	suite.Run("test success without filter", func() {
		expectedQuery := `SELECT "id", "traderRef", "platform", "baseAmount", "expectedAmount", "status", "createdAt" FROM "expected_payout" WHERE "status" = $1 ORDER BY "createdAt" ASC`
		rows := sqlmock.NewRows([]string{"id", "traderRef", "platform", "baseAmount", "expectedAmount", "status", "createdAt"}).
			AddRow(1, "trader-77", "TOPSTEP", decimal.NewFromInt(1000), decimal.NewFromInt(880), models.PayoutStatusPending, now).
			AddRow(2, "trader-78", "MFFU", decimal.NewFromInt(500), decimal.NewFromInt(415), models.PayoutStatusPending, now)
		suite.mock.ExpectQuery(regexp.QuoteMeta(expectedQuery)).
			WithArgs(models.PayoutStatusPending).
			WillReturnRows(rows)

		payouts, err := suite.repo.ListUnreceived(context.Background(), models.PayoutFilterOptions{})
		require.NoError(suite.T(), err)

		want := []models.ExpectedPayout{
			{ID: 1, TraderRef: "trader-77", Platform: models.PlatformTopstep, BaseAmount: decimal.NewFromInt(1000), ExpectedAmount: decimal.NewFromInt(880), Status: models.PayoutStatusPending},
			{ID: 2, TraderRef: "trader-78", Platform: models.PlatformMFFU, BaseAmount: decimal.NewFromInt(500), ExpectedAmount: decimal.NewFromInt(415), Status: models.PayoutStatusPending},
		}
		if diff := cmp.Diff(want, payouts, payoutComparer()); diff != "" {
			suite.T().Errorf("unexpected payouts (-want +got):\n%s", diff)
		}
	})

	suite.Run("test success with platform filter and limit", func() {
		expectedQuery := `SELECT "id", "traderRef", "platform", "baseAmount", "expectedAmount", "status", "createdAt" FROM "expected_payout" WHERE "status" = $1 AND "platform" = $2 ORDER BY "createdAt" ASC LIMIT 5`
		rows := sqlmock.NewRows([]string{"id", "traderRef", "platform", "baseAmount", "expectedAmount", "status", "createdAt"}).
			AddRow(1, "trader-77", "TOPSTEP", decimal.NewFromInt(1000), decimal.NewFromInt(880), models.PayoutStatusPending, now)
		suite.mock.ExpectQuery(regexp.QuoteMeta(expectedQuery)).
			WithArgs(models.PayoutStatusPending, "TOPSTEP").
			WillReturnRows(rows)

		payouts, err := suite.repo.ListUnreceived(context.Background(), models.PayoutFilterOptions{
			Platform: models.PlatformTopstep,
			Limit:    5,
		})
		require.NoError(suite.T(), err)
		assert.Len(suite.T(), payouts, 1)
		assert.Equal(suite.T(), models.PlatformTopstep, payouts[0].Platform)
	})

	suite.Run("test db error", func() {
		expectedQuery := `SELECT "id", "traderRef", "platform", "baseAmount", "expectedAmount", "status", "createdAt" FROM "expected_payout" WHERE "status" = $1 ORDER BY "createdAt" ASC`
		suite.mock.ExpectQuery(regexp.QuoteMeta(expectedQuery)).
			WithArgs(models.PayoutStatusPending).
			WillReturnError(sql.ErrConnDone)

		_, err := suite.repo.ListUnreceived(context.Background(), models.PayoutFilterOptions{})
		assert.Error(suite.T(), err)
	})
}

func (suite *payoutTestSuite) TestRepository_MarkReceived() {
	now := time.Now()

	suite.Run("test success", func() {
		observed := decimal.NewFromInt(900)
		rows := sqlmock.NewRows([]string{"id", "traderRef", "platform", "baseAmount", "expectedAmount", "status", "observedAmount", "receivedBank", "createdAt", "receivedAt"}).
			AddRow(1, "trader-77", "TOPSTEP", decimal.NewFromInt(1000), decimal.NewFromInt(880), models.PayoutStatusReceived, observed, "Revolut", now, now)
		suite.mock.ExpectQuery(regexp.QuoteMeta(queryPayoutMarkReceived)).
			WithArgs(observed, "Revolut", models.PayoutStatusReceived, int64(1), models.PayoutStatusPending).
			WillReturnRows(rows)

		updated, err := suite.repo.MarkReceived(context.Background(), 1, observed, "Revolut")
		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), models.PayoutStatusReceived, updated.Status)
		assert.Equal(suite.T(), "Revolut", updated.ReceivedBank)
	})

	suite.Run("test already received", func() {
		observed := decimal.NewFromInt(900)
		suite.mock.ExpectQuery(regexp.QuoteMeta(queryPayoutMarkReceived)).
			WithArgs(observed, "Revolut", models.PayoutStatusReceived, int64(1), models.PayoutStatusPending).
			WillReturnError(sql.ErrNoRows)

		_, err := suite.repo.MarkReceived(context.Background(), 1, observed, "Revolut")
		assert.ErrorIs(suite.T(), err, common.ErrPayoutAlreadyReceived)
	})
}
