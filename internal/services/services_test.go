package services_test

import (
	"os"
	"testing"
	"time"

	mockIDGenerator "github.com/torxlabs/go-treasury/internal/common/idgenerator/mock"
	"github.com/torxlabs/go-treasury/internal/common/log"
	mockMetrics "github.com/torxlabs/go-treasury/internal/common/metrics/mock"
	mockPublisher "github.com/torxlabs/go-treasury/internal/common/publisher/mock"
	"github.com/torxlabs/go-treasury/internal/common/retry"
	"github.com/torxlabs/go-treasury/internal/config"
	mockConnector "github.com/torxlabs/go-treasury/internal/connector/mock"
	"github.com/torxlabs/go-treasury/internal/repositories/mock"
	"github.com/torxlabs/go-treasury/internal/services"

	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	log.InitForTest()
	os.Exit(m.Run())
}

type testServiceHelper struct {
	mockCtrl *gomock.Controller
	config   config.Config

	mockSQLRepository      *mock.MockSQLRepository
	mockPayoutRepository   *mock.MockPayoutRepository
	mockPropertyRepository *mock.MockPropertyRepository
	mockCacheRepository    *mock.MockCacheRepository
	mockBankConnector      *mockConnector.MockConnector
	mockIDGenerator        *mockIDGenerator.MockGenerator
	mockRunPublisher       *mockPublisher.MockPublisher
	mockPayoutPublisher    *mockPublisher.MockPublisher
	mockMetrics            *mockMetrics.MockMetrics

	srv *services.Services
}

func serviceTestHelper(t *testing.T) testServiceHelper {
	t.Helper()
	t.Parallel()

	mockCtrl := gomock.NewController(t)

	mockSQLRepository := mock.NewMockSQLRepository(mockCtrl)
	mockPayoutRepository := mock.NewMockPayoutRepository(mockCtrl)
	mockPropertyRepository := mock.NewMockPropertyRepository(mockCtrl)
	mockCacheRepository := mock.NewMockCacheRepository(mockCtrl)
	mockBankConnector := mockConnector.NewMockConnector(mockCtrl)
	mockIDGen := mockIDGenerator.NewMockGenerator(mockCtrl)
	mockRunPublisher := mockPublisher.NewMockPublisher(mockCtrl)
	mockPayoutPublisher := mockPublisher.NewMockPublisher(mockCtrl)

	mockMetric := mockMetrics.NewMockMetrics(mockCtrl)
	mockMetric.EXPECT().GetTreasuryPrometheus().Return(nil).AnyTimes()

	mockSQLRepository.EXPECT().GetPayoutRepository().Return(mockPayoutRepository).AnyTimes()
	mockSQLRepository.EXPECT().GetPropertyRepository().Return(mockPropertyRepository).AnyTimes()

	conf := config.Config{
		Treasury: config.TreasuryConfig{
			Banks:               []string{"Revolut", "Mercury", "Airwallex"},
			SourcePriority:      []string{"Revolut", "Mercury", "Airwallex"},
			MinBalanceUSD:       1000,
			TopupAmountUSD:      3000,
			PendingTransferTTL:  72 * time.Hour,
			RunLeaseTTL:         15 * time.Minute,
			MatchScoreThreshold: config.DefaultMatchScoreThreshold,
		},
	}

	retryer := retry.NewExponentialBackOff(&config.ExponentialBackOffConfig{
		MaxRetries:     1,
		MaxBackoffTime: time.Second,
	})

	srv := services.New(
		conf,
		mockSQLRepository,
		mockCacheRepository,
		mockBankConnector,
		mockIDGen,
		retryer,
		mockRunPublisher,
		mockPayoutPublisher,
		mockMetric,
	)

	return testServiceHelper{
		mockCtrl:               mockCtrl,
		config:                 conf,
		mockSQLRepository:      mockSQLRepository,
		mockPayoutRepository:   mockPayoutRepository,
		mockPropertyRepository: mockPropertyRepository,
		mockCacheRepository:    mockCacheRepository,
		mockBankConnector:      mockBankConnector,
		mockIDGenerator:        mockIDGen,
		mockRunPublisher:       mockRunPublisher,
		mockPayoutPublisher:    mockPayoutPublisher,
		mockMetrics:            mockMetric,
		srv:                    srv,
	}
}
