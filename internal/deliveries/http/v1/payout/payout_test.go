package payout

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/torxlabs/go-treasury/internal/common/log"
	"github.com/torxlabs/go-treasury/internal/models"
	"github.com/torxlabs/go-treasury/internal/services/mock"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	log.InitForTest()
	os.Exit(m.Run())
}

type testPayoutHelper struct {
	router      *echo.Echo
	mockCtrl    *gomock.Controller
	mockService *mock.MockReconcileService
}

func payoutTestHelper(t *testing.T) testPayoutHelper {
	t.Helper()

	mockCtrl := gomock.NewController(t)

	mockSvc := mock.NewMockReconcileService(mockCtrl)

	app := echo.New()
	app.Pre(echomiddleware.RemoveTrailingSlash())
	v1Group := app.Group("/api/v1")
	New(v1Group, mockSvc)

	return testPayoutHelper{
		router:      app,
		mockCtrl:    mockCtrl,
		mockService: mockSvc,
	}
}

func Test_Handler_createExpectedPayout(t *testing.T) {
	testHelper := payoutTestHelper(t)
	ct := time.Date(2025, 4, 20, 0, 0, 0, 0, time.UTC)

	type Expectation struct {
		wantRes  string
		wantCode int
	}
	tests := []struct {
		name        string
		body        string
		expectation Expectation
		doMock      func()
	}{
		{
			name: "payout registered with derived expected amount",
			body: `{"traderRef":"TR-1","platform":"topstep","baseAmount":"1000"}`,
			expectation: Expectation{
				wantRes:  `{"kind":"expectedPayout","id":1,"traderRef":"TR-1","platform":"TOPSTEP","baseAmount":"1000","expectedAmount":"880","status":"PENDING","createdAt":"2025-04-20T00:00:00Z"}`,
				wantCode: 201,
			},
			doMock: func() {
				testHelper.mockService.
					EXPECT().
					CreateExpectedPayout(gomock.AssignableToTypeOf(context.Background()), models.CreateExpectedPayoutRequest{
						TraderRef:  "TR-1",
						Platform:   "topstep",
						BaseAmount: decimal.NewFromInt(1000),
					}).
					Return(&models.ExpectedPayout{
						ID:             1,
						TraderRef:      "TR-1",
						Platform:       models.PlatformTopstep,
						BaseAmount:     decimal.NewFromInt(1000),
						ExpectedAmount: decimal.NewFromInt(880),
						Status:         models.PayoutStatusPending,
						CreatedAt:      &ct,
					}, nil)
			},
		},
		{
			name: "missing fields rejected",
			body: `{}`,
			expectation: Expectation{
				wantRes:  `{"status":"error","message":"validation failed","errors":[{"field":"traderRef","message":"required"},{"field":"platform","message":"required"},{"field":"baseAmount","message":"decimalGreaterThan 0"}]}`,
				wantCode: 422,
			},
		},
		{
			name: "error service",
			body: `{"traderRef":"TR-1","platform":"topstep","baseAmount":"1000"}`,
			expectation: Expectation{
				wantRes:  `{"status":"error","code":500,"message":"assert.AnError general error for testing"}`,
				wantCode: 500,
			},
			doMock: func() {
				testHelper.mockService.
					EXPECT().
					CreateExpectedPayout(gomock.AssignableToTypeOf(context.Background()), gomock.Any()).
					Return(&models.ExpectedPayout{}, assert.AnError)
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.doMock != nil {
				tc.doMock()
			}

			req := httptest.NewRequest(http.MethodPost, "/api/v1/payouts", bytes.NewBufferString(tc.body))
			req.Header.Set("Content-Type", "application/json")

			rec := httptest.NewRecorder()
			testHelper.router.ServeHTTP(rec, req)

			resp := rec.Result()
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			require.Equal(t, tc.expectation.wantCode, resp.StatusCode)
			require.Equal(t, tc.expectation.wantRes, strings.TrimSuffix(string(body), "\n"))
		})
	}
}

func Test_Handler_getPendingPayouts(t *testing.T) {
	testHelper := payoutTestHelper(t)
	ct := time.Date(2025, 4, 20, 0, 0, 0, 0, time.UTC)

	type Expectation struct {
		wantRes  string
		wantCode int
	}
	tests := []struct {
		name        string
		target      string
		expectation Expectation
		doMock      func()
	}{
		{
			name:   "filtered by platform and limit",
			target: "/api/v1/payouts/pending?platform=topstep&limit=5",
			expectation: Expectation{
				wantRes:  `{"kind":"collection","contents":[{"kind":"expectedPayout","id":1,"traderRef":"TR-1","platform":"TOPSTEP","baseAmount":"1000","expectedAmount":"880","status":"PENDING","createdAt":"2025-04-20T00:00:00Z"}],"total_rows":1}`,
				wantCode: 200,
			},
			doMock: func() {
				testHelper.mockService.
					EXPECT().
					ListPendingPayouts(gomock.AssignableToTypeOf(context.Background()), models.PayoutFilterOptions{
						Platform: models.PlatformTopstep,
						Limit:    5,
					}).
					Return([]models.ExpectedPayout{
						{
							ID:             1,
							TraderRef:      "TR-1",
							Platform:       models.PlatformTopstep,
							BaseAmount:     decimal.NewFromInt(1000),
							ExpectedAmount: decimal.NewFromInt(880),
							Status:         models.PayoutStatusPending,
							CreatedAt:      &ct,
						},
					}, nil)
			},
		},
		{
			name:   "no filters returns everything pending",
			target: "/api/v1/payouts/pending",
			expectation: Expectation{
				wantRes:  `{"kind":"collection","contents":[],"total_rows":0}`,
				wantCode: 200,
			},
			doMock: func() {
				testHelper.mockService.
					EXPECT().
					ListPendingPayouts(gomock.AssignableToTypeOf(context.Background()), models.PayoutFilterOptions{}).
					Return(nil, nil)
			},
		},
		{
			name:   "zero limit rejected",
			target: "/api/v1/payouts/pending?limit=0",
			expectation: Expectation{
				wantRes:  `{"status":"error","code":"TRS4004","message":"limit must be greater than zero"}`,
				wantCode: 400,
			},
		},
		{
			name:   "non numeric limit rejected",
			target: "/api/v1/payouts/pending?limit=abc",
			expectation: Expectation{
				wantRes:  `{"status":"error","code":"TRS4004","message":"limit must be greater than zero"}`,
				wantCode: 400,
			},
		},
		{
			name:   "error service",
			target: "/api/v1/payouts/pending",
			expectation: Expectation{
				wantRes:  `{"status":"error","code":500,"message":"assert.AnError general error for testing"}`,
				wantCode: 500,
			},
			doMock: func() {
				testHelper.mockService.
					EXPECT().
					ListPendingPayouts(gomock.AssignableToTypeOf(context.Background()), models.PayoutFilterOptions{}).
					Return(nil, assert.AnError)
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.doMock != nil {
				tc.doMock()
			}

			req := httptest.NewRequest(http.MethodGet, tc.target, nil)

			rec := httptest.NewRecorder()
			testHelper.router.ServeHTTP(rec, req)

			resp := rec.Result()
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			require.Equal(t, tc.expectation.wantCode, resp.StatusCode)
			require.Equal(t, tc.expectation.wantRes, strings.TrimSuffix(string(body), "\n"))
		})
	}
}
