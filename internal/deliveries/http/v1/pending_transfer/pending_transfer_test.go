package pendingtransfer

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/torxlabs/go-treasury/internal/common"
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

type testPendingTransferHelper struct {
	router      *echo.Echo
	mockCtrl    *gomock.Controller
	mockService *mock.MockPendingTransferService
}

func pendingTransferTestHelper(t *testing.T) testPendingTransferHelper {
	t.Helper()

	mockCtrl := gomock.NewController(t)

	mockSvc := mock.NewMockPendingTransferService(mockCtrl)

	app := echo.New()
	app.Pre(echomiddleware.RemoveTrailingSlash())
	v1Group := app.Group("/api/v1")
	New(v1Group, mockSvc)

	return testPendingTransferHelper{
		router:      app,
		mockCtrl:    mockCtrl,
		mockService: mockSvc,
	}
}

func Test_Handler_getPendingTransfers(t *testing.T) {
	testHelper := pendingTransferTestHelper(t)
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
			name: "ledger with one live transfer",
			expectation: Expectation{
				wantRes:  `{"kind":"collection","contents":[{"kind":"pendingTransfer","transactionId":"TOPUP-1","fromBank":"Revolut","toBank":"Mercury","amount":"3000","status":"processing","createdAt":"2025-04-20T00:00:00Z"}],"total_rows":1}`,
				wantCode: 200,
			},
			doMock: func() {
				testHelper.mockService.
					EXPECT().
					List(gomock.AssignableToTypeOf(context.Background())).
					Return([]models.PendingTransfer{
						{
							TransactionID: "TOPUP-1",
							FromBank:      "Revolut",
							ToBank:        "Mercury",
							Amount:        decimal.NewFromInt(3000),
							Status:        models.TransferStatusProcessing,
							CreatedAt:     ct,
						},
					}, nil)
			},
		},
		{
			name:   "filtered by originating bank",
			target: "/api/v1/pending-transfers?bank=Mercury",
			expectation: Expectation{
				wantRes:  `{"kind":"collection","contents":[{"kind":"pendingTransfer","transactionId":"TOPUP-2","fromBank":"Mercury","toBank":"Airwallex","amount":"3000","status":"processing","createdAt":"2025-04-20T00:00:00Z"}],"total_rows":1}`,
				wantCode: 200,
			},
			doMock: func() {
				testHelper.mockService.
					EXPECT().
					ListByBank(gomock.AssignableToTypeOf(context.Background()), "Mercury").
					Return([]models.PendingTransfer{
						{
							TransactionID: "TOPUP-2",
							FromBank:      "Mercury",
							ToBank:        "Airwallex",
							Amount:        decimal.NewFromInt(3000),
							Status:        models.TransferStatusProcessing,
							CreatedAt:     ct,
						},
					}, nil)
			},
		},
		{
			name: "empty ledger",
			expectation: Expectation{
				wantRes:  `{"kind":"collection","contents":[],"total_rows":0}`,
				wantCode: 200,
			},
			doMock: func() {
				testHelper.mockService.
					EXPECT().
					List(gomock.AssignableToTypeOf(context.Background())).
					Return(nil, nil)
			},
		},
		{
			name: "error service",
			expectation: Expectation{
				wantRes:  `{"status":"error","code":500,"message":"assert.AnError general error for testing"}`,
				wantCode: 500,
			},
			doMock: func() {
				testHelper.mockService.
					EXPECT().
					List(gomock.AssignableToTypeOf(context.Background())).
					Return(nil, assert.AnError)
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.doMock != nil {
				tc.doMock()
			}

			target := tc.target
			if target == "" {
				target = "/api/v1/pending-transfers"
			}
			req := httptest.NewRequest(http.MethodGet, target, nil)

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

func Test_Handler_markReceived(t *testing.T) {
	testHelper := pendingTransferTestHelper(t)
	ct := time.Date(2025, 4, 20, 0, 0, 0, 0, time.UTC)

	type Expectation struct {
		wantRes  string
		wantCode int
	}
	tests := []struct {
		name          string
		transactionID string
		expectation   Expectation
		doMock        func()
	}{
		{
			name:          "confirmed transfer removed from ledger",
			transactionID: "TOPUP-1",
			expectation: Expectation{
				wantRes:  `{"kind":"pendingTransfer","transactionId":"TOPUP-1","fromBank":"Revolut","toBank":"Mercury","amount":"3000","status":"completed","createdAt":"2025-04-20T00:00:00Z"}`,
				wantCode: 200,
			},
			doMock: func() {
				testHelper.mockService.
					EXPECT().
					MarkReceived(gomock.AssignableToTypeOf(context.Background()), "TOPUP-1").
					Return(&models.PendingTransfer{
						TransactionID: "TOPUP-1",
						FromBank:      "Revolut",
						ToBank:        "Mercury",
						Amount:        decimal.NewFromInt(3000),
						Status:        models.TransferStatusCompleted,
						CreatedAt:     ct,
					}, nil)
			},
		},
		{
			name:          "unknown transaction id",
			transactionID: "TOPUP-404",
			expectation: Expectation{
				wantRes:  `{"status":"error","code":"TRS4041","message":"pending transfer not found caused by TOPUP-404"}`,
				wantCode: 404,
			},
			doMock: func() {
				testHelper.mockService.
					EXPECT().
					MarkReceived(gomock.AssignableToTypeOf(context.Background()), "TOPUP-404").
					Return(nil, common.ErrPendingTransferNotFound)
			},
		},
		{
			name:          "error service",
			transactionID: "TOPUP-1",
			expectation: Expectation{
				wantRes:  `{"status":"error","code":500,"message":"assert.AnError general error for testing"}`,
				wantCode: 500,
			},
			doMock: func() {
				testHelper.mockService.
					EXPECT().
					MarkReceived(gomock.AssignableToTypeOf(context.Background()), "TOPUP-1").
					Return(nil, assert.AnError)
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.doMock != nil {
				tc.doMock()
			}

			req := httptest.NewRequest(http.MethodPost, "/api/v1/pending-transfers/"+tc.transactionID+"/received", nil)

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
