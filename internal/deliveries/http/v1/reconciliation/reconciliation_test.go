package reconciliation

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

type testReconciliationHelper struct {
	router      *echo.Echo
	mockCtrl    *gomock.Controller
	mockService *mock.MockReconcileService
}

func reconciliationTestHelper(t *testing.T) testReconciliationHelper {
	t.Helper()

	mockCtrl := gomock.NewController(t)

	mockSvc := mock.NewMockReconcileService(mockCtrl)

	app := echo.New()
	app.Pre(echomiddleware.RemoveTrailingSlash())
	v1Group := app.Group("/api/v1")
	New(v1Group, mockSvc)

	return testReconciliationHelper{
		router:      app,
		mockCtrl:    mockCtrl,
		mockService: mockSvc,
	}
}

func Test_Handler_reconcile(t *testing.T) {
	testHelper := reconciliationTestHelper(t)
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
			name: "observed amount matched against an open payout",
			body: `{"bankName":"Revolut","observedAmount":"880"}`,
			expectation: Expectation{
				wantRes:  `{"kind":"payoutMatch","payout":{"kind":"expectedPayout","id":1,"traderRef":"TR-1","platform":"TOPSTEP","baseAmount":"1000","expectedAmount":"880","status":"RECEIVED","observedAmount":"880","receivedBank":"Revolut","createdAt":"2025-04-20T00:00:00Z","receivedAt":"2025-04-20T00:00:00Z"},"observedAmount":"880","bankName":"Revolut","score":1}`,
				wantCode: 200,
			},
			doMock: func() {
				testHelper.mockService.
					EXPECT().
					Reconcile(gomock.AssignableToTypeOf(context.Background()), models.ReconcileRequest{
						BankName:       "Revolut",
						ObservedAmount: decimal.NewFromInt(880),
					}).
					Return(&models.PayoutMatch{
						Payout: models.ExpectedPayout{
							ID:             1,
							TraderRef:      "TR-1",
							Platform:       models.PlatformTopstep,
							BaseAmount:     decimal.NewFromInt(1000),
							ExpectedAmount: decimal.NewFromInt(880),
							Status:         models.PayoutStatusReceived,
							ObservedAmount: decimal.NewNullDecimal(decimal.NewFromInt(880)),
							ReceivedBank:   "Revolut",
							CreatedAt:      &ct,
							ReceivedAt:     &ct,
						},
						ObservedAmount: decimal.NewFromInt(880),
						BankName:       "Revolut",
						Score:          1,
					}, nil)
			},
		},
		{
			name: "missing fields rejected",
			body: `{}`,
			expectation: Expectation{
				wantRes:  `{"status":"error","message":"validation failed","errors":[{"field":"bankName","message":"required"},{"field":"observedAmount","message":"decimalGreaterThan 0"}]}`,
				wantCode: 422,
			},
		},
		{
			name: "amount rejected by the matcher",
			body: `{"bankName":"Revolut","observedAmount":"880"}`,
			expectation: Expectation{
				wantRes:  `{"status":"error","code":"TRS4002","message":"amount must be greater than zero"}`,
				wantCode: 400,
			},
			doMock: func() {
				testHelper.mockService.
					EXPECT().
					Reconcile(gomock.AssignableToTypeOf(context.Background()), gomock.Any()).
					Return(&models.PayoutMatch{}, common.ErrInvalidAmount)
			},
		},
		{
			name: "nothing in range",
			body: `{"bankName":"Revolut","observedAmount":"100"}`,
			expectation: Expectation{
				wantRes:  `{"status":"error","code":"TRS4221","message":"no expected payout matches the observed amount"}`,
				wantCode: 422,
			},
			doMock: func() {
				testHelper.mockService.
					EXPECT().
					Reconcile(gomock.AssignableToTypeOf(context.Background()), gomock.Any()).
					Return(&models.PayoutMatch{}, common.ErrNoSuitableMatch)
			},
		},
		{
			name: "error service",
			body: `{"bankName":"Revolut","observedAmount":"880"}`,
			expectation: Expectation{
				wantRes:  `{"status":"error","code":500,"message":"assert.AnError general error for testing"}`,
				wantCode: 500,
			},
			doMock: func() {
				testHelper.mockService.
					EXPECT().
					Reconcile(gomock.AssignableToTypeOf(context.Background()), gomock.Any()).
					Return(&models.PayoutMatch{}, assert.AnError)
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.doMock != nil {
				tc.doMock()
			}

			req := httptest.NewRequest(http.MethodPost, "/api/v1/reconciliations", bytes.NewBufferString(tc.body))
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
