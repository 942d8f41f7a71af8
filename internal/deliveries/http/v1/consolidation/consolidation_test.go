package consolidation

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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	log.InitForTest()
	os.Exit(m.Run())
}

type testConsolidationHelper struct {
	router      *echo.Echo
	mockCtrl    *gomock.Controller
	mockService *mock.MockOrchestratorService
}

func consolidationTestHelper(t *testing.T) testConsolidationHelper {
	t.Helper()

	mockCtrl := gomock.NewController(t)

	mockSvc := mock.NewMockOrchestratorService(mockCtrl)

	app := echo.New()
	app.Pre(echomiddleware.RemoveTrailingSlash())
	v1Group := app.Group("/api/v1")
	New(v1Group, mockSvc)

	return testConsolidationHelper{
		router:      app,
		mockCtrl:    mockCtrl,
		mockService: mockSvc,
	}
}

func Test_Handler_runConsolidation(t *testing.T) {
	testHelper := consolidationTestHelper(t)
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
			name: "skipped run returned with its reason",
			body: `{"dryRun":false,"force":false}`,
			expectation: Expectation{
				wantRes:  `{"kind":"consolidationRun","runId":"RUN-1","state":"SKIPPED","dryRun":false,"startedAt":"2025-04-20T00:00:00Z","finishedAt":"2025-04-20T00:00:00Z","snapshot":{"kind":"balanceSnapshot","banks":[],"totalUsd":"0","generatedAt":"0001-01-01T00:00:00Z"},"totalUsdConsolidated":"0","totalUsdTransferred":"0","internalSweeps":[],"topups":[],"errors":[],"skipReason":"pending transfers exist"}`,
				wantCode: 200,
			},
			doMock: func() {
				testHelper.mockService.
					EXPECT().
					RunConsolidation(gomock.AssignableToTypeOf(context.Background()), models.ConsolidationRequest{}).
					Return(models.ConsolidationRun{
						RunID:      "RUN-1",
						State:      models.RunStateSkipped,
						StartedAt:  ct,
						FinishedAt: ct,
						SkipReason: "pending transfers exist",
					}, nil)
			},
		},
		{
			name: "dry run flag forwarded",
			body: `{"dryRun":true}`,
			expectation: Expectation{
				wantRes:  `{"kind":"consolidationRun","runId":"RUN-2","state":"DONE","dryRun":true,"startedAt":"2025-04-20T00:00:00Z","finishedAt":"2025-04-20T00:00:00Z","snapshot":{"kind":"balanceSnapshot","banks":[],"totalUsd":"0","generatedAt":"0001-01-01T00:00:00Z"},"totalUsdConsolidated":"0","totalUsdTransferred":"0","internalSweeps":[],"topups":[],"errors":[]}`,
				wantCode: 200,
			},
			doMock: func() {
				testHelper.mockService.
					EXPECT().
					RunConsolidation(gomock.AssignableToTypeOf(context.Background()), models.ConsolidationRequest{DryRun: true}).
					Return(models.ConsolidationRun{
						RunID:      "RUN-2",
						State:      models.RunStateDone,
						DryRun:     true,
						StartedAt:  ct,
						FinishedAt: ct,
					}, nil)
			},
		},
		{
			name: "another run already holds the lease",
			body: `{}`,
			expectation: Expectation{
				wantRes:  `{"status":"error","code":"TRS4092","message":"a consolidation run is already in progress"}`,
				wantCode: 409,
			},
			doMock: func() {
				testHelper.mockService.
					EXPECT().
					RunConsolidation(gomock.AssignableToTypeOf(context.Background()), models.ConsolidationRequest{}).
					Return(models.ConsolidationRun{}, common.ErrRunAlreadyInProgress)
			},
		},
		{
			name: "error service",
			body: `{}`,
			expectation: Expectation{
				wantRes:  `{"status":"error","code":500,"message":"assert.AnError general error for testing"}`,
				wantCode: 500,
			},
			doMock: func() {
				testHelper.mockService.
					EXPECT().
					RunConsolidation(gomock.AssignableToTypeOf(context.Background()), models.ConsolidationRequest{}).
					Return(models.ConsolidationRun{}, assert.AnError)
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.doMock != nil {
				tc.doMock()
			}

			req := httptest.NewRequest(http.MethodPost, "/api/v1/consolidations", bytes.NewBufferString(tc.body))
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
