package connector

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"

	"github.com/torxlabs/go-treasury/internal/common"
	"github.com/torxlabs/go-treasury/internal/common/cache"
	"github.com/torxlabs/go-treasury/internal/common/ctxdata"
	"github.com/torxlabs/go-treasury/internal/common/log"
	"github.com/torxlabs/go-treasury/internal/common/metrics"
	"github.com/torxlabs/go-treasury/internal/config"
	"github.com/torxlabs/go-treasury/internal/models"
	"github.com/torxlabs/go-treasury/internal/monitoring"
)

var logMessage = "[BANK-PROXY-CLIENT]"

type client struct {
	baseURL   string
	secretKey string

	// readClient retries on transient upstream failures. writeClient never
	// does: a timed-out transfer may still have been executed.
	readClient  *resty.Client
	writeClient *resty.Client

	// accountCache memoizes per-bank account lists so one run does not hit
	// the proxy twice for the same listing. Main balances are never cached.
	accountCache cache.Client[[]models.Account]
	cacheTTL     time.Duration

	metrics metrics.Metrics
}

func New(configuration config.HTTPConfiguration, metrics metrics.Metrics, accountCache cache.Client[[]models.Account]) Connector {
	retryWaitTime := time.Duration(configuration.RetryWaitTime) * time.Millisecond

	readClient := resty.New()
	readClient = readClient.AddRetryCondition(func(r *resty.Response, err error) bool {
		if r == nil {
			return false
		}

		_, shouldRetry := models.RetryableHTTPCodes[r.StatusCode()]
		return shouldRetry
	})
	readClient = readClient.
		SetTransport(monitoring.NewMiddlewareRoundTripper(readClient.GetClient().Transport)).
		SetRetryCount(configuration.RetryCount).
		SetRetryWaitTime(retryWaitTime).
		SetTimeout(configuration.Timeout)

	writeClient := resty.New().
		SetTransport(monitoring.NewMiddlewareRoundTripper(nil)).
		SetTimeout(configuration.Timeout)

	return client{
		baseURL:      configuration.BaseURL,
		secretKey:    configuration.SecretKey,
		readClient:   readClient,
		writeClient:  writeClient,
		accountCache: accountCache,
		cacheTTL:     configuration.CacheTTL,
		metrics:      metrics,
	}
}

func (c client) ListAccounts(ctx context.Context, bankName string) ([]models.Account, error) {
	if c.accountCache == nil || c.cacheTTL <= 0 {
		return c.fetchAccounts(ctx, bankName)
	}

	return c.accountCache.GetOrSet(ctx, cache.GetOrSetOpts[[]models.Account]{
		Key: models.AccountCacheKeyPrefix + bankName,
		TTL: c.cacheTTL,
		Callback: func() ([]models.Account, error) {
			return c.fetchAccounts(ctx, bankName)
		},
	})
}

func (c client) fetchAccounts(ctx context.Context, bankName string) (accounts []models.Account, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	startTime := time.Now()
	url := fmt.Sprintf("%s/api/v1/banks/%s/accounts", c.baseURL, bankName)

	logFields := []log.Field{
		log.String("url", url),
		log.String("bankName", bankName),
	}

	httpRes, err := c.readClient.
		R().
		SetContext(ctx).
		SetHeader("Accept", "application/json; charset=utf-8").
		SetHeader("X-Correlation-Id", ctxdata.GetCorrelationId(ctx)).
		SetHeader("X-Secret-Key", c.secretKey).
		Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed send request: %w", err)
	}

	defer func() {
		if err != nil {
			log.Warn(ctx, logMessage, append(logFields, log.Err(err))...)
		}
		if c.metrics != nil {
			groupUrl := fmt.Sprintf("%s/api/v1/banks/:bank/accounts", c.baseURL)
			c.metrics.GetHTTPClientPrometheus().Record(time.Since(startTime), serviceName, httpRes.Request.Method, groupUrl, httpRes.StatusCode())
		}
	}()

	if httpRes.StatusCode() != http.StatusOK {
		if httpRes.StatusCode() == http.StatusNotFound {
			return nil, common.ErrUnknownBank
		}

		return nil, fmt.Errorf("invalid response http code: got %d", httpRes.StatusCode())
	}

	var res listAccountsResponse
	err = json.Unmarshal(httpRes.Body(), &res)
	if err != nil {
		return nil, fmt.Errorf("error unmarshal response: %w", err)
	}

	accounts = make([]models.Account, 0, len(res.Accounts))
	for _, a := range res.Accounts {
		accounts = append(accounts, models.Account{
			BankName:  bankName,
			AccountID: a.AccountID,
			Name:      a.Name,
			Currency:  a.Currency,
			Balance:   a.Balance,
		})
	}

	return accounts, nil
}

func (c client) GetMainBalance(ctx context.Context, bankName string) (balance decimal.Decimal, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	startTime := time.Now()
	url := fmt.Sprintf("%s/api/v1/banks/%s/accounts/main/balance", c.baseURL, bankName)

	logFields := []log.Field{
		log.String("url", url),
		log.String("bankName", bankName),
	}

	httpRes, err := c.readClient.
		R().
		SetContext(ctx).
		SetHeader("Accept", "application/json; charset=utf-8").
		SetHeader("X-Correlation-Id", ctxdata.GetCorrelationId(ctx)).
		SetHeader("X-Secret-Key", c.secretKey).
		Get(url)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed send request: %w", err)
	}

	defer func() {
		if err != nil {
			log.Warn(ctx, logMessage, append(logFields, log.Err(err))...)
		}
		if c.metrics != nil {
			groupUrl := fmt.Sprintf("%s/api/v1/banks/:bank/accounts/main/balance", c.baseURL)
			c.metrics.GetHTTPClientPrometheus().Record(time.Since(startTime), serviceName, httpRes.Request.Method, groupUrl, httpRes.StatusCode())
		}
	}()

	if httpRes.StatusCode() != http.StatusOK {
		if httpRes.StatusCode() == http.StatusNotFound {
			return decimal.Zero, common.ErrUnknownBank
		}

		return decimal.Zero, fmt.Errorf("invalid response http code: got %d", httpRes.StatusCode())
	}

	var res mainBalanceResponse
	err = json.Unmarshal(httpRes.Body(), &res)
	if err != nil {
		return decimal.Zero, fmt.Errorf("error unmarshal response: %w", err)
	}

	return res.Balance, nil
}

func (c client) Transfer(ctx context.Context, instruction models.TransferInstruction) (result models.TransferResult, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	startTime := time.Now()
	url := fmt.Sprintf("%s/api/v1/banks/%s/transfers", c.baseURL, instruction.FromBank)

	logFields := []log.Field{
		log.String("url", url),
		log.String("transactionId", instruction.TransactionID),
		log.String("fromBank", instruction.FromBank),
		log.String("toBank", instruction.ToBank),
		log.Decimal("amount", instruction.Amount),
	}

	log.Info(ctx, logMessage, append(logFields, log.String("message", "send transfer instruction"))...)

	httpRes, err := c.writeClient.
		R().
		SetContext(ctx).
		SetHeader("Accept", "application/json; charset=utf-8").
		SetHeader("X-Correlation-Id", ctxdata.GetCorrelationId(ctx)).
		SetHeader("X-Secret-Key", c.secretKey).
		SetBody(transferRequest{
			TransactionID: instruction.TransactionID,
			FromAccount:   instruction.FromAccount,
			ToBank:        instruction.ToBank,
			ToAccount:     instruction.ToAccount,
			Amount:        instruction.Amount,
			Reference:     instruction.Reference,
		}).
		Post(url)
	if err != nil {
		return result, fmt.Errorf("failed send request: %w", err)
	}

	defer func() {
		if err != nil {
			log.Warn(ctx, logMessage, append(logFields, log.Err(err))...)
		}
		if c.metrics != nil {
			groupUrl := fmt.Sprintf("%s/api/v1/banks/:bank/transfers", c.baseURL)
			c.metrics.GetHTTPClientPrometheus().Record(time.Since(startTime), serviceName, httpRes.Request.Method, groupUrl, httpRes.StatusCode())
		}
	}()

	switch httpRes.StatusCode() {
	case http.StatusOK, http.StatusCreated, http.StatusAccepted:
	case http.StatusNotFound:
		return result, common.ErrUnknownBank
	case http.StatusUnprocessableEntity:
		return result, common.ErrManualTransferRequired
	default:
		return result, fmt.Errorf("invalid response http code: got %d", httpRes.StatusCode())
	}

	var res transferResponse
	err = json.Unmarshal(httpRes.Body(), &res)
	if err != nil {
		return result, fmt.Errorf("error unmarshal response: %w", err)
	}

	return res.toModel(), nil
}
