package connector

import (
	"github.com/shopspring/decimal"

	"github.com/torxlabs/go-treasury/internal/models"
)

const serviceName = "bank-proxy"

type accountPayload struct {
	AccountID string          `json:"accountId"`
	Name      string          `json:"name"`
	Currency  string          `json:"currency"`
	Balance   decimal.Decimal `json:"balance"`
}

type listAccountsResponse struct {
	BankName string           `json:"bankName"`
	Accounts []accountPayload `json:"accounts"`
}

type mainBalanceResponse struct {
	BankName string          `json:"bankName"`
	Balance  decimal.Decimal `json:"balance"`
	Currency string          `json:"currency"`
}

type transferRequest struct {
	TransactionID string          `json:"transactionId"`
	FromAccount   string          `json:"fromAccount"`
	ToBank        string          `json:"toBank"`
	ToAccount     string          `json:"toAccount"`
	Amount        decimal.Decimal `json:"amount"`
	Reference     string          `json:"reference"`
}

type transferResponse struct {
	TransactionID string `json:"transactionId"`
	Status        string `json:"status"`
	BankReference string `json:"bankReference"`
}

func (r transferResponse) toModel() models.TransferResult {
	return models.TransferResult{
		TransactionID: r.TransactionID,
		Status:        models.TransferStatus(r.Status),
		BankReference: r.BankReference,
	}
}
