package models

import (
	"github.com/shopspring/decimal"
)

// MainAccountName is the account every bank consolidates into.
const MainAccountName = "Main"

type Account struct {
	BankName  string
	AccountID string
	Name      string
	Currency  string
	Balance   decimal.Decimal
}

func (a Account) IsMain() bool {
	return a.Name == MainAccountName
}

type AccountOut struct {
	Kind      string `json:"kind"`
	BankName  string `json:"bankName"`
	AccountID string `json:"accountId"`
	Name      string `json:"name"`
	Currency  string `json:"currency"`
	Balance   string `json:"balance"`
}

func (a Account) ToResponse() AccountOut {
	return AccountOut{
		Kind:      "account",
		BankName:  a.BankName,
		AccountID: a.AccountID,
		Name:      a.Name,
		Currency:  a.Currency,
		Balance:   a.Balance.String(),
	}
}
