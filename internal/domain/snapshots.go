package domain

import "github.com/shopspring/decimal"

// AccountSnapshot is the final state of one client account after all
// transactions have been applied.
type AccountSnapshot struct {
	ClientID  uint16          `json:"client"`
	Available decimal.Decimal `json:"available"`
	Held      decimal.Decimal `json:"held"`
	Total     decimal.Decimal `json:"total"`
	Locked    bool            `json:"locked"`
}
