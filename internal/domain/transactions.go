package domain

import "github.com/shopspring/decimal"

// TransactionType defines the kind of an incoming transaction record.
type TransactionType string

const (
	TransactionTypeDeposit    TransactionType = "deposit"
	TransactionTypeWithdrawal TransactionType = "withdrawal"
	TransactionTypeDispute    TransactionType = "dispute"
	TransactionTypeResolve    TransactionType = "resolve"
	TransactionTypeChargeback TransactionType = "chargeback"
)

// Transaction represents a single input record from a transaction stream.
//
// Amount is only present for deposits and withdrawals; it is nil for
// dispute, resolve and chargeback records, which instead use TxID to
// reference a previously recorded transaction of the same client.
type Transaction struct {
	Type     TransactionType
	ClientID uint16
	TxID     uint32
	Amount   *decimal.Decimal
}

// DisputeState tracks where a ledger entry is in the dispute protocol.
//
// The only transitions are Normal -> Disputed (dispute),
// Disputed -> Normal (resolve) and Disputed -> ChargedBack (chargeback).
// ChargedBack is terminal.
type DisputeState uint8

const (
	StateNormal DisputeState = iota
	StateDisputed
	StateChargedBack
)

// String returns a human-readable name for the state, used in diagnostics.
func (s DisputeState) String() string {
	switch s {
	case StateNormal:
		return "normal"
	case StateDisputed:
		return "disputed"
	case StateChargedBack:
		return "charged_back"
	default:
		return "unknown"
	}
}

// LedgerEntry is a recorded deposit or withdrawal in a client's ledger.
//
// Amount is signed: positive for a deposit, negative for a withdrawal.
// The sign lets dispute, resolve and chargeback share one arithmetic
// path, and the negative sign is what excludes withdrawals from being
// disputed (they have no held counterpart).
type LedgerEntry struct {
	Amount decimal.Decimal
	State  DisputeState
}
