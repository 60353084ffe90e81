package usecase

import (
	"github.com/LerianStudio/lib-commons/commons/log"
	"github.com/shopspring/decimal"

	"payments-engine/internal/domain"
)

// account holds one client's balances and its ledger of recorded
// transactions. It enforces every per-account business rule; any rule
// violation leaves the account unchanged and is reported only as a
// debug-level trace, never as an error, so a bad record can never stop
// the rest of the stream from being processed.
type account struct {
	clientID  uint16
	available decimal.Decimal
	held      decimal.Decimal
	locked    bool
	ledger    map[uint32]*domain.LedgerEntry
	logger    log.Logger
}

func newAccount(clientID uint16, logger log.Logger) *account {
	return &account{
		clientID: clientID,
		ledger:   make(map[uint32]*domain.LedgerEntry),
		logger:   logger,
	}
}

// deposit credits the available balance and records the transaction with
// a positive amount. Deposits have no rejection condition.
func (a *account) deposit(amount decimal.Decimal, txID uint32) {
	a.available = a.available.Add(amount)
	a.ledger[txID] = &domain.LedgerEntry{Amount: amount, State: domain.StateNormal}
}

// withdraw debits the available balance and records the transaction with
// a negative amount. A withdrawal that would drive available below zero
// is a no-op.
func (a *account) withdraw(amount decimal.Decimal, txID uint32) {
	if a.available.LessThan(amount) {
		a.logger.Debugf("client %d has insufficient funds for withdrawal of %s, available: %s",
			a.clientID, amount, a.available)
		return
	}

	a.available = a.available.Sub(amount)
	a.ledger[txID] = &domain.LedgerEntry{Amount: amount.Neg(), State: domain.StateNormal}
}

// dispute moves a previously deposited amount from available to held.
// It is a no-op when the referenced transaction is unknown, not in the
// normal state, a withdrawal (negative amount), or larger than the
// current available balance.
func (a *account) dispute(refTxID uint32) {
	entry, ok := a.ledger[refTxID]
	if !ok {
		a.logger.Debugf("transaction %d for client %d not found for dispute", refTxID, a.clientID)
		return
	}

	if entry.State != domain.StateNormal {
		a.logger.Debugf("transaction %d for client %d is %s and cannot be disputed",
			refTxID, a.clientID, entry.State)
		return
	}

	if entry.Amount.IsNegative() {
		a.logger.Debugf("transaction %d for client %d is a withdrawal and cannot be disputed",
			refTxID, a.clientID)
		return
	}

	if entry.Amount.GreaterThan(a.available) {
		a.logger.Debugf("client %d has insufficient available funds to dispute transaction %d, available: %s, amount: %s",
			a.clientID, refTxID, a.available, entry.Amount)
		return
	}

	entry.State = domain.StateDisputed
	a.available = a.available.Sub(entry.Amount)
	a.held = a.held.Add(entry.Amount)
}

// resolve releases a disputed amount back to available. It is a no-op
// when the referenced transaction is unknown or not disputed.
func (a *account) resolve(refTxID uint32) {
	entry, ok := a.ledger[refTxID]
	if !ok {
		a.logger.Debugf("transaction %d for client %d not found for resolve", refTxID, a.clientID)
		return
	}

	if entry.State != domain.StateDisputed {
		a.logger.Debugf("transaction %d for client %d is %s and cannot be resolved",
			refTxID, a.clientID, entry.State)
		return
	}

	entry.State = domain.StateNormal
	a.available = a.available.Add(entry.Amount)
	a.held = a.held.Sub(entry.Amount)
}

// chargeback withdraws a disputed amount from held and locks the account
// permanently. It is a no-op when the referenced transaction is unknown
// or not disputed.
func (a *account) chargeback(refTxID uint32) {
	entry, ok := a.ledger[refTxID]
	if !ok {
		a.logger.Debugf("transaction %d for client %d not found for chargeback", refTxID, a.clientID)
		return
	}

	if entry.State != domain.StateDisputed {
		a.logger.Debugf("transaction %d for client %d is %s and cannot be charged back",
			refTxID, a.clientID, entry.State)
		return
	}

	entry.State = domain.StateChargedBack
	a.held = a.held.Sub(entry.Amount)
	a.locked = true
}
