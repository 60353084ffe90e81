package usecase

import (
	"sort"

	"github.com/LerianStudio/lib-commons/commons/log"

	"payments-engine/internal/domain"
)

// Engine routes transactions to client accounts, creating accounts
// lazily on first reference, and produces the final balance snapshot.
// It is a single-threaded, single-pass structure: transactions must be
// applied in input order, because disputes act on the account state as
// of their position in the stream.
type Engine struct {
	accounts map[uint16]*account
	logger   log.Logger
}

// NewEngine creates an empty engine.
func NewEngine(logger log.Logger) *Engine {
	return &Engine{
		accounts: make(map[uint16]*account),
		logger:   logger,
	}
}

// Apply dispatches a single transaction to the owning client account.
// A locked account swallows every transaction, deposits included.
func (e *Engine) Apply(tx domain.Transaction) {
	acct, ok := e.accounts[tx.ClientID]
	if !ok {
		acct = newAccount(tx.ClientID, e.logger)
		e.accounts[tx.ClientID] = acct
	}

	if acct.locked {
		e.logger.Debugf("client %d is locked, skipping transaction %d", tx.ClientID, tx.TxID)
		return
	}

	switch tx.Type {
	case domain.TransactionTypeDeposit:
		if tx.Amount == nil {
			e.logger.Debugf("deposit transaction %d for client %d is missing an amount", tx.TxID, tx.ClientID)
			return
		}
		acct.deposit(*tx.Amount, tx.TxID)
	case domain.TransactionTypeWithdrawal:
		if tx.Amount == nil {
			e.logger.Debugf("withdrawal transaction %d for client %d is missing an amount", tx.TxID, tx.ClientID)
			return
		}
		acct.withdraw(*tx.Amount, tx.TxID)
	case domain.TransactionTypeDispute:
		acct.dispute(tx.TxID)
	case domain.TransactionTypeResolve:
		acct.resolve(tx.TxID)
	case domain.TransactionTypeChargeback:
		acct.chargeback(tx.TxID)
	default:
		e.logger.Debugf("unknown transaction type %q for transaction %d, skipping", tx.Type, tx.TxID)
	}
}

// Snapshot returns one row per known client, sorted by client id.
// Total is always derived from available and held, never stored.
func (e *Engine) Snapshot() []domain.AccountSnapshot {
	snapshots := make([]domain.AccountSnapshot, 0, len(e.accounts))
	for clientID, acct := range e.accounts {
		snapshots = append(snapshots, domain.AccountSnapshot{
			ClientID:  clientID,
			Available: acct.available,
			Held:      acct.held,
			Total:     acct.available.Add(acct.held),
			Locked:    acct.locked,
		})
	}

	sort.Slice(snapshots, func(i, j int) bool {
		return snapshots[i].ClientID < snapshots[j].ClientID
	})

	return snapshots
}
