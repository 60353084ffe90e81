package usecase

import (
	"context"

	"payments-engine/internal/domain"
)

// TransactionReader defines the interface for fetching transaction data.
// The usecase layer depends on this interface, not on a concrete implementation.
//
//go:generate mockgen -destination=mocks/mock_reader.go -source=interface.go TransactionReader
type TransactionReader interface {
	GetTransactions(ctx context.Context, path string) ([]domain.Transaction, error)
}
