package usecase

import (
	"context"
	"fmt"

	"github.com/LerianStudio/lib-commons/commons/log"

	"payments-engine/internal/domain"
)

// SettlementUseCase orchestrates one settlement run: it pulls the full
// transaction sequence from the reader, feeds it through the engine in
// input order, and returns the final account snapshots.
type SettlementUseCase struct {
	reader TransactionReader
	logger log.Logger
}

// NewSettlementUseCase creates a new instance of the usecase.
func NewSettlementUseCase(reader TransactionReader, logger log.Logger) *SettlementUseCase {
	return &SettlementUseCase{reader: reader, logger: logger}
}

// Settle processes every transaction in the named source and returns
// the per-client balance snapshot. The only error it can return is a
// failure to read the source; invalid transactions inside the stream
// never abort the run.
func (uc *SettlementUseCase) Settle(ctx context.Context, path string) ([]domain.AccountSnapshot, error) {
	transactions, err := uc.reader.GetTransactions(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("could not get transactions: %w", err)
	}

	engine := NewEngine(uc.logger)
	for _, tx := range transactions {
		engine.Apply(tx)
	}

	return engine.Snapshot(), nil
}
