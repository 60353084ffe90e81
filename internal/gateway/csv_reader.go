package gateway

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/LerianStudio/lib-commons/commons/log"
	"github.com/shopspring/decimal"

	"payments-engine/internal/domain"
)

// CSVTransactionReader implements the TransactionReader interface for CSV files.
type CSVTransactionReader struct {
	logger log.Logger
}

// NewCSVTransactionReader creates a new reader instance.
func NewCSVTransactionReader(logger log.Logger) *CSVTransactionReader {
	return &CSVTransactionReader{logger: logger}
}

// GetTransactions reads and parses a transaction CSV file with columns
// type, client, tx, amount. The amount column is optional and empty for
// dispute, resolve and chargeback rows.
//
// Malformed rows are dropped with a warning; they must never abort the
// stream. Only an unreadable source is an error.
func (r *CSVTransactionReader) GetTransactions(ctx context.Context, path string) ([]domain.Transaction, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open transaction file %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	// Skip header
	if _, err := reader.Read(); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read header from %s: %w", path, err)
	}

	var transactions []domain.Transaction
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			r.logger.Warnf("failed to read a record from %s: %v, skipping invalid record", path, err)
			continue
		}

		tx, err := parseTransaction(record)
		if err != nil {
			r.logger.Warnf("failed to parse a transaction from %s: %v, skipping invalid record", path, err)
			continue
		}

		transactions = append(transactions, tx)
	}

	return transactions, nil
}

// parseTransaction converts one CSV record into a typed transaction.
// Fields are trimmed before parsing so padded input like
// "deposit, 1, 1, 100.0" round-trips cleanly.
func parseTransaction(record []string) (domain.Transaction, error) {
	if len(record) < 3 {
		return domain.Transaction{}, fmt.Errorf("expected at least 3 fields, got %d", len(record))
	}

	txType := domain.TransactionType(strings.TrimSpace(record[0]))
	switch txType {
	case domain.TransactionTypeDeposit, domain.TransactionTypeWithdrawal,
		domain.TransactionTypeDispute, domain.TransactionTypeResolve,
		domain.TransactionTypeChargeback:
	default:
		return domain.Transaction{}, fmt.Errorf("unknown transaction type '%s'", record[0])
	}

	clientID, err := strconv.ParseUint(strings.TrimSpace(record[1]), 10, 16)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("could not parse client '%s': %w", record[1], err)
	}

	txID, err := strconv.ParseUint(strings.TrimSpace(record[2]), 10, 32)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("could not parse tx '%s': %w", record[2], err)
	}

	tx := domain.Transaction{
		Type:     txType,
		ClientID: uint16(clientID),
		TxID:     uint32(txID),
	}

	if len(record) >= 4 {
		if raw := strings.TrimSpace(record[3]); raw != "" {
			amount, err := decimal.NewFromString(raw)
			if err != nil {
				return domain.Transaction{}, fmt.Errorf("could not parse amount '%s': %w", record[3], err)
			}
			tx.Amount = &amount
		}
	}

	return tx, nil
}
