package gateway

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/LerianStudio/lib-commons/commons/log"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"payments-engine/internal/domain"
)

func amountOf(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "transactions.csv")
	err := os.WriteFile(path, []byte(content), 0o600)
	assert.NoError(t, err)
	return path
}

func TestCSVTransactionReader_GetTransactions(t *testing.T) {
	tests := []struct {
		name     string
		csvData  string
		expected []domain.Transaction
	}{
		{
			name: "valid transactions with padded fields and empty amounts",
			csvData: "type, client, tx, amount\n" +
				"deposit, 1, 1, 100.0\n" +
				"withdrawal, 1, 2, 25.5\n" +
				"dispute, 1, 1, \n" +
				"resolve, 1, 1, \n" +
				"chargeback, 1, 1, \n",
			expected: []domain.Transaction{
				{Type: domain.TransactionTypeDeposit, ClientID: 1, TxID: 1, Amount: amountOf("100.0")},
				{Type: domain.TransactionTypeWithdrawal, ClientID: 1, TxID: 2, Amount: amountOf("25.5")},
				{Type: domain.TransactionTypeDispute, ClientID: 1, TxID: 1},
				{Type: domain.TransactionTypeResolve, ClientID: 1, TxID: 1},
				{Type: domain.TransactionTypeChargeback, ClientID: 1, TxID: 1},
			},
		},
		{
			name: "dispute rows without an amount column at all",
			csvData: "type,client,tx,amount\n" +
				"deposit,5,10,42.42\n" +
				"dispute,5,10\n",
			expected: []domain.Transaction{
				{Type: domain.TransactionTypeDeposit, ClientID: 5, TxID: 10, Amount: amountOf("42.42")},
				{Type: domain.TransactionTypeDispute, ClientID: 5, TxID: 10},
			},
		},
		{
			name:     "header only",
			csvData:  "type,client,tx,amount\n",
			expected: nil,
		},
		{
			name:     "empty file",
			csvData:  "",
			expected: nil,
		},
		{
			name: "malformed rows are skipped and valid rows kept",
			csvData: "type,client,tx,amount\n" +
				"deposit,1,1,100.0\n" +
				"deposit,1,2,not_a_number\n" +
				"transfer,1,3,10.0\n" +
				"deposit,not_a_client,4,10.0\n" +
				"deposit,1,not_a_tx,10.0\n" +
				"deposit,1\n" +
				"withdrawal,1,5,40.0\n",
			expected: []domain.Transaction{
				{Type: domain.TransactionTypeDeposit, ClientID: 1, TxID: 1, Amount: amountOf("100.0")},
				{Type: domain.TransactionTypeWithdrawal, ClientID: 1, TxID: 5, Amount: amountOf("40.0")},
			},
		},
		{
			name: "client and tx ids outside their integer ranges are skipped",
			csvData: "type,client,tx,amount\n" +
				"deposit,65536,1,10.0\n" +
				"deposit,1,4294967296,10.0\n" +
				"deposit,65535,4294967295,10.0\n",
			expected: []domain.Transaction{
				{Type: domain.TransactionTypeDeposit, ClientID: 65535, TxID: 4294967295, Amount: amountOf("10.0")},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempCSV(t, tt.csvData)
			reader := NewCSVTransactionReader(&log.GoLogger{Level: log.ErrorLevel})

			got, err := reader.GetTransactions(context.Background(), path)

			assert.NoError(t, err)
			if assert.Len(t, got, len(tt.expected)) {
				for i, want := range tt.expected {
					assert.Equal(t, want.Type, got[i].Type)
					assert.Equal(t, want.ClientID, got[i].ClientID)
					assert.Equal(t, want.TxID, got[i].TxID)
					if want.Amount == nil {
						assert.Nil(t, got[i].Amount)
					} else if assert.NotNil(t, got[i].Amount) {
						assert.True(t, got[i].Amount.Equal(*want.Amount), "amount: got %s, want %s", got[i].Amount, want.Amount)
					}
				}
			}
		})
	}
}

func TestCSVTransactionReader_GetTransactions_FileNotFound(t *testing.T) {
	reader := NewCSVTransactionReader(&log.GoLogger{Level: log.ErrorLevel})

	got, err := reader.GetTransactions(context.Background(), filepath.Join(t.TempDir(), "does_not_exist.csv"))

	assert.Error(t, err)
	assert.Nil(t, got)
	assert.Contains(t, err.Error(), "failed to open transaction file")
}
