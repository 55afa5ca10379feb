package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Amounts and balances travel as plain JSON numbers on this API.
	decimal.MarshalJSONWithoutQuotes = true
}

type OperationType string

const (
	OperationCredit OperationType = "credit"
	OperationDebit  OperationType = "debit"
)

// Operation is a single ledger entry. Once appended to a statement it is
// never edited or removed.
type Operation struct {
	Description string          `json:"description,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	CreatedAt   time.Time       `json:"created_at"`
	Type        OperationType   `json:"type"`
}

// Account is keyed by CPF; the CPF is immutable after creation. Statement
// is append-only and its order is the chronological order of operations.
type Account struct {
	ID        string      `json:"id"`
	CPF       string      `json:"cpf"`
	Name      string      `json:"name"`
	Statement []Operation `json:"statement"`
}
