// Package ledger holds the pure statement computations: the balance
// reduction and the calendar-day filter. Nothing here mutates a statement.
package ledger

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/api-sage/account-ledger/internal/domain"
)

const dayLayout = "2006-01-02"

// Balance reduces a statement left to right starting at zero: credits add,
// debits subtract.
func Balance(statement []domain.Operation) decimal.Decimal {
	balance := decimal.Zero
	for _, op := range statement {
		switch op.Type {
		case domain.OperationCredit:
			balance = balance.Add(op.Amount)
		case domain.OperationDebit:
			balance = balance.Sub(op.Amount)
		}
	}

	return balance
}

// FilterByDate keeps the operations whose CreatedAt falls on the same
// calendar day as day, observed in day's location. The result preserves
// statement order and is never nil.
func FilterByDate(statement []domain.Operation, day time.Time) []domain.Operation {
	year, month, dom := day.Date()
	loc := day.Location()

	filtered := make([]domain.Operation, 0, len(statement))
	for _, op := range statement {
		opYear, opMonth, opDom := op.CreatedAt.In(loc).Date()
		if opYear == year && opMonth == month && opDom == dom {
			filtered = append(filtered, op)
		}
	}

	return filtered
}

// ParseDay parses a YYYY-MM-DD string anchored to midnight in loc, so a
// day query never drifts across a day boundary on conversion.
func ParseDay(raw string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(dayLayout, strings.TrimSpace(raw), loc)
}
