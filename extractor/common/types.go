package common

import (
	"github.com/shopspring/decimal"
)

// TransactionType is the semantic classification of a BWA category.
type TransactionType string

const (
	TypeRevenue TransactionType = "revenue"
	TypeExpense TransactionType = "expense"
	TypeSummary TransactionType = "summary"
	TypeOther   TransactionType = "other"
)

// ParsedDocument is the result of extracting one BWA report.
type ParsedDocument struct {
	Year           int          `json:"year"`
	SourceFileName string       `json:"source_file_name"`
	Lines          []ParsedLine `json:"lines"`
}

// ParsedLine is one category/month cell of the report table.
// Zero amounts are never emitted; an absent month means no activity.
type ParsedLine struct {
	Category string          `json:"category"`
	Month    int             `json:"month"`
	Year     int             `json:"year"`
	Amount   decimal.Decimal `json:"amount"`
	Type     TransactionType `json:"type"`
}

// IsValid reports whether the line satisfies the well-formedness
// invariant: non-empty category, non-zero amount, month in 1..12.
func (l ParsedLine) IsValid() bool {
	return l.Category != "" && !l.Amount.IsZero() && l.Month >= 1 && l.Month <= 12
}
