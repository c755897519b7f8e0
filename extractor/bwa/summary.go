package bwa

import (
	"github.com/shopspring/decimal"

	"github.com/angeldimitrov/bwax/extractor/common"
)

// Totals aggregates a document's revenue and expense lines. Summary
// categories are computed totals in the source report and are excluded
// here so they cannot double count.
type Totals struct {
	Revenue decimal.Decimal `json:"revenue"`
	Expense decimal.Decimal `json:"expense"`
	Net     decimal.Decimal `json:"net"`
}

// DocumentTotals sums revenue and expense lines across all months.
func DocumentTotals(doc common.ParsedDocument) Totals {
	totals := Totals{
		Revenue: decimal.Zero,
		Expense: decimal.Zero,
		Net:     decimal.Zero,
	}

	for _, line := range doc.Lines {
		switch line.Type {
		case common.TypeRevenue:
			totals.Revenue = totals.Revenue.Add(line.Amount)
		case common.TypeExpense:
			totals.Expense = totals.Expense.Add(line.Amount)
		}
	}

	totals.Net = totals.Revenue.Sub(totals.Expense)
	return totals
}

// MonthlyNet returns revenue minus expenses per month, again excluding
// summary and other lines.
func MonthlyNet(doc common.ParsedDocument) map[int]decimal.Decimal {
	net := make(map[int]decimal.Decimal)

	for _, line := range doc.Lines {
		switch line.Type {
		case common.TypeRevenue:
			net[line.Month] = net[line.Month].Add(line.Amount)
		case common.TypeExpense:
			net[line.Month] = net[line.Month].Sub(line.Amount)
		}
	}

	return net
}
