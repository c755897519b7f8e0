package bwa

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/angeldimitrov/bwax/extractor/common"
)

func testDocument() common.ParsedDocument {
	amount := func(s string) decimal.Decimal {
		d, _ := common.ParseGermanDecimal(s)
		return d
	}

	return common.ParsedDocument{
		Year:           2024,
		SourceFileName: "bwa_2024.pdf",
		Lines: []common.ParsedLine{
			{Category: "Umsatzerlöse", Month: 1, Year: 2024, Amount: amount("10.000,00"), Type: common.TypeRevenue},
			{Category: "Umsatzerlöse", Month: 2, Year: 2024, Amount: amount("12.000,00"), Type: common.TypeRevenue},
			{Category: "Personalkosten", Month: 1, Year: 2024, Amount: amount("4.000,00"), Type: common.TypeExpense},
			{Category: "Raumkosten", Month: 2, Year: 2024, Amount: amount("1.500,00"), Type: common.TypeExpense},
			// Computed total from the report, must not be aggregated.
			{Category: "Gesamtkosten", Month: 1, Year: 2024, Amount: amount("5.500,00"), Type: common.TypeSummary},
			{Category: "Kalkulatorischer Unternehmerlohn", Month: 1, Year: 2024, Amount: amount("2.000,00"), Type: common.TypeOther},
		},
	}
}

func TestDocumentTotals_ExcludesSummaryAndOther(t *testing.T) {
	totals := DocumentTotals(testDocument())

	if totals.Revenue.String() != "22000" {
		t.Errorf("Expected revenue 22000, got %s", totals.Revenue.String())
	}
	if totals.Expense.String() != "5500" {
		t.Errorf("Expected expense 5500, got %s", totals.Expense.String())
	}
	if totals.Net.String() != "16500" {
		t.Errorf("Expected net 16500, got %s", totals.Net.String())
	}
}

func TestMonthlyNet(t *testing.T) {
	net := MonthlyNet(testDocument())

	if len(net) != 2 {
		t.Fatalf("Expected 2 months, got %d", len(net))
	}
	if net[1].String() != "6000" {
		t.Errorf("Expected month 1 net 6000, got %s", net[1].String())
	}
	if net[2].String() != "10500" {
		t.Errorf("Expected month 2 net 10500, got %s", net[2].String())
	}
}

func TestDocumentTotals_EmptyDocument(t *testing.T) {
	totals := DocumentTotals(common.ParsedDocument{Year: 2024})

	if !totals.Revenue.IsZero() || !totals.Expense.IsZero() || !totals.Net.IsZero() {
		t.Errorf("Expected all-zero totals, got %+v", totals)
	}
}
