package bwa

import (
	"strings"

	"github.com/angeldimitrov/bwax/extractor/common"
)

// Keyword tables for category classification. Matching is
// case-insensitive substring containment, checked in rule order.
var (
	revenueKeywords = []string{"umsatz", "erlös", "einnahme"}

	expenseKeywords = []string{
		"kosten", "aufwand", "abschreibung", "personal", "raum",
		"versicherung", "fahrzeug", "werbe", "material", "waren",
		"besondere", "reparatur", "sonstige",
	}

	summaryKeywords = []string{
		"ergebnis", "rohertrag", "summe", "gesamt", "betrieblich", "ertrag",
	}
)

// Classify maps a category display name to its transaction type.
// Tax line items ("steuer") are always expenses; that rule is checked
// first and wins over any other keyword in the name.
func Classify(name string) common.TransactionType {
	lower := strings.ToLower(name)

	if strings.Contains(lower, "steuer") {
		return common.TypeExpense
	}

	for _, keyword := range revenueKeywords {
		if strings.Contains(lower, keyword) {
			return common.TypeRevenue
		}
	}

	for _, keyword := range expenseKeywords {
		if strings.Contains(lower, keyword) {
			return common.TypeExpense
		}
	}

	for _, keyword := range summaryKeywords {
		if strings.Contains(lower, keyword) {
			return common.TypeSummary
		}
	}

	return common.TypeOther
}
