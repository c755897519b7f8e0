package common

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// GermanNumberPattern matches amounts as printed in BWA reports:
// optional sign, dot-grouped thousands, comma decimal with two places.
var GermanNumberPattern = regexp.MustCompile(`-?\d{1,3}(?:\.\d{3})*,\d{2}`)

// ParseGermanDecimal converts a German-formatted amount ("1.234,56")
// into an exact decimal. The second return value is false when the
// token does not parse; callers drop the token instead of aborting.
func ParseGermanDecimal(text string) (decimal.Decimal, bool) {
	cleaned := strings.TrimSpace(text)
	if cleaned == "" {
		return decimal.Zero, false
	}

	cleaned = strings.ReplaceAll(cleaned, ".", "")
	cleaned = strings.Replace(cleaned, ",", ".", 1)

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, false
	}

	return amount, true
}

// FormatGermanDecimal renders a decimal back into the German report
// format with grouped thousands, e.g. -1234.5 -> "-1.234,50".
func FormatGermanDecimal(amount decimal.Decimal) string {
	fixed := amount.StringFixed(2)

	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign = "-"
		fixed = fixed[1:]
	}

	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var builder strings.Builder
	builder.WriteString(sign)
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			builder.WriteByte('.')
		}
		builder.WriteRune(digit)
	}
	builder.WriteByte(',')
	builder.WriteString(fracPart)

	return builder.String()
}

// FindGermanNumbers returns all amount tokens in text, left to right.
func FindGermanNumbers(text string) []string {
	return GermanNumberPattern.FindAllString(text, -1)
}

// ContainsGermanNumber reports whether text holds at least one amount token.
func ContainsGermanNumber(text string) bool {
	return GermanNumberPattern.MatchString(text)
}
