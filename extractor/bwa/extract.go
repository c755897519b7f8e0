package bwa

import (
	"errors"
	"log"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/angeldimitrov/bwax/extractor/common"
)

var (
	// ErrNoPages is returned when the document has no pages at all.
	ErrNoPages = errors.New("document contains no pages")
	// ErrNoDataLine is returned when no page yields a data line.
	ErrNoDataLine = errors.New("no data line found in document")
	// ErrNoMonthColumns is returned when data lines were located but
	// none carried recognizable month headers.
	ErrNoMonthColumns = errors.New("no month columns found")
)

// maxCategoryWindow bounds the text scanned after a category anchor so
// a malformed document cannot make the number scan unbounded.
const maxCategoryWindow = 4096

// Parser extracts category lines from BWA report text.
type Parser struct {
	vocabulary Vocabulary
}

// NewParser creates a parser for the given category table.
func NewParser(vocabulary Vocabulary) *Parser {
	return &Parser{vocabulary: vocabulary}
}

// Parse extracts all category lines from the per-page text rows of a
// BWA report. Only document-level conditions fail the whole call: no
// pages, no data line on any page, or no month columns on any page.
// Everything below that is logged and skipped, so the caller receives
// either a fully formed document or an explicit error, never a partial
// result disguised as success.
func (p *Parser) Parse(pages [][]string, sourceFileName string) (common.ParsedDocument, error) {
	if len(pages) == 0 {
		return common.ParsedDocument{}, ErrNoPages
	}

	year := ResolveYear(pages[0], sourceFileName)

	doc := common.ParsedDocument{
		Year:           year,
		SourceFileName: sourceFileName,
		Lines:          []common.ParsedLine{},
	}

	pagesWithData := 0
	pagesWithMonths := 0

	for no, page := range pages {
		dataLine, ok := LocateDataLine(page, year)
		if !ok {
			log.Printf("WARN page %d: no data line located, skipping", no+1)
			continue
		}
		pagesWithData++

		months := DetectMonthColumns(dataLine, year)
		if len(months) == 0 {
			log.Printf("WARN page %d: data line has no month columns, skipping", no+1)
			continue
		}
		pagesWithMonths++

		for _, category := range p.vocabulary {
			doc.Lines = append(doc.Lines, p.extractCategory(dataLine, category, months, year)...)
		}
	}

	if pagesWithData == 0 {
		return common.ParsedDocument{}, ErrNoDataLine
	}
	if pagesWithMonths == 0 {
		return common.ParsedDocument{}, ErrNoMonthColumns
	}

	return doc, nil
}

// extractCategory slices one category's amounts out of the data line.
// A failure here never aborts the document; the category simply
// contributes no lines.
func (p *Parser) extractCategory(dataLine string, category Category, months []int, year int) (lines []common.ParsedLine) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("WARN category %q: extraction aborted: %v", category.Name, r)
			lines = nil
		}
	}()

	rest, found := anchorCategory(dataLine, category)
	if !found {
		// Reports vary in which categories they carry; absence is
		// not an error.
		return nil
	}

	if len(rest) > maxCategoryWindow {
		rest = rest[:maxCategoryWindow]
	}

	amounts := make([]decimal.Decimal, 0, len(months))
	for _, token := range common.FindGermanNumbers(rest) {
		if len(amounts) == len(months) {
			// Anything past the month count belongs to the next
			// category on the flattened line.
			break
		}
		amount, ok := common.ParseGermanDecimal(token)
		if !ok {
			log.Printf("DEBUG category %q: dropping unparseable token %q", category.Name, token)
			continue
		}
		amounts = append(amounts, amount)
	}

	// Positional mapping: amounts[i] belongs to months[i]. The
	// report's left-to-right column order is assumed to match the
	// chronological header order; nothing re-derives a month from the
	// surrounding text. Known limitation of the source format.
	txType := Classify(category.Name)
	for i, amount := range amounts {
		if amount.IsZero() {
			continue
		}
		lines = append(lines, common.ParsedLine{
			Category: category.Name,
			Month:    months[i],
			Year:     year,
			Amount:   amount,
			Type:     txType,
		})
	}

	return lines
}

// anchorCategory finds the first synonym occurrence in the data line
// (case-insensitive, literal substring) and returns the text after the
// matched synonym with leading whitespace stripped. Synonyms after the
// first match are not tried.
func anchorCategory(dataLine string, category Category) (string, bool) {
	lower := strings.ToLower(dataLine)
	for _, synonym := range category.Synonyms {
		idx := strings.Index(lower, strings.ToLower(synonym))
		if idx < 0 {
			continue
		}
		rest := dataLine[idx+len(synonym):]
		return strings.TrimLeft(rest, " \t"), true
	}
	return "", false
}
