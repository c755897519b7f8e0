// Package export writes extracted BWA documents as CSV in the layouts
// the original web dashboard offered: a standard comma-separated file
// and a German variant with semicolons and comma decimals.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/angeldimitrov/bwax/extractor/common"
)

// Format selects the CSV dialect.
type Format int

const (
	// FormatStandard uses comma separators and dot decimals.
	FormatStandard Format = iota
	// FormatGerman uses semicolon separators and comma decimals, the
	// dialect German spreadsheet locales expect.
	FormatGerman
)

// ParseFormat maps a user-supplied format name to a Format.
func ParseFormat(name string) (Format, error) {
	switch name {
	case "", "standard":
		return FormatStandard, nil
	case "german", "de":
		return FormatGerman, nil
	default:
		return FormatStandard, fmt.Errorf("unknown CSV format %q", name)
	}
}

var header = []string{"Jahr", "Monat", "Kategorie", "Typ", "Betrag", "Gruppenkategorie"}

// WriteCSV writes the document's lines in the BWA export layout. The
// output starts with a UTF-8 BOM so spreadsheet tools pick up the
// umlauts in category names.
func WriteCSV(w io.Writer, doc common.ParsedDocument, format Format) error {
	if _, err := io.WriteString(w, "\uFEFF"); err != nil {
		return fmt.Errorf("failed to write BOM: %w", err)
	}

	writer := csv.NewWriter(w)
	if format == FormatGerman {
		writer.Comma = ';'
	}

	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, line := range doc.Lines {
		amount := line.Amount.StringFixed(2)
		if format == FormatGerman {
			amount = common.FormatGermanDecimal(line.Amount)
		}

		group := "Nein"
		if line.Type == common.TypeSummary {
			group = "Ja"
		}

		record := []string{
			strconv.Itoa(line.Year),
			strconv.Itoa(line.Month),
			line.Category,
			string(line.Type),
			amount,
			group,
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
