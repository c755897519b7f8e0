package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/angeldimitrov/bwax/extractor/common"
)

// CreateLines bulk inserts category lines for a document. Lines that
// fail the well-formedness invariant are rejected before anything is
// queued so the document stays consistent.
func (db *DB) CreateLines(ctx context.Context, documentID string, lines []common.ParsedLine) error {
	if len(lines) == 0 {
		return nil
	}

	for _, line := range lines {
		if !line.IsValid() {
			return fmt.Errorf("refusing to insert malformed line %+v", line)
		}
	}

	batch := &pgx.Batch{}
	for _, line := range lines {
		batch.Queue(`
			INSERT INTO document_lines (
				document_id, category, month, year, amount, type
			) VALUES ($1, $2, $3, $4, $5, $6)
		`, documentID, line.Category, line.Month, line.Year, line.Amount, string(line.Type))
	}

	br := db.Pool.SendBatch(ctx, batch)
	defer br.Close()

	for range lines {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("failed to insert line: %w", err)
		}
	}

	return nil
}
