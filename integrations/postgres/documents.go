package postgres

import (
	"context"
	"fmt"

	"github.com/angeldimitrov/bwax/extractor/common"
)

// DocumentExists checks if a document already exists using the natural
// key (source, year).
func (db *DB) DocumentExists(ctx context.Context, source string, year int) (bool, string, error) {
	var id string
	err := db.Pool.QueryRow(ctx, `
		SELECT id FROM documents
		WHERE source = $1 AND year = $2
	`, source, year).Scan(&id)

	if err != nil {
		if err.Error() == "no rows in result set" {
			return false, "", nil
		}
		return false, "", fmt.Errorf("failed to check document: %w", err)
	}

	return true, id, nil
}

// CreateDocument inserts a new document row
func (db *DB) CreateDocument(ctx context.Context, doc common.ParsedDocument) (string, error) {
	var id string

	err := db.Pool.QueryRow(ctx, `
		INSERT INTO documents (source, year)
		VALUES ($1, $2)
		RETURNING id
	`, doc.SourceFileName, doc.Year).Scan(&id)

	if err != nil {
		return "", fmt.Errorf("failed to create document: %w", err)
	}

	return id, nil
}

// DeleteDocument removes a document and its lines (cascade)
func (db *DB) DeleteDocument(ctx context.Context, documentID string) error {
	_, err := db.Pool.Exec(ctx, `DELETE FROM documents WHERE id = $1`, documentID)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	return nil
}
