package postgres

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/angeldimitrov/bwax/extractor"
)

// ImportResult tracks the outcome of an import operation
type ImportResult struct {
	Processed int
	Skipped   int
	Failed    int
	Errors    []string
}

// ImportOptions configures the import behavior
type ImportOptions struct {
	Force   bool // Force reprocessing of existing documents
	Verbose bool // Enable verbose logging
}

// ImportFile extracts a single BWA PDF and stores it in the database.
// Returns: processed count, skipped count, failed count, error messages
func (db *DB) ImportFile(ctx context.Context, filePath string, opts ImportOptions) (processed int, skipped int, failed int, errors []string) {
	fileName := filepath.Base(filePath)

	doc, err := extractor.ProcessFile(filePath)
	if err != nil {
		return 0, 0, 1, []string{fmt.Sprintf("%s: extraction failed: %v", fileName, err)}
	}

	if len(doc.Lines) == 0 {
		return 0, 0, 1, []string{fmt.Sprintf("%s: no category lines extracted", fileName)}
	}

	// Check if document exists (natural key: source + year)
	exists, existingID, err := db.DocumentExists(ctx, doc.SourceFileName, doc.Year)
	if err != nil {
		return 0, 0, 1, []string{fmt.Sprintf("%s: check error: %v", fileName, err)}
	}

	if exists && !opts.Force {
		if opts.Verbose {
			log.Printf("SKIP %s [%d] (already exists)", fileName, doc.Year)
		}
		return 0, 1, 0, nil
	}

	if exists && opts.Force {
		if err := db.DeleteDocument(ctx, existingID); err != nil {
			return 0, 0, 1, []string{fmt.Sprintf("%s: delete error: %v", fileName, err)}
		}
	}

	documentID, err := db.CreateDocument(ctx, doc)
	if err != nil {
		return 0, 0, 1, []string{fmt.Sprintf("%s: document error: %v", fileName, err)}
	}

	if err := db.CreateLines(ctx, documentID, doc.Lines); err != nil {
		// Rollback by deleting the document
		_ = db.DeleteDocument(ctx, documentID)
		return 0, 0, 1, []string{fmt.Sprintf("%s: lines error: %v", fileName, err)}
	}

	if opts.Verbose {
		log.Printf("OK   %s [%d] (%d lines)", fileName, doc.Year, len(doc.Lines))
	}
	return 1, 0, 0, nil
}

// ImportDirectory processes all PDF files in a directory
func (db *DB) ImportDirectory(ctx context.Context, dirPath string, opts ImportOptions) (*ImportResult, error) {
	result := &ImportResult{}

	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	var pdfFiles []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.HasSuffix(strings.ToLower(e.Name()), ".pdf") {
			pdfFiles = append(pdfFiles, filepath.Join(dirPath, e.Name()))
		}
	}

	log.Printf("Scanning: %s", dirPath)
	log.Printf("Found %d PDF files\n", len(pdfFiles))

	for _, filePath := range pdfFiles {
		processed, skipped, failed, errors := db.ImportFile(ctx, filePath, opts)

		result.Processed += processed
		result.Skipped += skipped
		result.Failed += failed
		result.Errors = append(result.Errors, errors...)

		if opts.Verbose && failed > 0 {
			for _, errMsg := range errors {
				log.Printf("FAIL %s", errMsg)
			}
		}
	}

	return result, nil
}

// Import handles both file and directory imports
func (db *DB) Import(ctx context.Context, path string, opts ImportOptions) (*ImportResult, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat path: %w", err)
	}

	if info.IsDir() {
		return db.ImportDirectory(ctx, path, opts)
	}

	result := &ImportResult{}
	processed, skipped, failed, errors := db.ImportFile(ctx, path, opts)

	result.Processed = processed
	result.Skipped = skipped
	result.Failed = failed
	result.Errors = errors

	return result, nil
}
