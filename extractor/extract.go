package extractor

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/angeldimitrov/bwax/extractor/bwa"
	"github.com/angeldimitrov/bwax/extractor/common"
)

// ProcessReader extracts a BWA document from an open PDF stream. The
// stream is assumed to be a validated PDF; filename is only used for
// year fallback and audit logging.
func ProcessReader(reader io.Reader, fileName string) (common.ParsedDocument, error) {
	pages, err := common.ExtractPagesFromPDFReader(reader)
	if err != nil {
		return common.ParsedDocument{}, fmt.Errorf("failed to read PDF text layer: %w", err)
	}

	parser := bwa.NewParser(bwa.VocabularyFromConfig())
	return parser.Parse(pages, filepath.Base(fileName))
}

// ProcessFile extracts a BWA document from a PDF on disk.
func ProcessFile(path string) (common.ParsedDocument, error) {
	file, err := os.Open(path)
	if err != nil {
		return common.ParsedDocument{}, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	return ProcessReader(file, path)
}

// ExecuteAgainstPath extracts a single PDF or every PDF in a directory
// and prints the results as JSON.
func ExecuteAgainstPath(path string) {
	info, err := os.Stat(path)
	if err != nil {
		log.Fatalf("error: cannot stat %s: %v", path, err)
	}

	if info.IsDir() {
		log.Println("Scanning", path)

		entries, err := os.ReadDir(path)
		if err != nil {
			log.Fatal(err)
		}

		results := []common.ParsedDocument{}
		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(strings.ToLower(entry.Name()), ".pdf") {
				continue
			}
			doc, err := ProcessFile(filepath.Join(path, entry.Name()))
			if err != nil {
				log.Printf("FAIL %s: %v", entry.Name(), err)
				continue
			}
			results = append(results, doc)
		}

		asJSON, _ := json.Marshal(results)
		fmt.Println(string(asJSON))
		return
	}

	log.Println("Extracting", path)
	doc, err := ProcessFile(path)
	if err != nil {
		log.Fatalf("error: extraction failed: %v", err)
	}

	asJSON, _ := json.Marshal(CreateFinalOutput(doc, false, false))
	fmt.Println(string(asJSON))
}

// CreateFinalOutput shapes the extraction result for JSON output
// according to the lines_only / document_only flags.
func CreateFinalOutput(doc common.ParsedDocument, linesOnly bool, documentOnly bool) interface{} {
	if linesOnly {
		return doc.Lines
	}

	output := map[string]interface{}{
		"year":             doc.Year,
		"source_file_name": doc.SourceFileName,
		"totals":           bwa.DocumentTotals(doc),
	}

	if documentOnly {
		output["line_count"] = len(doc.Lines)
		return output
	}

	output["lines"] = doc.Lines
	return output
}
