package common

import (
	"bytes"
	"errors"
	"io"
	"log"
	"os"
	"strings"

	"github.com/dslipak/pdf"
)

// ExtractPagesFromPDFReader reads the PDF text layer and returns one
// slice of text rows per page. A page whose text cannot be read is
// logged and returned as an empty row set so later stages can skip it
// without losing the remaining pages.
func ExtractPagesFromPDFReader(reader io.Reader) ([][]string, error) {
	var rAt io.ReaderAt
	var size int64

	switch v := reader.(type) {
	case io.ReaderAt:
		rAt = v
		seeker, ok := reader.(io.Seeker)
		if !ok {
			return nil, errors.New("reader is io.ReaderAt but not io.Seeker, cannot determine size")
		}
		cur, _ := seeker.Seek(0, io.SeekCurrent)
		end, _ := seeker.Seek(0, io.SeekEnd)
		seeker.Seek(cur, io.SeekStart)
		size = end
	default:
		buf := new(bytes.Buffer)
		if _, err := buf.ReadFrom(reader); err != nil {
			return nil, err
		}
		b := buf.Bytes()
		rAt = bytes.NewReader(b)
		size = int64(len(b))
	}

	r, err := pdf.NewReader(rAt, size)
	if err != nil {
		return nil, err
	}

	numPages := r.NumPage()
	pages := make([][]string, 0, numPages)

	for no := 1; no <= numPages; no++ {
		page := r.Page(no)
		rows, err := page.GetTextByRow()
		if err != nil {
			log.Printf("Warning: error getting text from page %d: %v", no, err)
			pages = append(pages, nil)
			continue
		}

		pageRows := make([]string, 0, len(rows))
		for _, row := range rows {
			var builder strings.Builder
			builder.Grow(len(row.Content) * 20)

			for i, text := range row.Content {
				builder.WriteString(text.S)
				if i < len(row.Content)-1 {
					builder.WriteByte(' ')
				}
			}

			if builder.Len() > 0 {
				pageRows = append(pageRows, builder.String())
			}
		}

		pages = append(pages, pageRows)
	}

	return pages, nil
}

// ExtractPagesFromPDF opens path and extracts per-page text rows.
func ExtractPagesFromPDF(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return ExtractPagesFromPDFReader(file)
}
