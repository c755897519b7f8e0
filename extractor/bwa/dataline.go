package bwa

import (
	"strconv"
	"strings"

	"github.com/angeldimitrov/bwax/extractor/common"
)

const (
	strictMinLength  = 1000
	relaxedMinLength = 500
	relaxedMinMonths = 6
)

// LocateDataLine finds the row holding the flattened report table.
// The PDF text layer concatenates an entire page's table into one very
// long row, so three strategies are tried in order, first success wins:
// a long row carrying the January header, a long row carrying at least
// six month headers, and finally stitching together all rows that look
// like table fragments.
func LocateDataLine(lines []string, year int) (string, bool) {
	yearStr := strconv.Itoa(year)

	strictToken := "Jan/" + yearStr
	for _, line := range lines {
		if len(line) > strictMinLength && strings.Contains(line, strictToken) {
			return line, true
		}
	}

	for _, line := range lines {
		if len(line) <= relaxedMinLength {
			continue
		}
		count := 0
		for _, abbr := range monthAbbreviations {
			if strings.Contains(line, abbr+"/"+yearStr) {
				count++
			}
		}
		if count >= relaxedMinMonths {
			return line, true
		}
	}

	var fragments []string
	for _, line := range lines {
		if strings.Contains(line, yearStr) && common.ContainsGermanNumber(line) {
			fragments = append(fragments, line)
		}
	}
	if len(fragments) >= 2 {
		return strings.Join(fragments, " "), true
	}

	return "", false
}
