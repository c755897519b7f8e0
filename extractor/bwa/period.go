package bwa

import (
	"log"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// yearPattern matches four-digit years 2000-2099 as they appear in
// report headers and file names.
var yearPattern = regexp.MustCompile(`20\d{2}`)

const (
	yearScanLines    = 10
	minPlausibleYear = 2000
	maxPlausibleYear = 2030
)

// ResolveYear determines the reporting year. It scans the first few
// text rows of the first page, then the file name, then falls back to
// the current calendar year. It never fails; a wrong year is clamped
// to the current one with a warning.
func ResolveYear(lines []string, fileName string) int {
	limit := len(lines)
	if limit > yearScanLines {
		limit = yearScanLines
	}

	for _, line := range lines[:limit] {
		if match := yearPattern.FindString(line); match != "" {
			year, _ := strconv.Atoi(match)
			return clampYear(year)
		}
	}

	if match := yearPattern.FindString(fileName); match != "" {
		year, _ := strconv.Atoi(match)
		return clampYear(year)
	}

	return time.Now().Year()
}

func clampYear(year int) int {
	if year < minPlausibleYear || year > maxPlausibleYear {
		current := time.Now().Year()
		log.Printf("WARN implausible reporting year %d, falling back to %d", year, current)
		return current
	}
	return year
}

// DetectMonthColumns scans the data line for "Abbr/year" header tokens
// (e.g. "Jan/2024") and returns the months present in Jan..Dez order.
// This ordered list defines how many amounts each category contributes
// and which month each amount maps to, strictly by position.
func DetectMonthColumns(dataLine string, year int) []int {
	suffix := "/" + strconv.Itoa(year)

	var months []int
	for i, abbr := range monthAbbreviations {
		if strings.Contains(dataLine, abbr+suffix) {
			months = append(months, i+1)
		}
	}
	return months
}
