package bwa

import (
	"fmt"
	"testing"
	"time"
)

func TestResolveYear_FromPageText(t *testing.T) {
	lines := []string{
		"Betriebswirtschaftliche Auswertung",
		"Auswertungszeitraum Januar - Dezember 2024",
	}

	year := ResolveYear(lines, "report.pdf")
	if year != 2024 {
		t.Errorf("Expected year 2024, got %d", year)
	}
}

func TestResolveYear_OnlyScansLeadingLines(t *testing.T) {
	lines := make([]string, 0, 12)
	for i := 0; i < 11; i++ {
		lines = append(lines, "Zeile ohne Jahresangabe")
	}
	lines = append(lines, "2024")

	year := ResolveYear(lines, "report.pdf")
	if year != time.Now().Year() {
		t.Errorf("Expected current year, got %d", year)
	}
}

func TestResolveYear_FromFileName(t *testing.T) {
	lines := []string{"Betriebswirtschaftliche Auswertung", "Mandant 1234"}

	year := ResolveYear(lines, "jahresauswertung_2022.pdf")
	if year != 2022 {
		t.Errorf("Expected year 2022, got %d", year)
	}
}

func TestResolveYear_FallbackToCurrentYear(t *testing.T) {
	year := ResolveYear([]string{"keine Jahresangabe"}, "bwa.pdf")
	if year != time.Now().Year() {
		t.Errorf("Expected current year %d, got %d", time.Now().Year(), year)
	}
}

func TestResolveYear_ImplausibleYearClamped(t *testing.T) {
	year := ResolveYear([]string{"Auswertung 2099"}, "bwa.pdf")
	if year != time.Now().Year() {
		t.Errorf("Expected implausible year to clamp to current year, got %d", year)
	}
}

func TestDetectMonthColumns_AllTwelve(t *testing.T) {
	line := ""
	for _, abbr := range monthAbbreviations {
		line += abbr + "/2024 "
	}

	months := DetectMonthColumns(line, 2024)
	if len(months) != 12 {
		t.Fatalf("Expected 12 months, got %d", len(months))
	}
	for i, month := range months {
		if month != i+1 {
			t.Errorf("Position %d: expected month %d, got %d", i, i+1, month)
		}
	}
}

func TestDetectMonthColumns_Subset(t *testing.T) {
	line := "Pos Bezeichnung Jan/2024 Feb/2024 Mrz/2024 Umsatzerlöse"

	months := DetectMonthColumns(line, 2024)
	if fmt.Sprint(months) != "[1 2 3]" {
		t.Errorf("Expected [1 2 3], got %v", months)
	}
}

func TestDetectMonthColumns_WrongYear(t *testing.T) {
	line := "Jan/2023 Feb/2023 Mrz/2023"

	months := DetectMonthColumns(line, 2024)
	if len(months) != 0 {
		t.Errorf("Expected no months for mismatched year, got %v", months)
	}
}

func TestDetectMonthColumns_NoHeaders(t *testing.T) {
	months := DetectMonthColumns("Umsatzerlöse 1.000,00 2.000,00", 2024)
	if len(months) != 0 {
		t.Errorf("Expected no months, got %v", months)
	}
}
