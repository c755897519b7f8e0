package bwa

import (
	"strings"
	"testing"
)

// padLine appends filler so a synthetic row reaches the given length,
// mimicking the very long concatenated table rows real reports produce.
func padLine(prefix string, length int) string {
	if len(prefix) >= length {
		return prefix
	}
	return prefix + strings.Repeat(" x", (length-len(prefix))/2+1)
}

func TestLocateDataLine_Strict(t *testing.T) {
	lines := []string{
		"Betriebswirtschaftliche Auswertung 2024",
		padLine("Pos Jan/2024 Feb/2024 Umsatzerlöse 1.000,00 2.000,00", 1200),
	}

	dataLine, ok := LocateDataLine(lines, 2024)
	if !ok {
		t.Fatal("Expected data line to be located")
	}
	if !strings.Contains(dataLine, "Jan/2024") {
		t.Error("Expected strict match to contain January header")
	}
}

func TestLocateDataLine_StrictRequiresLength(t *testing.T) {
	// A short row with the January header must not satisfy the strict
	// strategy on its own.
	lines := []string{"Jan/2024 Umsatzerlöse 1.000,00"}

	_, ok := LocateDataLine(lines, 2024)
	if ok {
		t.Error("Expected no data line for a short single row")
	}
}

func TestLocateDataLine_Relaxed(t *testing.T) {
	// No January header, but eight other month headers on a long row.
	prefix := "Feb/2024 Mrz/2024 Apr/2024 Mai/2024 Jun/2024 Jul/2024 Aug/2024 Sep/2024"
	lines := []string{padLine(prefix, 700)}

	dataLine, ok := LocateDataLine(lines, 2024)
	if !ok {
		t.Fatal("Expected relaxed strategy to locate the data line")
	}
	if !strings.Contains(dataLine, "Feb/2024") {
		t.Error("Expected relaxed match to contain month headers")
	}
}

func TestLocateDataLine_Reconstructive(t *testing.T) {
	lines := []string{
		"BWA Kurzbericht",
		"Umsatzerlöse 2024 1.000,00 2.000,00",
		"Personalkosten 2024 500,00 600,00",
	}

	dataLine, ok := LocateDataLine(lines, 2024)
	if !ok {
		t.Fatal("Expected reconstructive strategy to succeed")
	}
	if !strings.Contains(dataLine, "Umsatzerlöse") || !strings.Contains(dataLine, "Personalkosten") {
		t.Errorf("Expected joined fragments, got %q", dataLine)
	}
}

func TestLocateDataLine_ReconstructiveNeedsTwoFragments(t *testing.T) {
	lines := []string{"Umsatzerlöse 2024 1.000,00"}

	_, ok := LocateDataLine(lines, 2024)
	if ok {
		t.Error("Expected failure with a single table fragment")
	}
}

func TestLocateDataLine_NotFound(t *testing.T) {
	lines := []string{"Deckblatt", "Mandant 1234", "Seite 1 von 3"}

	_, ok := LocateDataLine(lines, 2024)
	if ok {
		t.Error("Expected no data line in cover page text")
	}
}

func TestLocateDataLine_StrictWinsOverRelaxed(t *testing.T) {
	// A 1500 character row with the January header beats a 600
	// character row carrying eight month headers: strategies
	// short-circuit in order.
	strict := padLine("STRICT Jan/2024 Umsatzerlöse 1.000,00", 1500)
	relaxed := padLine("RELAXED Feb/2024 Mrz/2024 Apr/2024 Mai/2024 Jun/2024 Jul/2024 Aug/2024 Sep/2024", 600)
	lines := []string{relaxed, strict}

	dataLine, ok := LocateDataLine(lines, 2024)
	if !ok {
		t.Fatal("Expected data line to be located")
	}
	if !strings.HasPrefix(dataLine, "STRICT") {
		t.Errorf("Expected strict strategy to win, got %q", dataLine[:20])
	}
}
