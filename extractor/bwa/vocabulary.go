package bwa

import (
	"github.com/spf13/viper"
)

// Category is one recognized BWA line item together with the synonym
// strings that may appear verbatim in the report text. The first
// synonym that matches determines the anchor position.
type Category struct {
	Name     string   `mapstructure:"name" json:"name"`
	Synonyms []string `mapstructure:"synonyms" json:"synonyms"`
}

// Vocabulary is the table of recognized categories. It is passed into
// the Parser explicitly so tests can run against alternate tables.
type Vocabulary []Category

// monthAbbreviations are the German column headers, index 0 = January.
var monthAbbreviations = [12]string{
	"Jan", "Feb", "Mrz", "Apr", "Mai", "Jun",
	"Jul", "Aug", "Sep", "Okt", "Nov", "Dez",
}

// DefaultVocabulary returns the built-in category table used by DATEV
// style BWA reports.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		{Name: "Umsatzerlöse", Synonyms: []string{"Umsatzerlöse"}},
		{Name: "So. betr. Erlöse", Synonyms: []string{"So. betr. Erlöse", "Sonstige betriebliche Erlöse"}},
		{Name: "Personalkosten", Synonyms: []string{"Personalkosten"}},
		{Name: "Raumkosten", Synonyms: []string{"Raumkosten"}},
		{Name: "Betriebliche Steuern", Synonyms: []string{"Betriebliche Steuern"}},
		{Name: "Versicherungen/Beiträge", Synonyms: []string{"Versicherungen/Beiträge", "Versicherungen"}},
		{Name: "Besondere Kosten", Synonyms: []string{"Besondere Kosten"}},
		{Name: "Fahrzeugkosten (ohne Steuer)", Synonyms: []string{"Fahrzeugkosten (ohne Steuer)", "Fahrzeugkosten"}},
		{Name: "Werbe-/Reisekosten", Synonyms: []string{"Werbe-/Reisekosten", "Werbekosten", "Reisekosten"}},
		{Name: "Kosten Warenabgabe", Synonyms: []string{"Kosten Warenabgabe", "Materialkosten"}},
		{Name: "Abschreibungen", Synonyms: []string{"Abschreibungen"}},
		{Name: "Reparatur/Instandhaltung", Synonyms: []string{"Reparatur/Instandhaltung", "Reparaturkosten"}},
		{Name: "Sonstige Kosten", Synonyms: []string{"Sonstige Kosten"}},
		{Name: "Steuern Einkommen u. Ertrag", Synonyms: []string{"Steuern Einkommen u. Ertrag", "Steuern"}},
	}
}

// VocabularyFromConfig reads vocabulary.categories from the loaded
// config and falls back to the built-in table when the key is absent
// or malformed.
func VocabularyFromConfig() Vocabulary {
	var categories []Category
	if err := viper.UnmarshalKey("vocabulary.categories", &categories); err != nil || len(categories) == 0 {
		return DefaultVocabulary()
	}

	vocabulary := make(Vocabulary, 0, len(categories))
	for _, category := range categories {
		if category.Name == "" {
			continue
		}
		if len(category.Synonyms) == 0 {
			category.Synonyms = []string{category.Name}
		}
		vocabulary = append(vocabulary, category)
	}

	if len(vocabulary) == 0 {
		return DefaultVocabulary()
	}
	return vocabulary
}
