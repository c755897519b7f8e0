package bwa

import (
	"bytes"
	"testing"

	"github.com/spf13/viper"
)

const testVocabularyYAML = `
vocabulary:
  categories:
    - name: Umsatzerlöse
    - name: Werbe-/Reisekosten
      synonyms:
        - Werbe-/Reisekosten
        - Werbekosten
`

func TestDefaultVocabulary(t *testing.T) {
	vocabulary := DefaultVocabulary()

	if len(vocabulary) != 14 {
		t.Fatalf("Expected 14 categories, got %d", len(vocabulary))
	}

	for _, category := range vocabulary {
		if category.Name == "" {
			t.Error("Expected every category to have a name")
		}
		if len(category.Synonyms) == 0 {
			t.Errorf("Category %q has no synonyms", category.Name)
		}
	}
}

func TestVocabularyFromConfig_Override(t *testing.T) {
	viper.Reset()
	defer viper.Reset()
	viper.SetConfigType("yaml")
	viper.ReadConfig(bytes.NewBufferString(testVocabularyYAML))

	vocabulary := VocabularyFromConfig()

	if len(vocabulary) != 2 {
		t.Fatalf("Expected 2 categories, got %d", len(vocabulary))
	}
	// A category without synonyms falls back to its own name.
	if len(vocabulary[0].Synonyms) != 1 || vocabulary[0].Synonyms[0] != "Umsatzerlöse" {
		t.Errorf("Expected name as only synonym, got %v", vocabulary[0].Synonyms)
	}
	if len(vocabulary[1].Synonyms) != 2 {
		t.Errorf("Expected 2 synonyms, got %v", vocabulary[1].Synonyms)
	}
}

func TestVocabularyFromConfig_FallsBackToDefault(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	vocabulary := VocabularyFromConfig()

	if len(vocabulary) != len(DefaultVocabulary()) {
		t.Errorf("Expected built-in table, got %d categories", len(vocabulary))
	}
}
