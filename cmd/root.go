package cmd

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/angeldimitrov/bwax/extractor"
)

// Embedded default configuration: the recognized BWA category table.
// A config file can replace it to handle non-standard chart layouts.
const defaultConfigYAML = `
vocabulary:
  categories:
    - name: Umsatzerlöse
    - name: So. betr. Erlöse
      synonyms:
        - So. betr. Erlöse
        - Sonstige betriebliche Erlöse
    - name: Personalkosten
    - name: Raumkosten
    - name: Betriebliche Steuern
    - name: Versicherungen/Beiträge
      synonyms:
        - Versicherungen/Beiträge
        - Versicherungen
    - name: Besondere Kosten
    - name: Fahrzeugkosten (ohne Steuer)
      synonyms:
        - Fahrzeugkosten (ohne Steuer)
        - Fahrzeugkosten
    - name: Werbe-/Reisekosten
      synonyms:
        - Werbe-/Reisekosten
        - Werbekosten
        - Reisekosten
    - name: Kosten Warenabgabe
      synonyms:
        - Kosten Warenabgabe
        - Materialkosten
    - name: Abschreibungen
    - name: Reparatur/Instandhaltung
      synonyms:
        - Reparatur/Instandhaltung
        - Reparaturkosten
    - name: Sonstige Kosten
    - name: Steuern Einkommen u. Ertrag
      synonyms:
        - Steuern Einkommen u. Ertrag
        - Steuern
`

var (
	cfgFile string
	verbose bool
	rootCmd = &cobra.Command{
		Use:   "bwax [filename]",
		Short: "Extract structured data from German BWA reports",
		Long:  `bwax is a utility to extract monthly line items out of BWA (Betriebswirtschaftliche Auswertung) PDF reports`,
		Args:  cobra.ArbitraryArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) == 1 {
				extractor.ExecuteAgainstPath(args[0])
				return
			}
			cmd.Help()
		},
	}
)

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig, initLogging)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path (default is ./.bwax.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

func initLogging() {
	if !verbose {
		log.SetOutput(io.Discard)
	} else {
		log.SetFlags(log.Ltime | log.Lmsgprefix)
		log.SetPrefix("INFO: ")
	}
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(".")
		viper.AddConfigPath(home)
		viper.SetConfigName(".bwax")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// No config file found, use the embedded category table
			if err := viper.ReadConfig(bytes.NewBufferString(defaultConfigYAML)); err != nil {
				fmt.Printf("Error loading embedded configuration: %v\n", err)
				os.Exit(1)
			}
		} else {
			fmt.Printf("Error reading config file: %v\n", err)
			os.Exit(1)
		}
	}
}
