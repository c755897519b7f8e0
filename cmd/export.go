package cmd

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/angeldimitrov/bwax/export"
	"github.com/angeldimitrov/bwax/extractor"
)

var (
	exportFile   string
	exportOutput string
	exportFormat string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export an extracted BWA report as CSV",
	Long: `Extracts a BWA PDF and writes the line items as CSV.

The standard format uses comma separators and dot decimals. The
german format uses semicolons and comma decimals for spreadsheet
tools running under a German locale.

Examples:
  bwax export -f bwa_2024.pdf -o bwa_2024.csv
  bwax export -f bwa_2024.pdf --format german`,
	Run: func(cmd *cobra.Command, args []string) {
		log.SetOutput(os.Stdout)
		log.SetFlags(log.Ltime | log.Lmsgprefix)

		format, err := export.ParseFormat(exportFormat)
		if err != nil {
			log.Fatalf("error: %v", err)
		}

		doc, err := extractor.ProcessFile(exportFile)
		if err != nil {
			log.Fatalf("error: extraction failed: %v", err)
		}

		out := os.Stdout
		if exportOutput != "" {
			f, err := os.Create(exportOutput)
			if err != nil {
				log.Fatalf("error: cannot create %s: %v", exportOutput, err)
			}
			defer f.Close()
			out = f
		}

		if err := export.WriteCSV(out, doc, format); err != nil {
			log.Fatalf("error: CSV write failed: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportFile, "file", "f", "", "Path to BWA PDF file (required)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output CSV path (default stdout)")
	exportCmd.Flags().StringVar(&exportFormat, "format", "standard", "CSV format: standard or german")

	exportCmd.MarkFlagRequired("file")
}
