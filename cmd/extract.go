package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/angeldimitrov/bwax/extractor"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extracts BWA report(s)",
	Long: `Extracts a given BWA report or a directory of reports.
Each PDF is parsed into per-category monthly line items and
printed as JSON.`,
	Run: func(cmd *cobra.Command, args []string) {
		extractor.ExecuteAgainstPath(viper.GetString("target"))
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)
	extractCmd.Flags().StringP("file", "f", ".", "PDF file or folder in which bwax will scan for reports")
	viper.BindPFlag("target", extractCmd.Flags().Lookup("file"))
}
