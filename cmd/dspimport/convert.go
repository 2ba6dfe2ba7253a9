package main

import (
	"fmt"

	"github.com/spf13/cobra"

	dspimport "github.com/dasch-swiss/00A1-import-scripts"
)

var (
	convertOutput string
	convertData   string
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Build the XML data file",
	Long: `Build the XML data file from the object table, the images directory
and the list of the project file. Rows with problems that do not prevent
the conversion are reported as warnings.`,
	Run: func(cmd *cobra.Command, args []string) {
		var extra []dspimport.Option
		if convertOutput != "" {
			extra = append(extra, dspimport.WithOutput(convertOutput))
		}
		if convertData != "" {
			extra = append(extra, dspimport.WithDataFile(convertData))
		}

		res, err := dspimport.Convert(cmd.Context(), configPath, options(extra...)...)
		if err != nil {
			fatal("Conversion failed", err)
		}

		for _, w := range res.Report.Warnings {
			fmt.Fprintln(cmd.ErrOrStderr(), "warning:", w)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d resources, %d warnings)\n", res.Output, res.Resources, len(res.Report.Warnings))
	},
}

func init() {
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "Write the data file to this path")
	convertCmd.Flags().StringVar(&convertData, "data", "", "Read the object table from this file (.csv, .tsv, .xlsx)")
	rootCmd.AddCommand(convertCmd)
}
