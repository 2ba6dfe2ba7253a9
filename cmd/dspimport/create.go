package main

import (
	"fmt"

	"github.com/spf13/cobra"

	dspimport "github.com/dasch-swiss/00A1-import-scripts"
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create the project on the DSP server (dsp-tools create)",
	Long: `Run dsp-tools create with the project file. Server and credentials come
from the dsp block of import.yaml or the DSP_SERVER, DSP_USER and
DSP_PASSWORD environment variables.`,
	Run: func(cmd *cobra.Command, args []string) {
		out, err := dspimport.Create(cmd.Context(), configPath, options()...)
		if err != nil {
			fatal("Failed to create project", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
	},
}

func init() {
	rootCmd.AddCommand(createCmd)
}
