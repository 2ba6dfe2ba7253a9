package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	dspimport "github.com/dasch-swiss/00A1-import-scripts"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of dspimport",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "dspimport version %s\n", strings.TrimSpace(dspimport.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
