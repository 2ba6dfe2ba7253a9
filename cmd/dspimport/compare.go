package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	dspimport "github.com/dasch-swiss/00A1-import-scripts"
)

var errFilesDiffer = errors.New("data files differ")

var compareCmd = &cobra.Command{
	Use:   "compare <expected> <actual>",
	Short: "Compare two data files, ignoring random IDs and resource order",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		expected, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		actual, err := os.ReadFile(args[1])
		if err != nil {
			return err
		}

		diff, err := dspimport.Diff(string(expected), string(actual), args[0], args[1])
		if err != nil {
			return err
		}
		if diff != "" {
			fmt.Fprint(cmd.OutOrStdout(), diff)
			return errFilesDiffer
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Data files are equivalent")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)
}
