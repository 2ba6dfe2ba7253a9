package main

import (
	"fmt"

	"github.com/spf13/cobra"

	dspimport "github.com/dasch-swiss/00A1-import-scripts"
)

var uploadBuild bool

var uploadCmd = &cobra.Command{
	Use:   "upload",
	Short: "Upload the data file to the DSP server (dsp-tools xmlupload)",
	Run: func(cmd *cobra.Command, args []string) {
		out, err := dspimport.Upload(cmd.Context(), configPath, uploadBuild, options()...)
		if err != nil {
			fatal("Upload failed", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
	},
}

func init() {
	uploadCmd.Flags().BoolVar(&uploadBuild, "build", false, "Build the data file before uploading")
	rootCmd.AddCommand(uploadCmd)
}
