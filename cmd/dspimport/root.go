package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	dspimport "github.com/dasch-swiss/00A1-import-scripts"
)

var (
	verbose    bool
	configPath string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "dspimport",
	Short: "Convert the 00A1 object spreadsheet into a DSP XML data file",
	Long: `dspimport reads the object table and the images of project 00A1,
maps the categories onto the list of the project file and writes the
data file for dsp-tools xmlupload.

Settings are read from import.yaml in the current directory or the
nearest parent directory holding one.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// options returns the importer options shared by all commands.
func options(extra ...dspimport.Option) []dspimport.Option {
	return append([]dspimport.Option{dspimport.WithLogger(slog.Default())}, extra...)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to import.yaml (default: search upwards from the working directory)")
}
