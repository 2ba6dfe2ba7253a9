package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	dspimport "github.com/dasch-swiss/00A1-import-scripts"
)

var watchDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Rebuild the data file whenever an input changes",
	Long: `Build the data file, then watch the object table, the project file and
the images directory and rebuild on every change. Stop with Ctrl+C.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		im, err := dspimport.New(configPath, options()...)
		if err != nil {
			fatal("Failed to load configuration", err)
		}

		out := cmd.OutOrStdout()
		err = im.Watch(ctx, dspimport.WatchOptions{
			Debounce: watchDebounce,
			OnResult: func(res *dspimport.Result, err error) {
				if err != nil {
					fmt.Fprintf(out, "[%s] build failed: %v\n", time.Now().Format(time.TimeOnly), err)
					return
				}
				fmt.Fprintf(out, "[%s] wrote %s (%d resources, %d warnings)\n",
					time.Now().Format(time.TimeOnly), res.Output, res.Resources, len(res.Report.Warnings))
			},
		})
		if err != nil {
			fatal("Watch failed", err)
		}
	},
}

func init() {
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 0, "Quiet period before a change triggers a rebuild (default 200ms)")
	rootCmd.AddCommand(watchCmd)
}
