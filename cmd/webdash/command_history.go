package main

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"webdash/internal/config"
	"webdash/internal/store"
)

func newHistoryCommand(wiring commandWiring) *cobra.Command {
	var (
		limit  int
		format string
	)
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent project operations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.ActivityDBPath()
			if err != nil {
				return err
			}
			activity, err := wiring.openActivity(path)
			if err != nil {
				return err
			}
			defer activity.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
			defer cancel()
			entries, err := activity.Recent(ctx, limit)
			if err != nil {
				return err
			}
			if format != "text" {
				return config.Encode(wiring.stdout, format, map[string][]store.Activity{"activity": entries})
			}
			printHistory(wiring, entries)
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "number of entries (0 for all)")
	cmd.Flags().StringVar(&format, "format", "text", "output format: text|toml|json|yaml")
	return cmd
}

func printHistory(wiring commandWiring, entries []store.Activity) {
	writer := tabwriter.NewWriter(wiring.stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(writer, "TIME\tACTION\tTARGET\tSTATUS\tDETAIL")
	for _, entry := range entries {
		status, detail := "ok", entry.Message
		if !entry.OK {
			status, detail = "failed", entry.Error
		}
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%s\n",
			entry.At.Local().Format(time.DateTime), entry.Action, entry.Target, status, detail)
	}
	_ = writer.Flush()
}
