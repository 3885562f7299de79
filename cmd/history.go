package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matt-wadsworth/fm-attribute-customizer/internal/history"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent edits, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := historyPath
		if path == "" {
			path = workspaceDir + "/.fmattr-history.db"
		}
		log, err := history.Open(path)
		if err != nil {
			return err
		}
		defer func() { _ = log.Close() }()

		entries, err := log.Recent(historyLimit)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("no recorded edits")
			return nil
		}
		for _, e := range entries {
			fmt.Printf("%s  %-32s %s\n", e.At.Format("2006-01-02 15:04:05"), e.Object, e.Action)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum entries to show")
	rootCmd.AddCommand(historyCmd)
}
