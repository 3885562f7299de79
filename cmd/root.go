// Package cmd implements the fmattr command line: load the extracted object
// documents, mutate ranges/colors/highlighting through the domain model, and
// save everything back in one validated batch.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matt-wadsworth/fm-attribute-customizer/internal/editor"
	"github.com/matt-wadsworth/fm-attribute-customizer/internal/history"
	"github.com/matt-wadsworth/fm-attribute-customizer/internal/workspace"
)

var (
	workspaceDir string
	historyPath  string
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&workspaceDir, "workspace", "w", ".",
		"Directory holding the extracted object documents")
	rootCmd.PersistentFlags().StringVar(&historyPath, "history-db", "",
		"Path to the edit history database (default <workspace>/.fmattr-history.db)")
}

var rootCmd = &cobra.Command{
	Use:   "fmattr",
	Short: "Edit attribute rating thresholds, colors and highlighting",
	Long: `fmattr edits the named objects that control attribute rating bands:
the threshold collection, the default color preset, and the role-highlight
toggles. It operates on a workspace of extracted object documents and writes
them back unchanged except for the edited fields.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func openStore() *workspace.Store {
	return workspace.Open(workspaceDir)
}

func loadSession() (*editor.Session, error) {
	s, err := editor.Load(openStore())
	if err != nil {
		return nil, fmt.Errorf("load workspace %s: %w", workspaceDir, err)
	}
	return s, nil
}

// recordEdit appends to the history database. History is best-effort: a
// failure is reported but never blocks a save that already happened.
func recordEdit(object, action string) {
	path := historyPath
	if path == "" {
		path = workspaceDir + "/.fmattr-history.db"
	}
	log, err := history.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: history unavailable: %v\n", err)
		return
	}
	defer func() { _ = log.Close() }()
	if err := log.Record(object, action); err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
}
