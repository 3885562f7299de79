package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matt-wadsworth/fm-attribute-customizer/internal/workspace"
)

var highlightCmd = &cobra.Command{
	Use:   "highlight [on|off]",
	Short: "Toggle attribute highlighting for tactical roles",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var enabled bool
		switch args[0] {
		case "on":
			enabled = true
		case "off":
			enabled = false
		default:
			return fmt.Errorf("highlight: want on or off, got %q", args[0])
		}

		session, err := loadSession()
		if err != nil {
			return err
		}
		session.HighlightEnabled = enabled
		if err := session.Save(); err != nil {
			return err
		}
		fmt.Printf("role highlighting %s\n", args[0])
		recordEdit(workspace.ObjectHighlight, "highlight "+args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(highlightCmd)
}
