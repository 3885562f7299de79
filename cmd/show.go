package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current rating bands, colors and highlight state",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := loadSession()
		if err != nil {
			return err
		}

		table := session.Table()
		ranges := table.Ranges()
		labels := table.Labels()
		colors := table.Colors()

		fmt.Printf("%-5s %-8s %-10s %s\n", "BAND", "RANGE", "COLOR", "STYLE CLASS")
		for i := range ranges {
			marker := ""
			if i == len(ranges)-1 {
				marker = " (fixed)"
			}
			fmt.Printf("%-5d %-8s %-10s %s%s\n",
				i,
				fmt.Sprintf("%d-%d", ranges[i].Min, ranges[i].Max),
				colors[i].ToHex(),
				labels[i],
				marker)
		}

		state := "off"
		if session.HighlightEnabled {
			state = "on"
		}
		fmt.Printf("\nrole highlighting: %s\n", state)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
