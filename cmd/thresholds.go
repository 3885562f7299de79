package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matt-wadsworth/fm-attribute-customizer/internal/rangetable"
	"github.com/matt-wadsworth/fm-attribute-customizer/internal/workspace"
)

var setBoundaryCmd = &cobra.Command{
	Use:   "set-boundary [band] [value]",
	Short: "Move a band's upper bound, cascading neighbors as needed",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("band index %q: %w", args[0], err)
		}
		value, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("boundary value %q: %w", args[1], err)
		}

		session, err := loadSession()
		if err != nil {
			return err
		}
		table := session.Table()
		table.OnThresholdsChanged(func(boundaries []int) {
			fmt.Printf("thresholds now %v\n", boundaries)
		})

		if err := table.SetBoundary(index, value); err != nil {
			return err
		}
		if err := session.Save(); err != nil {
			return err
		}
		recordEdit(workspace.ObjectRangeCollection,
			fmt.Sprintf("set-boundary %d -> %d", index, value))
		return nil
	},
}

var insertCmd = &cobra.Command{
	Use:   "insert [band]",
	Short: "Insert a new band before the given position",
	Long: `Insert a new rating band at the given editable position. The band
gets a generated style class, the color of its left neighbor, and a boundary
hint one below the ceiling; neighbors cascade to keep ordering.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("band index %q: %w", args[0], err)
		}

		session, err := loadSession()
		if err != nil {
			return err
		}
		table := session.Table()

		label := rangetable.AllocateTableLabel(table)
		colors := table.Colors()
		color := colors[len(colors)-1]
		if index > 0 && index-1 < len(colors) {
			color = colors[index-1]
		}

		if err := table.InsertAt(index, rangetable.MaxBoundary-1, label, color); err != nil {
			return err
		}
		if err := session.Save(); err != nil {
			return err
		}
		fmt.Printf("inserted band %d (%s)\n", index, label)
		recordEdit(workspace.ObjectRangeCollection,
			fmt.Sprintf("insert band %d (%s)", index, label))
		return nil
	},
}

var removeCmd = &cobra.Command{
	Use:   "remove [band]",
	Short: "Remove the band at the given position",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("band index %q: %w", args[0], err)
		}

		session, err := loadSession()
		if err != nil {
			return err
		}
		if err := session.Table().RemoveAt(index); err != nil {
			return err
		}
		if err := session.Save(); err != nil {
			return err
		}
		fmt.Printf("removed band %d\n", index)
		recordEdit(workspace.ObjectRangeCollection, fmt.Sprintf("remove band %d", index))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(setBoundaryCmd)
	rootCmd.AddCommand(insertCmd)
	rootCmd.AddCommand(removeCmd)
}
