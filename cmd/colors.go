package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matt-wadsworth/fm-attribute-customizer/internal/colorhex"
	"github.com/matt-wadsworth/fm-attribute-customizer/internal/scheme"
	"github.com/matt-wadsworth/fm-attribute-customizer/internal/workspace"
)

var setColorCmd = &cobra.Command{
	Use:   "set-color [band] [#RRGGBBAA]",
	Short: "Set the display color of one band",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("band index %q: %w", args[0], err)
		}
		color, err := colorhex.Parse(args[1])
		if err != nil {
			return err
		}

		session, err := loadSession()
		if err != nil {
			return err
		}
		if err := session.Table().SetColor(index, color); err != nil {
			return err
		}
		if err := session.Save(); err != nil {
			return err
		}
		fmt.Printf("band %d -> %s\n", index, color.ToHex())
		recordEdit(workspace.ObjectColorsDefault,
			fmt.Sprintf("set-color %d %s", index, color.ToHex()))
		return nil
	},
}

var (
	schemeName string

	applySchemeCmd = &cobra.Command{
		Use:   "apply-scheme [file.hcl]",
		Short: "Apply a named color scheme across all editable bands",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := scheme.Load(args[0])
			if err != nil {
				return err
			}

			if len(file.Schemes) == 0 {
				return fmt.Errorf("%s defines no schemes", args[0])
			}
			selected := &file.Schemes[0]
			if schemeName != "" {
				found, ok := file.Find(schemeName)
				if !ok {
					return fmt.Errorf("scheme %q not found in %s", schemeName, args[0])
				}
				selected = found
			}

			session, err := loadSession()
			if err != nil {
				return err
			}
			table := session.Table()

			colors, err := selected.Apply(table.EditableLen())
			if err != nil {
				return err
			}
			for i, c := range colors {
				if err := table.SetColor(i, c); err != nil {
					return err
				}
			}
			if err := session.Save(); err != nil {
				return err
			}
			fmt.Printf("applied scheme %q to %d bands\n", selected.Name, len(colors))
			recordEdit(workspace.ObjectColorsDefault, "apply-scheme "+selected.Name)
			return nil
		},
	}
)

func init() {
	applySchemeCmd.Flags().StringVarP(&schemeName, "name", "n", "", "Scheme to apply (default: first in file)")
	rootCmd.AddCommand(setColorCmd)
	rootCmd.AddCommand(applySchemeCmd)
}
