package cmd

import (
	"fmt"

	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"
	"github.com/spf13/cobra"

	"github.com/matt-wadsworth/fm-attribute-customizer/internal/document"
)

var queryCmd = &cobra.Command{
	Use:   "query [object] [jsonpath]",
	Short: "Inspect a raw object document with a JSONPath expression",
	Long: `Query evaluates a JSONPath expression against the raw serialized tree
of a named object, before any domain decoding. Useful for diagnosing files
the codec rejects.

  fmattr query AttributeColoursDefault '$.m_Rules[0].m_Properties'`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := openStore().ReadObject(args[0])
		if err != nil {
			return err
		}

		x, err := jp.ParseString(args[1])
		if err != nil {
			return fmt.Errorf("invalid jsonpath '%s': %w", args[1], err)
		}

		results := x.Get(document.ToAny(doc))
		if len(results) == 0 {
			fmt.Println("no matches")
			return nil
		}
		for _, r := range results {
			fmt.Println(oj.JSON(r, 2))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(queryCmd)
}
