// List command prints the sequences of a layout file.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list <layout-file>",
	Short: "List sequences in a layout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		layout, err := loadLayout(args[0])
		if err != nil {
			return err
		}

		if flagJSON {
			type row struct {
				Name            string `json:"name"`
				Active          bool   `json:"active"`
				InvertAlignment bool   `json:"invertAlignment"`
				Shapes          int    `json:"shapes"`
			}
			rows := make([]row, 0, len(layout.Sequences))
			for _, q := range layout.Sequences {
				rows = append(rows, row{q.Name, q.Active, q.InvertAlignment, len(q.Shapes)})
			}
			out, err := json.MarshalIndent(rows, "", "  ")
			if err != nil {
				return fmt.Errorf("encode sequences: %w", err)
			}
			fmt.Println(string(out))
			return nil
		}

		for _, q := range layout.Sequences {
			marker := " "
			if q.Active {
				marker = "*"
			}
			fmt.Printf("%s %-20s %d shapes\n", marker, q.Name, len(q.Shapes))
		}
		return nil
	},
}
