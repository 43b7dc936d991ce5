// Show command prints one sequence of a layout with full details.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <layout-file> <sequence>",
	Short: "Display a sequence with full details",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		layout, err := loadLayout(args[0])
		if err != nil {
			return err
		}

		q, ok := layout.Sequence(args[1])
		if !ok {
			fmt.Fprintf(os.Stderr, "sequence %q not found\n", args[1])
			os.Exit(exitUserError)
		}

		if flagJSON {
			out, err := json.MarshalIndent(q, "", "  ")
			if err != nil {
				return fmt.Errorf("encode sequence: %w", err)
			}
			fmt.Println(string(out))
			return nil
		}

		fmt.Printf("%s  active=%t invertAlignment=%t\n", q.Name, q.Active, q.InvertAlignment)
		switch {
		case q.AlignPosition != nil:
			p := q.AlignPosition
			fmt.Printf("  anchored at (%.1f, %.1f) angle %.1f\n", p.X, p.Y, p.Angle)
		case q.AlignShapeRef != nil:
			r := q.AlignShapeRef
			fmt.Printf("  anchored to %s[%d]\n", r.Sequence, r.Index)
		}
		for i, s := range q.Shapes {
			fmt.Printf("  %2d: %s\n", i, shapeSummary(s))
		}
		return nil
	},
}
