// Check command re-validates every sequence of a layout file: the
// terminal-shape rule along each sequence and the linking rules for each
// sequence anchored to a shape in another sequence.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/slotcraft/trackline/pkg/types"
	"github.com/slotcraft/trackline/pkg/validate"
)

// violation is one rule failure found by check.
type violation struct {
	Sequence string `json:"sequence"`
	Message  string `json:"message"`
}

var checkCmd = &cobra.Command{
	Use:   "check <layout-file>",
	Short: "Validate the sequences of a layout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		layout, err := loadLayout(args[0])
		if err != nil {
			return err
		}

		catalog, err := openCatalog()
		if err != nil {
			fmt.Fprintln(os.Stderr, "check:", err)
			os.Exit(exitSysError)
		}
		defer catalog.Close()

		violations := checkLayout(validate.New(catalog), layout)

		if flagJSON {
			out, err := json.MarshalIndent(violations, "", "  ")
			if err != nil {
				return fmt.Errorf("encode violations: %w", err)
			}
			fmt.Println(string(out))
		} else {
			for _, v := range violations {
				fmt.Printf("%s: %s\n", v.Sequence, v.Message)
			}
		}

		if len(violations) > 0 {
			os.Exit(exitUserError)
		}
		return nil
	},
}

// checkLayout runs the validator over every sequence of the layout and
// collects rule failures.
func checkLayout(v *validate.Validator, layout *types.Layout) []violation {
	violations := []violation{}
	for _, q := range layout.Sequences {
		for i, s := range q.Shapes {
			if res := v.ValidateAddShape(q, s, i); !res.Valid {
				violations = append(violations, violation{q.Name, res.Message})
			}
		}

		if q.AlignShapeRef == nil {
			continue
		}
		prev, err := layout.ResolveShapeRef(*q.AlignShapeRef)
		if err != nil {
			violations = append(violations, violation{q.Name, err.Error()})
			continue
		}
		if res := v.ValidateLinkedSequence(prev, q); !res.Valid {
			violations = append(violations, violation{q.Name, res.Message})
		}
	}
	return violations
}
