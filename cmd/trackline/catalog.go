// Catalog command lists the shape definitions and allowed combinations.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/slotcraft/trackline/pkg/types"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List shape definitions in the catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := openCatalog()
		if err != nil {
			return err
		}
		defer catalog.Close()

		defs := catalog.Definitions()

		if flagJSON {
			out, err := json.MarshalIndent(defs, "", "  ")
			if err != nil {
				return fmt.Errorf("encode catalog: %w", err)
			}
			fmt.Println(string(out))
			return nil
		}

		for _, d := range defs {
			fmt.Printf("%-6s %s %s\n", d.Code, d.Kind, geometrySummary(d))
		}
		return nil
	},
}

// geometrySummary formats the kind-specific geometry of a definition.
func geometrySummary(d types.Definition) string {
	switch d.Kind {
	case types.KindSector:
		return fmt.Sprintf("d=%.1f angle=%.1f w=%.1f",
			d.Sector.ExternalDiameter, d.Sector.Angle, d.Sector.Width)
	case types.KindRect:
		return fmt.Sprintf("l=%.1f w=%.1f", d.Rect.Length, d.Rect.Width)
	case types.KindHalfCircle:
		return fmt.Sprintf("d=%.1f", d.HalfCircle.Diameter)
	default:
		return ""
	}
}
