package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kevlarmarlon20-eng/SwiftCargo/internal/api/handler"
	"github.com/kevlarmarlon20-eng/SwiftCargo/internal/geo"
)

func distanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "distance <lat,lng> <lat,lng>",
		Short: "Print the great-circle distance in kilometres",
		Args:  cobra.ExactArgs(2),
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, ok, err := handler.ParsePoint(args[0])
			if err != nil || !ok {
				return fmt.Errorf("invalid coordinate %q", args[0])
			}
			b, ok, err := handler.ParsePoint(args[1])
			if err != nil || !ok {
				return fmt.Errorf("invalid coordinate %q", args[1])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%.3f\n", geo.DistanceKm(a, b))
			return nil
		},
	}
}
