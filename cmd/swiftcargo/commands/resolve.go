package commands

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/kevlarmarlon20-eng/SwiftCargo/internal/app"
	"github.com/kevlarmarlon20-eng/SwiftCargo/internal/core/domain"
)

type resolveOutput struct {
	Resolved   map[string]domain.Coordinate `json:"resolved"`
	Unresolved []string                     `json:"unresolved"`
}

func resolveCmd() *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "resolve <location>...",
		Short: "Geocode location names with the live provider",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			resolver := app.NewResolver(cfg.Geocoder, log)
			got := resolver.ResolveAll(ctx, args)

			out := resolveOutput{Resolved: got, Unresolved: unresolved(args, got)}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}
	cmd.Flags().DurationVar(&timeout, "timeout", time.Minute, "overall deadline for the batch")
	return cmd
}

// unresolved lists the distinct non-blank names missing from found, in input order.
func unresolved(names []string, found map[string]domain.Coordinate) []string {
	out := []string{}
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		if strings.TrimSpace(n) == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		if _, ok := found[n]; !ok {
			out = append(out, n)
		}
	}
	return out
}
