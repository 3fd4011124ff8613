package cli

import (
	"github.com/spf13/cobra"
)

func newLocationCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "location",
		Short: "Location commands",
	}

	cmd.AddCommand(newLocationGetCmd())

	return cmd
}

func newLocationGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <location-id>",
		Short: "Show a location and its occupants",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Location

			if err := client.Get("/api/v1/locations/"+args[0], &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
