package socksies

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewListCommand creates the list command
func NewListCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"l"},
		Short:   "List all configured proxies",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			proxies, err := app.manager().Proxies()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Listing configured Proxies:")
			for _, p := range proxies {
				fmt.Fprintf(out, "- %s (%s)\n", p.Name, p.Endpoint())
			}
			return nil
		},
		SilenceUsage: true,
	}

	return cmd
}
