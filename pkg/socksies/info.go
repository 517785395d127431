package socksies

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewInfoCommand creates the info command
func NewInfoCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "info <proxy>",
		Aliases: []string{"i"},
		Short:   "Show details for a single proxy",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.manager().Find(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Proxy: %s\n", p.Name)
			fmt.Fprintf(out, "  Host: %s\n", p.Host)
			fmt.Fprintf(out, "  Port: %s\n", p.Port)
			fmt.Fprintf(out, "  Identity File: %s\n", p.IdentityFile)
			return nil
		},
		SilenceUsage: true,
	}

	return cmd
}
