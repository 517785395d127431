package socksies

import (
	"fmt"
	"strings"

	"github.com/socksies/socksies/pkg/proxy"
	"github.com/spf13/cobra"
)

// NewConnectCommand creates the connect command
func NewConnectCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "connect <proxy>",
		Aliases: []string{"c"},
		Short:   "Establish an SSH SOCKS tunnel to a proxy",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr := app.manager()
			p, err := mgr.Find(args[0])
			if err != nil {
				return err
			}
			if err := proxy.Validate(p); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Establishing SOCKS proxy with: %s (%s)\n", p.Name, p.Endpoint())
			fmt.Fprintf(out, "SSH command: ssh %s\n", strings.Join(proxy.Args(p), " "))

			if err := mgr.Connect(p); err != nil {
				return err
			}

			fmt.Fprintf(out, "Connection established to %s on SOCKS port %s.\n", p.Host, p.Port)
			return nil
		},
		SilenceUsage: true,
	}

	return cmd
}
