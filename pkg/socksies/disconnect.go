package socksies

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewDisconnectCommand creates the disconnect command
func NewDisconnectCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "disconnect <proxy|all>",
		Aliases: []string{"d"},
		Short:   "Tear down the tunnel for one proxy, or 'all' for every proxy",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr := app.manager()
			out := cmd.OutOrStdout()

			if args[0] == "all" {
				fmt.Fprintln(out, "Disconnecting from all configured proxies.")
				killed, err := mgr.DisconnectAll()
				if err != nil {
					return err
				}
				if len(killed) == 0 {
					fmt.Fprintln(out, "No active proxies were found to disconnect.")
					return nil
				}
				for _, p := range killed {
					fmt.Fprintf(out, "Disconnected proxy: %s (%s)\n", p.Name, p.Endpoint())
				}
				return nil
			}

			p, err := mgr.Find(args[0])
			if err != nil {
				return err
			}
			if mgr.Disconnect(p) {
				fmt.Fprintf(out, "Disconnected proxy: %s (%s)\n", p.Name, p.Endpoint())
			} else {
				fmt.Fprintf(out, "No active process found for '%s'.\n", p.Name)
			}
			return nil
		},
		SilenceUsage: true,
	}

	return cmd
}
