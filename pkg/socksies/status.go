package socksies

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/socksies/socksies/pkg/proxy"
	"github.com/spf13/cobra"
)

// NewStatusCommand creates the status command
func NewStatusCommand(app *App) *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:     "status",
		Aliases: []string{"s"},
		Short:   "List any connected proxies",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr := app.manager()
			statuses, err := mgr.Running()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			var connected []proxy.Status
			for _, st := range statuses {
				if st.Running {
					connected = append(connected, st)
				}
			}

			if len(connected) == 0 {
				fmt.Fprintln(out, "No proxies appear to be connected.")
			} else {
				fmt.Fprintln(out, "Currently connected proxies:")
				for _, st := range connected {
					if st.Uptime > 0 {
						started := time.Now().Add(-st.Uptime)
						fmt.Fprintf(out, "- %s (%s) started %s\n", st.Proxy.Name, st.Proxy.Endpoint(), humanize.Time(started))
					} else {
						fmt.Fprintf(out, "- %s (%s)\n", st.Proxy.Name, st.Proxy.Endpoint())
					}
				}
			}

			if verbose {
				fmt.Fprintln(out, "Running verbose status command:")
				return mgr.Diagnostics()
			}
			return nil
		},
		SilenceUsage: true,
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose status output")

	return cmd
}
