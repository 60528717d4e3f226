package cli

import (
	"github.com/spf13/cobra"
)

func (c *CLI) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print client build information and the server version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			label(out, "Client", c.build.BuildVersion())
			label(out, "Built", c.build.BuildDate())
			label(out, "Commit", c.build.BuildCommit())

			version, err := c.adapter.ServerVersion(cmd.Context())
			if err != nil {
				warn(out, "server unreachable: %v", err)
				return nil
			}
			label(out, "Server", version)
			return nil
		},
	}
}

