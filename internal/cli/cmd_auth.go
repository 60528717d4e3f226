package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func (c *CLI) authCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "auth",
		Short: "Prove presence and save a proof token",
		Long: `Asks for the presence credential and exchanges it for a time-boxed proof
token. The token is saved to --token-file and sent with every later command
until it expires or "keykeeper logout" revokes it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			credential, err := c.readCredential(cmd)
			if err != nil {
				return err
			}
			if credential == "" {
				return errors.New("empty credential")
			}

			resp, err := c.adapter.Authenticate(cmd.Context(), credential)
			if err != nil {
				return fmt.Errorf("authentication failed: %w", err)
			}

			if err = saveToken(c.tokenPath, resp.Token); err != nil {
				return err
			}

			success(cmd.OutOrStdout(), "authenticated until %s", resp.ExpiresAt.Local().Format(time.DateTime))
			return nil
		},
	}
}

func (c *CLI) logoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Revoke the saved proof token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if c.adapter.Token() == "" {
				warn(cmd.OutOrStdout(), "not authenticated")
				return nil
			}

			if err := c.adapter.Revoke(cmd.Context()); err != nil {
				return fmt.Errorf("revoke failed: %w", err)
			}
			if err := removeToken(c.tokenPath); err != nil {
				return err
			}

			success(cmd.OutOrStdout(), "proof revoked")
			return nil
		},
	}
}
