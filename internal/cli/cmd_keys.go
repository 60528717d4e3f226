package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-key-keeper/models"
)

type policyFlags struct {
	requireAuth  bool
	authValidity time.Duration
	purposes     []string
}

func (p *policyFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&p.requireAuth, "require-auth", false, "require a proof of presence for every use")
	cmd.Flags().DurationVar(&p.authValidity, "auth-validity", 0, "accept only proofs younger than this (0: any unexpired proof)")
	cmd.Flags().StringSliceVar(&p.purposes, "purposes", nil, "restrict use to these purposes (encrypt, decrypt, sign, verify)")
}

func (p *policyFlags) policy() models.AccessPolicy {
	policy := models.AccessPolicy{
		RequireAuthentication: p.requireAuth,
		AuthValidity:          models.Duration(p.authValidity),
	}
	for _, purpose := range p.purposes {
		policy.AllowedPurposes = append(policy.AllowedPurposes, models.Purpose(strings.ToLower(strings.TrimSpace(purpose))))
	}
	return policy
}

func (c *CLI) keysCommand() *cobra.Command {
	keys := &cobra.Command{
		Use:   "keys",
		Short: "Create, inspect and delete keys",
	}

	keys.AddCommand(
		c.keysCreateCommand(),
		c.keysGetCommand(),
		c.keysListCommand(),
		c.keysDeleteCommand(),
		c.keysPolicyCommand(),
	)

	return keys
}

func (c *CLI) keysCreateCommand() *cobra.Command {
	var (
		algorithm string
		policy    policyFlags
	)

	cmd := &cobra.Command{
		Use:   "create <id>",
		Short: "Generate a new key inside the vault",
		Example: `  keykeeper keys create db-password --algorithm AES-256-GCM --require-auth
  keykeeper keys create release-signing --algorithm ED25519 --purposes sign,verify`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			handle, err := c.adapter.CreateKey(cmd.Context(), models.CreateKeyRequest{
				ID:        args[0],
				Algorithm: models.Algorithm(strings.ToUpper(algorithm)),
				Policy:    policy.policy(),
			})
			if err != nil {
				return fmt.Errorf("error creating key: %w", err)
			}

			success(cmd.ErrOrStderr(), "key %s created", handle.ID)
			return printJSON(cmd.OutOrStdout(), handle)
		},
	}

	cmd.Flags().StringVar(&algorithm, "algorithm", string(models.AES256GCM), "key algorithm")
	policy.register(cmd)

	return cmd
}

func (c *CLI) keysGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a key handle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			handle, err := c.adapter.GetKey(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("error getting key: %w", err)
			}
			return printJSON(cmd.OutOrStdout(), handle)
		},
	}
}

func (c *CLI) keysListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			handles, err := c.adapter.ListKeys(cmd.Context())
			if err != nil {
				return fmt.Errorf("error listing keys: %w", err)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tALGORITHM\tGATED\tFINGERPRINT")
			for _, h := range handles {
				fmt.Fprintf(tw, "%s\t%s\t%t\t%s\n", h.ID, h.Algorithm, h.Policy.RequireAuthentication, h.Fingerprint)
			}
			return tw.Flush()
		},
	}
}

func (c *CLI) keysDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Destroy a key and every secret sealed with it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.adapter.DeleteKey(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("error deleting key: %w", err)
			}
			success(cmd.OutOrStdout(), "key %s deleted", args[0])
			return nil
		},
	}
}

func (c *CLI) keysPolicyCommand() *cobra.Command {
	var policy policyFlags

	cmd := &cobra.Command{
		Use:   "policy <id>",
		Short: "Replace a key's access policy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			handle, err := c.adapter.UpdatePolicy(cmd.Context(), args[0], policy.policy())
			if err != nil {
				return fmt.Errorf("error updating policy: %w", err)
			}

			success(cmd.ErrOrStderr(), "policy of %s updated", handle.ID)
			return printJSON(cmd.OutOrStdout(), handle)
		},
	}
	policy.register(cmd)

	return cmd
}
