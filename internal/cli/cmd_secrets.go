package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-key-keeper/models"
)

func (c *CLI) sealCommand() *cobra.Command {
	var (
		payload        payloadFlags
		associatedData string
		asEnvelope     bool
	)

	cmd := &cobra.Command{
		Use:   "seal <key-id>",
		Short: "Encrypt a payload under a key",
		Example: `  echo -n 's3cr3t' | keykeeper seal db-password
  keykeeper seal db-password --file token.txt --aad prod --envelope > token.env`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plaintext, err := payload.read(cmd)
			if err != nil {
				return err
			}

			var aad []byte
			if associatedData != "" {
				aad = []byte(associatedData)
			}

			sealed, err := c.adapter.Seal(cmd.Context(), args[0], plaintext, aad)
			if err != nil {
				return fmt.Errorf("error sealing: %w", err)
			}

			if !asEnvelope {
				return printJSON(cmd.OutOrStdout(), sealed)
			}

			envelope, err := c.adapter.ExportSealed(cmd.Context(), sealed.ID)
			if err != nil {
				return fmt.Errorf("error exporting %s: %w", sealed.ID, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), envelope)
			return nil
		},
	}

	payload.register(cmd, "plaintext")
	cmd.Flags().StringVar(&associatedData, "aad", "", "associated data bound to the ciphertext")
	cmd.Flags().BoolVar(&asEnvelope, "envelope", false, "print the portable envelope instead of JSON")

	return cmd
}

func (c *CLI) unsealCommand() *cobra.Command {
	var (
		id       string
		envelope string
		file     string
	)

	cmd := &cobra.Command{
		Use:   "unseal",
		Short: "Decrypt a sealed secret",
		Long: `Decrypts a sealed secret given by its id, by an exported envelope, or by a
file holding either the JSON of a sealed secret or an envelope. The plaintext
is written to stdout as is.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, err := c.unsealRequest(cmd, id, envelope, file)
			if err != nil {
				return err
			}

			plaintext, err := c.adapter.Unseal(cmd.Context(), req)
			if err != nil {
				return fmt.Errorf("error unsealing: %w", err)
			}

			_, err = cmd.OutOrStdout().Write(plaintext)
			return err
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "id of a stored sealed secret")
	cmd.Flags().StringVar(&envelope, "envelope", "", "base64 envelope")
	cmd.Flags().StringVar(&file, "file", "", "file holding a sealed secret as JSON or an envelope")
	cmd.MarkFlagsMutuallyExclusive("id", "envelope", "file")
	cmd.MarkFlagsOneRequired("id", "envelope", "file")

	return cmd
}

func (c *CLI) unsealRequest(cmd *cobra.Command, id, envelope, file string) (models.UnsealRequest, error) {
	switch {
	case id != "":
		sealed, err := c.adapter.GetSealed(cmd.Context(), id)
		if err != nil {
			return models.UnsealRequest{}, fmt.Errorf("error getting %s: %w", id, err)
		}
		return models.UnsealRequest{Secret: &sealed}, nil

	case envelope != "":
		return models.UnsealRequest{Envelope: strings.TrimSpace(envelope)}, nil
	}

	b, err := os.ReadFile(file)
	if err != nil {
		return models.UnsealRequest{}, fmt.Errorf("error reading %s: %w", file, err)
	}

	content := strings.TrimSpace(string(b))
	if !strings.HasPrefix(content, "{") {
		return models.UnsealRequest{Envelope: content}, nil
	}

	var sealed models.SealedSecret
	if err = json.Unmarshal([]byte(content), &sealed); err != nil {
		return models.UnsealRequest{}, fmt.Errorf("error decoding %s: %w", file, err)
	}
	return models.UnsealRequest{Secret: &sealed}, nil
}

func (c *CLI) secretsCommand() *cobra.Command {
	secrets := &cobra.Command{
		Use:   "secrets",
		Short: "Inspect, export and delete sealed secrets",
	}

	secrets.AddCommand(
		&cobra.Command{
			Use:   "get <id>",
			Short: "Show a sealed secret",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				sealed, err := c.adapter.GetSealed(cmd.Context(), args[0])
				if err != nil {
					return fmt.Errorf("error getting sealed secret: %w", err)
				}
				return printJSON(cmd.OutOrStdout(), sealed)
			},
		},
		&cobra.Command{
			Use:   "list <key-id>",
			Short: "List secrets sealed with a key",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				secrets, err := c.adapter.ListSealed(cmd.Context(), args[0])
				if err != nil {
					return fmt.Errorf("error listing sealed secrets: %w", err)
				}

				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "ID\tALGORITHM\tSIZE\tCREATED")
				for _, s := range secrets {
					fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", s.ID, s.Algorithm, len(s.Ciphertext), s.CreatedAt.Local().Format(time.DateTime))
				}
				return tw.Flush()
			},
		},
		&cobra.Command{
			Use:   "delete <id>",
			Short: "Delete a sealed secret",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := c.adapter.DeleteSealed(cmd.Context(), args[0]); err != nil {
					return fmt.Errorf("error deleting sealed secret: %w", err)
				}
				success(cmd.OutOrStdout(), "sealed secret %s deleted", args[0])
				return nil
			},
		},
		c.secretsExportCommand(),
	)

	return secrets
}

func (c *CLI) secretsExportCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export <id>",
		Short: "Print the portable envelope of a sealed secret",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			envelope, err := c.adapter.ExportSealed(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("error exporting sealed secret: %w", err)
			}

			if output == "" {
				fmt.Fprintln(cmd.OutOrStdout(), envelope)
				return nil
			}

			if err = os.WriteFile(output, []byte(envelope+"\n"), 0o600); err != nil {
				return fmt.Errorf("error writing %s: %w", output, err)
			}
			success(cmd.OutOrStdout(), "envelope written to %s", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the envelope to a file")

	return cmd
}
