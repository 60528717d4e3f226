package cli

import (
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var errInvalidSignature = errors.New("signature is not valid")

func (c *CLI) signCommand() *cobra.Command {
	var payload payloadFlags

	cmd := &cobra.Command{
		Use:   "sign <key-id>",
		Short: "Sign data and print the base64 signature",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := payload.read(cmd)
			if err != nil {
				return err
			}

			signature, err := c.adapter.Sign(cmd.Context(), args[0], data)
			if err != nil {
				return fmt.Errorf("error signing: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), base64.StdEncoding.EncodeToString(signature))
			return nil
		},
	}
	payload.register(cmd, "data to sign")

	return cmd
}

func (c *CLI) verifyCommand() *cobra.Command {
	var (
		payload   payloadFlags
		signature string
	)

	cmd := &cobra.Command{
		Use:   "verify <key-id>",
		Short: "Check a base64 signature; exits non-zero if it does not match",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sig, err := base64.StdEncoding.DecodeString(signature)
			if err != nil {
				return fmt.Errorf("signature is not base64: %w", err)
			}

			data, err := payload.read(cmd)
			if err != nil {
				return err
			}

			valid, err := c.adapter.Verify(cmd.Context(), args[0], data, sig)
			if err != nil {
				return fmt.Errorf("error verifying: %w", err)
			}
			if !valid {
				return errInvalidSignature
			}

			success(cmd.OutOrStdout(), "signature is valid")
			return nil
		},
	}
	payload.register(cmd, "signed data")
	cmd.Flags().StringVar(&signature, "signature", "", "base64 signature")
	_ = cmd.MarkFlagRequired("signature")

	return cmd
}
