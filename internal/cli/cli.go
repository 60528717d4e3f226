// Package cli implements the vault's command-line client on top of
// [adapter.ServerAdapter].
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-key-keeper/internal/adapter"
	"github.com/MKhiriev/go-key-keeper/internal/config"
	"github.com/MKhiriev/go-key-keeper/internal/logger"
	"github.com/MKhiriev/go-key-keeper/models"
)

type adapterFactory func(cfg config.ClientAdapter, hashKey string, logger *logger.Logger) (adapter.ServerAdapter, error)

// CLI holds what every command shares. The adapter is built in the root's
// PersistentPreRunE, after flags are parsed.
type CLI struct {
	cfg   config.ClientConfig
	build models.AppBuildInfo

	newAdapter adapterFactory
	adapter    adapter.ServerAdapter

	address   string
	token     string
	tokenPath string

	readCredential func(cmd *cobra.Command) (string, error)

	logger *logger.Logger
}

// NewRootCommand returns the "keykeeper" command tree.
func NewRootCommand(cfg *config.ClientConfig, build models.AppBuildInfo, logger *logger.Logger) *cobra.Command {
	c := &CLI{
		cfg:            *cfg,
		build:          build,
		newAdapter:     adapter.NewHTTPServerAdapter,
		tokenPath:      defaultTokenPath(),
		readCredential: promptCredential,
		logger:         logger,
	}
	return c.rootCommand()
}

func (c *CLI) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "keykeeper",
		Short:         "Command-line client for the go-key-keeper vault",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.connect()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&c.address, "address", "a", "", "vault address (overrides ADAPTER_ADDRESS)")
	flags.StringVar(&c.token, "token", "", "proof token to send instead of the saved one")
	flags.StringVar(&c.tokenPath, "token-file", c.tokenPath, "where auth saves the proof token")

	root.AddCommand(
		c.authCommand(),
		c.logoutCommand(),
		c.keysCommand(),
		c.sealCommand(),
		c.unsealCommand(),
		c.signCommand(),
		c.verifyCommand(),
		c.secretsCommand(),
		c.versionCommand(),
	)

	return root
}

func (c *CLI) connect() error {
	adapterCfg := c.cfg.Adapter
	if c.address != "" {
		adapterCfg.HTTPAddress = c.address
	}

	a, err := c.newAdapter(adapterCfg, c.cfg.HashKey, c.logger)
	if err != nil {
		return fmt.Errorf("error creating server adapter: %w", err)
	}
	c.adapter = a

	token := c.token
	if token == "" {
		if token, err = loadToken(c.tokenPath); err != nil {
			return err
		}
	}
	if token != "" {
		c.adapter.SetToken(token)
	}

	return nil
}

func defaultTokenPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "go-key-keeper", "token")
}
