package main

import (
	"context"
	"os"

	"github.com/fatih/color"

	"github.com/MKhiriev/go-key-keeper/internal/cli"
	"github.com/MKhiriev/go-key-keeper/internal/config"
	"github.com/MKhiriev/go-key-keeper/internal/logger"
	"github.com/MKhiriev/go-key-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewClientLogger("go-key-keeper-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	root := cli.NewRootCommand(cfg, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err = root.ExecuteContext(context.Background()); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "✗ %v\n", err)
		os.Exit(1)
	}
}
