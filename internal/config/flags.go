// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress is a host:port pair usable as a flag.Value.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses the server command-line flags from args.
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("keeper-server", flag.ContinueOnError)

	var serverAddress, grpcServerAddress NetAddress
	var (
		databaseDSN      string
		jsonConfigPath   string
		version          string
		hashKey          string
		masterPassphrase string
		logLevel         string
		gateCredential   string
		gateSignKey      string
		gateIssuer       string
		gateProofTTL     time.Duration
		requestTimeout   time.Duration
		purgeInterval    time.Duration
		adapterAddress   string
	)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN (sqlite path or postgres URL)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&version, "version", "", "Server version")
	fs.StringVar(&hashKey, "hash-key", "", "Credential hash key")
	fs.StringVar(&masterPassphrase, "master-passphrase", "", "Passphrase protecting key material at rest")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&gateCredential, "gate-credential", "", "Presence credential")
	fs.StringVar(&gateSignKey, "gate-sign-key", "", "Proof token signing key")
	fs.StringVar(&gateIssuer, "gate-issuer", "", "Proof token issuer")
	fs.DurationVar(&gateProofTTL, "gate-proof-ttl", 0, "Proof token lifetime (e.g., 5m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&purgeInterval, "purge-interval", 0, "Revocation purge interval (e.g., 1m)")
	fs.StringVar(&adapterAddress, "adapter-address", "", "Server base URL used by clients")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Version:          version,
			HashKey:          hashKey,
			MasterPassphrase: masterPassphrase,
			LogLevel:         logLevel,
		},
		Gate: Gate{
			Credential:   gateCredential,
			TokenSignKey: gateSignKey,
			TokenIssuer:  gateIssuer,
			ProofTTL:     gateProofTTL,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress: adapterAddress,
		},
		Workers: Workers{
			PurgeInterval: purgeInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
