package config

import "time"

const (
	DefaultHTTPAddress    = "localhost:8080"
	DefaultGRPCAddress    = "localhost:9090"
	DefaultRequestTimeout = 30 * time.Second
	DefaultDSN            = "keeper.db"
	DefaultTokenIssuer    = "go-key-keeper"
	DefaultProofTTL       = 5 * time.Minute
	DefaultPurgeInterval  = time.Minute
	DefaultLogLevel       = "info"
	DefaultAdapterAddress = "http://localhost:8080"
	DefaultVersion        = "dev"
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:  DefaultVersion,
			LogLevel: DefaultLogLevel,
		},
		Gate: Gate{
			TokenIssuer: DefaultTokenIssuer,
			ProofTTL:    DefaultProofTTL,
		},
		Storage: Storage{
			DB: DB{DSN: DefaultDSN},
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			GRPCAddress:    DefaultGRPCAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultAdapterAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Workers: Workers{
			PurgeInterval: DefaultPurgeInterval,
		},
	}
}
