// Package server runs the vault's transports.
//
// The REST API and the gRPC health endpoint each listen on their own
// configured address; either may be left out. Background workers run next
// to them and are stopped after them once SIGINT, SIGTERM or SIGQUIT
// arrives.
package server
