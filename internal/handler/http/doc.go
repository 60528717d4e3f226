// Package http implements the REST transport of the vault.
//
// It wires routes, request handlers and middleware. Proof-of-presence
// extraction, request tracing, access logging, metrics, response
// compression and response signing are handled here before requests reach
// the service layer.
package http
