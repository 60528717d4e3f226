package server

// Server is the running vault process as seen from main.
type Server interface {
	// RunServer serves until a shutdown signal arrives, then shuts down.
	RunServer()

	// Shutdown stops the transports and then the workers.
	Shutdown()
}
