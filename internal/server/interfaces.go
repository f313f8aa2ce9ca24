package server

// Server runs the API until the process is asked to stop.
type Server interface {
	// RunServer serves until SIGINT, SIGTERM or SIGQUIT arrives, then shuts
	// down gracefully. It returns an error only if serving failed.
	RunServer() error

	// Shutdown stops accepting requests and waits for in-flight ones.
	Shutdown() error
}
