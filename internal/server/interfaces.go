package server

// Server is the lifecycle of the diary server process: the HTTP listener and
// the background workers started next to it.
type Server interface {
	// RunServer serves requests and blocks until a stop signal arrives.
	RunServer()

	// Shutdown stops the HTTP listener gracefully.
	Shutdown()
}
