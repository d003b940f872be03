package httpserver

import "errors"

var (
	// ErrStart is returned when the server cannot listen or serve.
	ErrStart = errors.New("failed to start HTTP server")
	// ErrShutdown is returned when graceful shutdown or a cleanup func fails.
	ErrShutdown = errors.New("failed to shutdown HTTP server gracefully")
	// ErrAlreadyRunning is returned by a second Run on the same Server.
	ErrAlreadyRunning = errors.New("server already running")
)
