// Package httpserver runs the HTTP API with graceful shutdown.
//
// Server.Run listens on the configured address and blocks until the context is
// cancelled or SIGINT/SIGTERM arrives; it then drains in-flight requests within
// the shutdown timeout and runs the WithOnShutdown cleanups. Config carries the
// HTTP_* environment settings for NewFromConfig.
//
// LivenessHandler and ReadinessHandler implement the /health/live and
// /health/ready checks; readiness takes Check funcs such as pg.Healthcheck.
package httpserver
