// Package server exposes the Prometheus registry over HTTP.
//
// Routes (chi):
//   - GET <metrics path>: text exposition from promhttp.HandlerFor
//   - GET /healthz: "ok" while the process is serving
//   - GET /: landing page linking to the metrics path
//
// Run(ctx, addr, handler) blocks until ctx is cancelled and then drains
// in-flight scrapes with http.Server.Shutdown.
package server
