// Package config loads and watches the exporter configuration.
//
// Top-level types:
//   - Config{HHVM, Web, Log}: full tree parsed from YAML
//   - HHVMConfig: admin_url, tls.insecure_skip_verify
//   - WebConfig: listen_address, metrics_path
//   - LogConfig: debug, file
//   - Overrides: command-line values layered over the file by Apply
//
// A config file is optional: Default() yields http://localhost:9002, :9192 and
// /metrics. Load(path) reads YAML over those defaults and validates the result.
//
// Watch(ctx, path, onChange) uses fsnotify to pick up edits. The exporter only
// applies log.debug from a reload; the admin URL and listen address are fixed
// for the life of the process.
package config
