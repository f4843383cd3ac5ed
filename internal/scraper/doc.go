// Package scraper fetches the JSON documents served by HHVM's admin server.
//
// A Fetcher owns one *http.Client (built once by New) and performs a single
// bounded GET per call. Every failure mode (connection refused, timeout,
// non-2xx status, malformed or non-object body) is folded into an absent
// Result; Result.Err keeps the reason for debug logging only.
//
// Document wraps the decoded object with typed accessors used by the
// collector's field mappers.
package scraper
