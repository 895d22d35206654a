// Package middleware provides the HTTP middleware chain: W3C extended
// request logging with log-injection sanitization, Prometheus request
// metrics, and size/content-type aware gzip compression.
package middleware
