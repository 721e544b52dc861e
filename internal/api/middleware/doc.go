// Package middleware provides the HTTP middleware of the API: request
// tracing and logging, panic recovery, bearer token authentication and
// rate limiting.
package middleware
