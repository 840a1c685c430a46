// Package http implements the storefront's browser-facing transport.
//
// It wires the routes, renders HTML views and redirects, and runs the
// middleware chain: request tracing, access logging, panic recovery,
// response compression and session loading. Business decisions are left to
// the service layer; errors coming back from it are mapped to responses by a
// single table in errors_mapper.go.
package http
