// Package http implements the REST API of the diary server.
//
// It wires chi routes to the service layer and carries the cross-cutting
// middleware: panic recovery, request tracing, access logging, request
// timeouts, response compression and bearer-token authentication. Service
// errors are translated to HTTP status codes through errorStatusMap.
package http
