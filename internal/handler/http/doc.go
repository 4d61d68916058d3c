// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, middleware, and the embedded
// browser pages. Cross-cutting concerns such as authentication, admin access
// control, request tracing, access logging, and response compression are
// handled in this package before requests are delegated to the service layer.
package http
