// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as security headers, CORS, body limits,
// request tracing, access logging, response compression, schema
// initialization, input sanitization, and authentication are handled in this
// package before requests are delegated to the service layer. Every response,
// success or failure, uses the uniform models.Response envelope.
package http
