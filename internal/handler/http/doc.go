// Package http implements the HTTP transport layer of the application.
//
// Every API route is a pipeline: an optional authorization stage, the
// validation stages of the route and finally the endpoint. The first
// failing step hands its error to a single translator that picks the
// status code and writes the failure envelope. Cross-cutting concerns such
// as request tracing, access logging, response compression and security
// headers are applied as chi middleware around the pipelines.
package http
