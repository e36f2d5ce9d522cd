// Package middleware stores global and route-specific middleware.
//
// These intercept requests to handle cross-cutting concerns such as
// request correlation, request logging, CORS, panic recovery, and the
// translation of every error into the API's response shape.
package middleware
