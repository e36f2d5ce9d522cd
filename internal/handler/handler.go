// Package handler is the first layer. The first entry point
// for business logic after the router.
//
// It parses requests into ordered column/value pairs and path ids,
// calls the appropriate service layer, and writes the JSON response.
// It acts as the interface between the HTTP request and the core
// business logic.
package handler
