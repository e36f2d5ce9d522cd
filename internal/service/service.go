// Package service contains the business logic.
//
// It sits between the handler and repository layers: it interprets
// each resource's declarative rules against incoming data, decides
// between 400 and 404, and calls repository methods to read and write
// rows.
package service
