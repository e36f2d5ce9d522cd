// Package validation contains the logic for validating request data.
//
// It interprets the declarative rules attached to resource
// descriptors: required-ness per operation, scalar coercion, and value
// checks enforced through the `validator` library. Failures come back
// as per-field errors in a format the client can understand.
package validation
