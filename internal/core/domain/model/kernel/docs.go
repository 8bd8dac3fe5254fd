// Package kernel contains shared value objects used across the marketplace
// domain model: identifiers, monetary amounts, and the authenticated session.
//
// All types in this package are immutable value objects. Zero values are
// invalid and every type must be created through its constructor function,
// following the constructor guard pattern used throughout the domain layer.
package kernel
