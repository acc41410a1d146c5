// Package types defines the User entity, the store Config, and the
// standard error values shared across the roster storage system.
package types
