// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// session token generation and validation, and other common operations.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UsernameCtxKey is the key used to store the authenticated username in the
// request context. Used together with GetUsernameFromContext for type-safe
// retrieval of the username from context.Context.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.UsernameCtxKey, "alice")
var UsernameCtxKey = contextKey("username")

// GetUsernameFromContext retrieves the authenticated username from the context.
//
// Returns the username and an ok flag:
//   - ok == true  — value is found, has the correct string type, and is non-empty
//   - ok == false — value is missing, empty, or has an unexpected type
//
// Example usage:
//
//	username, ok := utils.GetUsernameFromContext(ctx)
//	if !ok {
//	    // handle anonymous request
//	}
func GetUsernameFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(UsernameCtxKey).(string)
	if username == "" {
		return "", false
	}
	return username, ok
}
