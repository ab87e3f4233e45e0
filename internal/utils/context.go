// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, hashing,
// HTTP response writing, JWT token generation and validation,
// and other common operations.
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

// ManagerIDCtxKey is the key used to store the manager identifier in the context.
// Used together with GetManagerIDFromContext for type-safe retrieval
// of the manager ID from context.Context.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.ManagerIDCtxKey, "0b7e5c9e-...")
var ManagerIDCtxKey = contextKey("managerID")

// GetManagerIDFromContext retrieves the manager identifier from the context.
//
// Returns the manager ID of type string and an ok flag:
//   - ok == true  means the value is found and has the correct string type
//   - ok == false means the value is missing or has an unexpected type
//
// Example usage:
//
//	managerID, ok := utils.GetManagerIDFromContext(ctx)
//	if !ok {
//	    // handle missing manager in context
//	}
func GetManagerIDFromContext(ctx context.Context) (string, bool) {
	managerID, ok := ctx.Value(ManagerIDCtxKey).(string)
	return managerID, ok
}
