package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// contextKey is an unexported type to prevent key collisions in context.
type contextKey string

const customerIDKey contextKey = "customer_id"

// ErrCustomerIDNotFound is returned when no customer ID exists in the request
// context. Handlers should treat this as an unauthenticated request.
var ErrCustomerIDNotFound = errors.New("customer_id not found in context")

// CustomerIDFromCtx extracts the session's customer ID from the request context.
// Returns uuid.Nil and ErrCustomerIDNotFound when no customer ID is set.
func CustomerIDFromCtx(ctx context.Context) (uuid.UUID, error) {
	customerID, ok := ctx.Value(customerIDKey).(uuid.UUID)
	if !ok || customerID == uuid.Nil {
		return uuid.Nil, ErrCustomerIDNotFound
	}
	return customerID, nil
}

// WithCustomerID returns a new context with the given customer ID attached.
// Used by the session middleware after resolving or minting the session.
func WithCustomerID(ctx context.Context, customerID uuid.UUID) context.Context {
	return context.WithValue(ctx, customerIDKey, customerID)
}
