// Package api implements the client for the remote account service: a small
// JSON-over-HTTP API offering authentication and user CRUD. The service is
// treated as an opaque request/response boundary that may fail or be slow;
// retry and timeout policy beyond the HTTP client's own is left to callers.
package api

import (
	"context"

	"github.com/avetins/sessionkeeper/internal/client/models"
)

// Client defines the operations the session services need from the account
// service. The concrete implementation is RESTClient; tests substitute fakes.
type Client interface {
	// Login exchanges credentials for a bearer token. The demo backend does
	// not return the user id here.
	Login(ctx context.Context, email, password string) (string, error)

	// Register creates an account and returns its id and a bearer token.
	Register(ctx context.Context, email, password string) (int64, string, error)

	// ListUsers fetches one page of the user listing.
	ListUsers(ctx context.Context, page, perPage int) (*UserPage, error)

	// GetUser fetches a single user record by id.
	GetUser(ctx context.Context, id int64) (*models.User, error)

	// UpdateUser updates profile fields and returns what the service echoed
	// back (the demo backend echoes only the fields it changed).
	UpdateUser(ctx context.Context, id int64, upd UserUpdate) (*models.User, error)

	// DeleteUser removes the account. Success is a 2xx with an empty body.
	DeleteUser(ctx context.Context, id int64) error

	Close() error
}

// UserPage is one page of the user listing together with the server-reported
// totals needed for pagination bookkeeping.
type UserPage struct {
	Page       int
	PerPage    int
	Total      int
	TotalPages int
	Users      []models.User
}

// UserUpdate carries the editable profile fields for the update endpoint.
type UserUpdate struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}
