package services

import (
	"context"
	"fmt"

	"github.com/avetins/sessionkeeper/internal/client/api"
	"github.com/avetins/sessionkeeper/internal/client/models"
)

// DefaultPageSize is the page size used for listing requests when the caller
// does not specify one. It matches the page size of the original deployment.
const DefaultPageSize = 5

// IdentityResolver maps a login email to a full user record.
//
// The demo backend's login endpoint does not return the user id, which is
// why this indirection exists at all. The default implementation scans the
// paginated user listing; against a real identity provider, swap in a
// resolver backed by a single lookup call and retire the scan.
type IdentityResolver interface {
	Resolve(ctx context.Context, email string) (*models.User, error)
}

// ListScanResolver resolves an email by walking the user listing page by
// page until it finds an exact, case-sensitive match.
type ListScanResolver struct {
	client  api.Client
	perPage int
}

func NewListScanResolver(client api.Client, perPage int) *ListScanResolver {
	if perPage <= 0 {
		perPage = DefaultPageSize
	}
	return &ListScanResolver{client: client, perPage: perPage}
}

// Resolve returns ErrUserNotFound once the listing is exhausted without a
// match. Any listing failure is returned as-is, wrapped.
func (r *ListScanResolver) Resolve(ctx context.Context, email string) (*models.User, error) {
	seen := 0
	for page := 1; ; page++ {
		p, err := r.client.ListUsers(ctx, page, r.perPage)
		if err != nil {
			return nil, fmt.Errorf("list users: %w", err)
		}
		for _, u := range p.Users {
			if u.Email == email {
				found := u
				return &found, nil
			}
		}
		seen += len(p.Users)
		if len(p.Users) == 0 || seen >= p.Total {
			return nil, ErrUserNotFound
		}
	}
}
