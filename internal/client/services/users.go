package services

import (
	"context"
	"slices"
	"sync"

	"github.com/avetins/sessionkeeper/internal/client/api"
	"github.com/avetins/sessionkeeper/internal/client/models"
	"github.com/avetins/sessionkeeper/internal/logging"
)

// UserListPager accumulates the paginated user listing for one screen.
// It is created when the screen appears and discarded with it; nothing here
// is persisted. Records keep arrival order and are not de-duplicated.
type UserListPager struct {
	client  api.Client
	log     logging.Logger
	perPage int

	mu       sync.Mutex
	users    []models.User
	page     int
	total    int
	hasMore  bool
	fetching bool
}

func NewUserListPager(client api.Client, log logging.Logger, perPage int) *UserListPager {
	if perPage <= 0 {
		perPage = DefaultPageSize
	}
	return &UserListPager{
		client:  client,
		log:     log,
		perPage: perPage,
		page:    1,
		hasMore: true,
	}
}

// LoadMore fetches the next page and appends it to the accumulated list.
// It is a no-op while a fetch is in flight or once the listing is complete.
// A failed fetch is logged and leaves the pager unchanged; there is no
// retry, the next call simply tries again.
func (p *UserListPager) LoadMore(ctx context.Context) error {
	p.mu.Lock()
	if p.fetching || !p.hasMore {
		p.mu.Unlock()
		return nil
	}
	p.fetching = true
	page := p.page
	p.mu.Unlock()

	res, err := p.client.ListUsers(ctx, page, p.perPage)

	p.mu.Lock()
	defer p.mu.Unlock()
	p.fetching = false
	if err != nil {
		p.log.Warn(ctx, "user list fetch failed", "page", page, "error", err)
		return err
	}

	p.users = append(p.users, res.Users...)
	p.page++
	p.total = res.Total
	if len(p.users) >= res.Total {
		p.hasMore = false
	}
	return nil
}

// Users returns a copy of the accumulated records in arrival order.
func (p *UserListPager) Users() []models.User {
	p.mu.Lock()
	defer p.mu.Unlock()
	return slices.Clone(p.users)
}

// HasMore reports whether further pages remain.
func (p *UserListPager) HasMore() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.hasMore
}

// Total returns the server-reported total, 0 before the first page lands.
func (p *UserListPager) Total() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.total
}
