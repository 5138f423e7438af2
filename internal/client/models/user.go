// Package models defines the client-side data models shared by the session
// services, the REST client and the CLI.
package models

// User is an account record as returned by the remote account service.
type User struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Avatar    string `json:"avatar"`
}

// Identity is the in-memory representation of the authenticated user.
// Fields fill in progressively: Email is known right after login, the rest
// arrives with the follow-up profile fetch.
type Identity struct {
	ID        int64
	Email     string
	FirstName string
	LastName  string
	Avatar    string
}

// Merge copies the non-zero fields of u over the identity. The update
// endpoint echoes only the fields it changed, so zero values must not
// clobber data already present.
func (i *Identity) Merge(u User) {
	if u.ID != 0 {
		i.ID = u.ID
	}
	if u.Email != "" {
		i.Email = u.Email
	}
	if u.FirstName != "" {
		i.FirstName = u.FirstName
	}
	if u.LastName != "" {
		i.LastName = u.LastName
	}
	if u.Avatar != "" {
		i.Avatar = u.Avatar
	}
}

// Clone returns an independent copy of the identity.
func (i *Identity) Clone() *Identity {
	if i == nil {
		return nil
	}
	c := *i
	return &c
}

// Snapshot is the minimal identity persisted in the durable cache, enough
// to restore a session on the next start.
type Snapshot struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}
