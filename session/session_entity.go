package session

import (
	"context"
	"time"

	"caseflow/authority"

	"github.com/fundwit/go-commons/types"
)

type Context struct {
	Token    string                `json:"token"`
	Identity Identity              `json:"identity"`
	Perms    authority.Permissions `json:"perms"`

	SigningTime time.Time `json:"-"`

	// Context carries the per-request trace context.
	Context context.Context `json:"-"`
}

type Identity struct {
	ID       types.ID `json:"id"`
	Name     string   `json:"name"`
	Nickname string   `json:"nickname"`
}

func (c *Context) HasRole(role string) bool {
	return c.Perms.HasRole(role)
}

func (c *Context) Clone() Context {
	s := *c
	perms := make(authority.Permissions, len(c.Perms))
	copy(perms, c.Perms)
	s.Perms = perms
	return s
}
