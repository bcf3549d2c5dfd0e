package client

import (
	"context"

	"github.com/bluejays/schoolsys/core"
)

// RoleService reads the role catalog; roles are defined server-side and only
// ever listed here.
type RoleService struct {
	c *Client
}

func (c *Client) Roles() RoleService { return RoleService{c: c} }

func (s RoleService) List(ctx context.Context) ([]core.Role, error) {
	body, err := s.c.get(ctx, "/role/get-all", nil)
	if err != nil {
		return nil, err
	}
	return decode[[]core.Role](body, "data", "data")
}
