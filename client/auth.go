package client

import (
	"context"

	"github.com/bluejays/schoolsys/core"
	"github.com/bluejays/schoolsys/core/session"
)

// AuthService handles sign-in/sign-out against the backend.
type AuthService struct {
	c *Client
}

func (c *Client) Auth() AuthService { return AuthService{c: c} }

type Credentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResult struct {
	Token  string `json:"token"`
	SelfID string `json:"selfId"`
}

// Login authenticates and persists the returned token (verbatim, scheme
// prefix included) and the caller's own resource id into the session store.
func (s AuthService) Login(ctx context.Context, creds Credentials) error {
	if err := core.CheckStruct(creds); err != nil {
		return err
	}
	body, err := s.c.postJSON(ctx, "/auth/login", creds)
	if err != nil {
		return err
	}
	res, err := decode[loginResult](body, "data")
	if err != nil {
		return err
	}
	if err := s.c.store.SetToken(res.Token); err != nil {
		return err
	}
	if res.SelfID != "" {
		if err := s.c.store.Set(session.KeyAdminSelfID, res.SelfID); err != nil {
			return err
		}
	}
	return nil
}

// Logout wipes the whole session context. Client-side only; the backend keeps
// no session state beyond the token itself.
func (s AuthService) Logout() error {
	return s.c.store.Reset()
}
