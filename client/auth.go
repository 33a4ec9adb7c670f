package client

import (
	"context"

	"hostelhub_client/domain"
)

type loginResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

// Login exchanges credentials for a token and the user profile. The caller
// owns the session write, keeping the login/logout lifecycle explicit.
func (c *Client) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	in := map[string]string{
		"email":    email,
		"password": password,
	}
	var out loginResponse
	if err := c.postJSON(ctx, "/auth/login", in, &out); err != nil {
		return "", nil, err
	}
	return out.Token, &out.User, nil
}
