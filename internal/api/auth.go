package api

import (
	"context"

	"github.com/eventosia/client/internal/models"
)

// LoginResult is the response of POST /login.
type LoginResult struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// Login authenticates with email and password. The returned token is not
// attached automatically; the session layer persists it and serves it through
// the client's TokenSource.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	payload := map[string]string{"email": email, "password": password}
	var out LoginResult
	if err := c.post(ctx, "/login", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RegisterUserPayload creates a new account.
type RegisterUserPayload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterUser creates a platform account.
func (c *Client) RegisterUser(ctx context.Context, p RegisterUserPayload) (*models.User, error) {
	var out models.User
	if err := c.post(ctx, "/users", p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetProfile returns the authenticated user's profile.
func (c *Client) GetProfile(ctx context.Context) (*models.User, error) {
	var out models.User
	if err := c.get(ctx, "/users/profile", &out); err != nil {
		return nil, err
	}
	return &out, nil
}
